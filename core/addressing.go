// SPDX-License-Identifier: MIT

// File: addressing.go
// Role: Pure, stateless conversions between links and coordinate pairs.
//       These functions are the single entry point through which every
//       query normalizes its tuples; they round-trip exactly.

package core

// LinkToNodes splits a full link (i, j, s_1, r_1, …, s_d, r_d) into its two
// endpoint coordinates (i, s_1..s_d) and (j, r_1..r_d).
// Fails with ErrInvalidIndexArity when the link length is odd or < 2.
func LinkToNodes(link Link) (Coordinate, Coordinate, error) {
	if len(link) < 2 || len(link)%2 != 0 {
		return nil, nil, ErrInvalidIndexArity
	}
	n := len(link) / 2
	n1 := make(Coordinate, n)
	n2 := make(Coordinate, n)
	n1[0], n2[0] = link[0], link[1]
	for k := 1; k < n; k++ {
		n1[k] = link[2*k]
		n2[k] = link[2*k+1]
	}

	return n1, n2, nil
}

// NodesToLink is the inverse of LinkToNodes: it interleaves two equal-arity
// coordinates into (i, j, s_1, r_1, …, s_d, r_d).
// Fails with ErrArityMismatch when the coordinates differ in length and
// with ErrInvalidIndexArity when they are empty.
func NodesToLink(n1, n2 Coordinate) (Link, error) {
	if len(n1) != len(n2) {
		return nil, ErrArityMismatch
	}
	if len(n1) == 0 {
		return nil, ErrInvalidIndexArity
	}
	link := make(Link, 0, 2*len(n1))
	for k := range n1 {
		link = append(link, n1[k], n2[k])
	}

	return link, nil
}

// ShortLinkToLink expands the short link (i, j, s_1, …, s_d) into the full
// link (i, j, s_1, s_1, …, s_d, s_d): an intra-layer edge keeps every layer
// component equal across its two halves.
// Fails with ErrInvalidIndexArity when the short link has fewer than two
// components.
func ShortLinkToLink(slink Link) (Link, error) {
	if len(slink) < 2 {
		return nil, ErrInvalidIndexArity
	}
	link := make(Link, 0, 2*(len(slink)-1))
	link = append(link, slink[0], slink[1])
	for _, s := range slink[2:] {
		link = append(link, s, s)
	}

	return link, nil
}

// SwapLinkHalves exchanges the two halves of a full link, turning the edge
// (u, v) into (v, u). The input is not mutated.
// Fails with ErrInvalidIndexArity when the link length is odd or < 2.
func SwapLinkHalves(link Link) (Link, error) {
	if len(link) < 2 || len(link)%2 != 0 {
		return nil, ErrInvalidIndexArity
	}
	out := make(Link, len(link))
	for k := 0; k < len(link); k += 2 {
		out[k], out[k+1] = link[k+1], link[k]
	}

	return out, nil
}

// interAspects returns the aspect indices at which the two halves of a
// full link differ. A valid multiplex edge differs in exactly one aspect;
// zero differing aspects is a self-link.
func interAspects(link Link) []int {
	var dims []int
	for a := 0; a < len(link)/2; a++ {
		if link[2*a] != link[2*a+1] {
			dims = append(dims, a)
		}
	}

	return dims
}

// linkHasWildcard reports whether any component of the tuple is the Any
// marker.
func linkHasWildcard(link Link) bool {
	for _, l := range link {
		if isWild(l) {
			return true
		}
	}

	return false
}
