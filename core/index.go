// SPDX-License-Identifier: MIT

// File: index.go
// Role: Arity-driven tensor-style indexing shared by both stores.
//
// For a store with d aspects an index tuple of length L means:
//
//	L == d+1      node coordinate            → NodeView
//	L == 2(d+1)   full link                  → edge weight, or a scoped
//	              NodeView when wildcard markers occupy second-half layer
//	              slots ("vary this aspect")
//	L == d+2      short link (i,j,s_1..s_d)  → expanded, then re-dispatched
//	anything else                            → ErrInvalidIndexArity
//
// Wildcards are only defined in the second component of a full-link pair
// and, equivalently, in the j slot of a short link; any other placement
// fails with ErrUnsupportedWildcard.

package core

// Entry is the result of an At dispatch: either an edge weight or a node
// view, never both.
type Entry struct {
	view   *NodeView
	weight Weight
	edge   bool
}

// Edge reports whether the index resolved to an edge weight.
func (e Entry) Edge() bool { return e.edge }

// Weight returns the resolved edge weight; meaningful only when Edge()
// is true.
func (e Entry) Weight() Weight { return e.weight }

// View returns the resolved node view; nil when Edge() is true.
func (e Entry) View() *NodeView { return e.view }

// dispatchIndex implements the arity contract above for any Network.
func dispatchIndex(n Network, ix []Label) (Entry, error) {
	d1 := n.Aspects() + 1
	switch {
	case len(ix) == d1:
		if linkHasWildcard(ix) {
			return Entry{}, ErrUnsupportedWildcard
		}
		coord := make(Coordinate, d1)
		copy(coord, ix)

		return Entry{view: &NodeView{net: n, coord: coord}}, nil

	case len(ix) == 2*d1:
		// Scan the per-aspect pairs: a wildcard in a second slot scopes the
		// view to vary that aspect; a wildcard in a first slot is undefined.
		dims := make(Dims, d1)
		wilds := 0
		for a := 0; a < d1; a++ {
			if isWild(ix[2*a]) {
				return Entry{}, ErrUnsupportedWildcard
			}
			if isWild(ix[2*a+1]) {
				dims[a] = Any
				wilds++
			} else {
				dims[a] = ix[2*a+1]
			}
		}
		if wilds == 0 {
			w, err := n.GetLink(Link(ix))
			if err != nil {
				return Entry{}, err
			}

			return Entry{weight: w, edge: true}, nil
		}
		node, _, err := LinkToNodes(Link(ix))
		if err != nil {
			return Entry{}, err
		}

		return Entry{view: &NodeView{net: n, coord: node, dims: dims}}, nil

	case len(ix) == d1+1:
		// Short link. The j slot may hold a wildcard: expansion places it in
		// a second-half slot, where the full-link arm scopes it. Wildcards in
		// the i slot or any layer slot have no defined meaning.
		if isWild(ix[0]) || linkHasWildcard(ix[2:]) {
			return Entry{}, ErrUnsupportedWildcard
		}
		full, err := ShortLinkToLink(Link(ix))
		if err != nil {
			return Entry{}, err
		}

		return dispatchIndex(n, full)

	default:
		return Entry{}, ErrInvalidIndexArity
	}
}
