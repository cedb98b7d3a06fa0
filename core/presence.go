// SPDX-License-Identifier: MIT

// File: presence.go
// Role: PartialInterconnectionIndex — bookkeeping of which layer
//       combinations each elementary node participates in. Active only
//       when a multiplex store is built WithPartialInterconnection; every
//       categorical/ordinal degree, strength and neighbor computation
//       filters through it in that mode.

package core

// presenceIndex maps an interned elementary id to the set of layer
// combination keys it is registered under. It is updated exactly once per
// (node, combination) — whenever an intra-layer store first registers the
// elementary id under that combination — and entries are never removed.
type presenceIndex struct {
	m map[int32]map[nodeKey]struct{}
}

func newPresenceIndex() *presenceIndex {
	return &presenceIndex{m: make(map[int32]map[nodeKey]struct{})}
}

// add registers elem under combo. Idempotent.
func (p *presenceIndex) add(elem int32, combo nodeKey) {
	set := p.m[elem]
	if set == nil {
		set = make(map[nodeKey]struct{})
		p.m[elem] = set
	}
	set[combo] = struct{}{}
}

// has reports whether elem is registered under combo.
func (p *presenceIndex) has(elem int32, combo nodeKey) bool {
	_, ok := p.m[elem][combo]
	return ok
}

// combos returns elem's layer combinations in ascending key order
// (deterministic: interned-id order of the layer labels).
func (p *presenceIndex) combos(elem int32) []nodeKey {
	return sortedKeys(p.m[elem])
}
