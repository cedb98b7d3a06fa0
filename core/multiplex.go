// SPDX-License-Identifier: MIT

// File: multiplex.go
// Role: The multiplex store. One 0-aspect Multilayer per layer
//       combination holds the intra-layer edges; everything inter-layer
//       is answered from the per-aspect coupling policies on demand.
//       The store owns all intra-layer stores in a keyed collection and
//       does its own slice/presence bookkeeping in its write paths, so
//       intra-layer stores carry no back-pointer to their parent.
// Determinism:
//   - Labels(aspect) yields registration order.
//   - Neighbors yields aspect 0 first, then aspects 1..d; within an
//     aspect, registration order (categorical/auxiliary), or label+1
//     before label-1 (ordinal).
//   - Edges walks the supernode product with the last aspect varying
//     fastest.

package core

import "iter"

// Multiplex is the multiplex-network store: intra-layer edges are stored
// explicitly per layer combination, inter-layer ("coupling") edges are
// derived analytically from one policy per aspect.
type Multiplex struct {
	aspects int
	cfg     config

	// tables[a] registers the labels of aspect a, exactly as in Multilayer.
	tables []*labelTable

	// couplings[a-1] is the policy of aspect a.
	couplings []Coupling

	// intra maps a layer-combination key (aspects 1..d, encoded) to the
	// 0-aspect store holding that combination's intra-layer edges. Entries
	// are created exactly once per combination and live for the lifetime
	// of the store.
	intra map[nodeKey]*Multilayer

	// presence is the partial-interconnection index; nil when the store is
	// fully interconnected.
	presence *presenceIndex
}

// NewMultiplex creates an empty multiplex store with one coupling policy
// per aspect (aspects == len(couplings)). Fails with ErrUnknownCoupling
// when any policy is nil or not a usable variant.
func NewMultiplex(couplings []Coupling, opts ...Option) (*Multiplex, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	for _, c := range couplings {
		if err := validateCoupling(c); err != nil {
			return nil, err
		}
	}
	aspects := len(couplings)
	tables := make([]*labelTable, aspects+1)
	for a := range tables {
		tables[a] = newLabelTable()
	}
	m := &Multiplex{
		aspects:   aspects,
		cfg:       cfg,
		tables:    tables,
		couplings: append([]Coupling(nil), couplings...),
		intra:     make(map[nodeKey]*Multilayer),
	}
	if !cfg.fullyInterconnected {
		m.presence = newPresenceIndex()
	}
	if aspects == 0 {
		// Degenerate single-layer case: the one (empty) combination exists
		// up front so the store behaves like a plain graph.
		m.intra[encodeKey(nil)] = m.newIntra()
	}

	return m, nil
}

// newIntra builds one intra-layer store, inheriting the no-edge sentinel
// and directedness.
func (m *Multiplex) newIntra() *Multilayer {
	return New(0, WithNoEdge(m.cfg.noEdge), WithDirected(m.cfg.directed))
}

// Aspects returns the number of layering dimensions.
func (m *Multiplex) Aspects() int { return m.aspects }

// NoEdge returns the no-edge sentinel weight.
func (m *Multiplex) NoEdge() Weight { return m.cfg.noEdge }

// Directed reports whether the store is directed.
func (m *Multiplex) Directed() bool { return m.cfg.directed }

// FullyInterconnected reports whether every elementary node is assumed
// present in every layer combination.
func (m *Multiplex) FullyInterconnected() bool { return m.cfg.fullyInterconnected }

// NodeCount returns the number of registered elementary nodes.
func (m *Multiplex) NodeCount() int { return m.tables[0].size() }

// Policy returns the coupling policy of the given aspect (1..aspects).
func (m *Multiplex) Policy(aspect int) (Coupling, error) {
	if aspect < 1 || aspect > m.aspects {
		return nil, ErrBadAspect
	}

	return m.couplings[aspect-1], nil
}

// SetPolicy replaces the coupling policy of the given aspect. Existing
// intra-layer edges are untouched; only future inter-layer answers change.
func (m *Multiplex) SetPolicy(aspect int, c Coupling) error {
	if aspect < 1 || aspect > m.aspects {
		return ErrBadAspect
	}
	if err := validateCoupling(c); err != nil {
		return err
	}
	m.couplings[aspect-1] = c

	return nil
}

// AddNode registers label in the given aspect. For aspect 0 this only
// records the elementary id; intra-layer stores acquire it lazily. For a
// new label in an aspect > 0, one intra-layer store is created for every
// combination of the other aspects' existing labels crossed with the new
// label.
func (m *Multiplex) AddNode(label Label, aspect int) error {
	if aspect < 0 || aspect > m.aspects {
		return ErrBadAspect
	}
	if _, known := m.tables[aspect].id(label); known {
		return nil
	}
	id := m.tables[aspect].intern(label)
	if aspect == 0 {
		return nil
	}
	// Cross the new label with the cartesian product of the other layer
	// aspects' labels. Any other aspect still empty yields no combinations,
	// matching the lazy-creation contract.
	lists := make([][]int32, m.aspects)
	for a := 1; a <= m.aspects; a++ {
		if a == aspect {
			lists[a-1] = []int32{id}
			continue
		}
		ids := make([]int32, m.tables[a].size())
		for i := range ids {
			ids[i] = int32(i)
		}
		lists[a-1] = ids
	}
	for _, combo := range cartesian(lists) {
		key := encodeKey(combo)
		if _, ok := m.intra[key]; !ok {
			m.intra[key] = m.newIntra()
		}
	}

	return nil
}

// AddNodeToLayer registers an elementary node inside one specific layer
// combination (length == aspects). This is how presence is declared in a
// partially interconnected network without adding an edge. Layer labels
// are registered as a side effect, creating combinations as needed.
func (m *Multiplex) AddNodeToLayer(label Label, layers ...Label) error {
	if len(layers) != m.aspects {
		return ErrInvalidIndexArity
	}
	if err := m.AddNode(label, 0); err != nil {
		return err
	}
	for a, l := range layers {
		if err := m.AddNode(l, a+1); err != nil {
			return err
		}
	}
	key, _ := lookupKey(m.tables[1:], layers)
	st := m.intra[key]
	if st == nil {
		st = m.newIntra()
		m.intra[key] = st
	}
	if err := st.AddNode(label, 0); err != nil {
		return err
	}
	if m.presence != nil {
		id, _ := m.tables[0].id(label)
		m.presence.add(id, key)
	}

	return nil
}

// intraFor returns the intra-layer store of a coordinate's layer part, or
// nil when the combination does not exist.
func (m *Multiplex) intraFor(layers Coordinate) *Multilayer {
	key, ok := lookupKey(m.tables[1:], layers)
	if !ok {
		return nil
	}

	return m.intra[key]
}

// GetLink resolves a full or short link. The two halves may differ in at
// most one aspect: aspect 0 is answered by the intra-layer store of the
// shared combination, aspects > 0 by the coupling policy. Everything else
// — self-links included — is the no-edge sentinel.
func (m *Multiplex) GetLink(link Link) (Weight, error) {
	full, err := normalizeLink(m.aspects, link)
	if err != nil {
		return m.cfg.noEdge, err
	}
	diff := interAspects(full)
	if len(diff) != 1 {
		return m.cfg.noEdge, nil
	}
	n1, n2, err := LinkToNodes(full)
	if err != nil {
		return m.cfg.noEdge, err
	}
	if diff[0] == 0 {
		st := m.intraFor(n1[1:])
		if st == nil {
			return m.cfg.noEdge, nil
		}
		if m.presence != nil && (!m.present(n1[0], n1[1:]) || !m.present(n2[0], n1[1:])) {
			return m.cfg.noEdge, nil
		}

		return st.GetLink(Link{full[0], full[1]})
	}

	// Coupling edge: both halves share the elementary id.
	a := diff[0]
	if _, known := m.tables[0].id(full[0]); !known {
		return m.cfg.noEdge, nil
	}
	if m.presence != nil && (!m.present(full[0], n1[1:]) || !m.present(full[0], n2[1:])) {
		return m.cfg.noEdge, nil
	}
	switch c := m.couplings[a-1].(type) {
	case Categorical:
		return c.W, nil
	case Ordinal:
		s, okS := full[2*a].(int)
		r, okR := full[2*a+1].(int)
		if !okS || !okR {
			return m.cfg.noEdge, ErrOrdinalLayer
		}
		if s+1 == r || s == r+1 {
			return c.W, nil
		}

		return m.cfg.noEdge, nil
	case AuxiliaryNetwork:
		return c.Net.GetLink(Link{full[2*a], full[2*a+1]})
	default:
		return m.cfg.noEdge, ErrUnknownCoupling
	}
}

// present reports whether elem participates in the given layer
// combination; callers guarantee m.presence != nil.
func (m *Multiplex) present(elem Label, layers Coordinate) bool {
	id, ok := m.tables[0].id(elem)
	if !ok {
		return false
	}
	key, ok := lookupKey(m.tables[1:], layers)
	if !ok {
		return false
	}

	return m.presence.has(id, key)
}

// SetLink writes an intra-layer link. Only links whose halves differ in
// aspect 0 alone are writable: a self-link fails with ErrSelfLink and any
// inter-layer target fails with ErrReadOnlyCoupling, both without side
// effects. On success every link component is registered first (creating
// layer combinations as needed), then the intra-layer store is updated
// and, in partial-interconnection mode, both endpoints' presence is
// recorded.
func (m *Multiplex) SetLink(link Link, w Weight) error {
	full, err := normalizeLink(m.aspects, link)
	if err != nil {
		return err
	}
	diff := interAspects(full)
	if len(diff) == 0 {
		return ErrSelfLink
	}
	if len(diff) != 1 || diff[0] != 0 {
		return ErrReadOnlyCoupling
	}
	for i, l := range full {
		if err := m.AddNode(l, i/2); err != nil {
			return err
		}
	}
	n1, _, err := LinkToNodes(full)
	if err != nil {
		return err
	}
	key, _ := lookupKey(m.tables[1:], n1[1:])
	st := m.intra[key]
	if st == nil {
		st = m.newIntra()
		m.intra[key] = st
	}
	if err := st.SetLink(Link{full[0], full[1]}, w); err != nil {
		return err
	}
	if m.presence != nil {
		id1, _ := m.tables[0].id(full[0])
		id2, _ := m.tables[0].id(full[1])
		m.presence.add(id1, key)
		m.presence.add(id2, key)
	}

	return nil
}

// selectAspects resolves a Dims filter against a node coordinate: nil
// selects every aspect 0..d; otherwise the wildcard positions are
// selected and every fixed position must match the node's own component,
// else nothing is selected.
func (m *Multiplex) selectAspects(node Coordinate, dims Dims) ([]int, error) {
	if len(node) != m.aspects+1 {
		return nil, ErrInvalidIndexArity
	}
	if dims == nil {
		sel := make([]int, m.aspects+1)
		for a := range sel {
			sel[a] = a
		}

		return sel, nil
	}
	if len(dims) != m.aspects+1 {
		return nil, ErrInvalidIndexArity
	}
	var sel []int
	for a, want := range dims {
		if isWild(want) {
			sel = append(sel, a)
			continue
		}
		if node[a] != want {
			return nil, nil
		}
	}

	return sel, nil
}

// Degree sums, over the selected aspects, the intra-layer degree
// (aspect 0) and the analytic coupling degrees (aspects > 0).
func (m *Multiplex) Degree(node Coordinate, dims Dims) (int, error) {
	sel, err := m.selectAspects(node, dims)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, a := range sel {
		if a == 0 {
			total += m.intraDegree(node)
			continue
		}
		k, err := m.dimDegree(node, a)
		if err != nil {
			return 0, err
		}
		total += k
	}

	return total, nil
}

// Strength is the weighted counterpart of Degree.
func (m *Multiplex) Strength(node Coordinate, dims Dims) (Weight, error) {
	sel, err := m.selectAspects(node, dims)
	if err != nil {
		return 0, err
	}
	var total Weight
	for _, a := range sel {
		if a == 0 {
			st := m.intraFor(node[1:])
			if st == nil {
				continue
			}
			s, err := st.Strength(Coordinate{node[0]}, nil)
			if err != nil {
				return 0, err
			}
			total += s
			continue
		}
		s, err := m.dimStrength(node, a)
		if err != nil {
			return 0, err
		}
		total += s
	}

	return total, nil
}

// intraDegree is the node's degree inside its own intra-layer store;
// zero when the combination or the node is unknown.
func (m *Multiplex) intraDegree(node Coordinate) int {
	st := m.intraFor(node[1:])
	if st == nil {
		return 0
	}
	k, err := st.Degree(Coordinate{node[0]}, nil)
	if err != nil {
		return 0
	}

	return k
}

// dimDegree is the coupling degree of node in aspect a (a >= 1).
func (m *Multiplex) dimDegree(node Coordinate, a int) (int, error) {
	switch c := m.couplings[a-1].(type) {
	case Categorical:
		if m.cfg.fullyInterconnected {
			if n := m.tables[a].size(); n > 0 {
				return n - 1, nil
			}

			return 0, nil
		}
		combos, own, ok := m.ownCombos(node)
		if !ok {
			return 0, nil
		}
		count := 0
		for _, combo := range combos {
			if combosMatchExcept(combo, own, a-1) {
				count++
			}
		}

		return count - 1, nil // own combination is in the count

	case Ordinal:
		v, ok := node[a].(int)
		if !ok {
			return 0, ErrOrdinalLayer
		}
		count := 0
		for _, l := range []Label{v + 1, v - 1} {
			if m.cfg.fullyInterconnected {
				if _, known := m.tables[a].id(l); known {
					count++
				}
			} else if m.presentWithLayer(node, a, l) {
				count++
			}
		}

		return count, nil

	case AuxiliaryNetwork:
		return c.Net.Degree(Coordinate{node[a]}, nil)

	default:
		return 0, ErrUnknownCoupling
	}
}

// dimStrength is the coupling strength of node in aspect a: coupling
// degree times the policy weight, or the auxiliary network's own strength.
func (m *Multiplex) dimStrength(node Coordinate, a int) (Weight, error) {
	switch c := m.couplings[a-1].(type) {
	case Categorical:
		k, err := m.dimDegree(node, a)
		if err != nil {
			return 0, err
		}

		return Weight(k) * c.W, nil
	case Ordinal:
		k, err := m.dimDegree(node, a)
		if err != nil {
			return 0, err
		}

		return Weight(k) * c.W, nil
	case AuxiliaryNetwork:
		return c.Net.Strength(Coordinate{node[a]}, nil)
	default:
		return 0, ErrUnknownCoupling
	}
}

// ownCombos returns the node's registered layer combinations (sorted),
// its own combination key, and whether the node is registered under its
// own combination at all.
func (m *Multiplex) ownCombos(node Coordinate) ([]nodeKey, []int32, bool) {
	id, ok := m.tables[0].id(node[0])
	if !ok {
		return nil, nil, false
	}
	ownKey, ok := lookupKey(m.tables[1:], node[1:])
	if !ok || !m.presence.has(id, ownKey) {
		return nil, nil, false
	}

	return m.presence.combos(id), decodeKey(ownKey), true
}

// combosMatchExcept reports whether a combination key equals own at every
// layer position except (possibly) pos.
func combosMatchExcept(combo nodeKey, own []int32, pos int) bool {
	ids := decodeKey(combo)
	for i := range ids {
		if i != pos && ids[i] != own[i] {
			return false
		}
	}

	return true
}

// presentWithLayer reports whether the node participates in the
// combination obtained by replacing aspect a's layer with l.
func (m *Multiplex) presentWithLayer(node Coordinate, a int, l Label) bool {
	if _, known := m.tables[a].id(l); !known {
		return false
	}
	layers := make(Coordinate, m.aspects)
	copy(layers, node[1:])
	layers[a-1] = l

	return m.present(node[0], layers)
}

// Neighbors yields, per selected aspect, the node's intra-layer neighbors
// (aspect 0, layer part unchanged) and its coupling partners (aspects
// > 0: the same elementary node on other layers, per policy).
func (m *Multiplex) Neighbors(node Coordinate, dims Dims) (iter.Seq[Coordinate], error) {
	sel, err := m.selectAspects(node, dims)
	if err != nil {
		return nil, err
	}
	// Ordinal aspects are validated up front so the sequence itself cannot
	// fail mid-iteration.
	for _, a := range sel {
		if a == 0 {
			continue
		}
		if _, ordinal := m.couplings[a-1].(Ordinal); ordinal {
			if _, isInt := node[a].(int); !isInt {
				return nil, ErrOrdinalLayer
			}
		}
	}

	return func(yield func(Coordinate) bool) {
		for _, a := range sel {
			if a == 0 {
				if !m.yieldIntraNeighbors(node, yield) {
					return
				}
				continue
			}
			if !m.yieldDimNeighbors(node, a, yield) {
				return
			}
		}
	}, nil
}

func (m *Multiplex) yieldIntraNeighbors(node Coordinate, yield func(Coordinate) bool) bool {
	st := m.intraFor(node[1:])
	if st == nil {
		return true
	}
	seq, err := st.Neighbors(Coordinate{node[0]}, nil)
	if err != nil {
		return true
	}
	for n := range seq {
		if !yield(replaceComponent(node, 0, n[0])) {
			return false
		}
	}

	return true
}

func (m *Multiplex) yieldDimNeighbors(node Coordinate, a int, yield func(Coordinate) bool) bool {
	switch c := m.couplings[a-1].(type) {
	case Categorical:
		if m.cfg.fullyInterconnected {
			for _, l := range m.tables[a].labels {
				if l == node[a] {
					continue
				}
				if !yield(replaceComponent(node, a, l)) {
					return false
				}
			}

			return true
		}
		combos, own, ok := m.ownCombos(node)
		if !ok {
			return true
		}
		for _, combo := range combos {
			ids := decodeKey(combo)
			if ids[a-1] == own[a-1] || !combosMatchExcept(combo, own, a-1) {
				continue
			}
			if !yield(append(Coordinate{node[0]}, keyCoord(m.tables[1:], combo)...)) {
				return false
			}
		}

		return true

	case Ordinal:
		v := node[a].(int) // validated in Neighbors
		for _, l := range []Label{v + 1, v - 1} {
			eligible := false
			if m.cfg.fullyInterconnected {
				_, eligible = m.tables[a].id(l)
			} else {
				eligible = m.presentWithLayer(node, a, l)
			}
			if eligible && !yield(replaceComponent(node, a, l)) {
				return false
			}
		}

		return true

	case AuxiliaryNetwork:
		seq, err := c.Net.Neighbors(Coordinate{node[a]}, nil)
		if err != nil {
			return true
		}
		for n := range seq {
			if !yield(replaceComponent(node, a, n[0])) {
				return false
			}
		}

		return true

	default:
		return true
	}
}

// replaceComponent copies node with component a swapped for l.
func replaceComponent(node Coordinate, a int, l Label) Coordinate {
	out := make(Coordinate, len(node))
	copy(out, node)
	out[a] = l

	return out
}

// Labels yields the labels registered in the given aspect, in
// registration order.
func (m *Multiplex) Labels(aspect int) (iter.Seq[Label], error) {
	if aspect < 0 || aspect > m.aspects {
		return nil, ErrBadAspect
	}
	t := m.tables[aspect]

	return func(yield func(Label) bool) {
		for _, l := range t.labels {
			if !yield(l) {
				return
			}
		}
	}, nil
}

// Edges yields every edge of the multiplex — stored intra-layer edges and
// analytic coupling edges alike — as (link, weight) pairs. The walk
// visits the full supernode product (last aspect fastest) and each
// supernode's neighbors; for undirected stores a visited set guarantees
// exactly-once emission per edge. Aspects whose coupling evaluation is
// undefined at a supernode (ordinal aspects with non-int layers) are
// left out of that supernode's enumeration; its stored intra-layer edges
// are unaffected.
func (m *Multiplex) Edges() iter.Seq2[Link, Weight] {
	return func(yield func(Link, Weight) bool) {
		visited := make(map[nodeKey]struct{})
		for _, node := range m.supernodes() {
			seq, err := m.Neighbors(node, m.evaluableDims(node))
			if err != nil {
				continue
			}
			nodeKeyed, _ := lookupKey(m.tables, node)
			for neigh := range seq {
				if !m.cfg.directed {
					nk, ok := lookupKey(m.tables, neigh)
					if ok {
						if _, seen := visited[nk]; seen {
							continue
						}
					}
				}
				link, err := NodesToLink(node, neigh)
				if err != nil {
					continue
				}
				w, err := m.GetLink(link)
				if err != nil || w == m.cfg.noEdge {
					continue
				}
				if !yield(link, w) {
					return
				}
			}
			visited[nodeKeyed] = struct{}{}
		}
	}
}

// evaluableDims builds the Neighbors filter selecting every aspect whose
// coupling is defined at node: ordinal aspects with a non-int layer are
// pinned to the node's own component, which drops them from the selection.
func (m *Multiplex) evaluableDims(node Coordinate) Dims {
	dims := make(Dims, len(node))
	for a := range dims {
		dims[a] = Any
	}
	for a := 1; a <= m.aspects; a++ {
		if _, ordinal := m.couplings[a-1].(Ordinal); ordinal {
			if _, isInt := node[a].(int); !isInt {
				dims[a] = node[a]
			}
		}
	}

	return dims
}

// supernodes materializes the cartesian product of all slices in
// registration order, the last aspect varying fastest.
func (m *Multiplex) supernodes() []Coordinate {
	lists := make([][]int32, m.aspects+1)
	for a := 0; a <= m.aspects; a++ {
		ids := make([]int32, m.tables[a].size())
		for i := range ids {
			ids[i] = int32(i)
		}
		lists[a] = ids
	}
	product := cartesian(lists)
	out := make([]Coordinate, len(product))
	for i, ids := range product {
		c := make(Coordinate, len(ids))
		for a, id := range ids {
			c[a] = m.tables[a].label(id)
		}
		out[i] = c
	}

	return out
}

// cartesian enumerates the product of the id lists, last list varying
// fastest. An empty list anywhere yields no combinations.
func cartesian(lists [][]int32) [][]int32 {
	for _, l := range lists {
		if len(l) == 0 {
			return nil
		}
	}
	out := [][]int32{{}}
	for _, l := range lists {
		next := make([][]int32, 0, len(out)*len(l))
		for _, prefix := range out {
			for _, id := range l {
				combo := make([]int32, len(prefix)+1)
				copy(combo, prefix)
				combo[len(prefix)] = id
				next = append(next, combo)
			}
		}
		out = next
	}

	return out
}

// At dispatches a tensor-style index by arity; see Entry for the contract.
func (m *Multiplex) At(ix ...Label) (Entry, error) {
	return dispatchIndex(m, ix)
}

// SetAt writes a weight through a tensor-style index (full or short link
// form only).
func (m *Multiplex) SetAt(w Weight, ix ...Label) error {
	return m.SetLink(Link(ix), w)
}
