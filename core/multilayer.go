// SPDX-License-Identifier: MIT

// File: multilayer.go
// Role: The general tensor-indexed store. Adjacency is a nested map from
//       node key to neighbor key to weight; per-aspect label tables act as
//       the slice registries. Any pair of coordinates may be linked.
// Determinism:
//   - Labels(aspect) yields registration order.
//   - Neighbors and Edges yield interned-id order (registration order of
//     the underlying labels), never raw map order.

package core

import (
	"iter"
	"sort"
)

// Multilayer is the fully general multilayer store: a weight may be
// attached to any pair of node coordinates, intra- or inter-layer alike.
type Multilayer struct {
	aspects int
	cfg     config

	// tables[a] registers the labels of aspect a; tables[0] holds the
	// elementary ids. Registries grow monotonically and never shrink.
	tables []*labelTable

	// adj maps node key → neighbor key → weight. For undirected stores the
	// mirror entry is maintained atomically with every write.
	adj map[nodeKey]map[nodeKey]Weight
}

// New creates an empty general store with the given number of aspects.
// Panics if aspects is negative (programmer error); all runtime failures
// are reported as errors by the individual operations.
func New(aspects int, opts ...Option) *Multilayer {
	if aspects < 0 {
		panic("core: aspects must be non-negative")
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	tables := make([]*labelTable, aspects+1)
	for a := range tables {
		tables[a] = newLabelTable()
	}

	return &Multilayer{
		aspects: aspects,
		cfg:     cfg,
		tables:  tables,
		adj:     make(map[nodeKey]map[nodeKey]Weight),
	}
}

// Aspects returns the number of layering dimensions.
func (m *Multilayer) Aspects() int { return m.aspects }

// NoEdge returns the no-edge sentinel weight.
func (m *Multilayer) NoEdge() Weight { return m.cfg.noEdge }

// Directed reports whether the store is directed.
func (m *Multilayer) Directed() bool { return m.cfg.directed }

// NodeCount returns the number of registered elementary nodes.
func (m *Multilayer) NodeCount() int { return m.tables[0].size() }

// AddNode registers label in the slice of the given aspect. Registering
// the same label twice is a no-op.
func (m *Multilayer) AddNode(label Label, aspect int) error {
	if aspect < 0 || aspect > m.aspects {
		return ErrBadAspect
	}
	m.tables[aspect].intern(label)

	return nil
}

// normalizeLink brings a link to full form for a store with the given
// aspect count: a 2*(aspects+1) link passes through, an aspects+2 short
// link is expanded, anything else is ErrInvalidIndexArity. Wildcard
// markers are rejected — wildcard-bearing tuples address views, not
// weights, and must go through At.
func normalizeLink(aspects int, link Link) (Link, error) {
	full := len(link) == 2*(aspects+1)
	short := len(link) == aspects+2 && !full // aspects==0 makes both lengths 2
	if !full && !short {
		return nil, ErrInvalidIndexArity
	}
	if linkHasWildcard(link) {
		return nil, ErrUnsupportedWildcard
	}
	if short {
		return ShortLinkToLink(link)
	}

	return link, nil
}

// GetLink returns the weight of a full or short link, or the no-edge
// sentinel when either endpoint or the entry itself is absent.
func (m *Multilayer) GetLink(link Link) (Weight, error) {
	full, err := normalizeLink(m.aspects, link)
	if err != nil {
		return m.cfg.noEdge, err
	}
	n1, n2, err := LinkToNodes(full)
	if err != nil {
		return m.cfg.noEdge, err
	}
	k1, ok := lookupKey(m.tables, n1)
	if !ok {
		return m.cfg.noEdge, nil
	}
	k2, ok := lookupKey(m.tables, n2)
	if !ok {
		return m.cfg.noEdge, nil
	}
	if w, ok := m.adj[k1][k2]; ok {
		return w, nil
	}

	return m.cfg.noEdge, nil
}

// SetLink writes the weight of a full or short link. Every component of
// the link is registered into its aspect's slice first. Writing the
// no-edge sentinel removes the entry; for undirected stores the mirror
// entry is kept in lockstep either way.
func (m *Multilayer) SetLink(link Link, w Weight) error {
	full, err := normalizeLink(m.aspects, link)
	if err != nil {
		return err
	}
	n1, n2, err := LinkToNodes(full)
	if err != nil {
		return err
	}
	k1 := coordKey(m.tables, n1)
	k2 := coordKey(m.tables, n2)
	if w == m.cfg.noEdge {
		m.unset(k1, k2)
		if !m.cfg.directed {
			m.unset(k2, k1)
		}

		return nil
	}
	m.set(k1, k2, w)
	if !m.cfg.directed {
		m.set(k2, k1, w)
	}

	return nil
}

func (m *Multilayer) set(u, v nodeKey, w Weight) {
	row := m.adj[u]
	if row == nil {
		row = make(map[nodeKey]Weight)
		m.adj[u] = row
	}
	row[v] = w
}

func (m *Multilayer) unset(u, v nodeKey) {
	row := m.adj[u]
	if row == nil {
		return
	}
	delete(row, v)
	if len(row) == 0 {
		delete(m.adj, u)
	}
}

// checkQuery validates the node/dims pair of a degree, strength or
// neighbor query.
func (m *Multilayer) checkQuery(node Coordinate, dims Dims) error {
	if len(node) != m.aspects+1 {
		return ErrInvalidIndexArity
	}
	if dims != nil && len(dims) != m.aspects+1 {
		return ErrInvalidIndexArity
	}

	return nil
}

// matchDims reports whether coordinate c satisfies the filter: every
// non-wildcard position of dims must equal the corresponding component.
func matchDims(c Coordinate, dims Dims) bool {
	for a, want := range dims {
		if !isWild(want) && c[a] != want {
			return false
		}
	}

	return true
}

// Degree counts the neighbors of node matching dims. Unknown nodes have
// degree zero.
func (m *Multilayer) Degree(node Coordinate, dims Dims) (int, error) {
	if err := m.checkQuery(node, dims); err != nil {
		return 0, err
	}
	key, ok := lookupKey(m.tables, node)
	if !ok {
		return 0, nil
	}
	if dims == nil {
		return len(m.adj[key]), nil
	}
	count := 0
	for nk := range m.adj[key] {
		if matchDims(keyCoord(m.tables, nk), dims) {
			count++
		}
	}

	return count, nil
}

// Strength sums the weights of the links from node to its neighbors
// matching dims.
func (m *Multilayer) Strength(node Coordinate, dims Dims) (Weight, error) {
	if err := m.checkQuery(node, dims); err != nil {
		return 0, err
	}
	key, ok := lookupKey(m.tables, node)
	if !ok {
		return 0, nil
	}
	var sum Weight
	for nk, w := range m.adj[key] {
		if dims == nil || matchDims(keyCoord(m.tables, nk), dims) {
			sum += w
		}
	}

	return sum, nil
}

// Neighbors yields the neighbor coordinates of node matching dims, in
// interned-id order. The sequence is finite and restartable; the store
// must not be mutated while it is being consumed.
func (m *Multilayer) Neighbors(node Coordinate, dims Dims) (iter.Seq[Coordinate], error) {
	if err := m.checkQuery(node, dims); err != nil {
		return nil, err
	}
	key, keyOK := lookupKey(m.tables, node)

	return func(yield func(Coordinate) bool) {
		if !keyOK {
			return
		}
		for _, nk := range sortedKeys(m.adj[key]) {
			c := keyCoord(m.tables, nk)
			if dims != nil && !matchDims(c, dims) {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}, nil
}

// Labels yields the labels registered in the given aspect, in
// registration order.
func (m *Multilayer) Labels(aspect int) (iter.Seq[Label], error) {
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

// Edges yields every stored (link, weight) pair. Rows and columns are
// visited in interned-id order. For undirected stores each edge is
// produced exactly once, oriented from its first-visited endpoint.
func (m *Multilayer) Edges() iter.Seq2[Link, Weight] {
	return func(yield func(Link, Weight) bool) {
		rows := sortedKeys(m.adj)
		visited := make(map[nodeKey]struct{}, len(rows))
		for _, u := range rows {
			uc := keyCoord(m.tables, u)
			for _, v := range sortedKeys(m.adj[u]) {
				if !m.cfg.directed {
					if _, seen := visited[v]; seen {
						continue
					}
				}
				link, _ := NodesToLink(uc, keyCoord(m.tables, v))
				if !yield(link, m.adj[u][v]) {
					return
				}
			}
			visited[u] = struct{}{}
		}
	}
}

// At dispatches a tensor-style index by arity; see Entry for the contract.
func (m *Multilayer) At(ix ...Label) (Entry, error) {
	return dispatchIndex(m, ix)
}

// SetAt writes a weight through a tensor-style index (full or short link
// form only; wildcards and node-arity tuples are not writable targets).
func (m *Multilayer) SetAt(w Weight, ix ...Label) error {
	return m.SetLink(Link(ix), w)
}

// sortedKeys returns the keys of a weight row (or the adjacency itself)
// in ascending key order, which is interned-id order.
func sortedKeys[V any](m map[nodeKey]V) []nodeKey {
	keys := make([]nodeKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	return keys
}
