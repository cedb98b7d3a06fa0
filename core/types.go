// SPDX-License-Identifier: MIT

// File: types.go
// Role: Public vocabulary of the package — labels, coordinates, links,
//       the wildcard marker, construction options and the Network contract.

package core

import "iter"

// Weight is the value attached to an edge. One value per store is
// designated the "no edge" sentinel (default 0): writing it deletes the
// link and reading an absent link returns it.
type Weight = float64

// Label identifies an elementary node (aspect 0) or a layer (aspects ≥ 1).
// Labels must be comparable Go values; they are used as map keys. Ordinal
// couplings additionally require int labels for the coupled aspect.
type Label = any

// Coordinate addresses one node: (elementary id, layer_1, …, layer_d) for a
// store with d aspects. Its length is always aspects+1.
type Coordinate []Label

// Link addresses one edge between two coordinates:
// (i, j, s_1, r_1, …, s_d, r_d), length 2*(aspects+1). The short form
// (i, j, s_1, …, s_d), length aspects+2, means s_k == r_k for every k.
type Link []Label

// Dims restricts a degree, strength or neighbor query. A nil Dims selects
// everything. A non-nil Dims must have length aspects+1; positions holding
// Any are unconstrained, all other positions are fixed to the given label.
type Dims []Label

// wildcard is the private type behind Any so that no user label can
// collide with the marker.
type wildcard struct{}

// Any is the wildcard marker used in index tuples and Dims filters,
// meaning "vary this position".
var Any Label = wildcard{}

// isWild reports whether l is the wildcard marker.
func isWild(l Label) bool {
	_, ok := l.(wildcard)
	return ok
}

// Network is the read/write contract shared by Multilayer and Multiplex.
// External consumers (matrix exporters, views) interact with a store
// exclusively through this surface.
type Network interface {
	// Aspects returns the number of layering dimensions d (fixed at
	// construction); coordinates have length d+1.
	Aspects() int

	// NoEdge returns the store's no-edge sentinel weight.
	NoEdge() Weight

	// Directed reports whether edges are one-way.
	Directed() bool

	// AddNode registers label in the given aspect. Idempotent.
	AddNode(label Label, aspect int) error

	// GetLink resolves a full or short link to its weight; absent links
	// yield the no-edge sentinel.
	GetLink(link Link) (Weight, error)

	// SetLink writes a full or short link. Writing the no-edge sentinel
	// deletes the link.
	SetLink(link Link, w Weight) error

	// Degree counts the neighbors of node selected by dims.
	Degree(node Coordinate, dims Dims) (int, error)

	// Strength sums the weights of the edges from node selected by dims.
	Strength(node Coordinate, dims Dims) (Weight, error)

	// Neighbors returns a lazy, finite, restartable sequence of the
	// neighbor coordinates of node selected by dims.
	Neighbors(node Coordinate, dims Dims) (iter.Seq[Coordinate], error)

	// Labels returns a lazy sequence over the labels registered in the
	// given aspect, in registration order.
	Labels(aspect int) (iter.Seq[Label], error)

	// Edges returns a lazy sequence of (link, weight) pairs. For an
	// undirected store each edge is produced exactly once.
	Edges() iter.Seq2[Link, Weight]

	// At dispatches a tensor-style index tuple by arity; see Entry.
	At(ix ...Label) (Entry, error)
}

// config carries the construction-time flags shared by both stores.
// Immutable once a store is built.
type config struct {
	noEdge              Weight
	directed            bool
	fullyInterconnected bool
}

func defaultConfig() config {
	return config{noEdge: 0, directed: false, fullyInterconnected: true}
}

// Option configures a store before creation.
type Option func(*config)

// WithDirected sets edge directedness (default false: undirected, every
// write mirrors the reverse link).
func WithDirected(directed bool) Option {
	return func(c *config) { c.directed = directed }
}

// WithNoEdge designates w as the no-edge sentinel (default 0).
func WithNoEdge(w Weight) Option {
	return func(c *config) { c.noEdge = w }
}

// WithPartialInterconnection marks the network as not fully
// interconnected: elementary nodes exist only in the layer combinations
// they were explicitly registered or linked in, and all coupling
// computations consult that registration. Only meaningful for Multiplex.
func WithPartialInterconnection() Option {
	return func(c *config) { c.fullyInterconnected = false }
}
