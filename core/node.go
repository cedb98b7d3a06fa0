// SPDX-License-Identifier: MIT

// File: node.go
// Role: NodeView — a lightweight scoped handle over one coordinate of a
//       store, optionally bound to a Dims filter. A pure forwarding
//       façade: it holds no state beyond (store, coordinate, filter) and
//       never mutates anything itself.

package core

import "iter"

// NodeView addresses one node of a Network and forwards degree, strength,
// neighbor and re-indexing operations to it. Views are created by At
// (node-arity tuples, or wildcard-bearing link tuples, which bind a Dims
// filter) and by Scoped.
type NodeView struct {
	net   Network
	coord Coordinate
	dims  Dims // bound filter; nil when the view is unscoped
}

// Coordinate returns a copy of the view's node coordinate.
func (v *NodeView) Coordinate() Coordinate {
	c := make(Coordinate, len(v.coord))
	copy(c, v.coord)

	return c
}

// Scope returns a copy of the bound Dims filter, or nil for an unscoped
// view.
func (v *NodeView) Scope() Dims {
	if v.dims == nil {
		return nil
	}
	d := make(Dims, len(v.dims))
	copy(d, v.dims)

	return d
}

// At re-indexes relative to this node: other is the counterpart
// coordinate (length aspects+1), and the composed link is dispatched
// through the store's At. Wildcards in other scope the result, exactly as
// with a direct full-link index.
func (v *NodeView) At(other ...Label) (Entry, error) {
	link, err := NodesToLink(v.coord, other)
	if err != nil {
		return Entry{}, err
	}

	return v.net.At(link...)
}

// Get returns the weight of the edge from this node to other.
func (v *NodeView) Get(other ...Label) (Weight, error) {
	link, err := NodesToLink(v.coord, other)
	if err != nil {
		return v.net.NoEdge(), err
	}

	return v.net.GetLink(link)
}

// Set writes the weight of the edge from this node to other.
func (v *NodeView) Set(w Weight, other ...Label) error {
	link, err := NodesToLink(v.coord, other)
	if err != nil {
		return err
	}

	return v.net.SetLink(link, w)
}

// Degree forwards to the store. With no arguments the view's bound Dims
// filter applies; an explicit filter must have length aspects+1.
func (v *NodeView) Degree(dims ...Label) (int, error) {
	return v.net.Degree(v.coord, v.effective(dims))
}

// Strength forwards to the store, with the same filter rules as Degree.
func (v *NodeView) Strength(dims ...Label) (Weight, error) {
	return v.net.Strength(v.coord, v.effective(dims))
}

// Neighbors yields the node's neighbor coordinates under the bound Dims
// filter. For a 0-aspect store the coordinates have length 1.
func (v *NodeView) Neighbors() (iter.Seq[Coordinate], error) {
	return v.net.Neighbors(v.coord, v.dims)
}

// Scoped returns a new view over the same coordinate bound to the given
// filter (length aspects+1, Any = unconstrained).
func (v *NodeView) Scoped(dims ...Label) *NodeView {
	bound := make(Dims, len(dims))
	copy(bound, dims)

	return &NodeView{net: v.net, coord: v.coord, dims: bound}
}

// effective picks between an explicit filter and the bound one. Length
// validation is left to the store so that arity errors surface uniformly.
func (v *NodeView) effective(dims []Label) Dims {
	if len(dims) == 0 {
		return v.dims
	}

	return Dims(dims)
}
