// Package mlnet is an in-memory store for multilayer and multiplex
// networks — graphs whose nodes live in an arbitrary number of layering
// dimensions ("aspects") rather than a single flat vertex set.
//
// 🚀 What is mlnet?
//
//	A small, deterministic, dependency-light library that brings together:
//		• core primitives: tensor-style addressing, node coordinates & links
//		• a general multilayer store: any edge between any pair of coordinates
//		• a multiplex store: intra-layer graphs plus analytic coupling edges
//		  (categorical, ordinal, or driven by an auxiliary network)
//		• partial interconnection: nodes need not exist in every layer
//		• matrix views: supra-adjacency export, flattened text matrices and a
//		  modularity-adjusted edge view
//
// ✨ Why choose mlnet?
//
//   - Minimal API with clear, intuitive naming
//   - Deterministic iteration orders, documented per method
//   - Pure Go — no cgo, no hidden deps
//   - Coupling edges are computed on demand, never materialized
//
// Everything is organized under two subpackages:
//
//	core/   — coordinates, links, the Multilayer and Multiplex stores,
//	          coupling policies and node views
//	matrix/ — supra-adjacency matrices, flattened exports and the
//	          modularity view, built strictly on core's public surface
//
// Quick example (one aspect, two layers coupled categorically):
//
//	net, _ := core.NewMultiplex([]core.Coupling{core.Categorical{W: 1}})
//	net.AddNode("n", 0)
//	net.AddNode("x", 1)
//	net.AddNode("y", 1)
//	_ = net.SetLink(core.Link{"n", "m", "x", "x"}, 2) // intra-layer edge
//	w, _ := net.GetLink(core.Link{"n", "n", "x", "y"})
//	// w == 1: the coupling edge between n's replicas in layers x and y
//
// The stores are single-threaded by design: they are data structures, not
// services. Wrap them in your own locking if you share them across
// goroutines.
package mlnet
