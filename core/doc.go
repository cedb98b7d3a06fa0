// SPDX-License-Identifier: MIT

// Package core implements the multilayer- and multiplex-network stores.
//
// A network with d aspects addresses its nodes by coordinates of length
// d+1: (elementary id, layer_1, …, layer_d). Aspect 0 is the elementary
// node dimension; aspects 1..d are independent layering dimensions. An
// edge is addressed by a link of length 2(d+1):
//
//	(i, j, s_1, r_1, …, s_d, r_d)
//
// connecting the coordinates (i, s_1..s_d) and (j, r_1..r_d). The short
// form (i, j, s_1..s_d) denotes the intra-layer edge with s_k == r_k.
//
// Two stores are provided:
//
//   - Multilayer holds an explicit weight for any pair of coordinates,
//     with no structural restrictions beyond label registration.
//   - Multiplex stores only intra-layer edges (one aspect-0 store per
//     layer combination) and answers inter-layer queries analytically
//     from a per-aspect coupling policy. Coupling edges are never
//     materialized.
//
// Labels are arbitrary comparable Go values. Internally every label is
// interned to a small integer per aspect, so coordinates hash and compare
// in O(d) regardless of label type.
//
// Concurrency contract: all operations are synchronous and none are
// internally locked. The iterator-returning methods (Neighbors, Labels,
// Edges) produce finite, restartable sequences with one precondition:
// the store must not be mutated while an iteration is in progress.
// Violating that precondition is undefined behavior, as with classic
// iterator invalidation; it is documented here rather than defended
// against.
//
// Errors are package-level sentinels (see errors.go) matched with
// errors.Is. No operation leaves a store in an inconsistent state when it
// returns an error.
package core
