// SPDX-License-Identifier: MIT

// Package matrix provides exporters and derived views over the core
// multilayer stores, built strictly on top of core's public read surface:
//
//   - Supra: the dense supra-adjacency matrix of a network, with or
//     without its coupling entries.
//   - WriteFlattened: a plain-text matrix dump, one row per supernode.
//   - ModularityView: an edge view with intra-layer weights adjusted by
//     the configuration-model null term w - γ·k_i·k_j/(2m_s).
//
// All exports use the same deterministic supernode order: coordinates
// sorted layer-major (the last aspect most significant, the elementary id
// least), with labels ordered by type rank and value so that mixed label
// types still order reproducibly.
package matrix
