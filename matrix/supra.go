// SPDX-License-Identifier: MIT

// File: supra.go
// Role: Supra-adjacency export — the network flattened into one square
//       matrix over its supernodes, with coupling entries included or
//       suppressed.

package matrix

import "github.com/katalvlaran/mlnet/core"

// supraConfig carries the export flags.
type supraConfig struct {
	includeCouplings bool
}

// SupraOption configures the supra-adjacency export.
type SupraOption func(*supraConfig)

// WithoutCouplings keeps only intra-layer entries: cells whose row and
// column supernodes differ in any layer component stay zero.
func WithoutCouplings() SupraOption {
	return func(c *supraConfig) { c.includeCouplings = false }
}

// Supra builds the dense supra-adjacency matrix of net and returns it
// together with the supernode order indexing its rows and columns (see
// package docs for the order). For a 0-aspect network the diagonal is
// forced to zero; for layered networks diagonal blocks hold the
// intra-layer weights and off-diagonal blocks the coupling weights.
// Fails with ErrNilNetwork or, for a network with no supernodes,
// ErrEmptyNetwork.
// Complexity: O(n²) GetLink calls for n supernodes.
func Supra(net core.Network, opts ...SupraOption) (*Dense, []core.Coordinate, error) {
	if net == nil {
		return nil, nil, ErrNilNetwork
	}
	cfg := supraConfig{includeCouplings: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	nodes, err := supernodes(net)
	if err != nil {
		return nil, nil, err
	}
	if len(nodes) == 0 {
		return nil, nil, ErrEmptyNetwork
	}
	m, err := NewDense(len(nodes), len(nodes))
	if err != nil {
		return nil, nil, err
	}
	aspectless := net.Aspects() == 0
	for i, ni := range nodes {
		for j, nj := range nodes {
			if aspectless && i == j {
				continue // a flat graph's supra matrix keeps a zero diagonal
			}
			if !aspectless && !cfg.includeCouplings && !sameLayers(ni, nj) {
				continue
			}
			link, err := core.NodesToLink(ni, nj)
			if err != nil {
				return nil, nil, err
			}
			w, err := net.GetLink(link)
			if err != nil {
				return nil, nil, err
			}
			if err := m.Set(i, j, w); err != nil {
				return nil, nil, err
			}
		}
	}

	return m, nodes, nil
}
