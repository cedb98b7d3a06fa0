// SPDX-License-Identifier: MIT

// File: coupling.go
// Role: The per-aspect coupling policies of a multiplex store, as a sealed
//       tagged union. A policy defines every inter-layer edge of its
//       aspect analytically; nothing is ever materialized.

package core

// Coupling is the policy deciding the inter-layer edges of one aspect of
// a Multiplex. Implementations are sealed to the three variants below;
// every dispatch site switches exhaustively and reports
// ErrUnknownCoupling for anything else.
type Coupling interface {
	couplingPolicy()
}

// Categorical couples every pair of a node's replicas within the aspect
// with weight W: layers form an unordered category set.
type Categorical struct {
	W Weight
}

func (Categorical) couplingPolicy() {}

// Ordinal couples only replicas on consecutive integer layers
// (|s-r| == 1) with weight W. Layer labels of the coupled aspect must be
// Go ints.
type Ordinal struct {
	W Weight
}

func (Ordinal) couplingPolicy() {}

// AuxiliaryNetwork delegates the coupling to a 0-aspect network over the
// aspect's layer labels: the coupling weight between layers s and r is
// Net's edge weight (s, r), and coupling degree/strength of a layer are
// Net's degree/strength of that label.
type AuxiliaryNetwork struct {
	Net *Multilayer
}

func (AuxiliaryNetwork) couplingPolicy() {}

// validateCoupling rejects policies no dispatch site could serve.
func validateCoupling(c Coupling) error {
	switch p := c.(type) {
	case Categorical, Ordinal:
		return nil
	case AuxiliaryNetwork:
		if p.Net == nil || p.Net.Aspects() != 0 {
			return ErrUnknownCoupling
		}

		return nil
	default:
		return ErrUnknownCoupling
	}
}
