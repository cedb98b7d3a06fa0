// SPDX-License-Identifier: MIT

package core

import "errors"

// Sentinel errors for the multilayer/multiplex stores. All of them are
// local validation failures: none are retried, none are fatal, and no
// operation that returns one has partial side effects.
var (
	// ErrInvalidIndexArity indicates an index, coordinate or link tuple whose
	// length is none of aspects+1, aspects+2, or 2*(aspects+1).
	ErrInvalidIndexArity = errors.New("core: invalid index arity")

	// ErrUnsupportedWildcard indicates a wildcard marker at a tuple position
	// with no defined semantics.
	ErrUnsupportedWildcard = errors.New("core: unsupported wildcard position")

	// ErrSelfLink indicates a link whose two halves are identical in every
	// aspect; such links cannot be written.
	ErrSelfLink = errors.New("core: self-links are not allowed")

	// ErrReadOnlyCoupling indicates an attempt to write an inter-layer link
	// in a multiplex store; coupling edges exist only analytically.
	ErrReadOnlyCoupling = errors.New("core: coupling edges are read-only")

	// ErrUnknownCoupling indicates a coupling policy that is neither
	// categorical, ordinal, nor a usable auxiliary network.
	ErrUnknownCoupling = errors.New("core: unknown coupling policy")

	// ErrArityMismatch indicates two node coordinates of differing length
	// passed where equal lengths are required.
	ErrArityMismatch = errors.New("core: node coordinate arity mismatch")

	// ErrBadAspect indicates an aspect index outside [0, aspects].
	ErrBadAspect = errors.New("core: aspect index out of range")

	// ErrOrdinalLayer indicates an ordinal coupling evaluated over layer
	// labels that are not Go ints; ordinal adjacency is |s-r| == 1 and is
	// only defined for integer layers.
	ErrOrdinalLayer = errors.New("core: ordinal coupling requires int layer labels")
)
