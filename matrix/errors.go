// SPDX-License-Identifier: MIT

package matrix

import "errors"

// Sentinel errors for matrix exports. Callers match with errors.Is.
var (
	// ErrNilNetwork indicates a nil network was passed to an exporter.
	ErrNilNetwork = errors.New("matrix: nil network")

	// ErrInvalidDimensions indicates a requested matrix shape with a
	// non-positive row or column count.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrIndexOutOfBounds indicates an At/Set index outside the matrix.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrEmptyNetwork indicates an export that needs at least one
	// supernode (or one edge, for the modularity view) got none.
	ErrEmptyNetwork = errors.New("matrix: network is empty")
)
