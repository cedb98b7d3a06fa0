// SPDX-License-Identifier: MIT

// File: dense.go
// Role: Row-major dense matrix with safe accessors. The public surface
//       returns errors instead of panicking; the flat buffer uses the
//       explicit index formula i*cols + j.

package matrix

// Dense is a concrete row-major float64 matrix.
type Dense struct {
	rows, cols int
	data       []float64 // len == rows*cols, offset = i*cols + j
}

// NewDense allocates a zero-initialized rows×cols matrix.
// Fails with ErrInvalidDimensions when either dimension is non-positive.
// Complexity: O(rows*cols).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the row count.
func (d *Dense) Rows() int { return d.rows }

// Cols returns the column count.
func (d *Dense) Cols() int { return d.cols }

// At returns the element at (i, j).
// Fails with ErrIndexOutOfBounds for indices outside the matrix.
func (d *Dense) At(i, j int) (float64, error) {
	if i < 0 || i >= d.rows || j < 0 || j >= d.cols {
		return 0, ErrIndexOutOfBounds
	}

	return d.data[i*d.cols+j], nil
}

// Set writes the element at (i, j).
// Fails with ErrIndexOutOfBounds for indices outside the matrix.
func (d *Dense) Set(i, j int, v float64) error {
	if i < 0 || i >= d.rows || j < 0 || j >= d.cols {
		return ErrIndexOutOfBounds
	}
	d.data[i*d.cols+j] = v

	return nil
}

// Clone returns a deep copy sharing no storage with the receiver.
func (d *Dense) Clone() *Dense {
	out := &Dense{rows: d.rows, cols: d.cols, data: make([]float64, len(d.data))}
	copy(out.data, d.data)

	return out
}
