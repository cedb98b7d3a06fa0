// SPDX-License-Identifier: MIT

// Package matrix_test verifies the dense buffer and the exporters built
// on top of it.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/mlnet/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseValidation checks the dimension guard.
func TestNewDenseValidation(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(3, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
}

// TestDenseAtSetBounds checks element access and the bounds sentinel.
func TestDenseAtSetBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Zero(t, v) // zero-initialized

	require.NoError(t, m.Set(1, 0, 4.5))
	v, err = m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 4.5, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	_, err = m.At(0, -1)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	require.ErrorIs(t, m.Set(0, 2, 1), matrix.ErrIndexOutOfBounds)
}

// TestDenseClone checks that clones share no storage.
func TestDenseClone(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1))

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 9))

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v) // original untouched
}
