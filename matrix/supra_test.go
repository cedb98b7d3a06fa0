// SPDX-License-Identifier: MIT

// Tests for the supra-adjacency export and the shared supernode order.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/mlnet/core"
	"github.com/katalvlaran/mlnet/matrix"
	"github.com/stretchr/testify/require"
)

// multiplexFixture builds the two-node, two-layer network used across the
// exporter tests: one intra-layer edge on x and categorical coupling 2.
// Its layer-major supernode order is (a,x), (b,x), (a,y), (b,y).
func multiplexFixture(t *testing.T) *core.Multiplex {
	t.Helper()
	m, err := core.NewMultiplex([]core.Coupling{core.Categorical{W: 2.0}})
	require.NoError(t, err)
	require.NoError(t, m.AddNode("y", 1))
	require.NoError(t, m.SetLink(core.Link{"a", "b", "x", "x"}, 1))

	return m
}

// requireMatrix asserts a Dense equals the expected row-major values.
func requireMatrix(t *testing.T, m *matrix.Dense, want [][]float64) {
	t.Helper()
	require.Equal(t, len(want), m.Rows())
	require.Equal(t, len(want[0]), m.Cols())
	for i := range want {
		for j := range want[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.Equal(t, want[i][j], v, "cell (%d,%d)", i, j)
		}
	}
}

// TestSupraFlatGraph checks the 0-aspect export: symmetric off-diagonal
// weights, forced zero diagonal, label-sorted order.
func TestSupraFlatGraph(t *testing.T) {
	net := core.New(0)
	require.NoError(t, net.SetLink(core.Link{"b", "a"}, 1.5)) // registers b before a

	m, nodes, err := matrix.Supra(net)
	require.NoError(t, err)
	require.Equal(t, []core.Coordinate{{"a"}, {"b"}}, nodes) // sorted, not registration order
	requireMatrix(t, m, [][]float64{
		{0, 1.5},
		{1.5, 0},
	})
}

// TestSupraMultiplex checks the block structure: diagonal blocks hold the
// intra-layer weights, off-diagonal blocks the coupling weights.
func TestSupraMultiplex(t *testing.T) {
	net := multiplexFixture(t)

	m, nodes, err := matrix.Supra(net)
	require.NoError(t, err)
	require.Equal(t, []core.Coordinate{
		{"a", "x"}, {"b", "x"}, {"a", "y"}, {"b", "y"},
	}, nodes) // layer-major: elementary id varies fastest
	requireMatrix(t, m, [][]float64{
		{0, 1, 2, 0},
		{1, 0, 0, 2},
		{2, 0, 0, 0},
		{0, 2, 0, 0},
	})
}

// TestSupraWithoutCouplings checks that the option suppresses every
// cross-layer cell.
func TestSupraWithoutCouplings(t *testing.T) {
	net := multiplexFixture(t)

	m, _, err := matrix.Supra(net, matrix.WithoutCouplings())
	require.NoError(t, err)
	requireMatrix(t, m, [][]float64{
		{0, 1, 0, 0},
		{1, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
}

// TestSupraErrors checks the nil and empty guards.
func TestSupraErrors(t *testing.T) {
	_, _, err := matrix.Supra(nil)
	require.ErrorIs(t, err, matrix.ErrNilNetwork)

	_, _, err = matrix.Supra(core.New(0))
	require.ErrorIs(t, err, matrix.ErrEmptyNetwork)

	// Registered elementary ids but an empty layer aspect: no supernodes.
	layered := core.New(1)
	require.NoError(t, layered.AddNode("a", 0))
	_, _, err = matrix.Supra(layered)
	require.ErrorIs(t, err, matrix.ErrEmptyNetwork)
}
