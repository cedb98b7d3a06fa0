// SPDX-License-Identifier: MIT

// Tests for the plain-text flattened matrix export.
package matrix_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/mlnet/core"
	"github.com/katalvlaran/mlnet/matrix"
	"github.com/stretchr/testify/require"
)

// TestWriteFlattenedFlatGraph checks the exact text form of a two-node
// graph, diagonal included.
func TestWriteFlattenedFlatGraph(t *testing.T) {
	net := core.New(0)
	require.NoError(t, net.SetLink(core.Link{"a", "b"}, 1.5))

	var buf bytes.Buffer
	require.NoError(t, matrix.WriteFlattened(net, &buf))
	require.Equal(t, "0 1.5\n1.5 0\n", buf.String())
}

// TestWriteFlattenedMultiplex checks that couplings land in the output
// and the rows follow the layer-major supernode order.
func TestWriteFlattenedMultiplex(t *testing.T) {
	net := multiplexFixture(t)

	var buf bytes.Buffer
	require.NoError(t, matrix.WriteFlattened(net, &buf))
	require.Equal(t,
		"0 1 2 0\n"+
			"1 0 0 2\n"+
			"2 0 0 0\n"+
			"0 2 0 0\n",
		buf.String())
}

// TestWriteFlattenedEmpty checks that a network without supernodes writes
// nothing and a nil network is rejected.
func TestWriteFlattenedEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, matrix.WriteFlattened(core.New(0), &buf))
	require.Zero(t, buf.Len())

	require.ErrorIs(t, matrix.WriteFlattened(nil, &buf), matrix.ErrNilNetwork)
}
