// SPDX-License-Identifier: MIT

// Shared collection helpers for the core test suite.
package core_test

import (
	"iter"
	"testing"

	"github.com/katalvlaran/mlnet/core"
	"github.com/stretchr/testify/require"
)

// collectCoords drains a coordinate sequence into a slice.
func collectCoords(seq iter.Seq[core.Coordinate]) []core.Coordinate {
	var out []core.Coordinate
	for c := range seq {
		out = append(out, c)
	}

	return out
}

// collectLabels drains a label sequence into a slice.
func collectLabels(seq iter.Seq[core.Label]) []core.Label {
	var out []core.Label
	for l := range seq {
		out = append(out, l)
	}

	return out
}

// collectEdges drains the edge sequence into parallel link/weight slices.
func collectEdges(seq iter.Seq2[core.Link, core.Weight]) ([]core.Link, []core.Weight) {
	var links []core.Link
	var weights []core.Weight
	for l, w := range seq {
		links = append(links, l)
		weights = append(weights, w)
	}

	return links, weights
}

// neighbors collects a node's neighbors, failing the test on query errors.
func neighbors(t *testing.T, n core.Network, node core.Coordinate, dims core.Dims) []core.Coordinate {
	t.Helper()
	seq, err := n.Neighbors(node, dims)
	require.NoError(t, err)

	return collectCoords(seq)
}

// requireDegreeStrengthConsistent asserts the two aggregate queries agree
// with the neighbor enumeration they are defined over: degree equals the
// neighbor count and strength equals the sum of neighbor link weights.
func requireDegreeStrengthConsistent(t *testing.T, n core.Network, node core.Coordinate, dims core.Dims) {
	t.Helper()
	got := neighbors(t, n, node, dims)

	deg, err := n.Degree(node, dims)
	require.NoError(t, err)
	require.Equal(t, len(got), deg, "degree must equal the neighbor count")

	var sum core.Weight
	for _, nb := range got {
		link, err := core.NodesToLink(node, nb)
		require.NoError(t, err)
		w, err := n.GetLink(link)
		require.NoError(t, err)
		sum += w
	}
	str, err := n.Strength(node, dims)
	require.NoError(t, err)
	require.InDelta(t, sum, str, 1e-12, "strength must equal the neighbor weight sum")
}
