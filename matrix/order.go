// SPDX-License-Identifier: MIT

// File: order.go
// Role: The deterministic supernode order shared by every exporter:
//       per-aspect labels sorted by (type rank, value), coordinates
//       enumerated layer-major — last aspect most significant, elementary
//       id varying fastest.

package matrix

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/mlnet/core"
)

// labelRank buckets labels by type so mixed-type slices still order
// totally: ints, then floats, then strings, then everything else by its
// fmt representation.
func labelRank(l core.Label) int {
	switch l.(type) {
	case int:
		return 0
	case float64:
		return 1
	case string:
		return 2
	default:
		return 3
	}
}

// compareLabels orders two labels; negative means a < b.
func compareLabels(a, b core.Label) int {
	ra, rb := labelRank(a), labelRank(b)
	if ra != rb {
		return ra - rb
	}
	switch av := a.(type) {
	case int:
		return av - b.(int)
	case float64:
		bv := b.(float64)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		default:
			return 0
		}
	case string:
		bv := b.(string)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		default:
			return 0
		}
	default:
		as, bs := fmt.Sprint(a), fmt.Sprint(b)
		switch {
		case as < bs:
			return -1
		case as > bs:
			return 1
		default:
			return 0
		}
	}
}

// sortedLabels collects and sorts the labels of one aspect.
func sortedLabels(net core.Network, aspect int) ([]core.Label, error) {
	seq, err := net.Labels(aspect)
	if err != nil {
		return nil, err
	}
	var out []core.Label
	for l := range seq {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return compareLabels(out[i], out[j]) < 0 })

	return out, nil
}

// supernodes enumerates every coordinate of the network in the layer-major
// export order. Empty aspects yield an empty enumeration.
func supernodes(net core.Network) ([]core.Coordinate, error) {
	d1 := net.Aspects() + 1
	slices := make([][]core.Label, d1)
	total := 1
	for a := 0; a < d1; a++ {
		labels, err := sortedLabels(net, a)
		if err != nil {
			return nil, err
		}
		slices[a] = labels
		total *= len(labels)
	}
	if total == 0 {
		return nil, nil
	}
	out := make([]core.Coordinate, 0, total)
	coord := make(core.Coordinate, d1)
	// Odometer over the aspects, aspect 0 as the fastest digit.
	idx := make([]int, d1)
	for {
		for a := 0; a < d1; a++ {
			coord[a] = slices[a][idx[a]]
		}
		c := make(core.Coordinate, d1)
		copy(c, coord)
		out = append(out, c)
		a := 0
		for ; a < d1; a++ {
			idx[a]++
			if idx[a] < len(slices[a]) {
				break
			}
			idx[a] = 0
		}
		if a == d1 {
			break
		}
	}

	return out, nil
}

// sameLayers reports whether two coordinates share every layer component.
func sameLayers(a, b core.Coordinate) bool {
	for k := 1; k < len(a); k++ {
		if a[k] != b[k] {
			return false
		}
	}

	return true
}
