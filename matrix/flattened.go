// SPDX-License-Identifier: MIT

// File: flattened.go
// Role: Plain-text export — the full supernode×supernode weight matrix as
//       space-separated rows, one line per supernode, in the shared
//       layer-major order.

package matrix

import (
	"bufio"
	"io"
	"strconv"

	"github.com/katalvlaran/mlnet/core"
)

// WriteFlattened writes net's flattened weight matrix to w. Every cell is
// the GetLink weight between its row and column supernodes (couplings
// included); a network with no supernodes writes nothing. The writer is
// not closed.
// Complexity: O(n²) GetLink calls for n supernodes.
func WriteFlattened(net core.Network, w io.Writer) error {
	if net == nil {
		return ErrNilNetwork
	}
	nodes, err := supernodes(net)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	for _, ni := range nodes {
		for j, nj := range nodes {
			if j > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			link, err := core.NodesToLink(ni, nj)
			if err != nil {
				return err
			}
			weight, err := net.GetLink(link)
			if err != nil {
				return err
			}
			if _, err := bw.WriteString(strconv.FormatFloat(weight, 'g', -1, 64)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}
