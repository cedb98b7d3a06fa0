// SPDX-License-Identifier: MIT

// File: modularity.go
// Role: Modularity-adjusted edge view. Intra-layer weights are shifted by
//       the configuration-model null term γ·k_i·k_j/(2·m_s), where k are
//       the endpoints' intra-layer strengths in their shared layer
//       combination s and m_s is that combination's total intra-layer
//       strength; inter-layer weights pass through unchanged.

package matrix

import "github.com/katalvlaran/mlnet/core"

// comboStrength caches one layer combination and its m_s value.
type comboStrength struct {
	layers []core.Label
	m      core.Weight
}

// Modularity is a read-only view over a network whose GetLink answers are
// modularity-adjusted. The per-combination strengths and the total weight
// are precomputed at construction; mutating the underlying network
// afterwards invalidates the view.
type Modularity struct {
	net    core.Network
	gamma  float64
	combos []comboStrength
	u      core.Weight // total weight over all supernode pairs
}

// ModularityView precomputes the null-model terms for net.
// Fails with ErrNilNetwork, or with ErrEmptyNetwork when the network
// carries no weight at all (the adjustment would divide by zero).
// Complexity: O(n²) GetLink calls for n supernodes, plus one strength
// query per (elementary node, layer combination).
func ModularityView(net core.Network, gamma float64) (*Modularity, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	v := &Modularity{net: net, gamma: gamma}

	elems, err := sortedLabels(net, 0)
	if err != nil {
		return nil, err
	}
	combos, err := layerCombos(net)
	if err != nil {
		return nil, err
	}
	for _, layers := range combos {
		var m core.Weight
		for _, elem := range elems {
			coord := append(core.Coordinate{elem}, layers...)
			s, err := net.Strength(coord, intraDims(layers))
			if err != nil {
				return nil, err
			}
			m += s
		}
		v.combos = append(v.combos, comboStrength{layers: layers, m: m / 2})
	}

	nodes, err := supernodes(net)
	if err != nil {
		return nil, err
	}
	for _, ni := range nodes {
		for _, nj := range nodes {
			link, err := core.NodesToLink(ni, nj)
			if err != nil {
				return nil, err
			}
			w, err := net.GetLink(link)
			if err != nil {
				return nil, err
			}
			v.u += w
		}
	}
	if v.u == 0 {
		return nil, ErrEmptyNetwork
	}

	return v, nil
}

// Gamma returns the view's resolution parameter.
func (v *Modularity) Gamma() float64 { return v.gamma }

// TotalWeight returns the precomputed total weight u.
func (v *Modularity) TotalWeight() core.Weight { return v.u }

// GetLink returns the adjusted weight of a full or short link: for an
// intra-layer link, w - γ·k_i·k_j/(2·m_s); for anything else, the raw
// weight from the underlying network.
func (v *Modularity) GetLink(link core.Link) (core.Weight, error) {
	w, err := v.net.GetLink(link)
	if err != nil {
		return w, err
	}
	full := link
	if len(link) == v.net.Aspects()+2 && len(link) != 2*(v.net.Aspects()+1) {
		if full, err = core.ShortLinkToLink(link); err != nil {
			return w, err
		}
	}
	n1, n2, err := core.LinkToNodes(full)
	if err != nil {
		return w, err
	}
	if !sameLayers(n1, n2) {
		return w, nil
	}
	layers := n1[1:]
	ms, ok := v.comboWeight(layers)
	if !ok || ms == 0 {
		return w, nil
	}
	ki, err := v.net.Strength(n1, intraDims(layers))
	if err != nil {
		return w, err
	}
	kj, err := v.net.Strength(n2, intraDims(layers))
	if err != nil {
		return w, err
	}

	return w - v.gamma*ki*kj/(2*ms), nil
}

// comboWeight finds the cached m_s of a layer combination.
func (v *Modularity) comboWeight(layers []core.Label) (core.Weight, bool) {
	for _, c := range v.combos {
		if layersEqual(c.layers, layers) {
			return c.m, true
		}
	}

	return 0, false
}

func layersEqual(a, b []core.Label) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// intraDims builds the filter selecting only intra-layer edges of the
// given combination: the elementary position varies, every layer is fixed.
func intraDims(layers []core.Label) core.Dims {
	dims := make(core.Dims, 0, len(layers)+1)
	dims = append(dims, core.Any)
	dims = append(dims, layers...)

	return dims
}

// layerCombos enumerates the combinations of the layer aspects (1..d) in
// sorted order; a 0-aspect network has exactly the empty combination.
func layerCombos(net core.Network) ([][]core.Label, error) {
	d := net.Aspects()
	slices := make([][]core.Label, d)
	for a := 1; a <= d; a++ {
		labels, err := sortedLabels(net, a)
		if err != nil {
			return nil, err
		}
		if len(labels) == 0 {
			return nil, nil
		}
		slices[a-1] = labels
	}
	out := [][]core.Label{{}}
	for _, labels := range slices {
		next := make([][]core.Label, 0, len(out)*len(labels))
		for _, prefix := range out {
			for _, l := range labels {
				combo := make([]core.Label, len(prefix)+1)
				copy(combo, prefix)
				combo[len(prefix)] = l
				next = append(next, combo)
			}
		}
		out = next
	}

	return out, nil
}
