// SPDX-License-Identifier: MIT

// File: intern.go
// Role: Label interning. Each aspect keeps a bidirectional label↔id table;
//       coordinates become fixed-width byte strings of interned ids, which
//       makes them cheap map keys irrespective of the label types used.

package core

import "encoding/binary"

// labelTable is the per-aspect registry ("slice" of the network). Labels
// are interned in registration order and never removed, so ids are stable
// for the lifetime of the store and id order doubles as the deterministic
// iteration order.
type labelTable struct {
	ids    map[Label]int32
	labels []Label
}

func newLabelTable() *labelTable {
	return &labelTable{ids: make(map[Label]int32)}
}

// intern returns the id of l, registering it first if unseen.
func (t *labelTable) intern(l Label) int32 {
	if id, ok := t.ids[l]; ok {
		return id
	}
	id := int32(len(t.labels))
	t.ids[l] = id
	t.labels = append(t.labels, l)

	return id
}

// id looks l up without registering it.
func (t *labelTable) id(l Label) (int32, bool) {
	id, ok := t.ids[l]
	return id, ok
}

// label is the inverse of id; the caller guarantees id is in range.
func (t *labelTable) label(id int32) Label {
	return t.labels[id]
}

// size returns the number of registered labels.
func (t *labelTable) size() int {
	return len(t.labels)
}

// nodeKey is a coordinate (or layer combination) encoded as 4 bytes per
// interned id, big-endian. Keys of equal arity compare lexicographically
// in id order, so sorting keys sorts coordinates by registration order.
type nodeKey string

const keyWidth = 4

// encodeKey packs interned ids into a nodeKey.
func encodeKey(ids []int32) nodeKey {
	buf := make([]byte, keyWidth*len(ids))
	for i, id := range ids {
		binary.BigEndian.PutUint32(buf[i*keyWidth:], uint32(id))
	}

	return nodeKey(buf)
}

// decodeKey unpacks a nodeKey back into interned ids.
func decodeKey(k nodeKey) []int32 {
	ids := make([]int32, len(k)/keyWidth)
	for i := range ids {
		ids[i] = int32(binary.BigEndian.Uint32([]byte(k[i*keyWidth:])))
	}

	return ids
}

// coordKey encodes a coordinate against tables, registering every
// component. tables[a] is the registry of aspect a.
func coordKey(tables []*labelTable, c Coordinate) nodeKey {
	ids := make([]int32, len(c))
	for a, l := range c {
		ids[a] = tables[a].intern(l)
	}

	return encodeKey(ids)
}

// lookupKey encodes a coordinate without registering anything; ok is
// false when any component is unknown to its aspect.
func lookupKey(tables []*labelTable, c Coordinate) (nodeKey, bool) {
	ids := make([]int32, len(c))
	for a, l := range c {
		id, ok := tables[a].id(l)
		if !ok {
			return "", false
		}
		ids[a] = id
	}

	return encodeKey(ids), true
}

// keyCoord decodes a nodeKey back into labels via tables.
func keyCoord(tables []*labelTable, k nodeKey) Coordinate {
	ids := decodeKey(k)
	c := make(Coordinate, len(ids))
	for a, id := range ids {
		c[a] = tables[a].label(id)
	}

	return c
}
