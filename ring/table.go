//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package ring

import (
	"math/big"
)

// ChainKey is one derived arc value.
type ChainKey struct {
	// Key is the label sequence of the arc in construction order.
	Key string
	Arc Arc
	// Round is the derivation round that created the value. The
	// single participant scaffolding entries have round -1.
	Round int
	Value *big.Int
}

// table holds chain keys in insertion order. Entries are never
// overwritten. The table is indexed by key and by member set so
// that an arc can be found regardless of how it was constructed.
type table struct {
	entries []ChainKey
	byKey   map[string]int
	bySet   map[string]int
	byLen   map[int]int
}

func newTable() *table {
	return &table{
		byKey: make(map[string]int),
		bySet: make(map[string]int),
		byLen: make(map[int]int),
	}
}

// add adds the chain key to the table. It returns false if the key
// already exists.
func (t *table) add(ck ChainKey) bool {
	if _, ok := t.byKey[ck.Key]; ok {
		return false
	}
	idx := len(t.entries)
	t.entries = append(t.entries, ck)
	t.byKey[ck.Key] = idx

	set := ck.Arc.SetKey()
	if _, ok := t.bySet[set]; !ok {
		t.bySet[set] = idx
	}
	t.byLen[len(ck.Arc)]++
	return true
}

// lookupSet returns the first entry covering the same participants
// as arc.
func (t *table) lookupSet(arc Arc) (ChainKey, bool) {
	idx, ok := t.bySet[arc.SetKey()]
	if !ok {
		return ChainKey{}, false
	}
	return t.entries[idx], true
}

// count returns the number of arcs of the given length.
func (t *table) count(length int) int {
	return t.byLen[length]
}

// purge removes all arcs of the given length and reindexes the
// table.
func (t *table) purge(length int) {
	entries := t.entries
	t.entries = nil
	t.byKey = make(map[string]int)
	t.bySet = make(map[string]int)
	t.byLen = make(map[int]int)

	for _, ck := range entries {
		if len(ck.Arc) != length {
			t.add(ck)
		}
	}
}
