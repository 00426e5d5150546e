//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package ring

import (
	"fmt"
	"math/big"
)

// Participant contains the public information of a participant.
type Participant struct {
	Index  int
	Label  string
	Public *big.Int
}

// Result contains the public values and chain keys of a key
// agreement. It never contains the participants' secrets.
type Result struct {
	P            *big.Int
	Alpha        *big.Int
	Participants []Participant
	// ChainKeys are in derivation order: by round and within a round
	// by head participant.
	ChainKeys []ChainKey
}

func newResult(p, alpha *big.Int, n int) *Result {
	result := &Result{
		P:            new(big.Int).Set(p),
		Alpha:        new(big.Int).Set(alpha),
		Participants: make([]Participant, n),
	}
	for i := 0; i < n; i++ {
		result.Participants[i] = Participant{
			Index: i,
			Label: Label(i),
		}
	}
	return result
}

// PublicValues returns the participants' public values keyed by
// label.
func (r *Result) PublicValues() map[string]*big.Int {
	m := make(map[string]*big.Int)
	for _, p := range r.Participants {
		m[p.Label] = p.Public
	}
	return m
}

// ChainKeyMap returns the chain key values keyed by label sequence.
func (r *Result) ChainKeyMap() map[string]*big.Int {
	m := make(map[string]*big.Int)
	for _, ck := range r.ChainKeys {
		m[ck.Key] = ck.Value
	}
	return m
}

// FullRing returns the chain keys that cover all participants, one
// for each rotation of the ring.
func (r *Result) FullRing() []ChainKey {
	var result []ChainKey
	for _, ck := range r.ChainKeys {
		if len(ck.Arc) == len(r.Participants) {
			result = append(result, ck)
		}
	}
	return result
}

// SharedSecret returns the shared secret. All full ring chain keys
// are equal and the last one in derivation order is returned. The
// function returns nil if the ring was not closed.
func (r *Result) SharedSecret() *big.Int {
	full := r.FullRing()
	if len(full) == 0 {
		return nil
	}
	return full[len(full)-1].Value
}

// Rounds returns the chain keys grouped by derivation round.
func (r *Result) Rounds() [][]ChainKey {
	var result [][]ChainKey
	for _, ck := range r.ChainKeys {
		for len(result) <= ck.Round {
			result = append(result, nil)
		}
		result[ck.Round] = append(result[ck.Round], ck)
	}
	return result
}

// Verify checks that all chain keys covering the same participants
// have the same value and that the ring is closed.
func (r *Result) Verify() error {
	values := make(map[string]ChainKey)
	for _, ck := range r.ChainKeys {
		if len(ck.Arc) < 2 {
			return fmt.Errorf("ring: single participant entry %s", ck.Key)
		}
		set := ck.Arc.SetKey()
		o, ok := values[set]
		if !ok {
			values[set] = ck
			continue
		}
		if o.Value.Cmp(ck.Value) != 0 {
			return fmt.Errorf("ring: chain keys %s=%v and %s=%v differ",
				o.Key, o.Value, ck.Key, ck.Value)
		}
	}
	if r.SharedSecret() == nil {
		return fmt.Errorf("ring: no shared secret")
	}
	return nil
}
