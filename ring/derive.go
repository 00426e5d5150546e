//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package ring implements multi-party Diffie-Hellman key agreement
// for participants arranged in a ring. It derives the participants'
// public values and the chain keys of all arcs of the ring up to the
// shared secret.
package ring

import (
	"fmt"
	"math/big"

	"github.com/markkurossi/groupdh/env"
	"github.com/markkurossi/groupdh/mpint"
)

var (
	bigOne = big.NewInt(1)
	bigTwo = big.NewInt(2)
)

// Derive derives the public values and chain keys for the
// participants' secrets. The modulus p must be prime and the base
// alpha must not be larger than p. The config selects the primality
// test and it can be nil.
func Derive(config *env.Config, p, alpha *big.Int, secrets []*big.Int) (
	*Result, error) {

	err := validate(config, p, alpha, secrets)
	if err != nil {
		return nil, err
	}
	n := len(secrets)

	result := newResult(p, alpha, n)
	for i, x := range secrets {
		result.Participants[i].Public = mpint.ModPow(alpha, x, p)
	}

	// Seed the table with the single participant arcs. They hold the
	// private secrets and they are purged before returning.
	tbl := newTable()
	for i, x := range secrets {
		arc := NewArc(i, 1, n)
		tbl.add(ChainKey{
			Key:   arc.Label(),
			Arc:   arc,
			Round: -1,
			Value: new(big.Int).Set(x),
		})
	}

	// Round 0: adjacent pairs from the public values.
	for j := 0; j < n; j++ {
		arc := NewArc(j, 2, n)
		tbl.add(ChainKey{
			Key:   arc.Label(),
			Arc:   arc,
			Round: 0,
			Value: mpint.ModPow(result.Participants[j].Public,
				secrets[arc[1]], p),
		})
	}

	// Rounds 1...n-2: extend arcs by prepending a new head.
	for round := 1; round < n-1; round++ {
		length := round + 2
		for j := 0; j < n && tbl.count(length) < n; j++ {
			rest := NewArc((j+1)%n, length-1, n)
			prev, ok := tbl.lookupSet(rest)
			if !ok {
				continue
			}
			arc := NewArc(j, length, n)
			tbl.add(ChainKey{
				Key:   arc.Label(),
				Arc:   arc,
				Round: round,
				Value: mpint.ModPow(prev.Value, secrets[j], p),
			})
		}
	}
	tbl.purge(1)

	result.ChainKeys = tbl.entries

	return result, nil
}

func validate(config *env.Config, p, alpha *big.Int, secrets []*big.Int) error {
	if p == nil || p.Cmp(bigTwo) < 0 || !config.IsPrime(p) {
		return fmt.Errorf("%w: %v", ErrInvalidModulus, p)
	}
	if alpha == nil {
		return fmt.Errorf("%w: no base", ErrInvalidBase)
	}
	if alpha.Cmp(p) > 0 {
		return fmt.Errorf("%w: %v > %v", ErrInvalidBase, alpha, p)
	}
	if len(secrets) < 2 {
		return fmt.Errorf("%w: got %d", ErrInsufficientParticipants,
			len(secrets))
	}
	if len(secrets) > MaxParticipants {
		return fmt.Errorf("%w: %d > %d", ErrTooManyParticipants,
			len(secrets), MaxParticipants)
	}
	for i, x := range secrets {
		if x == nil || x.Sign() < 0 {
			return fmt.Errorf("%w: participant %s: %v",
				ErrInvalidSecret, Label(i), x)
		}
	}
	return nil
}
