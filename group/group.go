//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package group generates and checks Diffie-Hellman group
// parameters.
package group

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/markkurossi/groupdh/mpint"
)

// PrimalityRounds defines the number of Miller-Rabin rounds for
// generated primes.
const PrimalityRounds = 41

// MaxFactorBits is the largest modulus size that can be factored for
// the primitive root test.
const MaxFactorBits = 48

var (
	bigOne = big.NewInt(1)
	bigTwo = big.NewInt(2)

	// ErrTooLarge is returned when the modulus is too large for the
	// primitive root search.
	ErrTooLarge = errors.New("group: modulus too large")
)

// Group defines a cyclic group with a safe-prime modulus P=2Q+1 and a
// generator G of the order Q subgroup.
type Group struct {
	P *big.Int
	Q *big.Int
	G *big.Int
}

func (g *Group) String() string {
	return fmt.Sprintf("p=%v, α=%v", g.P, g.G)
}

// New generates a new group with a modulus of the argument size.
func New(random io.Reader, bits int) (*Group, error) {
	if bits < 4 {
		return nil, fmt.Errorf("group: invalid size %d", bits)
	}
	if random == nil {
		random = rand.Reader
	}
	for {
		q, err := rand.Prime(random, bits-1)
		if err != nil {
			return nil, err
		}
		p := new(big.Int).Lsh(q, 1)
		p.Add(p, bigOne)
		if !p.ProbablyPrime(PrimalityRounds) {
			continue
		}
		for {
			g, err := rand.Int(random, p)
			if err != nil {
				return nil, err
			}
			if g.Cmp(bigOne) <= 0 {
				continue
			}
			// Skip elements of order 2.
			if mpint.ModPow(g, bigTwo, p).Cmp(bigOne) == 0 {
				continue
			}
			if mpint.ModPow(g, q, p).Cmp(bigOne) == 0 {
				return &Group{
					P: p,
					Q: q,
					G: g,
				}, nil
			}
		}
	}
}

// Factors returns the distinct prime factors of n in ascending order.
func Factors(n *big.Int) ([]*big.Int, error) {
	if n.BitLen() > MaxFactorBits {
		return nil, fmt.Errorf("%w: %d bits", ErrTooLarge, n.BitLen())
	}
	var result []*big.Int

	v := n.Uint64()
	for f := uint64(2); f*f <= v; f++ {
		if v%f != 0 {
			continue
		}
		result = append(result, new(big.Int).SetUint64(f))
		for v%f == 0 {
			v /= f
		}
	}
	if v > 1 {
		result = append(result, new(big.Int).SetUint64(v))
	}
	return result, nil
}

// IsPrimitiveRoot tests if g generates the multiplicative group
// modulo the prime p.
func IsPrimitiveRoot(g, p *big.Int) (bool, error) {
	if p.Cmp(bigTwo) < 0 {
		return false, nil
	}
	r := mpint.Mod(g, p)
	if r.Sign() == 0 {
		return false, nil
	}
	order := new(big.Int).Sub(p, bigOne)
	factors, err := Factors(order)
	if err != nil {
		return false, err
	}
	small := p.BitLen() <= 32
	for _, f := range factors {
		e := new(big.Int).Div(order, f)
		if small {
			if mpint.ModPowUint64(r.Uint64(), e.Uint64(), p.Uint64()) == 1 {
				return false, nil
			}
		} else if mpint.ModPow(r, e, p).Cmp(bigOne) == 0 {
			return false, nil
		}
	}
	return true, nil
}

// SmallestPrimitiveRoot returns the smallest primitive root modulo
// the prime p.
func SmallestPrimitiveRoot(p *big.Int) (*big.Int, error) {
	if p.Cmp(bigTwo) < 0 {
		return nil, fmt.Errorf("group: invalid modulus %v", p)
	}
	for g := big.NewInt(1); g.Cmp(p) < 0; g.Add(g, bigOne) {
		ok, err := IsPrimitiveRoot(g, p)
		if err != nil {
			return nil, err
		}
		if ok {
			return g, nil
		}
	}
	return nil, fmt.Errorf("group: no primitive root modulo %v", p)
}
