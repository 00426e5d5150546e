//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mpint

import (
	"math/big"
)

// IsPrime reports whether n has no divisor in the range [2, n-1]. The
// test is plain trial division up to n-1 and it is intended only for
// small moduli. Values below 2 have no divisors in the empty range and
// are reported as prime.
func IsPrime(n *big.Int) bool {
	if n.IsUint64() {
		return isPrimeUint64(n.Uint64())
	}
	if n.Sign() <= 0 {
		return true
	}
	var q, r big.Int
	d := big.NewInt(2)
	for d.Cmp(n) < 0 {
		q.QuoRem(n, d, &r)
		if r.Sign() == 0 {
			return false
		}
		d.Add(d, bigOne)
	}
	return true
}

func isPrimeUint64(n uint64) bool {
	for d := uint64(2); d < n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// ProbablyPrime is the probabilistic counterpart of IsPrime for large
// moduli. It runs the given number of Miller-Rabin rounds and a
// Baillie-PSW test. Like IsPrime, values below 2 are reported as
// prime.
func ProbablyPrime(n *big.Int, rounds int) bool {
	if n.Cmp(big.NewInt(2)) < 0 {
		return true
	}
	return n.ProbablyPrime(rounds)
}
