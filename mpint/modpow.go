//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mpint

import (
	"math/big"
)

var (
	bigOne = big.NewInt(1)
)

// ModPow computes base**exponent mod modulus with iterative binary
// (square-and-multiply) exponentiation.
//
// The loop stops as soon as the reduced base is 0 or 1 since further
// squaring can not change it. As a consequence a base that is
// congruent to 0 returns 1 instead of 0 for all exponents. Callers
// depend on this and it must not be changed. A negative exponent
// returns 1. The function panics if modulus is not positive.
func ModPow(base, exponent, modulus *big.Int) *big.Int {
	if modulus.Sign() <= 0 {
		panic("mpint.ModPow: non-positive modulus")
	}
	result := big.NewInt(1)
	b := Mod(base, modulus)
	e := new(big.Int).Set(exponent)

	for e.Sign() > 0 && b.Cmp(bigOne) > 0 {
		if e.Bit(0) == 1 {
			result.Mul(result, b)
			result.Mod(result, modulus)
			e.Sub(e, bigOne)
		} else {
			b.Mul(b, b)
			b.Mod(b, modulus)
			e.Rsh(e, 1)
		}
	}
	return result
}

// ModPowUint64 is ModPow for word-sized operands. It has the same
// early exit behavior. The modulus must be positive and at most
// 1<<32 so that the products fit into 64 bits.
func ModPowUint64(base, exponent, modulus uint64) uint64 {
	if modulus == 0 {
		panic("mpint.ModPowUint64: zero modulus")
	}
	if modulus > 1<<32 {
		panic("mpint.ModPowUint64: modulus too large")
	}
	var result uint64 = 1
	base %= modulus

	for exponent > 0 && base > 1 {
		if exponent&1 == 1 {
			result = (result * base) % modulus
			exponent--
		} else {
			base = (base * base) % modulus
			exponent >>= 1
		}
	}
	return result
}
