//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mpint

import (
	"math/big"
	"testing"
)

var primeTests = []struct {
	n     int64
	prime bool
}{
	{-7, true},
	{0, true},
	{1, true},
	{2, true},
	{3, true},
	{4, false},
	{8, false},
	{9, false},
	{23, true},
	{25, false},
	{97, true},
	{7919, true},
	{7917, false},
}

func TestIsPrime(t *testing.T) {
	for _, test := range primeTests {
		n := big.NewInt(test.n)
		if got := IsPrime(n); got != test.prime {
			t.Errorf("IsPrime(%d)=%v, expected %v", test.n, got, test.prime)
		}
		if got := ProbablyPrime(n, 20); got != test.prime {
			t.Errorf("ProbablyPrime(%d)=%v, expected %v",
				test.n, got, test.prime)
		}
	}
}

func TestIsPrimeAgreesWithProbablyPrime(t *testing.T) {
	for i := int64(2); i < 2000; i++ {
		n := big.NewInt(i)
		if IsPrime(n) != n.ProbablyPrime(20) {
			t.Errorf("IsPrime(%d) disagrees with math/big", i)
		}
	}
}
