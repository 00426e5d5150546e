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

var smallPrimes = []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 97}

func TestModPowZeroExponent(t *testing.T) {
	zero := big.NewInt(0)
	for _, p := range smallPrimes {
		mod := big.NewInt(p)
		for x := int64(0); x < p; x++ {
			r := ModPow(big.NewInt(x), zero, mod)
			if r.Int64() != 1 {
				t.Errorf("ModPow(%d, 0, %d)=%v, expected 1", x, p, r)
			}
		}
	}
}

func TestModPowZeroBase(t *testing.T) {
	// A base congruent to zero exits the loop before any
	// multiplication and the result stays at 1.
	for _, p := range smallPrimes {
		mod := big.NewInt(p)
		for k := int64(1); k < 10; k++ {
			r := ModPow(big.NewInt(0), big.NewInt(k), mod)
			if r.Int64() != 1 {
				t.Errorf("ModPow(0, %d, %d)=%v, expected 1", k, p, r)
			}
			r = ModPow(mod, big.NewInt(k), mod)
			if r.Int64() != 1 {
				t.Errorf("ModPow(%d, %d, %d)=%v, expected 1", p, k, p, r)
			}
		}
	}
}

func TestModPowReference(t *testing.T) {
	for _, p := range smallPrimes {
		mod := big.NewInt(p)
		for a := int64(1); a < p; a++ {
			for b := int64(0); b < 3*p; b++ {
				x := big.NewInt(a)
				y := big.NewInt(b)
				got := ModPow(x, y, mod)
				expected := Exp(x, y, mod)
				if got.Cmp(expected) != 0 {
					t.Fatalf("ModPow(%d, %d, %d)=%v, expected %v",
						a, b, p, got, expected)
				}
				w := ModPowUint64(uint64(a), uint64(b), uint64(p))
				if w != expected.Uint64() {
					t.Fatalf("ModPowUint64(%d, %d, %d)=%v, expected %v",
						a, b, p, w, expected)
				}
			}
		}
	}
}

var modPowTests = []struct {
	base     string
	exponent string
	modulus  string
	result   string
}{
	{"5", "6", "23", "8"},
	{"5", "15", "23", "19"},
	{"2", "10", "1000", "24"},
	{"-3", "3", "7", "1"},
	{"1", "65535", "7", "1"},
	{"4", "-2", "7", "1"},
	{"7", "3", "1", "1"},
	{
		"2",
		"340282366920938463463374607431768211455",
		"170141183460469231731687303715884105727",
		"8",
	},
}

func TestModPow(t *testing.T) {
	for idx, test := range modPowTests {
		b, _ := Parse(test.base)
		e, _ := Parse(test.exponent)
		m, _ := Parse(test.modulus)
		r, _ := Parse(test.result)

		got := ModPow(b, e, m)
		if got.Cmp(r) != 0 {
			t.Errorf("test-%d: ModPow(%v, %v, %v)=%v, expected %v",
				idx, b, e, m, got, r)
		}
	}
}

func TestModPowArgumentsUnchanged(t *testing.T) {
	b := big.NewInt(5)
	e := big.NewInt(6)
	m := big.NewInt(23)
	ModPow(b, e, m)
	if b.Int64() != 5 || e.Int64() != 6 || m.Int64() != 23 {
		t.Errorf("ModPow modified its arguments: %v %v %v", b, e, m)
	}
}

func TestModPowInvalidModulus(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("ModPow with zero modulus did not panic")
		}
	}()
	ModPow(big.NewInt(2), big.NewInt(2), big.NewInt(0))
}

func BenchmarkModPow(b *testing.B) {
	base := big.NewInt(2)
	exp, _ := Parse("0xfedcba9876543210fedcba9876543210")
	mod, _ := Parse("170141183460469231731687303715884105727")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ModPow(base, exp, mod)
	}
}
