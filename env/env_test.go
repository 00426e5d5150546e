//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package env

import (
	"bytes"
	"crypto/rand"
	"math/big"
	"testing"
)

func TestGetRandom(t *testing.T) {
	var config *Config
	if config.GetRandom() != rand.Reader {
		t.Errorf("nil config does not default to crypto/rand")
	}
	prg, err := NewPRG([]byte("seed"))
	if err != nil {
		t.Fatalf("NewPRG: %v", err)
	}
	config = &Config{
		Rand: prg,
	}
	if config.GetRandom() != prg {
		t.Errorf("GetRandom ignores Config.Rand")
	}
}

func TestIsPrime(t *testing.T) {
	var config *Config

	large, _ := new(big.Int).SetString("170141183460469231731687303715884105727", 10)
	composite := new(big.Int).Mul(large, big.NewInt(3))

	tests := []struct {
		n     *big.Int
		prime bool
	}{
		{big.NewInt(1), true},
		{big.NewInt(8), false},
		{big.NewInt(23), true},
		{big.NewInt(16777213), true},
		{large, true},
		{composite, false},
	}
	for _, test := range tests {
		if got := config.IsPrime(test.n); got != test.prime {
			t.Errorf("IsPrime(%v)=%v, expected %v", test.n, got, test.prime)
		}
	}

	config = &Config{
		TrialDivisionBits: -1,
	}
	if !config.IsPrime(big.NewInt(1)) {
		t.Errorf("probabilistic IsPrime(1) != true")
	}
	if config.IsPrime(big.NewInt(91)) {
		t.Errorf("probabilistic IsPrime(91) != false")
	}
}

func TestPRG(t *testing.T) {
	p0, err := NewPRG([]byte("seed"))
	if err != nil {
		t.Fatalf("NewPRG: %v", err)
	}
	p1, err := NewPRG([]byte("seed"))
	if err != nil {
		t.Fatalf("NewPRG: %v", err)
	}
	p2, err := NewPRG([]byte("other seed"))
	if err != nil {
		t.Fatalf("NewPRG: %v", err)
	}
	var b0, b1, b2 [64]byte
	p0.Read(b0[:])
	p1.Read(b1[:])
	p2.Read(b2[:])

	if !bytes.Equal(b0[:], b1[:]) {
		t.Errorf("same seed produced different streams")
	}
	if bytes.Equal(b0[:], b2[:]) {
		t.Errorf("different seeds produced the same stream")
	}
	p0.Read(b0[:])
	if bytes.Equal(b0[:], b1[:]) {
		t.Errorf("PRG repeats its output")
	}
}
