//
// mpint.go
//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

// Package mpint implements the multi-precision integer arithmetic of
// the group key agreement: primality testing, modular
// exponentiation, and small helpers around math/big.
package mpint

import (
	"fmt"
	"math/big"
	"strings"
)

// FromBytes creates an integer from its big-endian byte
// representation.
func FromBytes(data []byte) *big.Int {
	return big.NewInt(0).SetBytes(data)
}

// Add returns a+b.
func Add(a, b *big.Int) *big.Int {
	return big.NewInt(0).Add(a, b)
}

// Sub returns a-b.
func Sub(a, b *big.Int) *big.Int {
	return big.NewInt(0).Sub(a, b)
}

// Mul returns a*b.
func Mul(a, b *big.Int) *big.Int {
	return big.NewInt(0).Mul(a, b)
}

// Exp returns x**y mod m computed with math/big. It is the reference
// implementation ModPow is checked against.
func Exp(x, y, m *big.Int) *big.Int {
	return big.NewInt(0).Exp(x, y, m)
}

// Mod returns x mod y.
func Mod(x, y *big.Int) *big.Int {
	return big.NewInt(0).Mod(x, y)
}

// Parse parses a decimal integer. Hexadecimal values are accepted
// with the 0x prefix.
func Parse(val string) (*big.Int, error) {
	val = strings.TrimSpace(val)
	if len(val) == 0 {
		return nil, fmt.Errorf("mpint.Parse: empty value")
	}
	base := 10
	digits := val
	if strings.HasPrefix(val, "0x") || strings.HasPrefix(val, "0X") {
		base = 16
		digits = val[2:]
	}
	v, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, fmt.Errorf("mpint.Parse: invalid integer: %s", val)
	}
	return v, nil
}

// ParseNonNegative parses an integer and verifies that it is not
// negative.
func ParseNonNegative(val string) (*big.Int, error) {
	v, err := Parse(val)
	if err != nil {
		return nil, err
	}
	if v.Sign() < 0 {
		return nil, fmt.Errorf("mpint.Parse: negative value: %s", val)
	}
	return v, nil
}
