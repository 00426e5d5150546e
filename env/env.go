//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

// Package env implements global environment for the group key
// agreement.
package env

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/markkurossi/groupdh/mpint"
)

const (
	// DefaultTrialDivisionBits is the largest modulus size, in bits,
	// that is tested for primality with trial division.
	DefaultTrialDivisionBits = 24

	// PrimalityRounds specifies the number of Miller-Rabin rounds
	// for moduli larger than the trial division limit.
	PrimalityRounds = 20
)

// Config defines the global system configuration. Config must not be
// modified after being passed to any module. It is safe for
// concurrent use by multiple modules as they do not modify it.
type Config struct {
	Rand io.Reader

	// TrialDivisionBits specifies the largest modulus size that is
	// tested with trial division. Larger moduli are tested with the
	// probabilistic primality test. The zero value selects
	// DefaultTrialDivisionBits and a negative value disables trial
	// division.
	TrialDivisionBits int

	// Verbose enables per-participant debug output.
	Verbose bool
}

// GetRandom returns the source of entropy for secret and group
// parameter generation.
func (config *Config) GetRandom() io.Reader {
	if config != nil && config.Rand != nil {
		return config.Rand
	}
	return rand.Reader
}

// IsPrime tests if n is prime. Small values are tested with
// mpint.IsPrime and large values with mpint.ProbablyPrime. Both report
// values below 2 as prime.
func (config *Config) IsPrime(n *big.Int) bool {
	limit := DefaultTrialDivisionBits
	if config != nil && config.TrialDivisionBits != 0 {
		limit = config.TrialDivisionBits
	}
	if n.BitLen() <= limit {
		return mpint.IsPrime(n)
	}
	return mpint.ProbablyPrime(n, PrimalityRounds)
}
