//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package ring

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

var (
	bigThree = big.NewInt(3)
)

// RandomSecrets creates n random secrets from the range [1...p-2].
// The random source can be nil in which case crypto/rand is used.
func RandomSecrets(random io.Reader, n int, p *big.Int) ([]*big.Int, error) {
	if p == nil || p.Cmp(bigThree) <= 0 {
		return nil, fmt.Errorf("%w: %v too small for secrets",
			ErrInvalidModulus, p)
	}
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientParticipants, n)
	}
	if n > MaxParticipants {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyParticipants,
			n, MaxParticipants)
	}
	if random == nil {
		random = rand.Reader
	}
	limit := new(big.Int).Sub(p, bigTwo)

	result := make([]*big.Int, n)
	for i := range result {
		v, err := rand.Int(random, limit)
		if err != nil {
			return nil, err
		}
		result[i] = v.Add(v, bigOne)
	}
	return result, nil
}
