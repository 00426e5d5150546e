//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package env

import (
	"crypto/sha256"

	"golang.org/x/crypto/chacha20"
)

// PRG implements a deterministic pseudo random generator. It produces
// the ChaCha20 key stream for a key derived from the seed. PRG
// implements io.Reader and can be used as Config.Rand for repeatable
// runs.
type PRG struct {
	cipher *chacha20.Cipher
}

// NewPRG creates a new pseudo random generator for the seed.
func NewPRG(seed []byte) (*PRG, error) {
	key := sha256.Sum256(seed)
	var nonce [chacha20.NonceSize]byte

	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		return nil, err
	}
	return &PRG{
		cipher: c,
	}, nil
}

// Read fills data with the next bytes of the key stream.
func (prg *PRG) Read(data []byte) (int, error) {
	for i := range data {
		data[i] = 0
	}
	prg.cipher.XORKeyStream(data, data)
	return len(data), nil
}
