//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package ring

import (
	"fmt"
	"math/big"

	"github.com/markkurossi/groupdh/env"
	"github.com/markkurossi/groupdh/mpint"
	"github.com/monnand/dhkx"
)

// CheckPairDHKX runs a two-party exchange between the secret and a
// random dhkx peer in the group (p, alpha). It verifies that both
// sides compute the same key and returns the key.
func CheckPairDHKX(config *env.Config, p, alpha, secret *big.Int) (
	*big.Int, error) {

	err := validate(config, p, alpha, []*big.Int{secret, secret})
	if err != nil {
		return nil, err
	}
	group := dhkx.CreateGroup(p, alpha)
	peer, err := group.GeneratePrivateKey(config.GetRandom())
	if err != nil {
		return nil, err
	}
	peerPublic := new(big.Int).SetBytes(peer.Bytes())

	public := mpint.ModPow(alpha, secret, p)
	theirs, err := group.ComputeKey(dhkx.NewPublicKey(public.Bytes()), peer)
	if err != nil {
		return nil, err
	}
	key := new(big.Int).SetBytes(theirs.Bytes())

	ours := mpint.ModPow(peerPublic, secret, p)
	if ours.Cmp(key) != 0 {
		return nil, fmt.Errorf("ring: key mismatch: ours=%v, dhkx=%v",
			ours, key)
	}
	return ours, nil
}
