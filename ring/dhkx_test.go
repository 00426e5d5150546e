//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package ring

import (
	"math/big"
	"testing"
)

func TestCheckPairDHKX(t *testing.T) {
	tests := []struct {
		p     int64
		alpha int64
	}{
		{23, 5},
		{1019, 2},
		{2147483647, 7},
	}
	for idx, test := range tests {
		for _, x := range []int64{0, 1, 6, 15, 1000} {
			key, err := CheckPairDHKX(nil, big.NewInt(test.p),
				big.NewInt(test.alpha), big.NewInt(x))
			if err != nil {
				t.Errorf("t%v: x=%v: %v", idx, x, err)
				continue
			}
			if key.Cmp(big.NewInt(test.p)) >= 0 {
				t.Errorf("t%v: x=%v: key %v out of range", idx, x, key)
			}
		}
	}
	_, err := CheckPairDHKX(nil, big.NewInt(8), big.NewInt(5), big.NewInt(6))
	if err == nil {
		t.Errorf("CheckPairDHKX accepted composite modulus")
	}
}
