//
// mpint_test.go
//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

package mpint

import (
	"testing"
)

var (
	oneData   = []byte{0x1}
	twoData   = []byte{0x2}
	threeData = []byte{0x3}
)

func TestMPInt(t *testing.T) {
	one := FromBytes(oneData)
	two := FromBytes(twoData)
	three := FromBytes(threeData)

	sum := Add(one, two)
	if sum.Cmp(three) != 0 {
		t.Errorf("%s + %s = %s, expected %s\n", one, two, sum, three)
	}
	diff := Sub(three, one)
	if diff.Cmp(two) != 0 {
		t.Errorf("%s - %s = %s, expected %s\n", three, one, diff, two)
	}
	prod := Mul(two, three)
	if prod.Int64() != 6 {
		t.Errorf("%s * %s = %s, expected 6\n", two, three, prod)
	}
	if Mod(prod, FromBytes([]byte{0x4})).Cmp(two) != 0 {
		t.Errorf("6 mod 4 != 2")
	}
}

var parseTests = []struct {
	in    string
	value int64
	valid bool
}{
	{"0", 0, true},
	{"23", 23, true},
	{" 5 ", 5, true},
	{"0x17", 23, true},
	{"010", 10, true},
	{"-4", -4, true},
	{"", 0, false},
	{"abc", 0, false},
	{"1.5", 0, false},
}

func TestParse(t *testing.T) {
	for _, test := range parseTests {
		v, err := Parse(test.in)
		if !test.valid {
			if err == nil {
				t.Errorf("Parse(%q) succeeded, expected error", test.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", test.in, err)
			continue
		}
		if v.Int64() != test.value {
			t.Errorf("Parse(%q)=%v, expected %v", test.in, v, test.value)
		}
	}
	if _, err := ParseNonNegative("-1"); err == nil {
		t.Errorf("ParseNonNegative(-1) succeeded")
	}
	if v, err := ParseNonNegative("7"); err != nil || v.Int64() != 7 {
		t.Errorf("ParseNonNegative(7)=%v, %v", v, err)
	}
}
