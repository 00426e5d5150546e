//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package ring

import (
	"testing"
)

func TestLabel(t *testing.T) {
	if Label(0) != "A" || Label(25) != "Z" {
		t.Errorf("unexpected labels: %v...%v", Label(0), Label(25))
	}
	if Label(26) != "?26" {
		t.Errorf("Label(26)=%v", Label(26))
	}
}

var arcTests = []struct {
	start  int
	length int
	n      int
	label  string
	set    string
}{
	{0, 2, 2, "AB", "0.1"},
	{1, 2, 2, "BA", "0.1"},
	{2, 2, 3, "CA", "0.2"},
	{1, 3, 3, "BCA", "0.1.2"},
	{3, 3, 5, "DEA", "0.3.4"},
	{4, 1, 5, "E", "4"},
}

func TestArc(t *testing.T) {
	for idx, test := range arcTests {
		arc := NewArc(test.start, test.length, test.n)
		if len(arc) != test.length {
			t.Errorf("t%v: len=%v, expected %v", idx, len(arc), test.length)
		}
		if arc.Head() != test.start {
			t.Errorf("t%v: head=%v, expected %v", idx, arc.Head(), test.start)
		}
		if arc.Label() != test.label {
			t.Errorf("t%v: label=%v, expected %v",
				idx, arc.Label(), test.label)
		}
		if arc.SetKey() != test.set {
			t.Errorf("t%v: set=%v, expected %v", idx, arc.SetKey(), test.set)
		}
	}
}
