//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runShell(t *testing.T, input string) string {
	var out bytes.Buffer
	err := newShell(strings.NewReader(input), &out).Run()
	require.NoError(t, err)
	return out.String()
}

func TestShellAgreement(t *testing.T) {
	out := runShell(t, "1\n2\n23\n5\n6\n15\n0\n")

	assert.Contains(t, out, "yA: 8\n")
	assert.Contains(t, out, "yB: 19\n")
	assert.Contains(t, out, "kAB: 2\n")
	assert.Contains(t, out, "kBA: 2\n")
	assert.Contains(t, out, "Shared secret key: 2\n")
	assert.Contains(t, out, "See you soon!")
}

func TestShellThree(t *testing.T) {
	out := runShell(t, "1\n3\n23\n5\n6\n15\n13\n0\n")

	assert.Contains(t, out, "kCAB: 4\n")
	assert.Contains(t, out, "Shared secret key: 4\n")
}

func TestShellInvalidInput(t *testing.T) {
	tests := []struct {
		input   string
		message string
	}{
		{"7\n0\n", "Invalid option!"},
		{"x\n0\n", "Invalid option!"},
		{"1\nx\n0\n", "Invalid number of users!"},
		{"1\n1\n0\n", "Invalid number of users!"},
		{"1\n27\n0\n", "Invalid number of users!"},
		{"1\n2\n8\n0\n", "Invalid prime number!"},
		{"1\n2\nabc\n0\n", "Invalid prime number!"},
		{"1\n2\n23\n24\n0\n", "Invalid primitive root!"},
		{"1\n2\n23\n5\n-6\n0\n", "The secret key must be a positive number!"},
		{"1\n2\n23\n2\n6\n15\n0\n", "Warning: 2 is not a primitive root"},
	}
	for idx, test := range tests {
		out := runShell(t, test.input)
		assert.Contains(t, out, test.message, "test %d", idx)
		assert.Contains(t, out, "See you soon!", "test %d", idx)
	}
}

func TestShellEOF(t *testing.T) {
	out := runShell(t, "1\n2\n23\n")
	assert.NotContains(t, out, "Shared secret key")
	assert.NotContains(t, out, "See you soon!")
}
