//
// shell.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/markkurossi/groupdh/env"
	"github.com/markkurossi/groupdh/group"
	"github.com/markkurossi/groupdh/ring"
)

const row = "■■■■■■■■■■■■■■■■■■■■■■■■■■■■■■■■■■■■■■■■■■■■■■■■■■■■■■■■■■■■■■■■■■■■■■"

type shell struct {
	in     *bufio.Scanner
	out    io.Writer
	config *env.Config
}

func newShell(in io.Reader, out io.Writer) *shell {
	return &shell{
		in:     bufio.NewScanner(in),
		out:    out,
		config: new(env.Config),
	}
}

// Run runs the shell until the user exits or the input ends.
func (s *shell) Run() error {
	for {
		s.println(row)
		s.println("■                 WELCOME TO THE GROUP KEY AGREEMENT TOOL!           ■")
		s.println(row)
		s.println("What do you want to do?")
		s.println("[1] Generate secret keys.")
		s.println("[0] Exit.")
		s.println(row)

		option, ok := s.input("Option  ->  ")
		if !ok {
			return s.in.Err()
		}
		s.println(row)

		switch option {
		case "0":
			s.println("See you soon!")
			s.println(row)
			return nil

		case "1":
			if !s.agree() {
				return s.in.Err()
			}

		default:
			s.println("Invalid option!")
		}
	}
}

// agree runs one key agreement. It returns false if the input ended.
func (s *shell) agree() bool {
	n, ok := s.number("Enter the number of users (more than 1)  ->  ")
	if !ok {
		return false
	}
	if n == nil || !n.IsInt64() || n.Int64() < 2 ||
		n.Int64() > int64(ring.MaxParticipants) {
		s.printf("Invalid number of users! Expected 2...%d.\n",
			ring.MaxParticipants)
		return true
	}

	p, ok := s.number("Enter a prime number  ->  ")
	if !ok {
		return false
	}
	if p == nil || p.Cmp(big.NewInt(2)) < 0 || !s.config.IsPrime(p) {
		s.println("Invalid prime number!")
		return true
	}

	alpha, ok := s.number("Enter a primitive root of the prime number  ->  ")
	if !ok {
		return false
	}
	if alpha == nil || alpha.Cmp(p) > 0 {
		s.println("Invalid primitive root!")
		return true
	}
	if root, err := group.IsPrimitiveRoot(alpha, p); err == nil && !root {
		s.printf("Warning: %v is not a primitive root of %v.\n", alpha, p)
	}

	var secrets []*big.Int
	for i := 0; i < int(n.Int64()); i++ {
		x, ok := s.number(fmt.Sprintf("Enter the secret key of user %d  ->  ",
			i+1))
		if !ok {
			return false
		}
		s.println(row)
		if x == nil {
			s.println("The secret key must be a positive number!")
			return true
		}
		secrets = append(secrets, x)
	}

	result, err := ring.Derive(s.config, p, alpha, secrets)
	if err != nil {
		s.printf("Key agreement failed: %v\n", err)
		return true
	}
	for _, participant := range result.Participants {
		s.printf("y%s: %v\n", participant.Label, participant.Public)
	}
	rounds := result.Rounds()
	for _, keys := range rounds {
		s.println(row)
		for _, key := range keys {
			s.printf("k%s: %v\n", key.Key, key.Value)
		}
	}
	s.println(row)
	s.printf("Shared secret key: %v\n", result.SharedSecret())
	return true
}

// number reads a non-negative decimal number. It returns nil for
// invalid input and false if the input ended.
func (s *shell) number(prompt string) (*big.Int, bool) {
	line, ok := s.input(prompt)
	if !ok {
		return nil, false
	}
	if len(line) == 0 {
		return nil, true
	}
	for _, r := range line {
		if r < '0' || r > '9' {
			return nil, true
		}
	}
	v, ok := new(big.Int).SetString(line, 10)
	if !ok {
		return nil, true
	}
	return v, true
}

func (s *shell) input(prompt string) (string, bool) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		s.println("")
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *shell) println(line string) {
	fmt.Fprintln(s.out, line)
}

func (s *shell) printf(format string, a ...interface{}) {
	fmt.Fprintf(s.out, format, a...)
}
