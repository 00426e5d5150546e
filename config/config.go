//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package config implements key agreement session files. A session
// file defines the group parameters and the ring participants in INI
// format:
//
//	[group]
//	p     = 23
//	alpha = 5
//
//	[participant.A]
//	secret = 6
//	addr   = 127.0.0.1:9000
//
// Participant sections are named by their ring labels and they must
// be contiguous from A.
package config

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/go-ini/ini"
	"github.com/markkurossi/groupdh/mpint"
	"github.com/markkurossi/groupdh/ring"
)

// Section and key names.
const (
	SectionGroup       = "group"
	SectionParticipant = "participant."
	KeyP               = "p"
	KeyAlpha           = "alpha"
	KeySecret          = "secret"
	KeyAddr            = "addr"
)

var (
	// ErrMissing is returned when a required section or key is
	// missing.
	ErrMissing = errors.New("config: missing value")

	// ErrInvalid is returned for malformed values.
	ErrInvalid = errors.New("config: invalid value")
)

// Participant defines a ring participant. Secret is nil if the
// session file does not define it.
type Participant struct {
	Label  string
	Secret *big.Int
	Addr   string
}

// Session defines a key agreement session.
type Session struct {
	P            *big.Int
	Alpha        *big.Int
	Participants []Participant
}

// New creates a session for the group parameters and secrets.
func New(p, alpha *big.Int, secrets []*big.Int) *Session {
	s := &Session{
		P:     p,
		Alpha: alpha,
	}
	for i, x := range secrets {
		s.Participants = append(s.Participants, Participant{
			Label:  ring.Label(i),
			Secret: x,
		})
	}
	return s
}

// Load loads the session from the file.
func Load(path string) (*Session, error) {
	f, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return parse(f)
}

// Parse parses the session from the data.
func Parse(data []byte) (*Session, error) {
	f, err := ini.Load(data)
	if err != nil {
		return nil, err
	}
	return parse(f)
}

func parse(f *ini.File) (*Session, error) {
	group, err := f.GetSection(SectionGroup)
	if err != nil {
		return nil, fmt.Errorf("%w: section [%s]", ErrMissing, SectionGroup)
	}
	s := new(Session)
	s.P, err = number(group, KeyP, true)
	if err != nil {
		return nil, err
	}
	s.Alpha, err = number(group, KeyAlpha, true)
	if err != nil {
		return nil, err
	}

	sections := make(map[string]*ini.Section)
	for _, sec := range f.Sections() {
		name := sec.Name()
		if !strings.HasPrefix(name, SectionParticipant) {
			continue
		}
		label := strings.TrimPrefix(name, SectionParticipant)
		if !isLabel(label) {
			return nil, fmt.Errorf("%w: participant label %q",
				ErrInvalid, label)
		}
		sections[label] = sec
	}
	for i := 0; i < len(sections); i++ {
		label := ring.Label(i)
		sec, ok := sections[label]
		if !ok {
			return nil, fmt.Errorf("%w: section [%s%s]", ErrMissing,
				SectionParticipant, label)
		}
		secret, err := number(sec, KeySecret, false)
		if err != nil {
			return nil, err
		}
		s.Participants = append(s.Participants, Participant{
			Label:  label,
			Secret: secret,
			Addr:   strings.TrimSpace(sec.Key(KeyAddr).String()),
		})
	}
	return s, nil
}

func isLabel(label string) bool {
	return len(label) == 1 && strings.Contains(ring.Alphabet, label)
}

func number(sec *ini.Section, key string, required bool) (*big.Int, error) {
	if !sec.HasKey(key) {
		if required {
			return nil, fmt.Errorf("%w: [%s] %s", ErrMissing, sec.Name(), key)
		}
		return nil, nil
	}
	v, err := mpint.ParseNonNegative(sec.Key(key).String())
	if err != nil {
		return nil, fmt.Errorf("%w: [%s] %s: %v", ErrInvalid, sec.Name(),
			key, err)
	}
	return v, nil
}

// Secrets returns the participants' secrets. It returns an error if
// any participant does not have a secret.
func (s *Session) Secrets() ([]*big.Int, error) {
	var result []*big.Int
	for _, p := range s.Participants {
		if p.Secret == nil {
			return nil, fmt.Errorf("%w: [%s%s] %s", ErrMissing,
				SectionParticipant, p.Label, KeySecret)
		}
		result = append(result, p.Secret)
	}
	return result, nil
}

// Addr returns the network address of the participant.
func (s *Session) Addr(id int) (string, error) {
	if id < 0 || id >= len(s.Participants) {
		return "", fmt.Errorf("%w: participant %d", ErrMissing, id)
	}
	addr := s.Participants[id].Addr
	if len(addr) == 0 {
		return "", fmt.Errorf("%w: [%s%s] %s", ErrMissing,
			SectionParticipant, s.Participants[id].Label, KeyAddr)
	}
	return addr, nil
}

// WriteTo writes the session in INI format to the writer.
func (s *Session) WriteTo(w io.Writer) (int64, error) {
	f := ini.Empty()

	group, err := f.NewSection(SectionGroup)
	if err != nil {
		return 0, err
	}
	if _, err := group.NewKey(KeyP, s.P.String()); err != nil {
		return 0, err
	}
	if _, err := group.NewKey(KeyAlpha, s.Alpha.String()); err != nil {
		return 0, err
	}
	for _, p := range s.Participants {
		sec, err := f.NewSection(SectionParticipant + p.Label)
		if err != nil {
			return 0, err
		}
		if p.Secret != nil {
			if _, err := sec.NewKey(KeySecret, p.Secret.String()); err != nil {
				return 0, err
			}
		}
		if len(p.Addr) > 0 {
			if _, err := sec.NewKey(KeyAddr, p.Addr); err != nil {
				return 0, err
			}
		}
	}
	return f.WriteTo(w)
}
