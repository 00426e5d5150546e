//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package ring

import (
	"errors"
)

// Parameter validation errors. They are detected before any
// exponentiation and no partial result is returned with them.
var (
	ErrInvalidModulus           = errors.New("ring: modulus is not prime")
	ErrInvalidBase              = errors.New("ring: base is larger than modulus")
	ErrInsufficientParticipants = errors.New("ring: at least 2 participants required")
	ErrTooManyParticipants      = errors.New("ring: too many participants")
	ErrInvalidSecret            = errors.New("ring: invalid secret")
)
