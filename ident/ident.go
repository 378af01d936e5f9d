// Copyright (c) 2026 Pointdeck.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ident

import (
	"crypto/rand"
	"errors"
	"fmt"
)

var (
	ErrEmptyAlphabet = errors.New("id alphabet must not be empty")
	ErrInvalidLength = errors.New("id length must be positive")
)

// Generate creates a random identifier of the given length drawn from the
// configured character set. Session and story IDs use this; user IDs come
// from the uuid package instead.
func Generate(alphabet string, length int) (string, error) {
	if len(alphabet) == 0 {
		return "", ErrEmptyAlphabet
	}
	if length <= 0 {
		return "", ErrInvalidLength
	}

	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}

	out := make([]byte, length)
	for i, v := range b {
		out[i] = alphabet[int(v)%len(alphabet)]
	}
	return string(out), nil
}
