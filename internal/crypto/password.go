// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrEmptyPassword is returned by Hash for an empty plaintext.
	ErrEmptyPassword = errors.New("password is empty")

	// ErrPasswordTooLong is returned by Hash when the plaintext exceeds the
	// 72-byte bcrypt input limit.
	ErrPasswordTooLong = errors.New("password exceeds 72 bytes")
)

// maxPasswordBytes is the bcrypt input limit.
const maxPasswordBytes = 72

// bcryptHasher is the [PasswordHasher] backed by bcrypt. The salt and cost
// are encoded in every hash, so Verify needs nothing but the hash itself.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a [PasswordHasher] using the given bcrypt cost.
// Costs outside [bcrypt.MinCost, bcrypt.MaxCost] fall back to
// bcrypt.DefaultCost.
func NewBcryptHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPassword
	}
	if len(plaintext) > maxPasswordBytes {
		return "", ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

func (h *bcryptHasher) Verify(plaintext, hash string) bool {
	if plaintext == "" || hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
