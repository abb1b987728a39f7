// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

// sha256Hasher is the private implementation of [Hasher].
type sha256Hasher struct{}

// NewSHA256Hasher constructs the default [Hasher].
func NewSHA256Hasher() Hasher {
	return &sha256Hasher{}
}

// Hash implements [Hasher].
func (h *sha256Hasher) Hash(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Compare implements [Hasher]. The stored digest is lowercased first
// since older records may carry uppercase hex.
func (h *sha256Hasher) Compare(password, storedHash string) bool {
	candidate := h.Hash(password)
	stored := strings.ToLower(strings.TrimSpace(storedHash))
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(stored)) == 1
}
