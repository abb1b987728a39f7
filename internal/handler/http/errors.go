// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the body integrity middleware. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyHashHeader is returned when a hash key is configured and a
	// request with a body does not carry the HashSHA256 header.
	ErrEmptyHashHeader = errors.New("empty `HashSHA256` header")

	// ErrBodyHashMismatch is returned when the HashSHA256 header does not
	// match the HMAC-SHA256 of the request body.
	ErrBodyHashMismatch = errors.New("body hash mismatch")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")
)
