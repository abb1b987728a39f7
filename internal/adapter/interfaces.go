// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the GuestNama storage server.
//
// The primary abstraction is [StorageAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPStorageAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/guest-nama/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/storage_adapter_mock.go -package=mock

// StorageAdapter is the client's view of the storage authority. It is the
// single source of truth for accounts and event records.
type StorageAdapter interface {
	// GetUsers returns every account including password hashes. The result
	// is consumed by the session manager only.
	GetUsers(ctx context.Context) ([]models.User, error)

	// AddUser creates an account. A phone collision on the server yields a
	// wrapped [ErrConflict].
	AddUser(ctx context.Context, user models.User) error

	// VerifySession reports whether userID still identifies a live account.
	VerifySession(ctx context.Context, userID string) (bool, error)

	// GetGuests returns the guests visible to userID. An ADMIN role sees
	// every guest.
	GetGuests(ctx context.Context, userID string, role models.Role) ([]models.Guest, error)

	// GetFinance returns the ledger entries owned by userID.
	GetFinance(ctx context.Context, userID string) ([]models.FinanceEntry, error)

	// GetTasks returns the tasks owned by userID.
	GetTasks(ctx context.Context, userID string) ([]models.Task, error)
}
