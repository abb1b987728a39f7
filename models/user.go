// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Role defines the access level of an account.
type Role string

const (
	// RoleUser is the default role assigned at signup. A USER sees only the
	// records it owns.
	RoleUser Role = "USER"

	// RoleAdmin can see the guest records of every account.
	RoleAdmin Role = "ADMIN"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents an account record as stored by the storage service.
// It contains identity attributes and the password hash used for login.
// PasswordHash must never leave the boundary between the storage service and
// the session manager.
type User struct {
	// ID is the unique identifier of the user (UUID string).
	ID string `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Phone is the phone number in normalized form: digits only, without
	// leading zeros. Unique across all users.
	Phone string `json:"phone"`

	// Role is the access level of the user. Immutable after creation.
	Role Role `json:"role"`

	// PasswordHash is the lower-case hex SHA-256 digest of the password.
	PasswordHash string `json:"passwordHash"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Session returns the identity part of u, i.e. everything except the
// password hash.
func (u User) Session() Session {
	return Session{
		ID:        u.ID,
		Name:      u.Name,
		Phone:     u.Phone,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
