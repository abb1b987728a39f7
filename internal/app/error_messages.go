// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// GuestNama storage server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// the "error" field of HTTP response bodies or into log entries. Keeping them
// in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgNoUserIDProvided is returned when a collection endpoint is called
	// without the user_id query parameter.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgPhoneAlreadyExists is returned when a signup is rejected because the
	// normalized phone number is already registered.
	MsgPhoneAlreadyExists = "phone already exists"

	// MsgRoleNotAllowed is returned when an account creation request asks
	// for a role other than USER.
	MsgRoleNotAllowed = "role not allowed"

	// MsgUnknownUser is returned when a record references an account that
	// does not exist.
	MsgUnknownUser = "unknown user"

	// MsgGuestNotFound is returned when a status update or delete targets a
	// guest that does not exist.
	MsgGuestNotFound = "guest not found"

	// MsgTaskNotFound is returned when a completion update targets a task
	// that does not exist.
	MsgTaskNotFound = "task not found"

	// MsgInvalidBodyHash is returned when the HashSHA256 header does not
	// match the request body.
	MsgInvalidBodyHash = "request body hash mismatch"

	// MsgVersionIsNotSpecified is returned by the version endpoint when the
	// server was started without a version.
	MsgVersionIsNotSpecified = "version is not specified"
)
