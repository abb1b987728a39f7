// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// It dispatches a single command (login, signup, logout, whoami, dashboard
// or watch) against the client services and owns the process lifecycle of
// the long-running watch loop.
package client
