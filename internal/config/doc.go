// Package config provides configuration loading, merging, and validation
// facilities for the guest-nama server and client.
//
// Configuration is assembled from multiple sources; for each field the first
// source providing a non-zero value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the client.
package config
