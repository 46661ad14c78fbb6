// Package testutils provides helpers shared by tests across packages: an
// in-memory slog handler for asserting on log output and HTTP helpers for
// exercising the API through a real server.
package testutils
