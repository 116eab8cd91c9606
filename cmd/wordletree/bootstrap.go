package main

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// bootstrapAdminHash bcrypt-hashes the configured admin password so
// EnsureAdmin never stores it in plaintext, even for the bootstrap row.
func bootstrapAdminHash(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// cmdContext returns a background context for one-shot startup calls
// that precede the HTTP server's own request-scoped contexts.
func cmdContext() context.Context {
	return context.Background()
}

// newAdminID generates a fresh identifier for the bootstrap admin row.
func newAdminID() string {
	return uuid.NewString()
}
