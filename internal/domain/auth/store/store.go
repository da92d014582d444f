// Package store provides the credential lookup boundary: a username keyed
// read-only view of password hashes and identity claims. Backends are
// swappable behind the Store interface; the issuer never sees which one is
// wired.
package store

import (
	"context"
)

// Credential is the stored record for one user. The password hash is a
// sha256 hex digest, matching the fleet's seeded data.
type Credential struct {
	Username     string
	PasswordHash string
	UserID       string
	Email        string
}

// Store defines the lookup capability the token issuer depends on.
type Store interface {
	// Lookup returns the credential for username. The boolean reports
	// whether the record exists; err is reserved for backend failures.
	Lookup(ctx context.Context, username string) (Credential, bool, error)
	Close(ctx context.Context) error
}

// Config describes the high level store selection parameters.
type Config struct {
	Driver   string
	Redis    *RedisConfig
	Database *DatabaseConfig
}

// RedisConfig captures connection options.
type RedisConfig struct {
	Addr     string
	Username string
	Password string
	DB       int
	Prefix   string
}

// DatabaseConfig holds the record store dependency for the gorm backend.
type DatabaseConfig struct {
	DSN string
}
