package config

import "errors"

var (
	// ErrNoDatabaseDSN is returned when no database connection string was
	// supplied by any configuration source.
	ErrNoDatabaseDSN = errors.New("database DSN is required")

	// ErrNoTokenSignKey is returned when the JWT signing key is missing.
	ErrNoTokenSignKey = errors.New("token sign key is required")

	// ErrNoHTTPAddress is returned when the HTTP listen address is missing.
	ErrNoHTTPAddress = errors.New("HTTP server address is required")
)
