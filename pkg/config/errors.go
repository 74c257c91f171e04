package config

import "errors"

// Configuration-related error definitions using sentinel errors pattern
var (
	ErrConfigNotFound = errors.New("configuration file not found")
	ErrInvalidFormat  = errors.New("invalid configuration file format")
	ErrInvalidValue   = errors.New("invalid configuration value")

	// Credential store errors
	ErrCredentialRead  = errors.New("failed to read credential file")
	ErrCredentialWrite = errors.New("failed to write credential file")
)
