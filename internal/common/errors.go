// Package common defines shared sentinel errors used across the
// storage, repository and service layers of Memory Vault. Callers
// should use errors.Is to match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Storage-level errors (medium unavailable, write failed).
	ErrorStorage = errors.New("storage error")

	// ErrorCorruptData indicates stored content that cannot be decoded.
	// It wraps ErrorStorage, so errors.Is(err, ErrorStorage) also holds.
	ErrorCorruptData = fmt.Errorf("%w: corrupt stored data", ErrorStorage)

	// Validation errors raised at the creation boundary.
	ErrorValidation = errors.New("validation error")
)
