package apperrors

import (
	"errors"
	"fmt"
)

// Error classes for the schema-context pipeline. Only ErrDatabase and plain
// unexpected errors are allowed to reach callers; cache and profiling
// failures are suppressed where they occur.
var (
	ErrDatabase  = errors.New("database error")
	ErrCache     = errors.New("cache error")
	ErrProfiling = errors.New("profiling error")
)

// Database wraps err so that errors.Is(err, ErrDatabase) holds.
func Database(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrDatabase, err)
}

// Cache wraps err so that errors.Is(err, ErrCache) holds.
func Cache(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrCache, err)
}

// Profiling wraps err so that errors.Is(err, ErrProfiling) holds.
func Profiling(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrProfiling, err)
}

// IsDatabase reports whether err belongs to the fatal database class.
func IsDatabase(err error) bool {
	return errors.Is(err, ErrDatabase)
}
