package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrStoreUnavailable means the database could not be opened or migrated,
	// or the store has been closed.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrIOFailure means a statement failed against an open store.
	ErrIOFailure = errors.New("store i/o failure")

	errClosed = fmt.Errorf("%w: store closed", ErrStoreUnavailable)
)

// ioFailure keeps both the classification and the driver error reachable through errors.Is.
func ioFailure(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrIOFailure, err)
}
