// Package store provides chat history persistence.
package store

import (
	"context"

	"github.com/triagelabs/healthbot/internal/domain"
)

// Store is the chat history repository. Implementations must be safe
// for concurrent use.
type Store interface {
	// Append adds one exchange to the end of the history.
	Append(ctx context.Context, entry domain.Entry) error

	// List returns every entry, oldest first. A missing or corrupt
	// history reads as an empty slice, not an error; the slice is
	// never nil.
	List(ctx context.Context) ([]domain.Entry, error)

	// Clear removes all entries.
	Clear(ctx context.Context) error

	// Ping verifies the backing storage is reachable and returns an
	// error if it is not.
	Ping(ctx context.Context) error

	// Close releases any resources held by the store.
	Close() error
}
