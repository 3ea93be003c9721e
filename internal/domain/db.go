package domain

import "context"

// Database defines lifecycle operations for the underlying data store.
// The core only depends on this interface and the repository interfaces,
// keeping the store backend swappable.
type Database interface {
	Migrate(ctx context.Context) error
	Close() error
}
