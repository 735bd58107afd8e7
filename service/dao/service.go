package dao

import (
	"context"
)

// Service abstracts storage of council entities. Implementations must keep a
// stable insertion order for List – the registry and the ledger both rely on
// it to reconstruct submission and append order.
type Service[K comparable, T any] interface {
	// Insert stores a new record; it fails with ErrDuplicate when a record
	// with the same key already exists.
	Insert(ctx context.Context, t *T) error

	// Load returns a record by key, or nil when absent.
	Load(ctx context.Context, id K) (*T, error)

	// List returns all records in insertion order.
	List(ctx context.Context) ([]*T, error)
}
