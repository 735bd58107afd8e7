package store

import (
	"context"
	"sync"

	"github.com/viant/council/service/dao"
)

// MemoryStore is a generic in-memory implementation of dao.Service. It keeps
// entities of type *T in an indexed arena: a map keyed by a comparable key K
// plus an insertion-order sequence. The key is obtained from the supplied
// keySelector function.
//
// The arena shape makes the append-only invariant enforceable: Insert is the
// only mutation, it is atomic with the duplicate check, and List always
// replays records in the order they were first stored.
type MemoryStore[K comparable, T any] struct {
	mu          sync.RWMutex
	records     map[K]*T
	order       []K
	keySelector func(*T) K
}

// NewMemoryStore creates a new MemoryStore.
// keySelector extracts the entity key (usually the ID field) from a value.
func NewMemoryStore[K comparable, T any](keySelector func(*T) K) *MemoryStore[K, T] {
	return &MemoryStore[K, T]{
		records:     make(map[K]*T),
		keySelector: keySelector,
	}
}

// Insert stores a new record; the duplicate check and the insert happen under
// one lock so concurrent writers cannot interleave.
func (s *MemoryStore[K, T]) Insert(_ context.Context, v *T) error {
	if v == nil {
		return dao.ErrNilEntity
	}
	key := s.keySelector(v)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[key]; ok {
		return dao.ErrDuplicate
	}
	s.records[key] = v
	s.order = append(s.order, key)
	return nil
}

// Load returns a record by key, or nil when absent.
func (s *MemoryStore[K, T]) Load(_ context.Context, key K) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.records[key]
	if !ok {
		return nil, nil
	}
	return v, nil
}

// List returns all stored records in insertion order. The snapshot is taken
// under the read lock so a concurrent Insert is either fully visible or not
// at all.
func (s *MemoryStore[K, T]) List(_ context.Context) ([]*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*T, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.records[key])
	}
	return out, nil
}

var _ dao.Service[string, any] = (*MemoryStore[string, any])(nil)
