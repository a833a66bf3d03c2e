// Package memstore provides the in-process entity store backing the
// scheduling engine when no database is configured. It is pure storage:
// no validation, no domain rules.
package memstore

import (
	"iter"
	"sync"
)

// Store is an identity -> entity map that remembers insertion order.
// Callers provide the id accessor once at construction.
type Store[T any] struct {
	mu   sync.RWMutex
	byID map[string]T
	ids  []string
	id   func(T) string
}

func New[T any](id func(T) string) *Store[T] {
	return &Store[T]{
		byID: make(map[string]T),
		id:   id,
	}
}

func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.byID[id]
	return v, ok
}

// Upsert inserts or replaces. A replaced entity keeps its original position
// in insertion order.
func (s *Store[T]) Upsert(v T) {
	id := s.id(v)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[id]; !exists {
		s.ids = append(s.ids, id)
	}
	s.byID[id] = v
}

func (s *Store[T]) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[id]; !exists {
		return false
	}
	delete(s.byID, id)
	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			break
		}
	}
	return true
}

// List yields entities matching pred in insertion order. A nil pred matches
// everything. The sequence is restartable; each restart walks a snapshot of
// the order taken when iteration begins.
func (s *Store[T]) List(pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		s.mu.RLock()
		ids := make([]string, len(s.ids))
		copy(ids, s.ids)
		s.mu.RUnlock()

		for _, id := range ids {
			v, ok := s.Get(id)
			if !ok {
				continue
			}
			if pred != nil && !pred(v) {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.byID)
}
