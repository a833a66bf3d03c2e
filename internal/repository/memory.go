package repository

import (
	"context"
	"time"

	"fitsync/internal/domain"
	"fitsync/internal/memstore"
)

// Memory-backed stores satisfying the scheduling engine's store contract.
// Every Get/Upsert copies so callers never alias stored entities.

type MemorySessionStore struct {
	store *memstore.Store[*domain.ClassSession]
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		store: memstore.New(func(s *domain.ClassSession) string { return s.ID }),
	}
}

func (m *MemorySessionStore) Get(_ context.Context, id string) (*domain.ClassSession, error) {
	s, ok := m.store.Get(id)
	if !ok {
		return nil, nil
	}
	out := *s
	return &out, nil
}

func (m *MemorySessionStore) Upsert(_ context.Context, s *domain.ClassSession) error {
	cp := *s
	m.store.Upsert(&cp)
	return nil
}

func (m *MemorySessionStore) Remove(_ context.Context, id string) (bool, error) {
	return m.store.Remove(id), nil
}

func (m *MemorySessionStore) ForTrainer(_ context.Context, trainerID string) ([]*domain.ClassSession, error) {
	return m.collect(func(s *domain.ClassSession) bool {
		return s.TrainerID == trainerID
	}), nil
}

func (m *MemorySessionStore) ForLocation(_ context.Context, locationID string, from, to time.Time) ([]*domain.ClassSession, error) {
	return m.collect(func(s *domain.ClassSession) bool {
		return s.LocationID == locationID && s.Overlaps(from, to)
	}), nil
}

func (m *MemorySessionStore) collect(pred func(*domain.ClassSession) bool) []*domain.ClassSession {
	out := make([]*domain.ClassSession, 0)
	for s := range m.store.List(pred) {
		cp := *s
		out = append(out, &cp)
	}
	return out
}

type MemoryLocationStore struct {
	store *memstore.Store[*domain.Location]
}

func NewMemoryLocationStore() *MemoryLocationStore {
	return &MemoryLocationStore{
		store: memstore.New(func(l *domain.Location) string { return l.ID }),
	}
}

func (m *MemoryLocationStore) Get(_ context.Context, id string) (*domain.Location, error) {
	l, ok := m.store.Get(id)
	if !ok {
		return nil, nil
	}
	out := *l
	return &out, nil
}

func (m *MemoryLocationStore) Upsert(_ context.Context, l *domain.Location) error {
	cp := *l
	m.store.Upsert(&cp)
	return nil
}

func (m *MemoryLocationStore) List(_ context.Context) ([]*domain.Location, error) {
	out := make([]*domain.Location, 0)
	for l := range m.store.List(nil) {
		cp := *l
		out = append(out, &cp)
	}
	return out, nil
}

type MemoryTrainerStore struct {
	store *memstore.Store[*domain.Trainer]
}

func NewMemoryTrainerStore() *MemoryTrainerStore {
	return &MemoryTrainerStore{
		store: memstore.New(func(t *domain.Trainer) string { return t.ID }),
	}
}

func (m *MemoryTrainerStore) Get(_ context.Context, id string) (*domain.Trainer, error) {
	t, ok := m.store.Get(id)
	if !ok {
		return nil, nil
	}
	out := *t
	return &out, nil
}

func (m *MemoryTrainerStore) Upsert(_ context.Context, t *domain.Trainer) error {
	cp := *t
	m.store.Upsert(&cp)
	return nil
}

func (m *MemoryTrainerStore) List(_ context.Context) ([]*domain.Trainer, error) {
	out := make([]*domain.Trainer, 0)
	for t := range m.store.List(nil) {
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}
