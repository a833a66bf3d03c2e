package schedule

import (
	"context"
	"time"

	"fitsync/internal/domain"
)

// SessionStore is the session half of the entity-store contract the engine
// mutates. Get returns (nil, nil) when the id is unknown; storage errors are
// reserved for infrastructure failures.
type SessionStore interface {
	Get(ctx context.Context, id string) (*domain.ClassSession, error)
	Upsert(ctx context.Context, s *domain.ClassSession) error
	Remove(ctx context.Context, id string) (bool, error)
	// ForTrainer returns every session taught by the trainer, any location.
	ForTrainer(ctx context.Context, trainerID string) ([]*domain.ClassSession, error)
	// ForLocation returns sessions at the location whose [start, end)
	// interval intersects [from, to).
	ForLocation(ctx context.Context, locationID string, from, to time.Time) ([]*domain.ClassSession, error)
}

type LocationStore interface {
	Get(ctx context.Context, id string) (*domain.Location, error)
	Upsert(ctx context.Context, l *domain.Location) error
	List(ctx context.Context) ([]*domain.Location, error)
}

type TrainerStore interface {
	Get(ctx context.Context, id string) (*domain.Trainer, error)
	Upsert(ctx context.Context, t *domain.Trainer) error
	List(ctx context.Context) ([]*domain.Trainer, error)
}

// EventSink receives engine events after a successful commit. Implementations
// must not block; a nil sink is valid and means nobody is listening.
type EventSink interface {
	NotifySessionDeleted(ctx context.Context, s *domain.ClassSession) error
	NotifySessionFull(ctx context.Context, s *domain.ClassSession) error
	NotifySessionReopened(ctx context.Context, s *domain.ClassSession) error
}
