package schedule

import (
	"context"
	"iter"
	"slices"
	"strings"
	"sync"
	"time"

	"fitsync/internal/domain"

	"github.com/google/uuid"
)

// Service is the scheduling engine façade. It is the only component allowed
// to mutate the session store; the conflict checker and capacity ledger run
// under the same lock as the mutation they guard, so two booking attempts on
// the last open seat cannot both succeed.
type Service struct {
	mu        sync.RWMutex
	sessions  SessionStore
	locations LocationStore
	trainers  TrainerStore
	conflicts *ConflictChecker
	ledger    CapacityLedger
	events    EventSink
}

func NewService(sessions SessionStore, locations LocationStore, trainers TrainerStore, events EventSink) *Service {
	return &Service{
		sessions:  sessions,
		locations: locations,
		trainers:  trainers,
		conflicts: NewConflictChecker(sessions, locations),
		events:    events,
	}
}

func (s *Service) CreateSession(ctx context.Context, req CreateSessionRequest) (*domain.ClassSession, error) {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" || req.DurationMinutes <= 0 || req.Capacity <= 0 || req.Start.IsZero() {
		return nil, ErrValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireLocation(ctx, req.LocationID); err != nil {
		return nil, err
	}
	if err := s.requireTrainer(ctx, req.TrainerID); err != nil {
		return nil, err
	}

	now := time.Now()
	session := &domain.ClassSession{
		ID:         uuid.NewString(),
		LocationID: req.LocationID,
		TrainerID:  req.TrainerID,
		Title:      req.Title,
		Start:      req.Start,
		Duration:   time.Duration(req.DurationMinutes) * time.Minute,
		Capacity:   req.Capacity,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.conflicts.Check(ctx, session, ""); err != nil {
		return nil, err
	}

	if err := s.sessions.Upsert(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// UpdateSession applies the patch to a working copy, re-validates, and only
// then commits. A rejected patch leaves the stored session untouched.
func (s *Service) UpdateSession(ctx context.Context, id string, patch SessionPatch) (*domain.ClassSession, error) {
	if patch.empty() {
		return nil, ErrValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrNotFound
	}

	candidate := *current
	if patch.Title != nil {
		candidate.Title = strings.TrimSpace(*patch.Title)
		if candidate.Title == "" {
			return nil, ErrValidation
		}
	}
	if patch.Start != nil {
		candidate.Start = *patch.Start
	}
	if patch.DurationMinutes != nil {
		if *patch.DurationMinutes <= 0 {
			return nil, ErrValidation
		}
		candidate.Duration = time.Duration(*patch.DurationMinutes) * time.Minute
	}
	if patch.TrainerID != nil {
		candidate.TrainerID = *patch.TrainerID
		if err := s.requireTrainer(ctx, candidate.TrainerID); err != nil {
			return nil, err
		}
	}
	if patch.LocationID != nil {
		candidate.LocationID = *patch.LocationID
		if err := s.requireLocation(ctx, candidate.LocationID); err != nil {
			return nil, err
		}
	}
	if patch.Capacity != nil {
		if err := s.ledger.ValidateCapacity(*patch.Capacity, candidate.BookedCount); err != nil {
			return nil, err
		}
		candidate.Capacity = *patch.Capacity
	}

	if patch.touchesSchedule() {
		if err := s.conflicts.Check(ctx, &candidate, id); err != nil {
			return nil, err
		}
	}

	candidate.UpdatedAt = time.Now()
	if err := s.sessions.Upsert(ctx, &candidate); err != nil {
		return nil, err
	}
	return &candidate, nil
}

// DeleteSession removes the session and returns its id so callers can
// cascade into externally held booking records.
func (s *Service) DeleteSession(ctx context.Context, id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if session == nil {
		return "", ErrNotFound
	}

	removed, err := s.sessions.Remove(ctx, id)
	if err != nil {
		return "", err
	}
	if !removed {
		return "", ErrNotFound
	}

	if s.events != nil {
		_ = s.events.NotifySessionDeleted(ctx, session)
	}
	return id, nil
}

func (s *Service) GetSession(ctx context.Context, id string) (*domain.ClassSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrNotFound
	}
	out := *session
	return &out, nil
}

// QuerySessions returns the location's sessions whose interval intersects
// [from, to), ordered by start time then id. The sequence is restartable and
// iterates a snapshot taken at call time, so repeated walks are identical.
func (s *Service) QuerySessions(ctx context.Context, locationID string, from, to time.Time) (iter.Seq[domain.ClassSession], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.requireLocation(ctx, locationID); err != nil {
		return nil, err
	}

	rows, err := s.sessions.ForLocation(ctx, locationID, from, to)
	if err != nil {
		return nil, err
	}

	snapshot := make([]domain.ClassSession, 0, len(rows))
	for _, r := range rows {
		snapshot = append(snapshot, *r)
	}
	slices.SortFunc(snapshot, func(a, b domain.ClassSession) int {
		if c := a.Start.Compare(b.Start); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	return slices.Values(snapshot), nil
}

// RecordBooking increments the session's seat counter. It is one of the two
// operations permitted to change bookedCount.
func (s *Service) RecordBooking(ctx context.Context, sessionID string) (*domain.ClassSession, error) {
	return s.applyBooking(ctx, sessionID, s.ledger.Book)
}

func (s *Service) CancelBooking(ctx context.Context, sessionID string) (*domain.ClassSession, error) {
	return s.applyBooking(ctx, sessionID, s.ledger.Cancel)
}

func (s *Service) applyBooking(ctx context.Context, sessionID string, mutate func(*domain.ClassSession) error) (*domain.ClassSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrNotFound
	}

	candidate := *current
	if err := mutate(&candidate); err != nil {
		return nil, err
	}
	candidate.UpdatedAt = time.Now()

	if err := s.sessions.Upsert(ctx, &candidate); err != nil {
		return nil, err
	}

	if s.events != nil {
		wasFull := current.Status() == domain.SessionFull
		isFull := candidate.Status() == domain.SessionFull
		switch {
		case isFull && !wasFull:
			_ = s.events.NotifySessionFull(ctx, &candidate)
		case wasFull && !isFull:
			_ = s.events.NotifySessionReopened(ctx, &candidate)
		}
	}
	return &candidate, nil
}

func (s *Service) requireLocation(ctx context.Context, id string) error {
	loc, err := s.locations.Get(ctx, id)
	if err != nil {
		return err
	}
	if loc == nil {
		return ErrNotFound
	}
	return nil
}

func (s *Service) requireTrainer(ctx context.Context, id string) error {
	tr, err := s.trainers.Get(ctx, id)
	if err != nil {
		return err
	}
	if tr == nil {
		return ErrNotFound
	}
	return nil
}
