package schedule

import (
	"context"

	"fitsync/internal/domain"
)

// ConflictChecker decides whether a candidate session is admissible. It is a
// pure read-then-validate collaborator: the engine invokes it under the same
// serialization as the mutation it guards.
type ConflictChecker struct {
	sessions  SessionStore
	locations LocationStore
}

func NewConflictChecker(sessions SessionStore, locations LocationStore) *ConflictChecker {
	return &ConflictChecker{sessions: sessions, locations: locations}
}

// Check returns nil when the candidate is admissible, ErrTrainerDoubleBooked
// or ErrOutsideOperatingHours otherwise. excludeID names the session being
// edited so it never conflicts with itself; pass "" for a new session.
func (c *ConflictChecker) Check(ctx context.Context, candidate *domain.ClassSession, excludeID string) error {
	if err := c.checkOperatingHours(ctx, candidate); err != nil {
		return err
	}
	return c.checkTrainerOverlap(ctx, candidate, excludeID)
}

func (c *ConflictChecker) checkOperatingHours(ctx context.Context, candidate *domain.ClassSession) error {
	loc, err := c.locations.Get(ctx, candidate.LocationID)
	if err != nil {
		return err
	}
	if loc == nil {
		return ErrNotFound
	}

	open, close, ok := loc.Hours.WindowFor(candidate.Start)
	if !ok {
		return ErrOutsideOperatingHours
	}
	if candidate.Start.Before(open) || candidate.End().After(close) {
		return ErrOutsideOperatingHours
	}
	return nil
}

func (c *ConflictChecker) checkTrainerOverlap(ctx context.Context, candidate *domain.ClassSession, excludeID string) error {
	existing, err := c.sessions.ForTrainer(ctx, candidate.TrainerID)
	if err != nil {
		return err
	}

	for _, s := range existing {
		if s.ID == excludeID {
			continue
		}
		// Half-open intervals: a session ending exactly when another
		// starts is not a conflict.
		if s.Overlaps(candidate.Start, candidate.End()) {
			return ErrTrainerDoubleBooked
		}
	}
	return nil
}
