package domain

import "time"

type SessionStatus string

const (
	SessionScheduled SessionStatus = "scheduled"
	SessionFull      SessionStatus = "full"
)

// ClassSession is a single scheduled class occurrence. It references its
// location and trainer by id only; BookedCount is an anonymous seat counter
// maintained exclusively through the scheduling engine.
type ClassSession struct {
	ID          string        `json:"id"`
	LocationID  string        `json:"location_id" validate:"required"`
	TrainerID   string        `json:"trainer_id" validate:"required"`
	Title       string        `json:"title" validate:"required"`
	Start       time.Time     `json:"start" validate:"required"`
	Duration    time.Duration `json:"duration" validate:"required"`
	Capacity    int           `json:"capacity" validate:"required,gt=0"`
	BookedCount int           `json:"booked_count"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func (s *ClassSession) End() time.Time {
	return s.Start.Add(s.Duration)
}

func (s *ClassSession) Status() SessionStatus {
	if s.BookedCount >= s.Capacity {
		return SessionFull
	}
	return SessionScheduled
}

// Overlaps reports whether the session's [start, end) interval intersects
// [from, to). Touching endpoints do not overlap.
func (s *ClassSession) Overlaps(from, to time.Time) bool {
	return s.Start.Before(to) && from.Before(s.End())
}
