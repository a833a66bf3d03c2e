package schedule

import "time"

type CreateSessionRequest struct {
	LocationID      string    `json:"location_id" binding:"required"`
	TrainerID       string    `json:"trainer_id" binding:"required"`
	Title           string    `json:"title" binding:"required"`
	Start           time.Time `json:"start" binding:"required"`
	DurationMinutes int       `json:"duration_minutes" binding:"required,gt=0"`
	Capacity        int       `json:"capacity" binding:"required,gt=0"`
}

// SessionPatch is a partial update; nil fields keep their current value.
type SessionPatch struct {
	Title           *string    `json:"title"`
	Start           *time.Time `json:"start"`
	DurationMinutes *int       `json:"duration_minutes"`
	TrainerID       *string    `json:"trainer_id"`
	LocationID      *string    `json:"location_id"`
	Capacity        *int       `json:"capacity"`
}

func (p SessionPatch) empty() bool {
	return p.Title == nil && p.Start == nil && p.DurationMinutes == nil &&
		p.TrainerID == nil && p.LocationID == nil && p.Capacity == nil
}

// touchesSchedule reports whether the patch changes anything the conflict
// checker must re-examine.
func (p SessionPatch) touchesSchedule() bool {
	return p.Start != nil || p.DurationMinutes != nil || p.TrainerID != nil || p.LocationID != nil
}
