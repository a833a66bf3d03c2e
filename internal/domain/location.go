package domain

import "time"

// DayHours is one weekday's open/close window in "15:04" wall-clock form.
// An empty Open or Close means the location is closed that day.
type DayHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// OperatingHours maps lowercase weekday names ("monday".."sunday") to that
// day's window. Days without an entry are closed.
type OperatingHours map[string]DayHours

type Location struct {
	ID        string         `json:"id"`
	Name      string         `json:"name" validate:"required"`
	Address   string         `json:"address,omitempty"`
	Hours     OperatingHours `json:"hours"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// WindowFor resolves the location's open/close instants for the calendar day
// containing t, in t's own timezone. ok is false when the location is closed
// that day or has no hours configured.
func (h OperatingHours) WindowFor(t time.Time) (open, close time.Time, ok bool) {
	if len(h) == 0 {
		return time.Time{}, time.Time{}, false
	}

	day, exists := h[WeekdayKey(t.Weekday())]
	if !exists || day.Open == "" || day.Close == "" {
		return time.Time{}, time.Time{}, false
	}

	openT, err := time.Parse("15:04", day.Open)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	closeT, err := time.Parse("15:04", day.Close)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}

	open = time.Date(t.Year(), t.Month(), t.Day(), openT.Hour(), openT.Minute(), 0, 0, t.Location())
	close = time.Date(t.Year(), t.Month(), t.Day(), closeT.Hour(), closeT.Minute(), 0, 0, t.Location())
	if !close.After(open) {
		return time.Time{}, time.Time{}, false
	}
	return open, close, true
}

func WeekdayKey(w time.Weekday) string {
	switch w {
	case time.Monday:
		return "monday"
	case time.Tuesday:
		return "tuesday"
	case time.Wednesday:
		return "wednesday"
	case time.Thursday:
		return "thursday"
	case time.Friday:
		return "friday"
	case time.Saturday:
		return "saturday"
	default:
		return "sunday"
	}
}
