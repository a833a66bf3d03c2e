package domain

import "time"

type ScheduleEventType string

const (
	// SessionDeleted lets the booking surface invalidate any records it
	// still holds against the removed session.
	EventSessionDeleted ScheduleEventType = "session_deleted"
	// SessionFull / SessionReopened track the bookedCount == capacity edge
	// so calendar clients can refresh seat counts without polling.
	EventSessionFull     ScheduleEventType = "session_full"
	EventSessionReopened ScheduleEventType = "session_reopened"
)

type ScheduleEvent struct {
	Type       ScheduleEventType `json:"type"`
	SessionID  string            `json:"session_id"`
	LocationID string            `json:"location_id"`
	Booked     int               `json:"booked"`
	Capacity   int               `json:"capacity"`
	At         time.Time         `json:"at"`
}
