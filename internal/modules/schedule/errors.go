package schedule

import "errors"

var (
	ErrValidation            = errors.New("validation error")
	ErrNotFound              = errors.New("not found")
	ErrTrainerDoubleBooked   = errors.New("trainer already booked for an overlapping session")
	ErrOutsideOperatingHours = errors.New("session falls outside location operating hours")
	ErrCapacityViolation     = errors.New("capacity below current booked count")
	ErrSessionFull           = errors.New("session is full")
	ErrBookingUnderflow      = errors.New("no bookings to cancel")
)
