package schedule

import "fitsync/internal/domain"

// CapacityLedger owns the bookedCount-vs-capacity invariant. It mutates the
// session passed to it in place; the engine hands it a working copy and only
// commits that copy after the ledger accepts.
type CapacityLedger struct{}

// ValidateCapacity checks an administrator's capacity edit against the
// current booked count.
func (CapacityLedger) ValidateCapacity(newCapacity, bookedCount int) error {
	if newCapacity <= 0 {
		return ErrValidation
	}
	if newCapacity < bookedCount {
		return ErrCapacityViolation
	}
	return nil
}

func (CapacityLedger) Book(s *domain.ClassSession) error {
	if s.BookedCount >= s.Capacity {
		return ErrSessionFull
	}
	s.BookedCount++
	return nil
}

func (CapacityLedger) Cancel(s *domain.ClassSession) error {
	if s.BookedCount <= 0 {
		return ErrBookingUnderflow
	}
	s.BookedCount--
	return nil
}
