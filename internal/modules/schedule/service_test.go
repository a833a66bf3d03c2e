package schedule

import (
	"context"
	"testing"
	"time"

	"fitsync/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock stores

type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Get(ctx context.Context, id string) (*domain.ClassSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClassSession), args.Error(1)
}

func (m *MockSessionStore) Upsert(ctx context.Context, s *domain.ClassSession) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSessionStore) Remove(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockSessionStore) ForTrainer(ctx context.Context, trainerID string) ([]*domain.ClassSession, error) {
	args := m.Called(ctx, trainerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ClassSession), args.Error(1)
}

func (m *MockSessionStore) ForLocation(ctx context.Context, locationID string, from, to time.Time) ([]*domain.ClassSession, error) {
	args := m.Called(ctx, locationID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ClassSession), args.Error(1)
}

type MockLocationStore struct {
	mock.Mock
}

func (m *MockLocationStore) Get(ctx context.Context, id string) (*domain.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Location), args.Error(1)
}

func (m *MockLocationStore) Upsert(ctx context.Context, l *domain.Location) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLocationStore) List(ctx context.Context) ([]*domain.Location, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Location), args.Error(1)
}

type MockTrainerStore struct {
	mock.Mock
}

func (m *MockTrainerStore) Get(ctx context.Context, id string) (*domain.Trainer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trainer), args.Error(1)
}

func (m *MockTrainerStore) Upsert(ctx context.Context, t *domain.Trainer) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTrainerStore) List(ctx context.Context) ([]*domain.Trainer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Trainer), args.Error(1)
}

type MockEventSink struct {
	mock.Mock
}

func (m *MockEventSink) NotifySessionDeleted(ctx context.Context, s *domain.ClassSession) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockEventSink) NotifySessionFull(ctx context.Context, s *domain.ClassSession) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockEventSink) NotifySessionReopened(ctx context.Context, s *domain.ClassSession) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

// Fixtures

func allWeekHours(open, close string) domain.OperatingHours {
	hours := domain.OperatingHours{}
	for _, day := range []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"} {
		hours[day] = domain.DayHours{Open: open, Close: close}
	}
	return hours
}

func testLocation(id string) *domain.Location {
	return &domain.Location{ID: id, Name: "Downtown", Hours: allWeekHours("09:00", "21:00")}
}

func testTrainer(id string) *domain.Trainer {
	return &domain.Trainer{ID: id, Name: "Maya Ortiz"}
}

// 2026-12-28 is a Monday.
func mondayAt(hour, min int) time.Time {
	return time.Date(2026, 12, 28, hour, min, 0, 0, time.UTC)
}

func existingSession(id, trainerID, locationID string, start time.Time, duration time.Duration) *domain.ClassSession {
	return &domain.ClassSession{
		ID:         id,
		LocationID: locationID,
		TrainerID:  trainerID,
		Title:      "Morning Yoga",
		Start:      start,
		Duration:   duration,
		Capacity:   20,
	}
}

func newTestService(sessions *MockSessionStore, locations *MockLocationStore, trainers *MockTrainerStore, events EventSink) *Service {
	return NewService(sessions, locations, trainers, events)
}

// CreateSession

func TestCreateSession_Success(t *testing.T) {
	sessions := new(MockSessionStore)
	locations := new(MockLocationStore)
	trainers := new(MockTrainerStore)

	locations.On("Get", mock.Anything, "loc-1").Return(testLocation("loc-1"), nil)
	trainers.On("Get", mock.Anything, "tr-1").Return(testTrainer("tr-1"), nil)
	sessions.On("ForTrainer", mock.Anything, "tr-1").Return([]*domain.ClassSession{}, nil)
	sessions.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	service := newTestService(sessions, locations, trainers, nil)

	session, err := service.CreateSession(context.Background(), CreateSessionRequest{
		LocationID:      "loc-1",
		TrainerID:       "tr-1",
		Title:           "Morning Yoga",
		Start:           mondayAt(9, 0),
		DurationMinutes: 60,
		Capacity:        20,
	})

	assert.NoError(t, err)
	assert.NotNil(t, session)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, 0, session.BookedCount)
	assert.Equal(t, time.Hour, session.Duration)
	assert.Equal(t, domain.SessionScheduled, session.Status())
	sessions.AssertExpectations(t)
}

func TestCreateSession_TrainerDoubleBooked(t *testing.T) {
	sessions := new(MockSessionStore)
	locations := new(MockLocationStore)
	trainers := new(MockTrainerStore)

	locations.On("Get", mock.Anything, "loc-1").Return(testLocation("loc-1"), nil)
	trainers.On("Get", mock.Anything, "tr-1").Return(testTrainer("tr-1"), nil)
	// Trainer already teaches 09:00-10:00; candidate is 09:30-10:30.
	sessions.On("ForTrainer", mock.Anything, "tr-1").Return([]*domain.ClassSession{
		existingSession("s-1", "tr-1", "loc-1", mondayAt(9, 0), time.Hour),
	}, nil)

	service := newTestService(sessions, locations, trainers, nil)

	_, err := service.CreateSession(context.Background(), CreateSessionRequest{
		LocationID:      "loc-1",
		TrainerID:       "tr-1",
		Title:           "Stretch",
		Start:           mondayAt(9, 30),
		DurationMinutes: 60,
		Capacity:        10,
	})

	assert.ErrorIs(t, err, ErrTrainerDoubleBooked)
	sessions.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestCreateSession_BackToBackAllowed(t *testing.T) {
	sessions := new(MockSessionStore)
	locations := new(MockLocationStore)
	trainers := new(MockTrainerStore)

	locations.On("Get", mock.Anything, "loc-1").Return(testLocation("loc-1"), nil)
	trainers.On("Get", mock.Anything, "tr-1").Return(testTrainer("tr-1"), nil)
	// Existing 09:00-10:00 ends exactly when the candidate starts.
	sessions.On("ForTrainer", mock.Anything, "tr-1").Return([]*domain.ClassSession{
		existingSession("s-1", "tr-1", "loc-1", mondayAt(9, 0), time.Hour),
	}, nil)
	sessions.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	service := newTestService(sessions, locations, trainers, nil)

	session, err := service.CreateSession(context.Background(), CreateSessionRequest{
		LocationID:      "loc-1",
		TrainerID:       "tr-1",
		Title:           "Stretch",
		Start:           mondayAt(10, 0),
		DurationMinutes: 60,
		Capacity:        10,
	})

	assert.NoError(t, err)
	assert.NotNil(t, session)
	sessions.AssertExpectations(t)
}

func TestCreateSession_OutsideOperatingHours(t *testing.T) {
	sessions := new(MockSessionStore)
	locations := new(MockLocationStore)
	trainers := new(MockTrainerStore)

	locations.On("Get", mock.Anything, "loc-1").Return(testLocation("loc-1"), nil)
	trainers.On("Get", mock.Anything, "tr-1").Return(testTrainer("tr-1"), nil)

	service := newTestService(sessions, locations, trainers, nil)

	// Location opens 09:00.
	_, err := service.CreateSession(context.Background(), CreateSessionRequest{
		LocationID:      "loc-1",
		TrainerID:       "tr-1",
		Title:           "Sunrise Yoga",
		Start:           mondayAt(5, 0),
		DurationMinutes: 60,
		Capacity:        10,
	})

	assert.ErrorIs(t, err, ErrOutsideOperatingHours)
	sessions.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestCreateSession_LocationMissing(t *testing.T) {
	sessions := new(MockSessionStore)
	locations := new(MockLocationStore)
	trainers := new(MockTrainerStore)

	locations.On("Get", mock.Anything, "ghost").Return(nil, nil)

	service := newTestService(sessions, locations, trainers, nil)

	_, err := service.CreateSession(context.Background(), CreateSessionRequest{
		LocationID:      "ghost",
		TrainerID:       "tr-1",
		Title:           "Spin",
		Start:           mondayAt(10, 0),
		DurationMinutes: 45,
		Capacity:        15,
	})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateSession_Validation(t *testing.T) {
	service := newTestService(new(MockSessionStore), new(MockLocationStore), new(MockTrainerStore), nil)

	_, err := service.CreateSession(context.Background(), CreateSessionRequest{
		LocationID:      "loc-1",
		TrainerID:       "tr-1",
		Title:           "   ",
		Start:           mondayAt(10, 0),
		DurationMinutes: 45,
		Capacity:        15,
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.CreateSession(context.Background(), CreateSessionRequest{
		LocationID:      "loc-1",
		TrainerID:       "tr-1",
		Title:           "Spin",
		Start:           mondayAt(10, 0),
		DurationMinutes: 45,
		Capacity:        0,
	})
	assert.ErrorIs(t, err, ErrValidation)
}

// UpdateSession

func TestUpdateSession_CapacityBelowBooked(t *testing.T) {
	sessions := new(MockSessionStore)
	locations := new(MockLocationStore)
	trainers := new(MockTrainerStore)

	current := existingSession("s-1", "tr-1", "loc-1", mondayAt(9, 0), time.Hour)
	current.BookedCount = 3
	sessions.On("Get", mock.Anything, "s-1").Return(current, nil)

	service := newTestService(sessions, locations, trainers, nil)

	newCap := 2
	_, err := service.UpdateSession(context.Background(), "s-1", SessionPatch{Capacity: &newCap})

	assert.ErrorIs(t, err, ErrCapacityViolation)
	sessions.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestUpdateSession_ConflictLeavesOriginal(t *testing.T) {
	sessions := new(MockSessionStore)
	locations := new(MockLocationStore)
	trainers := new(MockTrainerStore)

	current := existingSession("s-1", "tr-1", "loc-1", mondayAt(9, 0), time.Hour)
	other := existingSession("s-2", "tr-1", "loc-1", mondayAt(11, 0), time.Hour)

	sessions.On("Get", mock.Anything, "s-1").Return(current, nil)
	locations.On("Get", mock.Anything, "loc-1").Return(testLocation("loc-1"), nil)
	sessions.On("ForTrainer", mock.Anything, "tr-1").Return([]*domain.ClassSession{current, other}, nil)

	service := newTestService(sessions, locations, trainers, nil)

	moved := mondayAt(11, 30)
	_, err := service.UpdateSession(context.Background(), "s-1", SessionPatch{Start: &moved})

	assert.ErrorIs(t, err, ErrTrainerDoubleBooked)
	sessions.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestUpdateSession_ExcludesItselfFromOverlapScan(t *testing.T) {
	sessions := new(MockSessionStore)
	locations := new(MockLocationStore)
	trainers := new(MockTrainerStore)

	current := existingSession("s-1", "tr-1", "loc-1", mondayAt(9, 0), time.Hour)
	sessions.On("Get", mock.Anything, "s-1").Return(current, nil)
	locations.On("Get", mock.Anything, "loc-1").Return(testLocation("loc-1"), nil)
	sessions.On("ForTrainer", mock.Anything, "tr-1").Return([]*domain.ClassSession{current}, nil)
	sessions.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	service := newTestService(sessions, locations, trainers, nil)

	// Shift by 30 minutes; still overlaps its own stored copy, which must
	// be excluded from the scan.
	moved := mondayAt(9, 30)
	updated, err := service.UpdateSession(context.Background(), "s-1", SessionPatch{Start: &moved})

	assert.NoError(t, err)
	assert.Equal(t, moved, updated.Start)
	sessions.AssertExpectations(t)
}

func TestUpdateSession_NotFound(t *testing.T) {
	sessions := new(MockSessionStore)
	sessions.On("Get", mock.Anything, "ghost").Return(nil, nil)

	service := newTestService(sessions, new(MockLocationStore), new(MockTrainerStore), nil)

	title := "Renamed"
	_, err := service.UpdateSession(context.Background(), "ghost", SessionPatch{Title: &title})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateSession_EmptyPatch(t *testing.T) {
	service := newTestService(new(MockSessionStore), new(MockLocationStore), new(MockTrainerStore), nil)

	_, err := service.UpdateSession(context.Background(), "s-1", SessionPatch{})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateSession_TitleOnlySkipsConflictScan(t *testing.T) {
	sessions := new(MockSessionStore)

	current := existingSession("s-1", "tr-1", "loc-1", mondayAt(9, 0), time.Hour)
	sessions.On("Get", mock.Anything, "s-1").Return(current, nil)
	sessions.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	service := newTestService(sessions, new(MockLocationStore), new(MockTrainerStore), nil)

	title := "Power Yoga"
	updated, err := service.UpdateSession(context.Background(), "s-1", SessionPatch{Title: &title})

	assert.NoError(t, err)
	assert.Equal(t, "Power Yoga", updated.Title)
	sessions.AssertNotCalled(t, "ForTrainer", mock.Anything, mock.Anything)
}

// DeleteSession

func TestDeleteSession_ReturnsIDAndNotifies(t *testing.T) {
	sessions := new(MockSessionStore)
	events := new(MockEventSink)

	current := existingSession("s-1", "tr-1", "loc-1", mondayAt(9, 0), time.Hour)
	sessions.On("Get", mock.Anything, "s-1").Return(current, nil)
	sessions.On("Remove", mock.Anything, "s-1").Return(true, nil)
	events.On("NotifySessionDeleted", mock.Anything, current).Return(nil)

	service := newTestService(sessions, new(MockLocationStore), new(MockTrainerStore), events)

	id, err := service.DeleteSession(context.Background(), "s-1")

	assert.NoError(t, err)
	assert.Equal(t, "s-1", id)
	events.AssertExpectations(t)
}

func TestDeleteSession_NotFound(t *testing.T) {
	sessions := new(MockSessionStore)
	sessions.On("Get", mock.Anything, "ghost").Return(nil, nil)

	service := newTestService(sessions, new(MockLocationStore), new(MockTrainerStore), nil)

	_, err := service.DeleteSession(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

// Booking counter

func TestRecordBooking_SessionFull(t *testing.T) {
	sessions := new(MockSessionStore)

	current := existingSession("s-1", "tr-1", "loc-1", mondayAt(9, 0), time.Hour)
	current.Capacity = 10
	current.BookedCount = 10
	sessions.On("Get", mock.Anything, "s-1").Return(current, nil)

	service := newTestService(sessions, new(MockLocationStore), new(MockTrainerStore), nil)

	_, err := service.RecordBooking(context.Background(), "s-1")

	assert.ErrorIs(t, err, ErrSessionFull)
	assert.Equal(t, 10, current.BookedCount)
	sessions.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestCancelBooking_ReopensFullSession(t *testing.T) {
	sessions := new(MockSessionStore)
	events := new(MockEventSink)

	current := existingSession("s-1", "tr-1", "loc-1", mondayAt(9, 0), time.Hour)
	current.Capacity = 10
	current.BookedCount = 10
	sessions.On("Get", mock.Anything, "s-1").Return(current, nil)
	sessions.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	events.On("NotifySessionReopened", mock.Anything, mock.Anything).Return(nil)

	service := newTestService(sessions, new(MockLocationStore), new(MockTrainerStore), events)

	updated, err := service.CancelBooking(context.Background(), "s-1")

	assert.NoError(t, err)
	assert.Equal(t, 9, updated.BookedCount)
	assert.Equal(t, domain.SessionScheduled, updated.Status())
	events.AssertExpectations(t)
}

func TestRecordBooking_BecomesFull(t *testing.T) {
	sessions := new(MockSessionStore)
	events := new(MockEventSink)

	current := existingSession("s-1", "tr-1", "loc-1", mondayAt(9, 0), time.Hour)
	current.Capacity = 2
	current.BookedCount = 1
	sessions.On("Get", mock.Anything, "s-1").Return(current, nil)
	sessions.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	events.On("NotifySessionFull", mock.Anything, mock.Anything).Return(nil)

	service := newTestService(sessions, new(MockLocationStore), new(MockTrainerStore), events)

	updated, err := service.RecordBooking(context.Background(), "s-1")

	assert.NoError(t, err)
	assert.Equal(t, 2, updated.BookedCount)
	assert.Equal(t, domain.SessionFull, updated.Status())
	events.AssertExpectations(t)
}

func TestCancelBooking_Underflow(t *testing.T) {
	sessions := new(MockSessionStore)

	current := existingSession("s-1", "tr-1", "loc-1", mondayAt(9, 0), time.Hour)
	sessions.On("Get", mock.Anything, "s-1").Return(current, nil)

	service := newTestService(sessions, new(MockLocationStore), new(MockTrainerStore), nil)

	_, err := service.CancelBooking(context.Background(), "s-1")

	assert.ErrorIs(t, err, ErrBookingUnderflow)
	assert.Equal(t, 0, current.BookedCount)
	sessions.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

// QuerySessions

func TestQuerySessions_OrderedAndRestartable(t *testing.T) {
	sessions := new(MockSessionStore)
	locations := new(MockLocationStore)

	locations.On("Get", mock.Anything, "loc-1").Return(testLocation("loc-1"), nil)

	// Store returns them out of order; two share a start time.
	rows := []*domain.ClassSession{
		existingSession("s-b", "tr-2", "loc-1", mondayAt(10, 0), time.Hour),
		existingSession("s-c", "tr-3", "loc-1", mondayAt(9, 0), time.Hour),
		existingSession("s-a", "tr-1", "loc-1", mondayAt(10, 0), time.Hour),
	}
	sessions.On("ForLocation", mock.Anything, "loc-1", mock.Anything, mock.Anything).Return(rows, nil)

	service := newTestService(sessions, locations, new(MockTrainerStore), nil)

	seq, err := service.QuerySessions(context.Background(), "loc-1", mondayAt(0, 0), mondayAt(23, 59))
	assert.NoError(t, err)

	var first []string
	for s := range seq {
		first = append(first, s.ID)
	}
	assert.Equal(t, []string{"s-c", "s-a", "s-b"}, first)

	var second []string
	for s := range seq {
		second = append(second, s.ID)
	}
	assert.Equal(t, first, second)
}
