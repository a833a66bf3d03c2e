package catalog

import (
	"context"
	"strings"
	"time"

	"fitsync/internal/domain"

	"github.com/google/uuid"
)

var weekdays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

type Service struct {
	locations LocationRepository
	trainers  TrainerRepository
}

func NewService(locations LocationRepository, trainers TrainerRepository) *Service {
	return &Service{locations: locations, trainers: trainers}
}

func (s *Service) CreateLocation(ctx context.Context, req CreateLocationRequest) (*domain.Location, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, ErrValidation
	}
	if err := validateHours(req.Hours); err != nil {
		return nil, err
	}

	now := time.Now()
	loc := &domain.Location{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Address:   strings.TrimSpace(req.Address),
		Hours:     req.Hours,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if loc.Hours == nil {
		loc.Hours = domain.OperatingHours{}
	}

	if err := s.locations.Upsert(ctx, loc); err != nil {
		return nil, err
	}
	return loc, nil
}

// UpdateLocationHours replaces the full weekly window set. Sessions already
// scheduled are not re-validated here; hours edits are an administrative
// out-of-band action.
func (s *Service) UpdateLocationHours(ctx context.Context, id string, hours domain.OperatingHours) (*domain.Location, error) {
	if err := validateHours(hours); err != nil {
		return nil, err
	}

	loc, err := s.locations.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, ErrNotFound
	}

	loc.Hours = hours
	loc.UpdatedAt = time.Now()
	if err := s.locations.Upsert(ctx, loc); err != nil {
		return nil, err
	}
	return loc, nil
}

func (s *Service) GetLocation(ctx context.Context, id string) (*domain.Location, error) {
	loc, err := s.locations.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, ErrNotFound
	}
	return loc, nil
}

func (s *Service) ListLocations(ctx context.Context) ([]*domain.Location, error) {
	return s.locations.List(ctx)
}

func (s *Service) CreateTrainer(ctx context.Context, req CreateTrainerRequest) (*domain.Trainer, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, ErrValidation
	}

	now := time.Now()
	tr := &domain.Trainer{
		ID:             uuid.NewString(),
		Name:           req.Name,
		Qualifications: req.Qualifications,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.trainers.Upsert(ctx, tr); err != nil {
		return nil, err
	}
	return tr, nil
}

func (s *Service) GetTrainer(ctx context.Context, id string) (*domain.Trainer, error) {
	tr, err := s.trainers.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if tr == nil {
		return nil, ErrNotFound
	}
	return tr, nil
}

func (s *Service) ListTrainers(ctx context.Context) ([]*domain.Trainer, error) {
	return s.trainers.List(ctx)
}

func validateHours(hours domain.OperatingHours) error {
	for day, window := range hours {
		if !weekdays[day] {
			return ErrValidation
		}
		if window.Open == "" && window.Close == "" {
			continue // explicitly closed
		}
		open, err := time.Parse("15:04", window.Open)
		if err != nil {
			return ErrValidation
		}
		close, err := time.Parse("15:04", window.Close)
		if err != nil {
			return ErrValidation
		}
		if !close.After(open) {
			return ErrValidation
		}
	}
	return nil
}
