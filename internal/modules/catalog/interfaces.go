package catalog

import (
	"context"

	"fitsync/internal/domain"
)

// LocationRepository — only the methods the catalog service uses.
type LocationRepository interface {
	Get(ctx context.Context, id string) (*domain.Location, error)
	Upsert(ctx context.Context, l *domain.Location) error
	List(ctx context.Context) ([]*domain.Location, error)
}

type TrainerRepository interface {
	Get(ctx context.Context, id string) (*domain.Trainer, error)
	Upsert(ctx context.Context, t *domain.Trainer) error
	List(ctx context.Context) ([]*domain.Trainer, error)
}
