package auth

import (
	"context"

	"fitsync/internal/domain"
)

// UserRepository — only the methods the auth service uses. GetByEmail
// returns (nil, nil) when no user matches.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
