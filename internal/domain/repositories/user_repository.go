package repositories

import (
	"context"

	"school-backend/internal/domain/entities"
)

// UserRepository is the persistence port for users. Find* methods return
// (nil, nil) when no record matches; only store failures produce an error.
type UserRepository interface {
	Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error)
	FindByID(ctx context.Context, id uint) (*entities.User, error)
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	List(ctx context.Context, offset, limit int) ([]entities.User, error)
	Update(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error)
	Delete(ctx context.Context, id uint) error
}
