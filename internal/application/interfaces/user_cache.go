package interfaces

import (
	"context"
	"time"

	"school-backend/internal/domain/entities"
)

// UserCache is a best-effort read cache in front of the user store. A miss or
// a cache failure must never fail the request; callers fall through to the
// repository.
type UserCache interface {
	GetUser(ctx context.Context, id uint) (*entities.User, error)
	SetUser(ctx context.Context, user *entities.User, ttl time.Duration) error
	DeleteUser(ctx context.Context, id uint) error
}
