package ports

import (
	"context"

	"github.com/moviesflix/moviesflix-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Username lookups are case-insensitive; uniqueness is enforced by the
// store (unique index), not by application-level read-then-write.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// UpdateUsername renames the account and returns the updated user.
	UpdateUsername(ctx context.Context, username, newUsername string) (*domain.User, error)
	Delete(ctx context.Context, username string) error
	// AddFavorite and RemoveFavorite are atomic set operations on the
	// favorites array ($addToSet / $pull); both return the updated user.
	AddFavorite(ctx context.Context, username, movieID string) (*domain.User, error)
	RemoveFavorite(ctx context.Context, username, movieID string) (*domain.User, error)
}
