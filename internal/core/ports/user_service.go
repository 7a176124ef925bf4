package ports

import (
	"context"
	"time"

	"github.com/moviesflix/moviesflix-api/internal/core/domain"
)

// RegisterInput carries all data needed to create a new account.
type RegisterInput struct {
	Username string
	Password string
	Email    string
	Name     string
	Birthday *time.Time
}

// UserService defines use-case operations on user accounts.
type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Rename changes the account's username after format validation.
	Rename(ctx context.Context, username, newUsername string) (*domain.User, error)
	Delete(ctx context.Context, username string) error
	AddFavorite(ctx context.Context, username, movieID string) (*domain.User, error)
	RemoveFavorite(ctx context.Context, username, movieID string) (*domain.User, error)
}
