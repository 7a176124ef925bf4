package ports

import (
	"context"

	"github.com/moviesflix/moviesflix-api/internal/core/domain"
)

// AuthService verifies credentials and mints bearer tokens.
type AuthService interface {
	// Login returns a signed token and the authenticated user. All
	// verification failures surface as domain.ErrInvalidCredentials so the
	// response never reveals whether the username exists.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
