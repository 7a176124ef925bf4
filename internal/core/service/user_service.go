package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/moviesflix/moviesflix-api/internal/core/domain"
	"github.com/moviesflix/moviesflix-api/internal/core/ports"
)

const minUsernameLen = 5

// UserService implements account registration and mutation use cases.
type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

// validUsername enforces the account name format: at least five characters,
// alphanumeric only.
func validUsername(username string) bool {
	if len(username) < minUsernameLen {
		return false
	}
	for _, r := range username {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

// Register hashes the password and persists a new account. Uniqueness is
// enforced by the repository (case-insensitive); a duplicate surfaces as
// domain.ErrUserExists.
func (s *UserService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if !validUsername(input.Username) {
		return nil, domain.ErrInvalidUsername
	}
	if input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:       input.Username,
		Email:          input.Email,
		Name:           input.Name,
		Birthday:       input.Birthday,
		PasswordHash:   string(hash),
		FavoriteMovies: []string{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", created.Username).Msg("user registered")
	return created, nil
}

// Rename changes the account's username after format validation.
func (s *UserService) Rename(ctx context.Context, username, newUsername string) (*domain.User, error) {
	if !validUsername(newUsername) {
		return nil, domain.ErrInvalidUsername
	}

	updated, err := s.repo.UpdateUsername(ctx, username, newUsername)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("old", username).Str("new", newUsername).Msg("username changed")
	return updated, nil
}

// Delete removes the account.
func (s *UserService) Delete(ctx context.Context, username string) error {
	if err := s.repo.Delete(ctx, username); err != nil {
		return err
	}
	s.log.Info().Str("username", username).Msg("account deleted")
	return nil
}

// AddFavorite adds movieID to the user's favorites set. Adding an id that
// is already present is a no-op (set semantics, atomic in the store).
func (s *UserService) AddFavorite(ctx context.Context, username, movieID string) (*domain.User, error) {
	return s.repo.AddFavorite(ctx, username, movieID)
}

// RemoveFavorite removes movieID from the user's favorites set. Removing an
// absent id is a no-op and returns the unchanged user.
func (s *UserService) RemoveFavorite(ctx context.Context, username, movieID string) (*domain.User, error) {
	return s.repo.RemoveFavorite(ctx, username, movieID)
}
