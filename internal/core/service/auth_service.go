package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/moviesflix/moviesflix-api/internal/core/domain"
	"github.com/moviesflix/moviesflix-api/internal/core/ports"
)

// TokenIssuer mints bearer tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID, username string) (string, error)
}

// AuthService implements credential-mode authentication: username lookup,
// bcrypt verification, token minting.
type AuthService struct {
	repo   ports.UserRepository
	issuer TokenIssuer
	log    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, issuer TokenIssuer, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, issuer: issuer, log: log}
}

// dummyHash keeps the not-found path as expensive as a real bcrypt compare
// so response timing does not reveal whether the username exists.
var dummyHash = func() []byte {
	h, err := bcrypt.GenerateFromPassword([]byte("moviesflix"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return h
}()

// Login verifies credentials and returns a signed token with the user.
// Unknown usernames and wrong passwords both produce ErrInvalidCredentials;
// the distinction is kept internal (debug log only).
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			s.log.Debug().Str("username", username).Msg("login rejected: unknown username")
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.log.Debug().Str("username", username).Msg("login rejected: wrong password")
		return "", nil, domain.ErrInvalidCredentials
	}

	tkn, err := s.issuer.Issue(user.ID, user.Username)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("username", user.Username).Msg("login succeeded")
	return tkn, user, nil
}
