package domain

import (
	"errors"
	"time"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("incorrect username or password")
var ErrInvalidUsername = errors.New("username must be at least 5 alphanumeric characters")

// User models a registered account. PasswordHash never leaves the process:
// it is excluded from JSON serialization entirely.
type User struct {
	ID             string     `json:"id"`
	Username       string     `json:"username"`
	Email          string     `json:"email,omitempty"`
	Name           string     `json:"name,omitempty"`
	Birthday       *time.Time `json:"birthday,omitempty"`
	PasswordHash   string     `json:"-"`
	FavoriteMovies []string   `json:"favorite_movies"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// HasFavorite reports whether movieID is already in the favorites set.
func (u *User) HasFavorite(movieID string) bool {
	for _, id := range u.FavoriteMovies {
		if id == movieID {
			return true
		}
	}
	return false
}
