package ports

import (
	"context"

	"github.com/moviesflix/moviesflix-api/internal/core/domain"
)

// MovieService defines read-only use cases over the movie catalog.
type MovieService interface {
	ListMovies(ctx context.Context) ([]domain.Movie, error)
	GetByTitle(ctx context.Context, title string) (*domain.Movie, error)
	GetGenre(ctx context.Context, name string) (*domain.Genre, error)
	GetDirector(ctx context.Context, name string) (*domain.Director, error)
	// MovieOfTheDay returns the day's pick: one random movie, stable for a
	// full UTC day when a pick cache is configured.
	MovieOfTheDay(ctx context.Context) (*domain.Movie, error)
}
