package ports

import (
	"context"

	"github.com/moviesflix/moviesflix-api/internal/core/domain"
)

// MovieRepository defines read operations over the movie catalog plus the
// bulk insert used by the out-of-band seeder.
type MovieRepository interface {
	List(ctx context.Context) ([]domain.Movie, error)
	FindByID(ctx context.Context, id string) (*domain.Movie, error)
	FindByTitle(ctx context.Context, title string) (*domain.Movie, error)
	// FindByGenre and FindByDirector match on the embedded document's name.
	FindByGenre(ctx context.Context, name string) (*domain.Movie, error)
	FindByDirector(ctx context.Context, name string) (*domain.Movie, error)
	// Random returns one uniformly sampled movie, or ErrNoMovies when the
	// collection is empty.
	Random(ctx context.Context) (*domain.Movie, error)
	InsertMany(ctx context.Context, movies []domain.Movie) (int, error)
}
