package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/moviesflix/moviesflix-api/internal/core/domain"
	"github.com/moviesflix/moviesflix-api/internal/core/ports"
)

// DailyPickCache abstracts the per-day movie-of-the-day store (Redis).
type DailyPickCache interface {
	Get(ctx context.Context, day string) (string, error)
	Set(ctx context.Context, day, movieID string, ttl time.Duration) error
}

// MovieService implements read-only catalog use cases.
type MovieService struct {
	repo  ports.MovieRepository
	picks DailyPickCache // nil disables daily-pick caching
	log   zerolog.Logger
	now   func() time.Time
}

func NewMovieService(repo ports.MovieRepository, picks DailyPickCache, log zerolog.Logger) *MovieService {
	return &MovieService{repo: repo, picks: picks, log: log, now: time.Now}
}

// ListMovies returns the full catalog, or ErrNoMovies when it is empty.
func (s *MovieService) ListMovies(ctx context.Context) ([]domain.Movie, error) {
	movies, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(movies) == 0 {
		return nil, domain.ErrNoMovies
	}
	return movies, nil
}

func (s *MovieService) GetByTitle(ctx context.Context, title string) (*domain.Movie, error) {
	return s.repo.FindByTitle(ctx, title)
}

// GetGenre returns the genre embedded in any movie carrying that genre name.
func (s *MovieService) GetGenre(ctx context.Context, name string) (*domain.Genre, error) {
	movie, err := s.repo.FindByGenre(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrMovieNotFound) {
			return nil, domain.ErrGenreNotFound
		}
		return nil, err
	}
	return &movie.Genre, nil
}

// GetDirector returns the director embedded in any movie carrying that
// director name.
func (s *MovieService) GetDirector(ctx context.Context, name string) (*domain.Director, error) {
	movie, err := s.repo.FindByDirector(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrMovieNotFound) {
			return nil, domain.ErrDirectorNotFound
		}
		return nil, err
	}
	return &movie.Director, nil
}

// MovieOfTheDay returns the day's pick. The pick is sampled uniformly from
// the catalog and cached per UTC day so every caller sees the same movie
// until midnight. Without a cache (or when the cached id no longer exists)
// it falls back to a fresh sample.
func (s *MovieService) MovieOfTheDay(ctx context.Context) (*domain.Movie, error) {
	now := s.now().UTC()
	day := now.Format("2006-01-02")

	if s.picks != nil {
		if id, err := s.picks.Get(ctx, day); err == nil && id != "" {
			movie, err := s.repo.FindByID(ctx, id)
			if err == nil {
				return movie, nil
			}
			s.log.Debug().Str("movie_id", id).Msg("cached daily pick no longer resolvable, resampling")
		}
	}

	movie, err := s.repo.Random(ctx)
	if err != nil {
		return nil, err
	}

	if s.picks != nil {
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
		if err := s.picks.Set(ctx, day, movie.ID, midnight.Sub(now)); err != nil {
			// Cache failure never fails the request.
			s.log.Warn().Err(err).Msg("failed to cache daily pick")
		}
	}

	return movie, nil
}
