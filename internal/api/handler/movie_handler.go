package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/moviesflix/moviesflix-api/internal/api/metrics"
	"github.com/moviesflix/moviesflix-api/internal/core/ports"
)

// MovieHandler exposes the read-only catalog endpoints. All routes require
// token-mode authentication.
type MovieHandler struct {
	movieService ports.MovieService
}

func NewMovieHandler(movieService ports.MovieService) *MovieHandler {
	return &MovieHandler{movieService: movieService}
}

// List returns the full catalog.
//
// @Summary      List all movies
// @Tags         movies
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Movie
// @Failure      404  {object}  errorResponse
// @Router       /movies [get]
func (h *MovieHandler) List(c echo.Context) error {
	movies, err := h.movieService.ListMovies(c.Request().Context())
	if err != nil {
		return err
	}
	metrics.CatalogLookupsTotal.WithLabelValues("list").Inc()
	return c.JSON(http.StatusOK, movies)
}

// GetByTitle returns one movie by exact title match.
//
// @Summary      Get a movie by title
// @Tags         movies
// @Produce      json
// @Security     BearerAuth
// @Param        title  path      string  true  "Movie title"
// @Success      200    {object}  domain.Movie
// @Failure      404    {object}  errorResponse
// @Router       /movies/{title} [get]
func (h *MovieHandler) GetByTitle(c echo.Context) error {
	movie, err := h.movieService.GetByTitle(c.Request().Context(), c.Param("title"))
	if err != nil {
		return err
	}
	metrics.CatalogLookupsTotal.WithLabelValues("title").Inc()
	return c.JSON(http.StatusOK, movie)
}

// GetGenre returns a genre by name.
//
// @Summary      Get a genre by name
// @Tags         movies
// @Produce      json
// @Security     BearerAuth
// @Param        name  path      string  true  "Genre name"
// @Success      200   {object}  domain.Genre
// @Failure      404   {object}  errorResponse
// @Router       /genres/{name} [get]
func (h *MovieHandler) GetGenre(c echo.Context) error {
	genre, err := h.movieService.GetGenre(c.Request().Context(), c.Param("name"))
	if err != nil {
		return err
	}
	metrics.CatalogLookupsTotal.WithLabelValues("genre").Inc()
	return c.JSON(http.StatusOK, genre)
}

// GetDirector returns a director by name.
//
// @Summary      Get a director by name
// @Tags         movies
// @Produce      json
// @Security     BearerAuth
// @Param        name  path      string  true  "Director name"
// @Success      200   {object}  domain.Director
// @Failure      404   {object}  errorResponse
// @Router       /directors/{name} [get]
func (h *MovieHandler) GetDirector(c echo.Context) error {
	director, err := h.movieService.GetDirector(c.Request().Context(), c.Param("name"))
	if err != nil {
		return err
	}
	metrics.CatalogLookupsTotal.WithLabelValues("director").Inc()
	return c.JSON(http.StatusOK, director)
}

// MovieOfTheDay returns the day's random pick.
//
// @Summary      Get the movie of the day
// @Tags         movies
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Movie
// @Failure      404  {object}  errorResponse
// @Router       /movie-of-the-day [get]
func (h *MovieHandler) MovieOfTheDay(c echo.Context) error {
	movie, err := h.movieService.MovieOfTheDay(c.Request().Context())
	if err != nil {
		return err
	}
	metrics.CatalogLookupsTotal.WithLabelValues("daily").Inc()
	return c.JSON(http.StatusOK, movie)
}
