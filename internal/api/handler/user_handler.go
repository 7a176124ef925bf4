package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/moviesflix/moviesflix-api/internal/api/metrics"
	"github.com/moviesflix/moviesflix-api/internal/core/ports"
)

// UserHandler exposes account registration and mutation endpoints. All
// routes except Register sit behind the token-mode auth middleware.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Register creates a new account.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /users [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := h.userService.Register(c.Request().Context(), ports.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Name:     req.Name,
		Birthday: req.Birthday,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.Inc()
	return c.JSON(http.StatusCreated, user)
}

// Rename changes an account's username.
//
// @Summary      Update a user's username
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string         true  "Current username"
// @Param        body      body      renameRequest  true  "New username"
// @Success      200       {object}  domain.User
// @Failure      404       {object}  errorResponse
// @Failure      422       {object}  errorResponse
// @Router       /users/{username} [put]
func (h *UserHandler) Rename(c echo.Context) error {
	var req renameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := h.userService.Rename(c.Request().Context(), c.Param("username"), req.NewUsername)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Delete removes an account.
//
// @Summary      Delete a user account
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  messageResponse
// @Failure      404       {object}  errorResponse
// @Router       /users/{username} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	username := c.Param("username")
	if err := h.userService.Delete(c.Request().Context(), username); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: username + " was deleted."})
}

// AddFavorite adds a movie id to the user's favorites set.
//
// @Summary      Add a movie to favorites
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Username"
// @Param        movieId   path      string  true  "Movie id"
// @Success      200       {object}  domain.User
// @Failure      404       {object}  errorResponse
// @Router       /users/{username}/favorites/{movieId} [post]
func (h *UserHandler) AddFavorite(c echo.Context) error {
	user, err := h.userService.AddFavorite(c.Request().Context(), c.Param("username"), c.Param("movieId"))
	if err != nil {
		return err
	}
	metrics.FavoriteUpdatesTotal.WithLabelValues("add").Inc()
	return c.JSON(http.StatusOK, user)
}

// RemoveFavorite removes a movie id from the user's favorites set.
// Removing an id that is not present is a no-op.
//
// @Summary      Remove a movie from favorites
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Username"
// @Param        movieId   path      string  true  "Movie id"
// @Success      200       {object}  domain.User
// @Failure      404       {object}  errorResponse
// @Router       /users/{username}/favorites/{movieId} [delete]
func (h *UserHandler) RemoveFavorite(c echo.Context) error {
	user, err := h.userService.RemoveFavorite(c.Request().Context(), c.Param("username"), c.Param("movieId"))
	if err != nil {
		return err
	}
	metrics.FavoriteUpdatesTotal.WithLabelValues("remove").Inc()
	return c.JSON(http.StatusOK, user)
}
