package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/moviesflix/moviesflix-api/internal/core/domain"
	"github.com/moviesflix/moviesflix-api/internal/core/ports"
)

type stubUserService struct {
	registerFn       func(ctx context.Context, input ports.RegisterInput) (*domain.User, error)
	renameFn         func(ctx context.Context, username, newUsername string) (*domain.User, error)
	deleteFn         func(ctx context.Context, username string) error
	addFavoriteFn    func(ctx context.Context, username, movieID string) (*domain.User, error)
	removeFavoriteFn func(ctx context.Context, username, movieID string) (*domain.User, error)
}

func (s *stubUserService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, input)
}

func (s *stubUserService) Rename(ctx context.Context, username, newUsername string) (*domain.User, error) {
	return s.renameFn(ctx, username, newUsername)
}

func (s *stubUserService) Delete(ctx context.Context, username string) error {
	return s.deleteFn(ctx, username)
}

func (s *stubUserService) AddFavorite(ctx context.Context, username, movieID string) (*domain.User, error) {
	return s.addFavoriteFn(ctx, username, movieID)
}

func (s *stubUserService) RemoveFavorite(ctx context.Context, username, movieID string) (*domain.User, error) {
	return s.removeFavoriteFn(ctx, username, movieID)
}

func TestUserHandler_Register_Success(t *testing.T) {
	stub := &stubUserService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
			if input.Username != "alice1" || input.Email != "a@example.com" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.User{ID: "u1", Username: input.Username, Email: input.Email, FavoriteMovies: []string{}}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/users",
		`{"username":"alice1","password":"secret123","email":"a@example.com"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["username"] != "alice1" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if _, leaked := resp["password_hash"]; leaked {
		t.Fatal("password hash leaked in response")
	}
}

func TestUserHandler_Register_Duplicate(t *testing.T) {
	stub := &stubUserService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	h := NewUserHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/users", `{"username":"alice1","password":"secret123"}`)
	if err := h.Register(c); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists to propagate, got %v", err)
	}
}

func TestUserHandler_Register_InvalidUsernameFormat(t *testing.T) {
	stub := &stubUserService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
			t.Fatal("should not be called")
			return nil, nil
		},
	}
	h := NewUserHandler(stub)

	// Too short and non-alphanumeric both fail schema validation with 422.
	for _, body := range []string{
		`{"username":"bob","password":"secret123"}`,
		`{"username":"bad name!","password":"secret123"}`,
	} {
		c, _ := newTestContext(t, http.MethodPost, "/users", body)
		err := h.Register(c)

		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
			t.Fatalf("body %s: expected 422 HTTPError, got %v", body, err)
		}
	}
}

func TestUserHandler_Rename_Success(t *testing.T) {
	stub := &stubUserService{
		renameFn: func(ctx context.Context, username, newUsername string) (*domain.User, error) {
			if username != "alice1" || newUsername != "alice2" {
				t.Fatalf("unexpected args: %s %s", username, newUsername)
			}
			return &domain.User{ID: "u1", Username: newUsername}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/users/alice1", `{"newUsername":"alice2"}`)
	c.SetParamNames("username")
	c.SetParamValues("alice1")

	if err := h.Rename(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_Rename_NotFound(t *testing.T) {
	stub := &stubUserService{
		renameFn: func(ctx context.Context, username, newUsername string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewUserHandler(stub)

	c, _ := newTestContext(t, http.MethodPut, "/users/ghost1", `{"newUsername":"ghost2"}`)
	c.SetParamNames("username")
	c.SetParamValues("ghost1")

	if err := h.Rename(c); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound to propagate, got %v", err)
	}
}

func TestUserHandler_Rename_InvalidFormat(t *testing.T) {
	stub := &stubUserService{
		renameFn: func(ctx context.Context, username, newUsername string) (*domain.User, error) {
			t.Fatal("should not be called")
			return nil, nil
		},
	}
	h := NewUserHandler(stub)

	c, _ := newTestContext(t, http.MethodPut, "/users/alice1", `{"newUsername":"x!"}`)
	c.SetParamNames("username")
	c.SetParamValues("alice1")

	err := h.Rename(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 HTTPError, got %v", err)
	}
}

func TestUserHandler_Delete_Success(t *testing.T) {
	stub := &stubUserService{
		deleteFn: func(ctx context.Context, username string) error {
			if username != "alice1" {
				t.Fatalf("unexpected username: %s", username)
			}
			return nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/users/alice1", "")
	c.SetParamNames("username")
	c.SetParamValues("alice1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "alice1 was deleted." {
		t.Fatalf("unexpected message: %q", resp["message"])
	}
}

func TestUserHandler_Delete_NotFound(t *testing.T) {
	stub := &stubUserService{
		deleteFn: func(ctx context.Context, username string) error {
			return domain.ErrUserNotFound
		},
	}
	h := NewUserHandler(stub)

	c, _ := newTestContext(t, http.MethodDelete, "/users/ghost1", "")
	c.SetParamNames("username")
	c.SetParamValues("ghost1")

	if err := h.Delete(c); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound to propagate, got %v", err)
	}
}

func TestUserHandler_Favorites(t *testing.T) {
	added := false
	removed := false
	stub := &stubUserService{
		addFavoriteFn: func(ctx context.Context, username, movieID string) (*domain.User, error) {
			added = true
			return &domain.User{Username: username, FavoriteMovies: []string{movieID}}, nil
		},
		removeFavoriteFn: func(ctx context.Context, username, movieID string) (*domain.User, error) {
			removed = true
			return &domain.User{Username: username, FavoriteMovies: []string{}}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/users/alice1/favorites/m1", "")
	c.SetParamNames("username", "movieId")
	c.SetParamValues("alice1", "m1")
	if err := h.AddFavorite(c); err != nil {
		t.Fatalf("add favorite: %v", err)
	}
	if rec.Code != http.StatusOK || !added {
		t.Fatalf("add favorite: code=%d added=%v", rec.Code, added)
	}

	c, rec = newTestContext(t, http.MethodDelete, "/users/alice1/favorites/m1", "")
	c.SetParamNames("username", "movieId")
	c.SetParamValues("alice1", "m1")
	if err := h.RemoveFavorite(c); err != nil {
		t.Fatalf("remove favorite: %v", err)
	}
	if rec.Code != http.StatusOK || !removed {
		t.Fatalf("remove favorite: code=%d removed=%v", rec.Code, removed)
	}
}

func TestUserHandler_Favorites_UnknownUser(t *testing.T) {
	stub := &stubUserService{
		addFavoriteFn: func(ctx context.Context, username, movieID string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewUserHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/users/ghost1/favorites/m1", "")
	c.SetParamNames("username", "movieId")
	c.SetParamValues("ghost1", "m1")

	if err := h.AddFavorite(c); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound to propagate, got %v", err)
	}
}
