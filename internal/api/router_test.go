package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/moviesflix/moviesflix-api/internal/pkg/config"
)

var (
	routerOnce sync.Once
	router     http.Handler
	routerErr  error
)

// testRouter builds the full router once, against a lazily connected Mongo
// client (the driver does not dial until an operation runs). Only routes
// that reject before touching the database are exercised here; handler and
// repository behaviour is covered by their own package tests. The router is
// shared because the Prometheus request middleware registers collectors in
// the default registry and must not be registered twice.
func testRouter(t *testing.T) http.Handler {
	t.Helper()
	routerOnce.Do(func() {
		var client *mongo.Client
		client, routerErr = mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://localhost:27017"))
		if routerErr != nil {
			return
		}

		dir, err := os.MkdirTemp("", "moviesflix-static")
		if err != nil {
			routerErr = err
			return
		}

		cfg := &config.Config{
			Port:      "8080",
			Env:       "development",
			JWTSecret: "test-secret",
			TokenTTL:  time.Hour,
			StaticDir: dir,
		}
		router = NewRouter(client.Database("moviesflix_test"), nil, cfg, zerolog.Nop())
	})
	if routerErr != nil {
		t.Fatalf("build router: %v", routerErr)
	}
	return router
}

func TestRouter_Welcome(t *testing.T) {
	e := testRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRouter_Liveness(t *testing.T) {
	e := testRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRouter_ProtectedRoutesRejectMissingToken(t *testing.T) {
	e := testRouter(t)
	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/movies"},
		{http.MethodGet, "/movies/Inception"},
		{http.MethodGet, "/genres/Sci-Fi"},
		{http.MethodGet, "/directors/Someone"},
		{http.MethodGet, "/movie-of-the-day"},
		{http.MethodPut, "/users/alice1"},
		{http.MethodDelete, "/users/alice1"},
		{http.MethodPost, "/users/alice1/favorites/m1"},
		{http.MethodDelete, "/users/alice1/favorites/m1"},
	} {
		req := httptest.NewRequest(route.method, route.path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d", route.method, route.path, rec.Code)
		}
	}
}

func TestRouter_RejectsGarbageToken(t *testing.T) {
	e := testRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/movies", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRouter_RejectsExpiredToken(t *testing.T) {
	e := testRouter(t)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "64b6f4aa0000000000000000",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/movies", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
