package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/moviesflix/moviesflix-api/internal/api/handler"
	"github.com/moviesflix/moviesflix-api/internal/api/middleware"
	"github.com/moviesflix/moviesflix-api/internal/core/service"
	mongostore "github.com/moviesflix/moviesflix-api/internal/infrastructure/db/mongo"
	redisstore "github.com/moviesflix/moviesflix-api/internal/infrastructure/db/redis"
	"github.com/moviesflix/moviesflix-api/internal/pkg/config"
	"github.com/moviesflix/moviesflix-api/internal/pkg/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; the daily-pick cache is then disabled and readiness only
// checks MongoDB.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("moviesflix"))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	// --- Dependencies ---
	userRepo := mongostore.NewUserRepository(db)
	movieRepo := mongostore.NewMovieRepository(db)

	var picks service.DailyPickCache
	if rdb != nil {
		picks = redisstore.NewDailyPickStore(rdb)
	}

	issuer := token.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, issuer, log)
	userService := service.NewUserService(userRepo, log)
	movieService := service.NewMovieService(movieRepo, picks, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	movieHandler := handler.NewMovieHandler(movieService)

	authGate := middleware.Auth(issuer, userRepo, log)

	// --- Public routes ---
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Welcome to the MoviesFlix API"})
	})
	e.POST("/login", authHandler.Login)
	e.POST("/users", userHandler.Register)
	e.Static("/public", cfg.StaticDir)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Health probes (no auth required) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(db, rdb).Readiness)

	// --- Protected routes (token mode) ---
	e.PUT("/users/:username", userHandler.Rename, authGate)
	e.DELETE("/users/:username", userHandler.Delete, authGate)
	e.POST("/users/:username/favorites/:movieId", userHandler.AddFavorite, authGate)
	e.DELETE("/users/:username/favorites/:movieId", userHandler.RemoveFavorite, authGate)

	e.GET("/movies", movieHandler.List, authGate)
	e.GET("/movies/:title", movieHandler.GetByTitle, authGate)
	e.GET("/genres/:name", movieHandler.GetGenre, authGate)
	e.GET("/directors/:name", movieHandler.GetDirector, authGate)
	e.GET("/movie-of-the-day", movieHandler.MovieOfTheDay, authGate)

	return e
}
