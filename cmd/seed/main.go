// Command seed imports a movie catalog from a JSON file into MongoDB. The
// API itself never writes movies; this is the out-of-band lifecycle tool.
//
//	MONGO_URI=mongodb://localhost:27017 go run ./cmd/seed -file movies.json
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"github.com/moviesflix/moviesflix-api/internal/core/domain"
	mongostore "github.com/moviesflix/moviesflix-api/internal/infrastructure/db/mongo"
	"github.com/moviesflix/moviesflix-api/internal/pkg/config"
	"github.com/moviesflix/moviesflix-api/pkg/logger"
)

func main() {
	file := flag.String("file", "movies.json", "path to the JSON catalog file")
	flag.Parse()

	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: !cfg.IsProduction()})

	if cfg.Mongo.URI == "" {
		log.Fatal().Msg("MONGO_URI is required")
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatal().Err(err).Str("file", *file).Msg("failed to read catalog file")
	}

	var movies []domain.Movie
	if err := json.Unmarshal(data, &movies); err != nil {
		log.Fatal().Err(err).Msg("invalid catalog JSON")
	}
	if len(movies) == 0 {
		log.Fatal().Msg("catalog file contains no movies")
	}

	ctx := context.Background()
	client, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	if err := mongostore.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to create indexes")
	}

	inserted, err := mongostore.NewMovieRepository(db).InsertMany(ctx, movies)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to insert movies")
	}

	log.Info().Int("inserted", inserted).Str("file", *file).Msg("catalog seeded")
}
