package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/moviesflix/moviesflix-api/internal/core/domain"
)

const moviesCollection = "movies"

type MovieRepository struct {
	coll *mongo.Collection
}

func NewMovieRepository(db *mongo.Database) *MovieRepository {
	return &MovieRepository{coll: db.Collection(moviesCollection)}
}

type movieDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Genre       domain.Genre       `bson:"genre"`
	Director    domain.Director    `bson:"director"`
	ImagePath   string             `bson:"image_path,omitempty"`
}

func movieIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "title", Value: 1}}},
		{Keys: bson.D{{Key: "genre.name", Value: 1}}},
		{Keys: bson.D{{Key: "director.name", Value: 1}}},
	}
}

func (d *movieDoc) toDomain() domain.Movie {
	return domain.Movie{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Genre:       d.Genre,
		Director:    d.Director,
		ImagePath:   d.ImagePath,
	}
}

func (r *MovieRepository) List(ctx context.Context) ([]domain.Movie, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	defer cursor.Close(ctx)

	movies := []domain.Movie{}
	for cursor.Next(ctx) {
		var doc movieDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode movie: %w", err)
		}
		movies = append(movies, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return movies, nil
}

func (r *MovieRepository) FindByID(ctx context.Context, id string) (*domain.Movie, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMovieNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *MovieRepository) FindByTitle(ctx context.Context, title string) (*domain.Movie, error) {
	return r.findOne(ctx, bson.M{"title": title})
}

func (r *MovieRepository) FindByGenre(ctx context.Context, name string) (*domain.Movie, error) {
	return r.findOne(ctx, bson.M{"genre.name": name})
}

func (r *MovieRepository) FindByDirector(ctx context.Context, name string) (*domain.Movie, error) {
	return r.findOne(ctx, bson.M{"director.name": name})
}

func (r *MovieRepository) findOne(ctx context.Context, filter bson.M) (*domain.Movie, error) {
	var doc movieDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, fmt.Errorf("find movie: %w", err)
	}
	movie := doc.toDomain()
	return &movie, nil
}

// Random returns one uniformly sampled movie using a $sample aggregation,
// so selection happens server-side without loading the collection.
func (r *MovieRepository) Random(ctx context.Context) (*domain.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Aggregate(ctx, mongo.Pipeline{
		bson.D{{Key: "$sample", Value: bson.D{{Key: "size", Value: 1}}}},
	})
	if err != nil {
		return nil, fmt.Errorf("sample movie: %w", err)
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		if err := cursor.Err(); err != nil {
			return nil, fmt.Errorf("sample movie: %w", err)
		}
		return nil, domain.ErrNoMovies
	}

	var doc movieDoc
	if err := cursor.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode movie: %w", err)
	}
	movie := doc.toDomain()
	return &movie, nil
}

// InsertMany bulk-inserts catalog entries. Used by cmd/seed only.
func (r *MovieRepository) InsertMany(ctx context.Context, movies []domain.Movie) (int, error) {
	if len(movies) == 0 {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	docs := make([]interface{}, 0, len(movies))
	for _, m := range movies {
		docs = append(docs, movieDoc{
			Title:       m.Title,
			Description: m.Description,
			Genre:       m.Genre,
			Director:    m.Director,
			ImagePath:   m.ImagePath,
		})
	}

	res, err := r.coll.InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("insert movies: %w", err)
	}
	return len(res.InsertedIDs), nil
}
