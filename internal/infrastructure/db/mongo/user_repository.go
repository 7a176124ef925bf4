package mongo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/moviesflix/moviesflix-api/internal/core/domain"
)

const usersCollection = "users"

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

// userDoc is the persisted shape. username_lower backs the case-insensitive
// unique index; the original casing is kept for display.
type userDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Username       string             `bson:"username"`
	UsernameLower  string             `bson:"username_lower"`
	Email          string             `bson:"email,omitempty"`
	Name           string             `bson:"name,omitempty"`
	Birthday       *time.Time         `bson:"birthday,omitempty"`
	PasswordHash   string             `bson:"password_hash"`
	FavoriteMovies []string           `bson:"favorite_movies"`
	CreatedAt      int64              `bson:"created_at"`
	UpdatedAt      int64              `bson:"updated_at"`
}

func userIndex() mongo.IndexModel {
	return mongo.IndexModel{
		Keys:    bson.D{{Key: "username_lower", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
}

func (d *userDoc) toDomain() *domain.User {
	favorites := d.FavoriteMovies
	if favorites == nil {
		favorites = []string{}
	}
	return &domain.User{
		ID:             d.ID.Hex(),
		Username:       d.Username,
		Email:          d.Email,
		Name:           d.Name,
		Birthday:       d.Birthday,
		PasswordHash:   d.PasswordHash,
		FavoriteMovies: favorites,
		CreatedAt:      unixToTime(d.CreatedAt),
		UpdatedAt:      unixToTime(d.UpdatedAt),
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	doc := userDoc{
		Username:       user.Username,
		UsernameLower:  strings.ToLower(user.Username),
		Email:          user.Email,
		Name:           user.Name,
		Birthday:       user.Birthday,
		PasswordHash:   user.PasswordHash,
		FavoriteMovies: user.FavoriteMovies,
		CreatedAt:      user.CreatedAt.Unix(),
		UpdatedAt:      user.UpdatedAt.Unix(),
	}
	if doc.FavoriteMovies == nil {
		doc.FavoriteMovies = []string{}
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	if created.FavoriteMovies == nil {
		created.FavoriteMovies = []string{}
	}
	return &created, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"username_lower": strings.ToLower(username)})
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var doc userDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) UpdateUsername(ctx context.Context, username, newUsername string) (*domain.User, error) {
	update := bson.M{"$set": bson.M{
		"username":       newUsername,
		"username_lower": strings.ToLower(newUsername),
		"updated_at":     time.Now().UTC().Unix(),
	}}
	return r.findOneAndUpdate(ctx, username, update)
}

func (r *UserRepository) Delete(ctx context.Context, username string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"username_lower": strings.ToLower(username)})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// AddFavorite relies on $addToSet: inserting an id that is already present
// leaves the document unchanged, with no read-modify-write race.
func (r *UserRepository) AddFavorite(ctx context.Context, username, movieID string) (*domain.User, error) {
	update := bson.M{
		"$addToSet": bson.M{"favorite_movies": movieID},
		"$set":      bson.M{"updated_at": time.Now().UTC().Unix()},
	}
	return r.findOneAndUpdate(ctx, username, update)
}

// RemoveFavorite relies on $pull: removing an absent id is a no-op.
func (r *UserRepository) RemoveFavorite(ctx context.Context, username, movieID string) (*domain.User, error) {
	update := bson.M{
		"$pull": bson.M{"favorite_movies": movieID},
		"$set":  bson.M{"updated_at": time.Now().UTC().Unix()},
	}
	return r.findOneAndUpdate(ctx, username, update)
}

func (r *UserRepository) findOneAndUpdate(ctx context.Context, username string, update bson.M) (*domain.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc userDoc
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"username_lower": strings.ToLower(username)}, update, opts).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return doc.toDomain(), nil
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
