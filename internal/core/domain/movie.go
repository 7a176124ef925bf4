package domain

import (
	"errors"
	"time"
)

var ErrMovieNotFound = errors.New("movie not found")
var ErrGenreNotFound = errors.New("genre not found")
var ErrDirectorNotFound = errors.New("director not found")
var ErrNoMovies = errors.New("no movies found")

// Genre is embedded in a movie document.
type Genre struct {
	Name        string `json:"name" bson:"name"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
}

// Director is embedded in a movie document.
type Director struct {
	Name       string     `json:"name" bson:"name"`
	Occupation string     `json:"occupation,omitempty" bson:"occupation,omitempty"`
	BirthDate  *time.Time `json:"birth_date,omitempty" bson:"birth_date,omitempty"`
	BirthPlace string     `json:"birth_place,omitempty" bson:"birth_place,omitempty"`
	Bio        string     `json:"bio,omitempty" bson:"bio,omitempty"`
}

// Movie is the catalog aggregate. The API never writes movies; the
// collection is populated out of band by cmd/seed.
type Movie struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Genre       Genre    `json:"genre"`
	Director    Director `json:"director"`
	ImagePath   string   `json:"image_path,omitempty"`
}
