package jsonfile

import (
	"context"
	"io/fs"

	"qdevmovies/movie"
)

// movieRecord uses pointers so absent keys can be told apart from zero values.
type movieRecord struct {
	ID          *int64   `json:"id"`
	MovieName   *string  `json:"movieName"`
	Director    *string  `json:"director"`
	Year        *int     `json:"year"`
	Genre       *string  `json:"genre"`
	Description *string  `json:"description"`
	Duration    *int     `json:"duration"`
	IMDbRating  *float64 `json:"imdbRating"`
}

func (r movieRecord) toMovie(file string, index int) (movie.Movie, error) {
	required := []struct {
		key     string
		present bool
	}{
		{"id", r.ID != nil},
		{"movieName", r.MovieName != nil},
		{"director", r.Director != nil},
		{"year", r.Year != nil},
		{"genre", r.Genre != nil},
		{"description", r.Description != nil},
		{"duration", r.Duration != nil},
		{"imdbRating", r.IMDbRating != nil},
	}
	for _, f := range required {
		if !f.present {
			return movie.Movie{}, missingKey(file, index, f.key)
		}
	}

	return movie.Movie{
		ID:          *r.ID,
		MovieName:   *r.MovieName,
		Director:    *r.Director,
		Year:        *r.Year,
		Genre:       *r.Genre,
		Description: *r.Description,
		Duration:    *r.Duration,
		IMDbRating:  *r.IMDbRating,
	}, nil
}

// MovieRepository implements movie.Repository over a JSON array document.
type MovieRepository struct {
	fsys fs.FS
	name string
}

func NewMovieRepository(fsys fs.FS, name string) *MovieRepository {
	return &MovieRepository{fsys: fsys, name: name}
}

func (r *MovieRepository) AllMovies(ctx context.Context) ([]movie.Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var records []movieRecord
	if err := decodeFile(r.fsys, r.name, &records); err != nil {
		return nil, err
	}

	movies := make([]movie.Movie, 0, len(records))
	for i, rec := range records {
		m, err := rec.toMovie(r.name, i)
		if err != nil {
			return nil, err
		}
		movies = append(movies, m)
	}
	return movies, nil
}
