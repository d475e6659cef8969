package movie

import (
	"strings"

	"qdevmovies/errs"
)

var (
	ErrInvalidID     = errs.Errorf(errs.EINVALID, "Movie ID is invalid: it must be a positive number.")
	ErrMovieNotFound = errs.Errorf(errs.ENOTFOUND, "movie not found")
	ErrInvalidMovie  = errs.Errorf(errs.EINVALID, "movie: id and name are required")
	ErrDuplicateID   = errs.Errorf(errs.EINVALID, "movie: duplicate id")
)

type Movie struct {
	ID          int64   `json:"id"`
	MovieName   string  `json:"movieName"`
	Director    string  `json:"director"`
	Year        int     `json:"year"`
	Genre       string  `json:"genre"`
	Description string  `json:"description"`
	Duration    int     `json:"duration"`
	IMDbRating  float64 `json:"imdbRating"`
}

func (m Movie) Validate() error {
	if m.ID <= 0 || strings.TrimSpace(m.MovieName) == "" {
		return ErrInvalidMovie
	}
	return nil
}

// Query holds the optional search criteria. A nil field means the criterion
// was not supplied; blank text is treated the same way.
type Query struct {
	Name  *string
	ID    *int64
	Genre *string
}
