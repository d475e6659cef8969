package review

import (
	"time"

	"qdevmovies/errs"
)

var ErrInvalidMovieID = errs.Errorf(errs.EINVALID, "review: invalid movie id")

type Review struct {
	ID        string    `json:"id"`
	MovieID   int64     `json:"movieId"`
	Author    string    `json:"author"`
	Rating    float64   `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}
