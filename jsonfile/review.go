package jsonfile

import (
	"context"
	"io/fs"
	"time"

	"qdevmovies/review"
)

type reviewRecord struct {
	ID        string    `json:"id"`
	MovieID   *int64    `json:"movieId"`
	Author    string    `json:"author"`
	Rating    float64   `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReviewRepository implements review.Repository. The document is read once
// when the repository is created.
type ReviewRepository struct {
	all     []review.Review
	byMovie map[int64][]review.Review
}

func NewReviewRepository(fsys fs.FS, name string) (*ReviewRepository, error) {
	var records []reviewRecord
	if err := decodeFile(fsys, name, &records); err != nil {
		return nil, err
	}

	all := make([]review.Review, 0, len(records))
	byMovie := make(map[int64][]review.Review)
	for i, rec := range records {
		if rec.MovieID == nil {
			return nil, missingKey(name, i, "movieId")
		}
		rv := review.Review{
			ID:        rec.ID,
			MovieID:   *rec.MovieID,
			Author:    rec.Author,
			Rating:    rec.Rating,
			Comment:   rec.Comment,
			CreatedAt: rec.CreatedAt,
		}
		all = append(all, rv)
		byMovie[rv.MovieID] = append(byMovie[rv.MovieID], rv)
	}

	return &ReviewRepository{all: all, byMovie: byMovie}, nil
}

// AllReviews returns every review in document order.
func (r *ReviewRepository) AllReviews() []review.Review {
	out := make([]review.Review, len(r.all))
	copy(out, r.all)
	return out
}

func (r *ReviewRepository) ReviewsByMovie(ctx context.Context, movieID int64) ([]review.Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stored := r.byMovie[movieID]
	out := make([]review.Review, len(stored))
	copy(out, stored)
	return out, nil
}
