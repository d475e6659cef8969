package review

import (
	"context"
	"sort"
)

type Service interface {
	ReviewsForMovie(ctx context.Context, movieID int64) ([]Review, error)
}

type Repository interface {
	ReviewsByMovie(ctx context.Context, movieID int64) ([]Review, error)
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

// ReviewsForMovie returns the reviews of a movie, newest first.
func (uc *Usecase) ReviewsForMovie(ctx context.Context, movieID int64) ([]Review, error) {
	if movieID <= 0 {
		return nil, ErrInvalidMovieID
	}

	reviews, err := uc.r.ReviewsByMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	out := make([]Review, len(reviews))
	copy(out, reviews)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
