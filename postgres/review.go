package postgres

import (
	"context"
	"fmt"
	"time"

	"qdevmovies/review"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewModel struct {
	ID        string    `gorm:"primaryKey"`
	MovieID   int64     `gorm:"column:movie_id;not null;index"`
	Author    string    `gorm:"not null;default:''"`
	Rating    float64   `gorm:"not null;default:0"`
	Comment   string    `gorm:"not null;default:''"`
	CreatedAt time.Time `gorm:"not null"`
}

func (ReviewModel) TableName() string {
	return "reviews"
}

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) ReviewsByMovie(ctx context.Context, movieID int64) ([]review.Review, error) {
	var models []ReviewModel
	err := r.db.WithContext(ctx).
		Where("movie_id = ?", movieID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("query reviews of movie %d: %w", movieID, err)
	}

	reviews := make([]review.Review, len(models))
	for i, m := range models {
		reviews[i] = review.Review{
			ID:        m.ID,
			MovieID:   m.MovieID,
			Author:    m.Author,
			Rating:    m.Rating,
			Comment:   m.Comment,
			CreatedAt: m.CreatedAt.UTC(),
		}
	}
	return reviews, nil
}

func (r *ReviewRepository) UpsertReviews(ctx context.Context, reviews []review.Review) (int, error) {
	if len(reviews) == 0 {
		return 0, nil
	}

	models := make([]ReviewModel, len(reviews))
	for i, rv := range reviews {
		models[i] = ReviewModel{
			ID:        rv.ID,
			MovieID:   rv.MovieID,
			Author:    rv.Author,
			Rating:    rv.Rating,
			Comment:   rv.Comment,
			CreatedAt: rv.CreatedAt,
		}
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&models).Error
	if err != nil {
		return 0, fmt.Errorf("upsert reviews: %w", err)
	}
	return len(models), nil
}
