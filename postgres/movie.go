package postgres

import (
	"context"
	"fmt"

	"qdevmovies/movie"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MovieModel represents the database model for movies.
// Position keeps the order in which movies were imported.
type MovieModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement:false"`
	Position    int     `gorm:"not null;default:0"`
	MovieName   string  `gorm:"column:movie_name;not null"`
	Director    string  `gorm:"not null;default:''"`
	Year        int     `gorm:"not null;default:0"`
	Genre       string  `gorm:"not null;default:''"`
	Description string  `gorm:"not null;default:''"`
	Duration    int     `gorm:"not null;default:0"`
	IMDbRating  float64 `gorm:"column:imdb_rating;not null;default:0"`
}

func (MovieModel) TableName() string {
	return "movies"
}

func (m MovieModel) toMovie() movie.Movie {
	return movie.Movie{
		ID:          m.ID,
		MovieName:   m.MovieName,
		Director:    m.Director,
		Year:        m.Year,
		Genre:       m.Genre,
		Description: m.Description,
		Duration:    m.Duration,
		IMDbRating:  m.IMDbRating,
	}
}

// MovieRepository implements movie.Repository on top of the movies table.
type MovieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

func (r *MovieRepository) AllMovies(ctx context.Context) ([]movie.Movie, error) {
	var models []MovieModel
	err := r.db.WithContext(ctx).
		Order("position").
		Order("id").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("query movies: %w", err)
	}

	movies := make([]movie.Movie, len(models))
	for i, model := range models {
		movies[i] = model.toMovie()
	}
	return movies, nil
}

// UpsertMovies stores movies in the given order, replacing rows with the same id.
func (r *MovieRepository) UpsertMovies(ctx context.Context, movies []movie.Movie) (int, error) {
	if len(movies) == 0 {
		return 0, nil
	}

	models := make([]MovieModel, len(movies))
	for i, m := range movies {
		models[i] = MovieModel{
			ID:          m.ID,
			Position:    i + 1,
			MovieName:   m.MovieName,
			Director:    m.Director,
			Year:        m.Year,
			Genre:       m.Genre,
			Description: m.Description,
			Duration:    m.Duration,
			IMDbRating:  m.IMDbRating,
		}
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&models).Error
	if err != nil {
		return 0, fmt.Errorf("upsert movies: %w", err)
	}
	return len(models), nil
}
