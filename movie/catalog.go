package movie

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
)

// Catalog is an immutable, ordered snapshot of movies indexed by id.
// It is safe for concurrent use once built.
type Catalog struct {
	movies []Movie
	byID   map[int64]Movie
	genres []string
}

// NewCatalog builds a catalog keeping the order of movies. Every movie must
// be valid and ids must be unique.
func NewCatalog(movies []Movie) (*Catalog, error) {
	c := &Catalog{
		movies: make([]Movie, 0, len(movies)),
		byID:   make(map[int64]Movie, len(movies)),
	}

	seen := make(map[string]struct{})
	for _, m := range movies {
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("movie at position %d: %w", len(c.movies), err)
		}
		if _, ok := c.byID[m.ID]; ok {
			return nil, fmt.Errorf("movie id %d: %w", m.ID, ErrDuplicateID)
		}

		c.movies = append(c.movies, m)
		c.byID[m.ID] = m
		if _, ok := seen[m.Genre]; !ok {
			seen[m.Genre] = struct{}{}
			c.genres = append(c.genres, m.Genre)
		}
	}
	sort.Strings(c.genres)

	return c, nil
}

// EmptyCatalog returns a catalog without movies.
func EmptyCatalog() *Catalog {
	c, _ := NewCatalog(nil)
	return c
}

// All returns the movies in ingestion order.
func (c *Catalog) All() []Movie {
	out := make([]Movie, len(c.movies))
	copy(out, c.movies)
	return out
}

func (c *Catalog) ByID(id int64) (Movie, bool) {
	if id <= 0 {
		return Movie{}, false
	}
	m, ok := c.byID[id]
	return m, ok
}

// Genres returns the distinct genres sorted in byte order.
func (c *Catalog) Genres() []string {
	out := make([]string, len(c.genres))
	copy(out, c.genres)
	return out
}

func (c *Catalog) Len() int {
	return len(c.movies)
}

// LoadCatalog reads every movie from r. Failures are logged and produce an
// empty catalog so the server can still start.
func LoadCatalog(ctx context.Context, r Repository, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}
	movies, err := r.AllMovies(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to load movies", "error", err)
		return EmptyCatalog()
	}

	c, err := NewCatalog(movies)
	if err != nil {
		logger.ErrorContext(ctx, "failed to build movie catalog", "error", err)
		return EmptyCatalog()
	}

	logger.InfoContext(ctx, "movie catalog loaded", "movies", c.Len(), "genres", len(c.genres))
	return c
}
