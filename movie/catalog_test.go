package movie_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"qdevmovies/movie"
)

type MockMovieRepository struct {
	mock.Mock
}

func (m *MockMovieRepository) AllMovies(ctx context.Context) ([]movie.Movie, error) {
	args := m.Called(ctx)
	return args.Get(0).([]movie.Movie), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewCatalog(t *testing.T) {
	t.Run("keeps ingestion order and indexes every id", func(t *testing.T) {
		movies := fixtureMovies()

		c, err := movie.NewCatalog(movies)

		require.NoError(t, err)
		assert.Equal(t, movies, c.All())
		assert.Equal(t, len(movies), c.Len())
		for _, m := range movies {
			got, ok := c.ByID(m.ID)
			assert.True(t, ok)
			assert.Equal(t, m, got)
		}
	})

	t.Run("rejects duplicate ids", func(t *testing.T) {
		movies := append(fixtureMovies(), movie.Movie{ID: 1, MovieName: "Copy", Genre: "Drama"})

		_, err := movie.NewCatalog(movies)

		assert.ErrorIs(t, err, movie.ErrDuplicateID)
	})

	t.Run("rejects movies without id or name", func(t *testing.T) {
		_, err := movie.NewCatalog([]movie.Movie{{ID: 0, MovieName: "No id"}})
		assert.ErrorIs(t, err, movie.ErrInvalidMovie)

		_, err = movie.NewCatalog([]movie.Movie{{ID: 9, MovieName: "  "}})
		assert.ErrorIs(t, err, movie.ErrInvalidMovie)
	})

	t.Run("returned slices do not alias the catalog", func(t *testing.T) {
		c := mustCatalog(fixtureMovies())

		all := c.All()
		all[0].MovieName = "changed"
		genres := c.Genres()
		genres[0] = "changed"

		assert.Equal(t, "The Prison Escape", c.All()[0].MovieName)
		assert.NotEqual(t, "changed", c.Genres()[0])
	})
}

func TestCatalog_ByID(t *testing.T) {
	c := mustCatalog(fixtureMovies())

	tests := []struct {
		name  string
		id    int64
		found bool
	}{
		{name: "existing id", id: 3, found: true},
		{name: "zero id", id: 0, found: false},
		{name: "negative id", id: -1, found: false},
		{name: "id beyond catalog", id: 999, found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := c.ByID(tt.id)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.id, m.ID)
			}
		})
	}
}

func TestCatalog_Genres(t *testing.T) {
	t.Run("sorted, deduplicated and complete", func(t *testing.T) {
		c := mustCatalog(fixtureMovies())

		genres := c.Genres()

		assert.Equal(t, []string{"Action", "Action/Crime", "Comedy", "Crime/Drama", "Drama"}, genres)
		for _, m := range c.All() {
			assert.Contains(t, genres, m.Genre)
		}
	})

	t.Run("uses byte order without case folding", func(t *testing.T) {
		c := mustCatalog([]movie.Movie{
			{ID: 1, MovieName: "a", Genre: "drama"},
			{ID: 2, MovieName: "b", Genre: "Drama"},
			{ID: 3, MovieName: "c", Genre: "Action"},
			{ID: 4, MovieName: "d", Genre: "drama"},
		})

		assert.Equal(t, []string{"Action", "Drama", "drama"}, c.Genres())
	})

	t.Run("stable across calls", func(t *testing.T) {
		c := mustCatalog(fixtureMovies())
		assert.Equal(t, c.Genres(), c.Genres())
	})

	t.Run("empty catalog has no genres", func(t *testing.T) {
		assert.Empty(t, movie.EmptyCatalog().Genres())
	})
}

func TestLoadCatalog(t *testing.T) {
	t.Run("loads movies from repository", func(t *testing.T) {
		r := new(MockMovieRepository)
		r.On("AllMovies", mock.Anything).Return(fixtureMovies(), nil).Once()

		c := movie.LoadCatalog(context.Background(), r, discardLogger())

		assert.Equal(t, fixtureMovies(), c.All())
		r.AssertExpectations(t)
	})

	t.Run("repository failure yields empty catalog", func(t *testing.T) {
		r := new(MockMovieRepository)
		r.On("AllMovies", mock.Anything).Return([]movie.Movie(nil), errors.New("file not found")).Once()

		c := movie.LoadCatalog(context.Background(), r, discardLogger())

		assert.Equal(t, 0, c.Len())
		assert.Empty(t, c.All())
		r.AssertExpectations(t)
	})

	t.Run("invalid data yields empty catalog", func(t *testing.T) {
		r := new(MockMovieRepository)
		movies := append(fixtureMovies(), fixtureMovies()[0])
		r.On("AllMovies", mock.Anything).Return(movies, nil).Once()

		c := movie.LoadCatalog(context.Background(), r, discardLogger())

		assert.Equal(t, 0, c.Len())
		r.AssertExpectations(t)
	})
}
