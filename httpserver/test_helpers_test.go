//nolint:unused
package httpserver_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"qdevmovies/httpserver"
	"qdevmovies/movie"
	"qdevmovies/pkg/config"
	"qdevmovies/review"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.AppEnv = "local"
	cfg.Cache.Prefix = "test"
	return cfg
}

type MockMovieService struct {
	mock.Mock
}

func (m *MockMovieService) ListMovies(ctx context.Context) ([]movie.Movie, error) {
	args := m.Called(ctx)
	movies, _ := args.Get(0).([]movie.Movie)
	return movies, args.Error(1)
}

func (m *MockMovieService) ListGenres(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	genres, _ := args.Get(0).([]string)
	return genres, args.Error(1)
}

func (m *MockMovieService) GetMovie(ctx context.Context, id int64) (movie.Movie, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(movie.Movie), args.Error(1)
}

func (m *MockMovieService) Search(ctx context.Context, q movie.Query) ([]movie.Movie, error) {
	args := m.Called(ctx, q)
	movies, _ := args.Get(0).([]movie.Movie)
	return movies, args.Error(1)
}

type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) ReviewsForMovie(ctx context.Context, movieID int64) ([]review.Review, error) {
	args := m.Called(ctx, movieID)
	reviews, _ := args.Get(0).([]review.Review)
	return reviews, args.Error(1)
}

// captureRenderer records the last template call instead of producing HTML.
type captureRenderer struct {
	name  string
	model echo.Map
}

func (r *captureRenderer) Render(_ io.Writer, name string, data interface{}, _ echo.Context) error {
	r.name = name
	r.model, _ = data.(echo.Map)
	return nil
}

type testServer struct {
	*httpserver.Server
	movies   *movie.Usecase
	reviews  *MockReviewService
	renderer *captureRenderer
}

// newTestServer wires the real search usecase over the test catalog.
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	catalog, err := movie.NewCatalog(testMovies())
	require.NoError(t, err)

	ts := &testServer{
		Server:   httpserver.Default(testConfig()),
		movies:   movie.NewUsecase(catalog),
		reviews:  new(MockReviewService),
		renderer: &captureRenderer{},
	}
	ts.Logger = discardLogger()
	ts.MovieService = ts.movies
	ts.ReviewService = ts.reviews
	ts.Router.Renderer = ts.renderer
	return ts
}

// newMockedServer swaps the search usecase for a mock.
func newMockedServer(t *testing.T) (*httpserver.Server, *MockMovieService, *captureRenderer) {
	t.Helper()

	svc := new(MockMovieService)
	renderer := &captureRenderer{}

	server := httpserver.Default(testConfig())
	server.Logger = discardLogger()
	server.MovieService = svc
	server.Router.Renderer = renderer
	return server, svc, renderer
}

func testMovies() []movie.Movie {
	return []movie.Movie{
		{ID: 1, MovieName: "The Prison Escape", Director: "John Director", Year: 1994, Genre: "Drama", Duration: 142, IMDbRating: 5},
		{ID: 2, MovieName: "The Family Boss", Director: "Michael Filmmaker", Year: 1972, Genre: "Crime/Drama", Duration: 175, IMDbRating: 5},
		{ID: 3, MovieName: "The Masked Hero", Director: "Chris Moviemaker", Year: 2008, Genre: "Action/Crime", Duration: 152, IMDbRating: 5},
		{ID: 4, MovieName: "Laugh Factory", Director: "Ann Comic", Year: 2001, Genre: "Comedy", Duration: 98, IMDbRating: 3.5},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func serve(server *httpserver.Server, method, path string) *httptest.ResponseRecorder {
	return makeRequest(server, method, path, nil)
}

func decodeAPIResponse(t *testing.T, rec *httptest.ResponseRecorder) httpserver.APIResponse {
	t.Helper()
	var resp httpserver.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func decodeSearchResponse(t *testing.T, rec *httptest.ResponseRecorder) httpserver.MovieSearchResponse {
	t.Helper()
	var resp httpserver.MovieSearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}
