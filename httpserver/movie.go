package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"qdevmovies/errs"
	"qdevmovies/movie"
	"qdevmovies/pkg/sentry"
	"qdevmovies/review"

	"github.com/labstack/echo/v4"
)

const (
	templateMovies       = "movies"
	templateMovieDetails = "movie-details"
	templateError        = "error"

	noMoviesFoundMessage = "No movies found matching your search criteria."
	searchFailedMessage  = "Something went wrong while searching for movies."
)

func (s *Server) RegisterMovieRoutes() {
	s.Router.GET("/movies", s.handleListMovies)
	s.Router.GET("/movies/search", s.handleSearchMovies, s.cacheResponses())
	s.Router.GET("/movies/search/form", s.handleSearchMoviesForm)
	s.Router.GET("/movies/:id/details", s.handleMovieDetails)
}

// searchMessage describes a search outcome for humans.
func searchMessage(count int) string {
	switch count {
	case 0:
		return noMoviesFoundMessage
	case 1:
		return "Found 1 movie matching your search."
	default:
		return fmt.Sprintf("Found %d movies matching your search.", count)
	}
}

// handleListMovies godoc
// @Summary Movie catalog page
// @Tags movies
// @Produce html
// @Success 200
// @Router /movies [get]
func (s *Server) handleListMovies(c echo.Context) error {
	ctx := c.Request().Context()
	s.Logger.InfoContext(ctx, "fetching movies")

	model, err := s.catalogModel(ctx)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, templateMovies, model)
}

// handleSearchMovies godoc
// @Summary Search Movies
// @Description Filter the catalog by name, id and genre. Name and genre are case-insensitive partial matches.
// @Tags movies
// @Produce json
// @Param name query string false "Movie name (partial match)"
// @Param id query int false "Movie id (positive)"
// @Param genre query string false "Genre (partial match)"
// @Success 200 {object} MovieSearchResponse
// @Failure 400 {object} MovieSearchResponse
// @Failure 500 {object} MovieSearchResponse
// @Router /movies/search [get]
func (s *Server) handleSearchMovies(c echo.Context) error {
	ctx := c.Request().Context()

	req, err := bindSearchMoviesRequest(c)
	if err != nil {
		s.Logger.WarnContext(ctx, "rejected movie search", "id", c.QueryParam("id"))
		return writeSearch(c, http.StatusBadRequest, false, errs.ErrorMessage(err), nil)
	}
	s.logSearch(ctx, "movie search request", req)

	results, err := s.MovieService.Search(ctx, req.ToQuery())
	if err != nil {
		s.reportError(c, "movie search failed", err)
		return writeSearch(c, http.StatusInternalServerError, false, searchFailedMessage, nil)
	}

	return writeSearch(c, http.StatusOK, true, searchMessage(len(results)), results)
}

// handleSearchMoviesForm godoc
// @Summary Movie search page
// @Tags movies
// @Produce html
// @Param name query string false "Movie name (partial match)"
// @Param id query int false "Movie id (positive)"
// @Param genre query string false "Genre (partial match)"
// @Success 200
// @Router /movies/search/form [get]
func (s *Server) handleSearchMoviesForm(c echo.Context) error {
	ctx := c.Request().Context()

	req, err := bindSearchMoviesRequest(c)
	if err != nil {
		s.Logger.WarnContext(ctx, "rejected movie search form", "id", c.QueryParam("id"))
		model, mErr := s.catalogModel(ctx)
		if mErr != nil {
			return mErr
		}
		model["error"] = errs.ErrorMessage(err)
		return c.Render(http.StatusOK, templateMovies, model)
	}
	s.logSearch(ctx, "movie search form request", req)

	model, err := s.searchModel(ctx, req)
	if err != nil {
		s.reportError(c, "movie search form failed", err)
		model, mErr := s.catalogModel(ctx)
		if mErr != nil {
			model = echo.Map{"movies": []movie.Movie{}, "genres": []string{}}
		}
		model["error"] = searchFailedMessage
		return c.Render(http.StatusOK, templateMovies, model)
	}

	return c.Render(http.StatusOK, templateMovies, model)
}

// handleMovieDetails godoc
// @Summary Movie details page
// @Tags movies
// @Produce html
// @Param id path int true "Movie id"
// @Success 200
// @Failure 404
// @Router /movies/{id}/details [get]
func (s *Server) handleMovieDetails(c echo.Context) error {
	ctx := c.Request().Context()
	rawID := c.Param("id")
	s.Logger.InfoContext(ctx, "fetching movie details", "id", rawID)

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err == nil {
		var m movie.Movie
		m, err = s.MovieService.GetMovie(ctx, id)
		if err == nil {
			return c.Render(http.StatusOK, templateMovieDetails, echo.Map{
				"movie":      m,
				"movieIcon":  s.MovieIcon(m.MovieName),
				"allReviews": s.reviewsFor(ctx, m.ID),
			})
		}
	}

	code := errs.ErrorCode(err)
	if code != errs.ENOTFOUND && code != errs.EINVALID && !isNumError(err) {
		return err
	}
	s.Logger.WarnContext(ctx, "movie not found", "id", rawID)
	return c.Render(http.StatusNotFound, templateError, echo.Map{
		"title":   "Movie Not Found",
		"message": fmt.Sprintf("Movie with ID %s was not found.", rawID),
	})
}

func (s *Server) catalogModel(ctx context.Context) (echo.Map, error) {
	movies, err := s.MovieService.ListMovies(ctx)
	if err != nil {
		return nil, err
	}
	genres, err := s.MovieService.ListGenres(ctx)
	if err != nil {
		return nil, err
	}
	return echo.Map{
		"movies": movies,
		"genres": genres,
	}, nil
}

func (s *Server) searchModel(ctx context.Context, req SearchMoviesRequest) (echo.Map, error) {
	results, err := s.MovieService.Search(ctx, req.ToQuery())
	if err != nil {
		return nil, err
	}
	genres, err := s.MovieService.ListGenres(ctx)
	if err != nil {
		return nil, err
	}

	model := echo.Map{
		"movies":        results,
		"genres":        genres,
		"searchName":    nil,
		"searchId":      nil,
		"searchGenre":   nil,
		"searchMessage": searchMessage(len(results)),
	}
	if req.Name != nil {
		model["searchName"] = *req.Name
	}
	if req.ID != nil {
		model["searchId"] = *req.ID
	}
	if req.Genre != nil {
		model["searchGenre"] = *req.Genre
	}
	return model, nil
}

// reviewsFor never fails: a broken review source only hides the reviews.
func (s *Server) reviewsFor(ctx context.Context, movieID int64) []review.Review {
	if s.ReviewService == nil {
		return []review.Review{}
	}
	reviews, err := s.ReviewService.ReviewsForMovie(ctx, movieID)
	if err != nil {
		s.Logger.WarnContext(ctx, "cannot load reviews", "movie_id", movieID, "error", err)
		return []review.Review{}
	}
	return reviews
}

func (s *Server) logSearch(ctx context.Context, msg string, req SearchMoviesRequest) {
	attrs := make([]interface{}, 0, 6)
	if req.Name != nil {
		attrs = append(attrs, "name", *req.Name)
	}
	if req.ID != nil {
		attrs = append(attrs, "id", *req.ID)
	}
	if req.Genre != nil {
		attrs = append(attrs, "genre", *req.Genre)
	}
	s.Logger.InfoContext(ctx, msg, attrs...)
}

func (s *Server) reportError(c echo.Context, msg string, err error) {
	s.Logger.ErrorContext(c.Request().Context(), msg,
		"error", err,
		"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
	)
	sentry.WithContext(c).Error(err)
}

func isNumError(err error) bool {
	_, ok := err.(*strconv.NumError)
	return ok
}
