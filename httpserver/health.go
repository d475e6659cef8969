package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterHealthRoutes() {
	s.Router.GET("/healthcheck", s.healthCheck)
}

// healthCheck godoc
// @Summary Health Check
// @Description Check if server is alive and how many movies are loaded
// @Tags health
// @Success 200 {object} APIResponse
// @Router /healthcheck [get]
func (s *Server) healthCheck(c echo.Context) error {
	result := map[string]interface{}{
		"status": "OK",
	}
	if s.MovieService != nil {
		if movies, err := s.MovieService.ListMovies(c.Request().Context()); err == nil {
			result["movies"] = len(movies)
		}
	}
	return writeSuccess(c, http.StatusOK, result)
}
