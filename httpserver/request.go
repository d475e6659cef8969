package httpserver

import (
	"strconv"
	"strings"

	"qdevmovies/movie"

	"github.com/labstack/echo/v4"
)

type SearchMoviesRequest struct {
	Name  *string `query:"name"`
	ID    *int64  `query:"id" validate:"omitempty,gt=0"`
	Genre *string `query:"genre"`
}

func (r SearchMoviesRequest) ToQuery() movie.Query {
	return movie.Query{
		Name:  r.Name,
		ID:    r.ID,
		Genre: r.Genre,
	}
}

// bindSearchMoviesRequest reads the optional search parameters. Parameters
// that are not sent stay nil; an empty id is treated as not sent.
func bindSearchMoviesRequest(c echo.Context) (SearchMoviesRequest, error) {
	var req SearchMoviesRequest
	params := c.QueryParams()

	if _, ok := params["name"]; ok {
		name := params.Get("name")
		req.Name = &name
	}
	if _, ok := params["genre"]; ok {
		genre := params.Get("genre")
		req.Genre = &genre
	}
	if raw := strings.TrimSpace(params.Get("id")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return req, movie.ErrInvalidID
		}
		req.ID = &id
	}

	if err := c.Validate(&req); err != nil {
		return req, movie.ErrInvalidID
	}
	return req, nil
}
