package httpserver_test

import (
	"testing"

	"qdevmovies/errs"
	"qdevmovies/httpserver"

	"github.com/stretchr/testify/assert"
)

func TestValidator(t *testing.T) {
	v := httpserver.NewValidator()
	id := func(n int64) *int64 { return &n }

	tests := []struct {
		name    string
		req     httpserver.SearchMoviesRequest
		wantErr bool
	}{
		{name: "no id", req: httpserver.SearchMoviesRequest{}},
		{name: "positive id", req: httpserver.SearchMoviesRequest{ID: id(3)}},
		{name: "zero id", req: httpserver.SearchMoviesRequest{ID: id(0)}, wantErr: true},
		{name: "negative id", req: httpserver.SearchMoviesRequest{ID: id(-1)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)

			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, errs.EINVALID, errs.ErrorCode(err))
			assert.Equal(t, "validation error: id failed on gt", errs.ErrorMessage(err))
		})
	}
}
