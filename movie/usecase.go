package movie

import "context"

type Service interface {
	ListMovies(ctx context.Context) ([]Movie, error)
	ListGenres(ctx context.Context) ([]string, error)
	GetMovie(ctx context.Context, id int64) (Movie, error)
	Search(ctx context.Context, q Query) ([]Movie, error)
}

type Repository interface {
	AllMovies(ctx context.Context) ([]Movie, error)
}

type Usecase struct {
	c *Catalog
}

func NewUsecase(c *Catalog) *Usecase {
	if c == nil {
		c = EmptyCatalog()
	}
	return &Usecase{c: c}
}

func (uc *Usecase) ListMovies(ctx context.Context) ([]Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return uc.c.All(), nil
}

func (uc *Usecase) ListGenres(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return uc.c.Genres(), nil
}

func (uc *Usecase) GetMovie(ctx context.Context, id int64) (Movie, error) {
	if err := ctx.Err(); err != nil {
		return Movie{}, err
	}
	m, ok := uc.c.ByID(id)
	if !ok {
		return Movie{}, ErrMovieNotFound
	}
	return m, nil
}

// Search filters the catalog by q. A positive id restricts the result to that
// single movie, which must still satisfy the name and genre criteria. A
// non-positive id is ignored.
func (uc *Usecase) Search(ctx context.Context, q Query) ([]Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := []Movie{}
	if q.ID != nil && *q.ID > 0 {
		m, ok := uc.c.ByID(*q.ID)
		if ok && matches(m, q.Name, q.Genre) {
			results = append(results, m)
		}
		return results, nil
	}

	for _, m := range uc.c.movies {
		if matches(m, q.Name, q.Genre) {
			results = append(results, m)
		}
	}
	return results, nil
}
