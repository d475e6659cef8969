package movie_test

import "qdevmovies/movie"

func fixtureMovies() []movie.Movie {
	return []movie.Movie{
		{ID: 1, MovieName: "The Prison Escape", Director: "John Director", Year: 1994, Genre: "Drama", Description: "Two men bond behind bars.", Duration: 142, IMDbRating: 5.0},
		{ID: 2, MovieName: "The Family Boss", Director: "Michael Filmmaker", Year: 1972, Genre: "Crime/Drama", Description: "A dynasty hands over power.", Duration: 175, IMDbRating: 5.0},
		{ID: 3, MovieName: "The Masked Hero", Director: "Chris Moviemaker", Year: 2008, Genre: "Action/Crime", Description: "A vigilante faces chaos.", Duration: 152, IMDbRating: 5.0},
		{ID: 4, MovieName: "Laugh Factory", Director: "Sarah Funny", Year: 2015, Genre: "Comedy", Description: "Stand-up comics share a stage.", Duration: 98, IMDbRating: 3.5},
		{ID: 5, MovieName: "Speed Chase", Director: "Alex Fast", Year: 2019, Genre: "Action", Description: "A courier outruns everyone.", Duration: 110, IMDbRating: 4.0},
		{ID: 6, MovieName: "Prison Break Out", Director: "Dana Walls", Year: 2001, Genre: "Action", Description: "A daring escape plan.", Duration: 120, IMDbRating: 3.0},
	}
}

func mustCatalog(movies []movie.Movie) *movie.Catalog {
	c, err := movie.NewCatalog(movies)
	if err != nil {
		panic(err)
	}
	return c
}

func ptr[T any](v T) *T {
	return &v
}
