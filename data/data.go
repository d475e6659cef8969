// Package data bundles the default movie and review documents.
package data

import "embed"

const (
	MoviesFile  = "movies.json"
	ReviewsFile = "reviews.json"
)

//go:embed movies.json reviews.json
var FS embed.FS
