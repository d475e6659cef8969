package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"qdevmovies/data"
	"qdevmovies/dynamodb"
	"qdevmovies/jsonfile"
	"qdevmovies/movie"
	"qdevmovies/pkg/config"
	"qdevmovies/postgres"

	"gorm.io/gorm"
)

func main() {
	var (
		moviesPath  string
		reviewsPath string
		skipReviews bool
	)

	flag.StringVar(&moviesPath, "movies", "", "Path to movies.json (default: bundled catalog)")
	flag.StringVar(&reviewsPath, "reviews", "", "Path to reviews.json (default: bundled reviews)")
	flag.BoolVar(&skipReviews, "skip-reviews", false, "Only import movies")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("load config failed", "error", err)
		os.Exit(1)
	}

	db, err := postgres.NewConnection(postgres.Options{
		DBName:   cfg.DB.Name,
		DBUser:   cfg.DB.User,
		Password: cfg.DB.Pass,
		Host:     cfg.DB.Host,
		Port:     fmt.Sprintf("%d", cfg.DB.Port),
		SSLMode:  cfg.DB.EnableSSL,
	})
	if err != nil {
		slog.Error("cannot open postgres connection", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	moviesFS, moviesName := source(moviesPath, data.MoviesFile)
	count, err := importMovies(ctx, db, moviesFS, moviesName)
	if err != nil {
		slog.Error("movie import failed", "error", err)
		os.Exit(1)
	}
	slog.Info("movies imported", "rows", count)

	if skipReviews {
		return
	}

	reviewsFS, reviewsName := source(reviewsPath, data.ReviewsFile)
	reviews, err := jsonfile.NewReviewRepository(reviewsFS, reviewsName)
	if err != nil {
		slog.Error("cannot read reviews", "error", err)
		os.Exit(1)
	}

	switch cfg.Catalog.ReviewsSource {
	case config.SourceDynamoDB:
		count, err = importReviewsToDynamoDB(ctx, cfg, reviews)
	default:
		count, err = postgres.NewReviewRepository(db).UpsertReviews(ctx, reviews.AllReviews())
	}
	if err != nil {
		slog.Error("review import failed", "error", err, "target", cfg.Catalog.ReviewsSource)
		os.Exit(1)
	}
	slog.Info("reviews imported", "rows", count, "target", cfg.Catalog.ReviewsSource)
}

// source resolves a JSON document, falling back to the bundled copy.
func source(path, bundled string) (fs.FS, string) {
	if path == "" {
		return data.FS, bundled
	}
	return jsonfile.FromPath(path)
}

// importMovies validates the whole document before writing anything so a
// broken file never leaves a partial catalog behind.
func importMovies(ctx context.Context, db *gorm.DB, fsys fs.FS, name string) (int, error) {
	movies, err := jsonfile.NewMovieRepository(fsys, name).AllMovies(ctx)
	if err != nil {
		return 0, err
	}
	if _, err := movie.NewCatalog(movies); err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}

	var count int
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		count, err = postgres.NewMovieRepository(tx).UpsertMovies(ctx, movies)
		return err
	})
	return count, err
}

func importReviewsToDynamoDB(ctx context.Context, cfg *config.Config, reviews *jsonfile.ReviewRepository) (int, error) {
	client, err := dynamodb.NewClient(ctx, dynamodb.Options{
		Region:       cfg.DynamoDB.Region,
		Endpoint:     cfg.DynamoDB.Endpoint,
		AccessKey:    cfg.DynamoDB.AccessKey,
		SecretKey:    cfg.DynamoDB.SecretKey,
		SessionToken: cfg.DynamoDB.SessionToken,
	})
	if err != nil {
		return 0, err
	}

	repo := dynamodb.NewReviewRepository(client, cfg.DynamoDB.ReviewsTable)
	count := 0
	for _, rv := range reviews.AllReviews() {
		if _, err := repo.SaveReview(ctx, rv); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}
