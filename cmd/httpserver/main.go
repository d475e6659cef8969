package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"qdevmovies/data"
	"qdevmovies/dynamodb"
	"qdevmovies/httpserver"
	"qdevmovies/jsonfile"
	"qdevmovies/movie"
	"qdevmovies/pkg/config"
	"qdevmovies/pkg/sentry"
	"qdevmovies/postgres"
	"qdevmovies/review"

	sentrygo "github.com/getsentry/sentry-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Cannot load config", "error", err)
		os.Exit(1)
	}

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		slog.Error("Cannot init sentry", "error", err)
		os.Exit(1)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var db *gorm.DB
	if cfg.Catalog.Source == config.SourcePostgres || cfg.Catalog.ReviewsSource == config.SourcePostgres {
		db, err = postgres.NewConnection(postgres.Options{
			DBName:   cfg.DB.Name,
			DBUser:   cfg.DB.User,
			Password: cfg.DB.Pass,
			Host:     cfg.DB.Host,
			Port:     strconv.Itoa(cfg.DB.Port),
			SSLMode:  cfg.DB.EnableSSL,
		})
		if err != nil {
			slog.Error("Cannot open postgres connection", "error", err)
			os.Exit(1)
		}
	}

	movieRepo, err := newMovieRepository(cfg, db)
	if err != nil {
		slog.Error("Cannot create movie repository", "error", err)
		os.Exit(1)
	}
	catalog := movie.LoadCatalog(ctx, movieRepo, logger)

	reviewRepo, err := newReviewRepository(ctx, cfg, db)
	if err != nil {
		slog.Error("Cannot create review repository", "error", err)
		sentry.Error(err)
		os.Exit(1)
	}

	server := httpserver.Default(cfg)
	server.Addr = fmt.Sprintf(":%d", cfg.Port)
	server.Logger = logger
	server.MovieService = movie.NewUsecase(catalog)
	server.ReviewService = review.NewUsecase(reviewRepo)

	if cfg.Cache.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			slog.Warn("Redis unavailable, search responses will not be cached", "addr", cfg.Cache.RedisAddr, "error", err)
		} else {
			server.Cache = rdb
		}
	}

	go func() {
		slog.Info("server started!", "addr", server.Addr, "movies", catalog.Len())
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped with error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
	slog.Info("server stopped")
}

func newMovieRepository(cfg *config.Config, db *gorm.DB) (movie.Repository, error) {
	switch cfg.Catalog.Source {
	case config.SourcePostgres:
		return postgres.NewMovieRepository(db), nil
	case config.SourceFile, "":
		if cfg.Catalog.MoviesFile != "" {
			fsys, name := jsonfile.FromPath(cfg.Catalog.MoviesFile)
			return jsonfile.NewMovieRepository(fsys, name), nil
		}
		return jsonfile.NewMovieRepository(data.FS, data.MoviesFile), nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}
}

func newReviewRepository(ctx context.Context, cfg *config.Config, db *gorm.DB) (review.Repository, error) {
	switch cfg.Catalog.ReviewsSource {
	case config.SourcePostgres:
		return postgres.NewReviewRepository(db), nil
	case config.SourceDynamoDB:
		client, err := dynamodb.NewClient(ctx, dynamodb.Options{
			Region:       cfg.DynamoDB.Region,
			Endpoint:     cfg.DynamoDB.Endpoint,
			AccessKey:    cfg.DynamoDB.AccessKey,
			SecretKey:    cfg.DynamoDB.SecretKey,
			SessionToken: cfg.DynamoDB.SessionToken,
		})
		if err != nil {
			return nil, err
		}
		return dynamodb.NewReviewRepository(client, cfg.DynamoDB.ReviewsTable), nil
	case config.SourceFile, "":
		if cfg.Catalog.ReviewsFile != "" {
			fsys, name := jsonfile.FromPath(cfg.Catalog.ReviewsFile)
			return jsonfile.NewReviewRepository(fsys, name)
		}
		return jsonfile.NewReviewRepository(data.FS, data.ReviewsFile)
	default:
		return nil, fmt.Errorf("unknown reviews source %q", cfg.Catalog.ReviewsSource)
	}
}
