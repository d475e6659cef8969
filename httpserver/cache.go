package httpserver

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

const (
	headerXCache     = "X-Cache"
	defaultCacheTTL  = time.Minute
	defaultKeyPrefix = "qdevmovies"
)

type cachedResponse struct {
	ContentType string `json:"contentType"`
	Body        []byte `json:"body"`
}

// bodyRecorder keeps a copy of everything written to the client.
type bodyRecorder struct {
	http.ResponseWriter
	buf bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (s *Server) cacheKey(c echo.Context) string {
	prefix := s.CachePrefix
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	sum := sha1.Sum([]byte(c.Path() + "?" + c.Request().URL.RawQuery))
	return fmt.Sprintf("%s:search:%x", prefix, sum[:])
}

// cacheResponses serves repeated GET requests from redis. Only 200 responses
// are stored. The middleware is a pass-through while s.Cache is nil.
func (s *Server) cacheResponses() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if s.Cache == nil || c.Request().Method != http.MethodGet {
				return next(c)
			}

			ctx := c.Request().Context()
			key := s.cacheKey(c)

			raw, err := s.Cache.Get(ctx, key).Bytes()
			switch {
			case err == nil:
				var cached cachedResponse
				if err := json.Unmarshal(raw, &cached); err == nil {
					c.Response().Header().Set(headerXCache, "HIT")
					return c.Blob(http.StatusOK, cached.ContentType, cached.Body)
				}
				s.Logger.WarnContext(ctx, "dropping unreadable cache entry", "key", key)
			case !errors.Is(err, redis.Nil):
				s.Logger.WarnContext(ctx, "cache lookup failed", "key", key, "error", err)
			}

			rec := &bodyRecorder{ResponseWriter: c.Response().Writer}
			c.Response().Writer = rec
			c.Response().Header().Set(headerXCache, "MISS")
			defer func() { c.Response().Writer = rec.ResponseWriter }()

			if err := next(c); err != nil {
				return err
			}
			if c.Response().Status != http.StatusOK {
				return nil
			}

			payload, err := json.Marshal(cachedResponse{
				ContentType: c.Response().Header().Get(echo.HeaderContentType),
				Body:        rec.buf.Bytes(),
			})
			if err != nil {
				return nil
			}

			ttl := s.CacheTTL
			if ttl <= 0 {
				ttl = defaultCacheTTL
			}
			if err := s.Cache.SetEx(context.WithoutCancel(ctx), key, payload, ttl).Err(); err != nil {
				s.Logger.WarnContext(ctx, "cache store failed", "key", key, "error", err)
			}
			return nil
		}
	}
}
