// Package session persists the client's durable state: the authentication
// token and a locally cached post list, each under a fixed string key.
// Everything else is refetched.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"foodcourt/internal/models"
	"foodcourt/internal/observability"

	"github.com/redis/go-redis/v9"
)

// Fixed storage keys.
const (
	TokenKey       = "auth_token"
	CachedPostsKey = "cached_posts"
)

// CachedPostsTTL bounds how stale the offline feed snapshot may get.
const CachedPostsTTL = 30 * time.Minute

// Store holds the durable client state in Redis. A nil client degrades to a
// no-op store: reads come back empty, writes are dropped.
type Store struct {
	client *redis.Client
}

// New creates a session store over the given Redis client.
func New(client *redis.Client) *Store {
	return &Store{client: client}
}

// Client exposes the underlying Redis client, nil when the store is degraded.
// The rate limiter shares it.
func (s *Store) Client() *redis.Client {
	return s.client
}

// Connect initializes a Redis client for the given address, tolerating an
// unreachable server.
func Connect(addr string) *redis.Client {
	var opts *redis.Options
	if strings.Contains(addr, "://") {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			log.Printf("Redis connection warning: invalid REDIS_URL %q: %v (continuing without session persistence)", addr, err)
			return nil
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: addr}
	}

	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis connection warning: %v (continuing without session persistence)", err)
		return nil
	}
	return client
}

// SaveToken stores the authentication token.
func (s *Store) SaveToken(ctx context.Context, token string) error {
	if s.client == nil {
		return nil
	}
	if err := s.client.Set(ctx, TokenKey, token, 0).Err(); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Token returns the stored authentication token, or "" when none is stored.
// It satisfies the remote client's token source.
func (s *Store) Token(ctx context.Context) (string, error) {
	if s.client == nil {
		return "", nil
	}
	token, err := s.client.Get(ctx, TokenKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", models.NewInternalError(err)
	}
	return token, nil
}

// ClearToken drops the stored token. Used by logout, best-effort.
func (s *Store) ClearToken(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	if err := s.client.Del(ctx, TokenKey).Err(); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// CachePosts stores a feed snapshot for offline display.
func (s *Store) CachePosts(ctx context.Context, posts []*models.Post) error {
	if s.client == nil {
		return nil
	}
	payload, err := json.Marshal(posts)
	if err != nil {
		return models.NewInternalError(err)
	}
	if err := s.client.Set(ctx, CachedPostsKey, payload, CachedPostsTTL).Err(); err != nil {
		observability.SessionStoreErrors.WithLabelValues("cache_posts").Inc()
		return models.NewInternalError(err)
	}
	return nil
}

// CachedPosts returns the stored feed snapshot, or nil when none is cached.
func (s *Store) CachedPosts(ctx context.Context) ([]*models.Post, error) {
	if s.client == nil {
		return nil, nil
	}
	payload, err := s.client.Get(ctx, CachedPostsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		observability.FeedCacheMisses.Inc()
		return nil, nil
	}
	if err != nil {
		observability.SessionStoreErrors.WithLabelValues("cached_posts").Inc()
		return nil, models.NewInternalError(err)
	}
	var posts []*models.Post
	if err := json.Unmarshal(payload, &posts); err != nil {
		return nil, models.NewInternalError(err)
	}
	observability.FeedCacheHits.Inc()
	return posts, nil
}
