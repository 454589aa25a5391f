package homecache

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// Cache keys for the rendered home page, one per auth class
const (
	KeyPrivate = "home_html_private"
	KeyPublic  = "home_html_public"
)

const writeTimeout = 5 * time.Second

// ErrMiss reports an absent cache entry
var ErrMiss = errors.New("homecache: miss")

// Key returns the cache key for the viewer's auth class
func Key(isAdmin bool) string {
	if isAdmin {
		return KeyPrivate
	}
	return KeyPublic
}

// Store is the key/value surface the gateway needs. Get returns ErrMiss
// for an absent key.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, keys ...string) error
}

// redisStore adapts *redis.Client to Store. Entries have no TTL;
// staleness is handled by explicit deletion, never by expiry.
type redisStore struct {
	rdb *redis.Client
}

func (s redisStore) Get(ctx context.Context, key string) (string, error) {
	v, err := s.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", ErrMiss
	}
	return v, err
}

func (s redisStore) Set(ctx context.Context, key, value string) error {
	return s.rdb.Set(ctx, key, value, 0).Err()
}

func (s redisStore) Del(ctx context.Context, keys ...string) error {
	return s.rdb.Del(ctx, keys...).Err()
}

// Gateway reads and writes the rendered home HTML, keyed by auth class.
type Gateway struct {
	store Store
	log   *logrus.Entry
}

// New creates a cache gateway backed by Redis
func New(rdb *redis.Client) *Gateway {
	return NewWithStore(redisStore{rdb: rdb})
}

// NewWithStore creates a cache gateway over an explicit store
func NewWithStore(store Store) *Gateway {
	return &Gateway{
		store: store,
		log:   logrus.WithField("component", "home-cache"),
	}
}

// Read attempts a cache read for the viewer's auth class.
// A read failure degrades to a miss; the caller re-renders.
func (g *Gateway) Read(ctx context.Context, isAdmin bool) (string, bool) {
	html, err := g.store.Get(ctx, Key(isAdmin))
	if err == ErrMiss {
		return "", false
	}
	if err != nil {
		g.log.WithError(err).Warn("failed to read home cache")
		return "", false
	}
	if html == "" {
		return "", false
	}
	return html, true
}

// Store writes the rendered HTML for the viewer's auth class
func (g *Gateway) Store(ctx context.Context, isAdmin bool, html string) error {
	return g.store.Set(ctx, Key(isAdmin), html)
}

// StoreAsync writes the rendered HTML back without delaying the response.
// Fire-and-forget: a dropped write costs one extra render later, nothing
// more, so errors are logged and discarded.
func (g *Gateway) StoreAsync(isAdmin bool, html string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()

		if err := g.Store(ctx, isAdmin, html); err != nil {
			g.log.WithError(err).Warn("failed to write home cache")
		}
	}()
}

// Purge deletes both cache variants
func (g *Gateway) Purge(ctx context.Context) error {
	return g.store.Del(ctx, KeyPrivate, KeyPublic)
}

// PurgeAsync deletes both variants without blocking the caller; used by
// admin mutations where cache freshness is advisory.
func (g *Gateway) PurgeAsync() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()

		if err := g.Purge(ctx); err != nil {
			g.log.WithError(err).Warn("failed to purge home cache")
		}
	}()
}
