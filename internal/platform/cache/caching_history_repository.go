// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"travel_journal/internal/feature/travelhistory/domain/entity"
	"travel_journal/internal/feature/travelhistory/usecase"
)

// CachingHistoryRepository decorates a HistoryRepository with Redis caching.
// Reads are served from the cache when possible; every committed write drops
// the whole namespace so no reader sees an entry without its media.
type CachingHistoryRepository struct {
	inner     usecase.HistoryRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.HistoryRepository = (*CachingHistoryRepository)(nil)

// NewCachingHistoryRepository decorates a HistoryRepository with Redis caching.
// If ttl is 0, it defaults to 1 minute. If namespace is empty, it uses "travel".
func NewCachingHistoryRepository(rdb *redis.Client, ttl time.Duration, inner usecase.HistoryRepository, namespace string) *CachingHistoryRepository {
	if ttl <= 0 {
		ttl = time.Minute
	}
	if namespace == "" {
		namespace = "travel"
	}
	return &CachingHistoryRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// RunInTx delegates to the inner repository and invalidates cached reads
// after a successful commit.
func (c *CachingHistoryRepository) RunInTx(ctx context.Context, fn func(tx usecase.HistoryTx) error) error {
	if err := c.inner.RunInTx(ctx, fn); err != nil {
		return err
	}
	if c.rdb == nil {
		return nil
	}
	// Best effort: entries expire after ttl anyway.
	if err := c.deleteByPattern(ctx, c.namespace+":*"); err != nil {
		slog.Warn("cache invalidation failed", "namespace", c.namespace, "error", err)
	}
	return nil
}

func (c *CachingHistoryRepository) ListByUser(ctx context.Context, userID uint) ([]entity.HistoryRow, error) {
	return c.cached(ctx, fmt.Sprintf("%s:user:%d", c.namespace, userID), func() ([]entity.HistoryRow, error) {
		return c.inner.ListByUser(ctx, userID)
	})
}

func (c *CachingHistoryRepository) ListAll(ctx context.Context) ([]entity.HistoryRow, error) {
	return c.cached(ctx, c.namespace+":all", func() ([]entity.HistoryRow, error) {
		return c.inner.ListAll(ctx)
	})
}

func (c *CachingHistoryRepository) ListByArea(ctx context.Context, area string) ([]entity.HistoryRow, error) {
	key := c.namespace + ":area:" + areaKey(area)
	return c.cached(ctx, key, func() ([]entity.HistoryRow, error) {
		return c.inner.ListByArea(ctx, area)
	})
}

// cached checks key first, then falls back to load and stores its result.
func (c *CachingHistoryRepository) cached(ctx context.Context, key string, load func() ([]entity.HistoryRow, error)) ([]entity.HistoryRow, error) {
	if c.rdb == nil {
		return load()
	}

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.HistoryRow
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// corrupted entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := load()
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return out, nil
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingHistoryRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

// areaKey folds case and hex-encodes the area, so distinct areas never share
// a key and the key holds no glob metacharacters.
func areaKey(area string) string {
	return hex.EncodeToString([]byte(strings.ToLower(area)))
}
