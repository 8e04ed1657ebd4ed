package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"travel_journal/internal/feature/travelhistory/adapters"
	"travel_journal/internal/feature/travelhistory/usecase"
	"travel_journal/internal/platform/cache"
)

// NewHistoryRepository creates a HistoryRepository implementation.
// If Redis is available, reads go through a Redis cache.
// Otherwise, the database is queried directly.
func NewHistoryRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) usecase.HistoryRepository {
	repo := adapters.NewTravelHistoryRepository(db)
	if rdb != nil {
		return cache.NewCachingHistoryRepository(rdb, ttl, repo, "travel")
	}
	return repo
}
