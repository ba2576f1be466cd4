package facility

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"commonhub/internal/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CachedRepository is a read-through redis cache in front of the facility
// table. Only facility records are cached; bookings always come from the
// database so availability is never stale.
type CachedRepository struct {
	Repository
	redis *redis.Client
	ttl   time.Duration
}

func NewCachedRepository(repo Repository, rdb *redis.Client, ttl time.Duration) *CachedRepository {
	return &CachedRepository{
		Repository: repo,
		redis:      rdb,
		ttl:        ttl,
	}
}

func cacheKey(id uuid.UUID) string {
	return "facility:" + id.String()
}

func (c *CachedRepository) GetFacilityByID(ctx context.Context, id uuid.UUID) (*Facility, error) {
	data, err := c.redis.Get(ctx, cacheKey(id)).Bytes()
	if err == nil {
		var f Facility
		if err := json.Unmarshal(data, &f); err == nil {
			return &f, nil
		}
		logger.Warn("Dropping unreadable facility cache entry", "facility_id", id)
	} else if !errors.Is(err, redis.Nil) {
		logger.Warn("Facility cache read failed", "facility_id", id, "error", err)
	}

	f, err := c.Repository.GetFacilityByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.store(ctx, f)
	return f, nil
}

func (c *CachedRepository) UpdateConfig(ctx context.Context, id uuid.UUID, cfg Config) (*Facility, error) {
	f, err := c.Repository.UpdateConfig(ctx, id, cfg)
	if err != nil {
		return nil, err
	}

	if err := c.redis.Del(ctx, cacheKey(id)).Err(); err != nil {
		logger.Warn("Facility cache invalidation failed", "facility_id", id, "error", err)
	}
	return f, nil
}

func (c *CachedRepository) store(ctx context.Context, f *Facility) {
	data, err := json.Marshal(f)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, cacheKey(f.ID), data, c.ttl).Err(); err != nil {
		logger.Warn("Facility cache write failed", "facility_id", f.ID, "error", err)
	}
}
