package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pulse/internal/config"
	"pulse/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	// Redis key prefixes
	SiteKeyPrefix     = "site:"
	SiteCacheTTL      = 5 * time.Minute
	LiveKeyPrefix     = "site:live:"
	LiveVisitorWindow = 5 * time.Minute
)

// RedisRepository handles Redis operations
type RedisRepository struct {
	client *redis.Client
	cfg    *config.RedisConfig
}

// NewRedisRepository creates a new Redis repository
func NewRedisRepository(cfg *config.RedisConfig) *RedisRepository {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Msg("Failed to connect to Redis")
	} else {
		log.Info().Msg("Redis connected successfully")
	}

	return &RedisRepository{
		client: rdb,
		cfg:    cfg,
	}
}

// GetClient returns the Redis client
func (r *RedisRepository) GetClient() *redis.Client {
	return r.client
}

// CacheSite stores a site snapshot keyed by its normalized domain.
// Site rows change rarely, so a short TTL is the only invalidation.
func (r *RedisRepository) CacheSite(ctx context.Context, site *model.Site, ttl time.Duration) error {
	data, err := json.Marshal(site)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.siteKey(site.Domain), data, ttl).Err()
}

// GetCachedSite retrieves a cached site snapshot by normalized domain
func (r *RedisRepository) GetCachedSite(ctx context.Context, domain string) (*model.Site, error) {
	data, err := r.client.Get(ctx, r.siteKey(domain)).Bytes()
	if err != nil {
		return nil, err
	}

	var site model.Site
	if err := json.Unmarshal(data, &site); err != nil {
		return nil, err
	}
	return &site, nil
}

// IncrementLiveVisitors ticks the rolling live-visitor counter for a
// site. The key expires after the live window.
func (r *RedisRepository) IncrementLiveVisitors(ctx context.Context, siteID int64) (int64, error) {
	key := r.liveKey(siteID)
	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	// Set expiration if this is the first increment
	if count == 1 {
		r.client.Expire(ctx, key, LiveVisitorWindow)
	}
	return count, nil
}

// Close closes the Redis connection
func (r *RedisRepository) Close() error {
	return r.client.Close()
}

// Helper functions to build Redis keys

func (r *RedisRepository) siteKey(domain string) string {
	return SiteKeyPrefix + domain
}

func (r *RedisRepository) liveKey(siteID int64) string {
	return fmt.Sprintf("%s%d", LiveKeyPrefix, siteID)
}
