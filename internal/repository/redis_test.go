package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulse/internal/config"
	"pulse/internal/model"
)

func newTestRedisRepo(t *testing.T) (*RedisRepository, *miniredis.Miniredis) {
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})

	return &RedisRepository{
		client: client,
		cfg: &config.RedisConfig{
			Addr:     s.Addr(),
			Password: "",
			DB:       0,
		},
	}, s
}

func TestNewRedisRepository(t *testing.T) {
	s := miniredis.RunT(t)
	defer s.Close()

	cfg := &config.RedisConfig{
		Addr:     s.Addr(),
		Password: "",
		DB:       0,
	}

	repo := NewRedisRepository(cfg)

	assert.NotNil(t, repo)
	assert.NotNil(t, repo.client)
	assert.Equal(t, cfg, repo.cfg)

	repo.Close()
}

func TestRedisRepository_CacheSite(t *testing.T) {
	repo, s := newTestRedisRepo(t)
	defer repo.Close()

	ctx := context.Background()

	site := &model.Site{
		ID:        42,
		Domain:    "example.com",
		AccountID: 7,
		Account:   model.Account{ID: 7, Email: "owner@example.com", CanTrack: true},
		DomainKey: "k-123",
	}

	err := repo.CacheSite(ctx, site, SiteCacheTTL)
	require.NoError(t, err)

	// Snapshot round-trips through the cache
	cached, err := repo.GetCachedSite(ctx, "example.com")
	assert.NoError(t, err)
	assert.Equal(t, site.ID, cached.ID)
	assert.Equal(t, site.Domain, cached.Domain)
	assert.Equal(t, site.DomainKey, cached.DomainKey)
	assert.True(t, cached.Account.CanTrack)

	// TTL was applied
	assert.Greater(t, s.TTL(SiteKeyPrefix+"example.com"), time.Duration(0))
}

func TestRedisRepository_GetCachedSite(t *testing.T) {
	repo, s := newTestRedisRepo(t)
	defer repo.Close()

	ctx := context.Background()

	t.Run("cache miss", func(t *testing.T) {
		site, err := repo.GetCachedSite(ctx, "nosuch.test")
		assert.Error(t, err)
		assert.ErrorIs(t, err, redis.Nil)
		assert.Nil(t, site)
	})

	t.Run("corrupt cached value", func(t *testing.T) {
		s.Set(SiteKeyPrefix+"broken.test", "not-json")

		site, err := repo.GetCachedSite(ctx, "broken.test")
		assert.Error(t, err)
		assert.Nil(t, site)
	})
}

func TestRedisRepository_IncrementLiveVisitors(t *testing.T) {
	repo, s := newTestRedisRepo(t)
	defer repo.Close()

	ctx := context.Background()

	count, err := repo.IncrementLiveVisitors(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// First tick sets the rolling window expiry
	assert.Greater(t, s.TTL(LiveKeyPrefix+"42"), time.Duration(0))

	count, err = repo.IncrementLiveVisitors(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// Sites do not share counters
	count, err = repo.IncrementLiveVisitors(ctx, 99)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
