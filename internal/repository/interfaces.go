package repository

import (
	"context"
	"time"

	"pulse/internal/model"
)

// MySQLRepositoryInterface defines the interface for MySQL operations
type MySQLRepositoryInterface interface {
	GetDB() interface{}
	GetSiteByDomain(ctx context.Context, domain string) (*model.Site, error)
	UpsertCounter(ctx context.Context, siteID int64, name, value, date string) error
	SaveRecentActivity(ctx context.Context, entry *model.RecentActivity) error
	Close() error
}

// RedisRepositoryInterface defines the interface for Redis operations
type RedisRepositoryInterface interface {
	GetClient() interface{}
	CacheSite(ctx context.Context, site *model.Site, ttl time.Duration) error
	GetCachedSite(ctx context.Context, domain string) (*model.Site, error)
	IncrementLiveVisitors(ctx context.Context, siteID int64) (int64, error)
	Close() error
}
