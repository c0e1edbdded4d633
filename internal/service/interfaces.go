package service

import (
	"context"
	"time"

	"pulse/internal/model"
)

// MySQLRepositoryInterface defines the interface for MySQL operations (for testing)
type MySQLRepositoryInterface interface {
	GetSiteByDomain(ctx context.Context, domain string) (*model.Site, error)
	UpsertCounter(ctx context.Context, siteID int64, name, value, date string) error
	SaveRecentActivity(ctx context.Context, entry *model.RecentActivity) error
}

// RedisRepositoryInterface defines the interface for Redis operations (for testing)
type RedisRepositoryInterface interface {
	CacheSite(ctx context.Context, site *model.Site, ttl time.Duration) error
	GetCachedSite(ctx context.Context, domain string) (*model.Site, error)
	IncrementLiveVisitors(ctx context.Context, siteID int64) (int64, error)
}

// ClassifierInterface defines the interface for request classification
type ClassifierInterface interface {
	Classify(userAgent, ip string) model.ClassificationResult
}

// ResolverInterface defines the interface for site resolution and authorization
type ResolverInterface interface {
	Resolve(ctx context.Context, domain, domainKey string) (*model.Site, error)
}

// AggregatorInterface defines the interface for counter aggregation
type AggregatorInterface interface {
	Apply(ctx context.Context, record *model.NormalizedRecord) error
}

// TrackerServiceInterface defines the interface for the ingestion pipeline
type TrackerServiceInterface interface {
	Track(ctx context.Context, req *model.TrackRequest, domainKey string) error
}
