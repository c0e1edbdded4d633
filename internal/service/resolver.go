package service

import (
	"context"
	"errors"

	"pulse/internal/model"
	"pulse/internal/repository"

	"github.com/rs/zerolog/log"
)

var (
	// ErrSiteNotFound is returned when no site matches the domain
	ErrSiteNotFound = errors.New("site not found")
	// ErrTrackingDisabled is returned when the owning account cannot track
	ErrTrackingDisabled = errors.New("tracking disabled for site")
	// ErrInvalidDomainKey is returned when key restriction is enabled
	// and the X-Domain-Key header is missing or wrong
	ErrInvalidDomainKey = errors.New("invalid domain key")
	// ErrIPExcluded is returned when the request IP matches the site's
	// excluded IP list
	ErrIPExcluded = errors.New("ip address excluded")
	// ErrBotExcluded is returned when the site excludes bot traffic and
	// the user agent classifies as a bot
	ErrBotExcluded = errors.New("bot traffic excluded")
)

// Resolver maps a request domain to its site configuration and
// enforces tracking authorization. Read-only, no side effects beyond
// the cache fill.
type Resolver struct {
	mysqlRepo MySQLRepositoryInterface
	redisRepo RedisRepositoryInterface
	// keyRestriction is fixed at construction from deployment config
	keyRestriction bool
}

// NewResolver creates a new Resolver
func NewResolver(
	mysqlRepo MySQLRepositoryInterface,
	redisRepo RedisRepositoryInterface,
	keyRestriction bool,
) *Resolver {
	return &Resolver{
		mysqlRepo:      mysqlRepo,
		redisRepo:      redisRepo,
		keyRestriction: keyRestriction,
	}
}

// Resolve looks up the site for a domain and authorizes the request
func (r *Resolver) Resolve(ctx context.Context, domain, domainKey string) (*model.Site, error) {
	normalized := model.NormalizeDomain(domain)

	site, err := r.redisRepo.GetCachedSite(ctx, normalized)
	if err != nil || site == nil {
		site, err = r.mysqlRepo.GetSiteByDomain(ctx, normalized)
		if err != nil {
			return nil, ErrSiteNotFound
		}

		if err := r.redisRepo.CacheSite(ctx, site, repository.SiteCacheTTL); err != nil {
			log.Warn().Err(err).Str("domain", normalized).Msg("Failed to cache site")
		}
	}

	if !site.TrackingEnabled() {
		return nil, ErrTrackingDisabled
	}

	if r.keyRestriction {
		if domainKey == "" || domainKey != site.DomainKey {
			return nil, ErrInvalidDomainKey
		}
	}

	return site, nil
}
