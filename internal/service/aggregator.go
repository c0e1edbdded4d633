package service

import (
	"context"
	"fmt"

	"pulse/internal/model"
	"pulse/internal/mq"
	"pulse/pkg/util"

	"github.com/rs/zerolog/log"
)

// maxCounterValueLen caps every stored counter value
const maxCounterValueLen = 255

// Aggregator applies normalized records to durable counters and the
// recent-activity feed
type Aggregator struct {
	mysqlRepo MySQLRepositoryInterface
	redisRepo RedisRepositoryInterface
	// producer routes recent-activity entries through MQ when
	// configured; nil means direct inserts
	producer mq.ProducerInterface
}

// NewAggregator creates a new Aggregator
func NewAggregator(
	mysqlRepo MySQLRepositoryInterface,
	redisRepo RedisRepositoryInterface,
	producer mq.ProducerInterface,
) *Aggregator {
	return &Aggregator{
		mysqlRepo: mysqlRepo,
		redisRepo: redisRepo,
		producer:  producer,
	}
}

// Apply upserts one counter per metric and appends the recent-activity
// entry. Counter failures are surfaced; per-metric partial application
// stands as a logged degradation. The recent-activity append and the
// live-visitor tick are best-effort.
func (a *Aggregator) Apply(ctx context.Context, record *model.NormalizedRecord) error {
	var firstErr error

	for _, metric := range record.Metrics {
		value := util.Truncate(metric.Value, maxCounterValueLen)
		if err := a.mysqlRepo.UpsertCounter(ctx, record.SiteID, metric.Name, value, record.Date); err != nil {
			log.Error().Err(err).
				Int64("site_id", record.SiteID).
				Str("metric", metric.Name).
				Msg("Failed to upsert counter")
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	if firstErr != nil {
		return fmt.Errorf("counter upsert failed: %w", firstErr)
	}

	if record.Recent != nil {
		a.appendRecent(ctx, record.Recent)

		if a.redisRepo != nil {
			if _, err := a.redisRepo.IncrementLiveVisitors(ctx, record.SiteID); err != nil {
				log.Warn().Err(err).Int64("site_id", record.SiteID).Msg("Failed to tick live visitors")
			}
		}
	}

	return nil
}

// appendRecent persists a recent-activity entry, via MQ when a
// producer is configured. Failures are logged, never surfaced.
func (a *Aggregator) appendRecent(ctx context.Context, entry *model.RecentActivity) {
	if a.producer != nil {
		msg := &mq.RecentActivityMessage{
			SiteID:    entry.SiteID,
			Page:      entry.Page,
			Referrer:  entry.Referrer,
			OS:        entry.OS,
			Browser:   entry.Browser,
			Device:    entry.Device,
			Country:   entry.Country,
			City:      entry.City,
			Language:  entry.Language,
			Timestamp: entry.CreatedAt,
		}
		if err := a.producer.SendRecentActivity(ctx, msg); err != nil {
			log.Error().Err(err).Int64("site_id", entry.SiteID).Msg("Failed to send recent activity to MQ")
		}
		return
	}

	if err := a.mysqlRepo.SaveRecentActivity(ctx, entry); err != nil {
		log.Error().Err(err).Int64("site_id", entry.SiteID).Msg("Failed to save recent activity")
	}
}
