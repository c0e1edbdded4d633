package service

import (
	"context"
	"net/url"

	"pulse/internal/model"
	"pulse/internal/privacy"

	"github.com/rs/zerolog/log"
)

// TrackerService runs the ingestion pipeline: resolve and authorize
// the site, apply privacy rules, classify the request, normalize it
// and aggregate the result. Each stage may short-circuit with a
// terminal rejection; later stages never run after one.
type TrackerService struct {
	resolver   ResolverInterface
	classifier ClassifierInterface
	normalizer *Normalizer
	aggregator AggregatorInterface
}

// NewTrackerService creates a new TrackerService
func NewTrackerService(
	resolver ResolverInterface,
	classifier ClassifierInterface,
	normalizer *Normalizer,
	aggregator AggregatorInterface,
) *TrackerService {
	return &TrackerService{
		resolver:   resolver,
		classifier: classifier,
		normalizer: normalizer,
		aggregator: aggregator,
	}
}

// Track ingests one validated tracking request
func (s *TrackerService) Track(ctx context.Context, req *model.TrackRequest, domainKey string) error {
	site, err := s.resolver.Resolve(ctx, req.Domain, domainKey)
	if err != nil {
		return err
	}

	if privacy.IPExcluded(site.ExcludedIPList(), req.IP) {
		return ErrIPExcluded
	}

	classification := s.classifier.Classify(req.UserAgent, req.IP)

	if privacy.BotExcluded(site, classification) {
		return ErrBotExcluded
	}

	// Query redaction applies to pageviews only; events carry no URL
	// data of their own.
	var query string
	var params url.Values
	if !req.IsEvent() {
		if u, parseErr := url.Parse(req.Page); parseErr == nil {
			query, params = privacy.RedactQuery(site.ExcludedParamList(), u.RawQuery)
		}
	}

	record := s.normalizer.Normalize(site, req, classification, query, params)

	if err := s.aggregator.Apply(ctx, record); err != nil {
		log.Error().Err(err).
			Int64("site_id", site.ID).
			Str("domain", site.Domain).
			Msg("Failed to aggregate record")
		return err
	}

	return nil
}
