package service

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"pulse/internal/model"
	"pulse/pkg/util"
)

// Metric names written by the normalizer. Free-form dimension values
// (browser, country, ...) are stored under these names with the value
// string as the counter key.
const (
	MetricPageviews     = "pageviews"
	MetricPageviewHours = "pageviews_hours"
	MetricPage          = "page"
	MetricVisitors      = "visitors"
	MetricVisitorHours  = "visitors_hours"
	MetricEvent         = "event"
	MetricCampaign      = "campaign"
	MetricContinent     = "continent"
	MetricCountry       = "country"
	MetricCity          = "city"
	MetricBrowser       = "browser"
	MetricOS            = "os"
	MetricDevice        = "device"
	MetricLanguage      = "language"
	MetricResolution    = "resolution"
	MetricLandingPage   = "landing_page"
	MetricReferrer      = "referrer"
)

const (
	maxPageLen     = 255
	maxLanguageLen = 2
	maxValueDigits = 10
	maxUnitLen     = 32
)

// Normalizer turns a validated, filtered, classified request into a
// normalized record ready for aggregation
type Normalizer struct {
	loc *time.Location
	now func() time.Time
}

// NewNormalizer creates a new Normalizer using the given timezone for
// date and hour bucketing. A nil location defaults to UTC.
func NewNormalizer(loc *time.Location) *Normalizer {
	if loc == nil {
		loc = time.UTC
	}
	return &Normalizer{
		loc: loc,
		now: time.Now,
	}
}

// Normalize builds the pageview or event record for a request. The
// query and params arguments carry the privacy filter's redacted
// output and are ignored for event requests.
func (n *Normalizer) Normalize(site *model.Site, req *model.TrackRequest, cls model.ClassificationResult, query string, params url.Values) *model.NormalizedRecord {
	now := n.now().In(n.loc)
	date := now.Format("2006-01-02")
	hour := now.Format("15")

	record := &model.NormalizedRecord{
		SiteID: site.ID,
		Date:   date,
	}

	if req.IsEvent() {
		record.Metrics = []model.Metric{
			{Name: MetricEvent, Value: eventComposite(req.Event)},
		}
		return record
	}

	page := pagePath(req.Page, query)

	metrics := []model.Metric{
		{Name: MetricPageviews, Value: date},
		{Name: MetricPageviewHours, Value: hour},
		{Name: MetricPage, Value: page},
	}

	referrerHost := referrerHost(req.Referrer)
	language := util.Truncate(req.Language, maxLanguageLen)

	// A referrer on the site's own domain means in-site navigation;
	// anything else starts a new visit.
	newVisit := referrerHost == "" || referrerHost != site.Domain

	if newVisit {
		if campaign := params.Get("utm_campaign"); campaign != "" {
			metrics = append(metrics, model.Metric{Name: MetricCampaign, Value: campaign})
		}
		metrics = appendIfSet(metrics, MetricContinent, cls.Continent)
		metrics = appendIfSet(metrics, MetricCountry, cls.Country)
		metrics = appendIfSet(metrics, MetricCity, cls.City)
		metrics = appendIfSet(metrics, MetricBrowser, cls.Browser)
		metrics = appendIfSet(metrics, MetricOS, cls.OS)
		metrics = appendIfSet(metrics, MetricDevice, cls.Device)
		metrics = appendIfSet(metrics, MetricLanguage, language)
		metrics = append(metrics,
			model.Metric{Name: MetricVisitors, Value: date},
			model.Metric{Name: MetricVisitorHours, Value: hour},
		)
		metrics = appendIfSet(metrics, MetricResolution, req.ScreenResolution)
		metrics = append(metrics, model.Metric{Name: MetricLandingPage, Value: page})
		metrics = appendIfSet(metrics, MetricReferrer, util.Truncate(referrerHost, maxPageLen))
	}

	record.Metrics = metrics
	record.NewVisit = newVisit
	record.Recent = &model.RecentActivity{
		SiteID:    site.ID,
		Page:      page,
		Referrer:  util.Truncate(referrerHost, maxPageLen),
		OS:        cls.OS,
		Browser:   cls.Browser,
		Device:    cls.Device,
		Country:   cls.Country,
		City:      cls.City,
		Language:  language,
		CreatedAt: now,
	}

	return record
}

// pagePath extracts the path component of the page URL (default /)
// and appends the redacted query when non-empty
func pagePath(page, query string) string {
	path := "/"
	if u, err := url.Parse(page); err == nil && u.Path != "" {
		path = u.Path
	}
	if query != "" {
		path = path + "?" + query
	}
	return util.Truncate(path, maxPageLen)
}

// referrerHost extracts the host component of the referrer URL
func referrerHost(referrer string) string {
	if referrer == "" {
		return ""
	}
	u, err := url.Parse(referrer)
	if err != nil {
		return ""
	}
	return u.Host
}

// eventComposite builds the name:value:unit composite stored for a
// custom event. Colons in the name are replaced with spaces so the
// delimiter stays unambiguous; the two delimiters are always present,
// with segments left empty when the value or unit does not qualify.
func eventComposite(event *model.EventPayload) string {
	name := strings.ReplaceAll(event.Name, ":", " ")

	value := ""
	if event.Value != nil && *event.Value > 0 {
		formatted := strconv.FormatFloat(*event.Value, 'f', -1, 64)
		if len(formatted) <= maxValueDigits {
			value = formatted
		}
	}

	unit := ""
	if len([]rune(event.Unit)) <= maxUnitLen {
		unit = event.Unit
	}

	return name + ":" + value + ":" + unit
}

// appendIfSet appends a metric only when its value is non-empty
func appendIfSet(metrics []model.Metric, name, value string) []model.Metric {
	if value == "" {
		return metrics
	}
	return append(metrics, model.Metric{Name: name, Value: value})
}
