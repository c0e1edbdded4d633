package classifier

import (
	"net"

	"pulse/internal/model"
	"pulse/pkg/util"

	"github.com/mileusna/useragent"
)

const (
	// DeviceTypeBot is the device category that marks bot traffic
	DeviceTypeBot = "bot"

	// maxFieldLen caps browser/OS/device names
	maxFieldLen = 64
)

// Classifier derives browser/OS/device and geolocation fields from
// request metadata. Classification is pure and total: malformed input
// yields empty fields, never an error.
type Classifier struct {
	geo GeoReader
}

// NewClassifier creates a new Classifier. The geo reader may be nil,
// in which case geolocation fields are always empty.
func NewClassifier(geo GeoReader) *Classifier {
	return &Classifier{geo: geo}
}

// Classify parses the user-agent string and looks up the IP address.
// Either input may be empty.
func (c *Classifier) Classify(userAgent, ip string) model.ClassificationResult {
	result := model.ClassificationResult{}

	if userAgent != "" {
		ua := useragent.Parse(userAgent)
		result.Browser = util.Truncate(ua.Name, maxFieldLen)
		result.OS = util.Truncate(ua.OS, maxFieldLen)
		result.Device = util.Truncate(deviceType(ua), maxFieldLen)
		result.IsBot = result.Device == DeviceTypeBot
	}

	if ip != "" {
		result.Continent, result.Country, result.City = c.locate(ip)
	}

	return result
}

// deviceType maps a parsed user agent to the device category string
func deviceType(ua useragent.UserAgent) string {
	switch {
	case ua.Bot:
		return DeviceTypeBot
	case ua.Mobile:
		return "mobile"
	case ua.Tablet:
		return "tablet"
	case ua.Desktop:
		return "desktop"
	default:
		return ""
	}
}

// locate resolves an IP to compound geo display strings. Lookup is
// best-effort: any failure returns empty fields.
func (c *Classifier) locate(ip string) (continent, country, city string) {
	if c.geo == nil {
		return "", "", ""
	}

	addr := net.ParseIP(ip)
	if addr == nil {
		return "", "", ""
	}

	record, err := c.geo.Lookup(addr)
	if err != nil || record == nil {
		return "", "", ""
	}

	if record.ContinentCode != "" {
		continent = record.ContinentCode + ":" + record.ContinentName
	}
	if record.CountryCode != "" {
		country = record.CountryCode + ":" + record.CountryName
	}
	if record.CityName != "" {
		city = record.CountryCode + ": " + record.CityName
		if record.SubdivisionCode != "" {
			city += ", " + record.SubdivisionCode
		}
	}

	return continent, country, city
}
