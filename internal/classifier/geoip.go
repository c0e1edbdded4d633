package classifier

import (
	"net"

	"pulse/internal/config"

	"github.com/oschwald/geoip2-golang"
	"github.com/rs/zerolog/log"
)

// GeoRecord holds the city-level fields the pipeline cares about
type GeoRecord struct {
	ContinentCode   string
	ContinentName   string
	CountryCode     string
	CountryName     string
	CityName        string
	SubdivisionCode string
}

// GeoReader defines the capability of resolving an IP address to a
// city-level record, so alternate backends can be substituted.
type GeoReader interface {
	Lookup(ip net.IP) (*GeoRecord, error)
}

// geoIPReader backs GeoReader with a MaxMind GeoIP2/GeoLite2 database
type geoIPReader struct {
	db *geoip2.Reader
}

// OpenGeoIP opens the configured GeoIP database. A missing or corrupt
// database is not fatal: geolocation degrades to empty fields.
func OpenGeoIP(cfg *config.GeoIPConfig) GeoReader {
	db, err := geoip2.Open(cfg.DatabasePath)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.DatabasePath).Msg("GeoIP database unavailable, geolocation disabled")
		return nil
	}

	log.Info().Str("path", cfg.DatabasePath).Msg("GeoIP database loaded")
	return &geoIPReader{db: db}
}

// Lookup resolves an IP against the MaxMind database
func (r *geoIPReader) Lookup(ip net.IP) (*GeoRecord, error) {
	city, err := r.db.City(ip)
	if err != nil {
		return nil, err
	}

	rec := &GeoRecord{
		ContinentCode: city.Continent.Code,
		ContinentName: city.Continent.Names["en"],
		CountryCode:   city.Country.IsoCode,
		CountryName:   city.Country.Names["en"],
		CityName:      city.City.Names["en"],
	}
	if len(city.Subdivisions) > 0 {
		rec.SubdivisionCode = city.Subdivisions[0].IsoCode
	}

	return rec, nil
}

// Close releases the underlying database handle
func (r *geoIPReader) Close() error {
	return r.db.Close()
}
