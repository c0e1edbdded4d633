package privacy

import (
	"net/netip"
	"net/url"
	"strings"

	"pulse/internal/model"
)

// MatchAllToken is the reserved exclusion entry that strips every
// query parameter from a page URL.
const MatchAllToken = "&"

// IPExcluded reports whether ip matches any entry of the site's
// excluded IP list. Entries are single addresses or CIDR blocks;
// malformed entries are skipped.
func IPExcluded(entries []string, ip string) bool {
	if len(entries) == 0 || ip == "" {
		return false
	}

	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()

	for _, entry := range entries {
		if strings.Contains(entry, "/") {
			prefix, err := netip.ParsePrefix(entry)
			if err != nil {
				continue
			}
			if prefix.Contains(addr) {
				return true
			}
			continue
		}

		excluded, err := netip.ParseAddr(entry)
		if err != nil {
			continue
		}
		if excluded.Unmap() == addr {
			return true
		}
	}

	return false
}

// BotExcluded reports whether the request must be rejected as bot
// traffic for this site
func BotExcluded(site *model.Site, classification model.ClassificationResult) bool {
	return site.ExcludeBots && classification.IsBot
}

// RedactQuery applies the site's excluded-parameter rules to a raw
// query string. It returns the redacted query and the surviving
// parameters. With no rules the query passes through untouched; the
// match-all token drops everything; otherwise listed parameters are
// removed and the remainder re-encoded in a stable (sorted) form.
func RedactQuery(excluded []string, rawQuery string) (string, url.Values) {
	// ParseQuery keeps the values it managed to parse on error
	params, _ := url.ParseQuery(rawQuery)

	if len(excluded) == 0 {
		return rawQuery, params
	}

	for _, name := range excluded {
		if name == MatchAllToken {
			return "", url.Values{}
		}
	}

	for _, name := range excluded {
		params.Del(name)
	}

	return params.Encode(), params
}
