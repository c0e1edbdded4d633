package util

// Truncate returns at most max runes of s. Counting runes rather than
// bytes keeps multi-byte values intact, matching the column widths the
// aggregates are stored with.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
