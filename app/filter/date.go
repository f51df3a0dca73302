package filter

import (
	"fmt"
	"strings"
	"time"
)

// ParseCutoff parses the inclusive cutoff date in YYYY-MM-DD form.
func ParseCutoff(s string) (time.Time, error) {
	cutoff, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid cutoff date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return cutoff, nil
}

// parseRowDate parses the date portion of a timestamp field. Two
// shapes are accepted: "2025-06-03" and "2025-06-03 00:42:08"; only
// the part before the first space is consulted.
func parseRowDate(value string) (time.Time, error) {
	datePart := value
	if i := strings.IndexByte(value, ' '); i >= 0 {
		datePart = value[:i]
	}
	return time.Parse(time.DateOnly, datePart)
}
