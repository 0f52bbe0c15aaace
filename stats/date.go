package stats

import (
	"strings"
	"time"
)

// DateLayout is how release dates appear in the report.
const DateLayout = "2006-01-02 15:04"

// isoLayouts are the ISO-8601 shapes GitHub (and hand-edited fixtures) use,
// tried in order.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// DateResult is the outcome of formatting a release timestamp. Exactly one of
// the two branches applies: either the timestamp parsed, or Raw holds the
// original input to show as-is.
type DateResult struct {
	Time   time.Time
	Parsed bool
	Raw    string
}

// String renders the parsed time, or the raw input when parsing failed.
func (d DateResult) String() string {
	if d.Parsed {
		return d.Time.Format(DateLayout)
	}
	return d.Raw
}

// FormatDate parses an ISO-8601 timestamp, treating a trailing "Z" as
// "+00:00". The time keeps its own offset.
func FormatDate(raw string) DateResult {
	s := raw
	if strings.HasSuffix(s, "Z") {
		s = strings.TrimSuffix(s, "Z") + "+00:00"
	}

	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateResult{Time: t, Parsed: true, Raw: raw}
		}
	}

	return DateResult{Raw: raw}
}
