package attendance

import (
	"strings"
	"time"

	"camsd/internal/models"
)

// CanonicalDate is the normalized calendar-date layout used for indexing
// and date-range parameters.
const CanonicalDate = "20060102"

// processDateLayouts are the PROCESSDATE spellings seen in the wild.
var processDateLayouts = []string{
	"02/01/2006",
	"20060102",
	"2006-01-02",
}

// NormalizeDate converts an upstream date string to the canonical YYYYMMDD
// form. The second return is false when the input matches no known layout;
// the record keeps its raw string and date comparisons treat it as
// "does not match".
func NormalizeDate(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	for _, layout := range processDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(CanonicalDate), true
		}
	}
	return "", false
}

// IsSameDay reports whether a raw process date falls on the given day.
// Unparseable dates never match.
func IsSameDay(raw string, day time.Time) bool {
	norm, ok := NormalizeDate(raw)
	if !ok {
		return false
	}
	return norm == day.Format(CanonicalDate)
}

// MonthRange returns the first and last day of the month containing t in
// the canonical layout, ready for the upstream date-range parameter.
func MonthRange(t time.Time) (string, string) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1)
	return first.Format(CanonicalDate), last.Format(CanonicalDate)
}

// IndexByDate builds a canonical-date index over a record slice. Later
// records win on duplicate dates; unparseable dates are left out.
func IndexByDate(records []*models.PunchRecord) map[string]int {
	idx := make(map[string]int, len(records))
	for i, rec := range records {
		if norm, ok := NormalizeDate(rec.ProcessDate); ok {
			idx[norm] = i
		}
	}
	return idx
}
