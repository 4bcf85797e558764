package attendance

import (
	"fmt"

	"github.com/spf13/cast"

	"camsd/internal/models"
)

// Summarize folds a period's records into the dashboard numbers. It is a
// pure fold: input order does not affect the output and records are never
// mutated. Working days exclude the literal upstream WO and Holiday
// statuses (case-sensitive, as they appear on the wire), and present days
// are only counted on working days, so the rate stays within 0..100 even
// though the classifier sends unknown statuses to present. NETWORKHRS
// values that fail to parse contribute zero.
func Summarize(records []*models.PunchRecord) models.Summary {
	var s models.Summary
	for _, rec := range records {
		if rec.DayStatus != "WO" && rec.DayStatus != "Holiday" {
			s.TotalWorkingDays++
			if Classify(rec) == models.StatePresent {
				s.PresentDays++
			}
		}
		if models.FlagTruthy(rec.LateInFlag) {
			s.LateCount++
		}
		s.TotalHours += cast.ToFloat64(rec.NetWorkHours)
	}

	avg := 0.0
	if s.TotalWorkingDays > 0 {
		s.AttendanceRate = float64(s.PresentDays) / float64(s.TotalWorkingDays) * 100
		avg = s.TotalHours / float64(s.TotalWorkingDays)
	}
	s.AverageHours = fmt.Sprintf("%.1f", avg)
	return s
}
