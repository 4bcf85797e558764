package attendance

import "camsd/internal/models"

// knownStatuses are the upstream DAYSTATUS values the classifier
// understands. Anything else falls through to the present default.
var knownStatuses = map[string]struct{}{
	"Present": {},
	"Absent":  {},
	"Holiday": {},
	"Leave":   {},
	"WO":      {},
}

// Classify folds a record's open-ended DAYSTATUS plus its late flag into
// the closed client-facing set. First match wins; the order is a business
// rule: explicit non-attendance statuses beat a stray late flag (a late
// flag only means something when the employee actually attended), and
// "late" beats the generic present fallback so a late arrival stays
// visible. Swapping the Leave and late checks would misclassify a late
// employee who is also on leave.
func Classify(rec *models.PunchRecord) models.DayState {
	switch {
	case rec.DayStatus == "Absent":
		return models.StateAbsent
	case rec.DayStatus == "Holiday":
		return models.StateHoliday
	case rec.DayStatus == "Leave":
		return models.StateLeave
	case models.FlagTruthy(rec.LateInFlag):
		return models.StateLate
	case rec.DayStatus == "Present":
		return models.StatePresent
	default:
		// Unknown upstream statuses display as present. Questionable but
		// kept for compatibility; the service counts these so the fallback
		// shows up in metrics.
		return models.StatePresent
	}
}

// IsKnownStatus reports whether the classifier recognizes a raw DAYSTATUS
// value. Used to count records that hit the present fallback blind.
func IsKnownStatus(status string) bool {
	_, ok := knownStatuses[status]
	return ok
}
