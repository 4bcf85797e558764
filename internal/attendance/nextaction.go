package attendance

import "camsd/internal/models"

// ResolveToday derives the two-state punch machine for the current day.
// The state is never stored: an even count of valid punches (including
// zero, or no record at all) means the next action is check-in, an odd
// count means check-out. Re-deriving from the punch list on every call
// keeps the answer correct after partial writes with nothing to desync.
// The 12-slot wire cap is not enforced here; 11 punches still resolve to
// check-out.
func ResolveToday(rec *models.PunchRecord) models.TodayState {
	if rec == nil {
		return models.TodayState{NextAction: models.ActionCheckIn}
	}

	var count int
	var last string
	for _, t := range rec.PunchTimes {
		if models.IsValidPunch(t) {
			count++
			last = t
		}
	}

	action := models.ActionCheckIn
	if count%2 == 1 {
		action = models.ActionCheckOut
	}
	return models.TodayState{
		NextAction:    action,
		LastPunchTime: last,
		PunchCount:    count,
	}
}
