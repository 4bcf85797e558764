package attendance

import (
	"fmt"
	"strconv"
	"strings"

	"camsd/internal/models"
)

// NormalizePunches extracts the valid punches from a record in slot order.
// Direction comes from the original slot parity (slot 1, 3, 5... are
// check-ins), not from the position in the filtered list: a day holding
// only slots 1 and 4 yields [in, out] with the slot numbers preserved.
// A single missed punch therefore offsets parity for the rest of the day;
// that matches the terminal's own accounting and is kept deliberately.
func NormalizePunches(rec *models.PunchRecord) []models.Punch {
	if rec == nil {
		return nil
	}
	var punches []models.Punch
	for i, t := range rec.PunchTimes {
		if !models.IsValidPunch(t) {
			continue
		}
		dir := models.DirectionIn
		if (i+1)%2 == 0 {
			dir = models.DirectionOut
		}
		punches = append(punches, models.Punch{
			Slot:      i + 1,
			Time:      t,
			Display:   FormatClock(t),
			Direction: dir,
		})
	}
	return punches
}

// FormatClock converts a 24-hour HH:MM:SS string to h:MM AM/PM for
// display. Hour 0 renders as 12 AM. Strings that do not look like a clock
// time come back unchanged; this never fails.
func FormatClock(t string) string {
	parts := strings.Split(t, ":")
	if len(parts) < 2 {
		return t
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return t
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return t
	}

	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	displayHour := hour
	switch {
	case hour == 0:
		displayHour = 12
	case hour > 12:
		displayHour = hour - 12
	}
	return fmt.Sprintf("%d:%02d %s", displayHour, minute, period)
}
