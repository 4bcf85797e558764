package models

import (
	"strings"

	"github.com/spf13/cast"
)

// PunchSlots is the number of punch columns the CAMS export carries per day.
// It is a wire-format constraint, not a domain limit.
const PunchSlots = 12

// SentinelTime is the upstream placeholder for "no punch" in time columns.
const SentinelTime = "00:00:00"

// PunchRecord is one employee-day row from the CAMS attendance export,
// already folded onto the canonical field set (see attendance.ParsePipe for
// the alias table). All fields are kept as raw strings; missing columns are
// empty strings so sentinel checks behave uniformly downstream.
type PunchRecord struct {
	UserID               string `json:"userId"`
	UserName             string `json:"userName"`
	ShortName            string `json:"shortName"`
	IntegrationReference string `json:"integrationReference"`

	// ProcessDate as delivered upstream: DD/MM/YYYY or YYYYMMDD.
	ProcessDate string `json:"processDate"`

	// PunchTimes holds the 12 punch slots in wire order. Odd slots
	// (index 0, 2, ...) are nominally check-ins, even slots check-outs.
	PunchTimes [PunchSlots]string `json:"punchTimes"`

	ScheduleShift string `json:"scheduleShift"`
	WorkingShift  string `json:"workingShift"`

	DayStatus string `json:"dayStatus"`

	LateInFlag   string `json:"lateInFlag"`
	EarlyOutFlag string `json:"earlyOutFlag"`
	OvertimeFlag string `json:"overtimeFlag"`

	LateInDuration   string `json:"lateInDuration"`
	EarlyOutDuration string `json:"earlyOutDuration"`
	OvertimeDuration string `json:"overtimeDuration"`
	WorkingTime      string `json:"workingTime"`
	NetWorkHours     string `json:"netWorkHours"`
	AdjustedHours    string `json:"adjustedHours"`

	ShiftStart string `json:"shiftStart"`
	ShiftEnd   string `json:"shiftEnd"`
	LunchStart string `json:"lunchStart"`
	LunchEnd   string `json:"lunchEnd"`

	OutPunch     string `json:"outPunch"`
	OutPunchDate string `json:"outPunchDate"`
	OutPunchTime string `json:"outPunchTime"`
}

// IsValidPunch reports whether a raw punch slot holds a real punch:
// non-empty after trimming and not the 00:00:00 sentinel.
func IsValidPunch(t string) bool {
	t = strings.TrimSpace(t)
	return t != "" && t != SentinelTime
}

// FlagTruthy interprets the upstream flag columns (LATEIN, EARLYOUT,
// OVERTIME). A flag is set when it is the literal "1" or parses to a
// positive integer; anything unparseable counts as unset.
func FlagTruthy(flag string) bool {
	if flag == "1" {
		return true
	}
	return cast.ToInt(strings.TrimSpace(flag)) > 0
}
