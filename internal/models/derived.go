package models

// DayState is the closed, client-facing attendance taxonomy. Upstream
// DAYSTATUS is free text and gets folded into this set by the classifier.
type DayState string

const (
	StatePresent DayState = "present"
	StateAbsent  DayState = "absent"
	StateLate    DayState = "late"
	StateHoliday DayState = "holiday"
	StateLeave   DayState = "leave"
)

// Direction says whether a punch is a clock-in or clock-out event.
type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

// Punch is one valid punch with its slot-derived direction. Slot is the
// original 1-based wire position; it is preserved so callers can see parity
// gaps (e.g. slot 1 followed by slot 4).
type Punch struct {
	Slot      int       `json:"slot"`
	Time      string    `json:"time"`
	Display   string    `json:"display"`
	Direction Direction `json:"direction"`
}

// Summary is the aggregate over a period of punch records.
type Summary struct {
	PresentDays      int     `json:"presentDays"`
	TotalWorkingDays int     `json:"totalWorkingDays"`
	AttendanceRate   float64 `json:"attendanceRate"`
	TotalHours       float64 `json:"totalHours"`
	AverageHours     string  `json:"averageHours"`
	LateCount        int     `json:"lateCount"`
}

// NextAction is the punch the employee is expected to make next.
type NextAction string

const (
	ActionCheckIn  NextAction = "check-in"
	ActionCheckOut NextAction = "check-out"
)

// TodayState is the derived state of the current day: what to do next and
// what was last recorded. LastPunchTime is empty when no punch exists yet.
type TodayState struct {
	NextAction    NextAction `json:"nextAction"`
	LastPunchTime string     `json:"lastPunchTime,omitempty"`
	PunchCount    int        `json:"punchCount"`
}
