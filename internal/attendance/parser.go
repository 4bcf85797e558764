package attendance

import (
	"bytes"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"

	"camsd/internal/models"
)

// SkippedRow describes a data row the parser dropped because its column
// count did not match the header row.
type SkippedRow struct {
	Line    int `json:"line"`
	Columns int `json:"columns"`
}

// canonicalField folds the upstream field-name spellings onto one canonical
// key. The CAMS export renames columns ad hoc depending on which query alias
// list the caller used ("LATEIN as [LateIn]" etc.), so the alias table lives
// here at the parser boundary instead of being scattered through consumers.
var canonicalField = map[string]string{
	"USERID":                "UserID",
	"USERNAME":              "UserName",
	"SHORT_NAME":            "ShortName",
	"INTEGRATION_REFERENCE": "IntegrationReference",
	"PROCESSDATE":           "ProcessDate",
	"SCHEDULESHIFT":         "ScheduleShift",
	"WORKINGSHIFT":          "WorkingShift",
	"DAYSTATUS":             "DayStatus",
	"LATEIN":                "LateIn",
	"LATEIN_HHMM":           "LateInHHMM",
	"EARLYOUT":              "EarlyOut",
	"EARLYOUT_HHMM":         "EarlyOutHHMM",
	"OVERTIME":              "Overtime",
	"OVERTIME_HHMM":         "OvertimeHHMM",
	"WORKTIME":              "WorkTime",
	"WORKTIME_HHMM":         "WorkingTime",
	"WORKING TIME":          "WorkingTime",
	"NETWORKHRS":            "NetWorkHours",
	"ADJUSTEDHRS":           "AdjustedHours",
	"SHIFTSTART":            "ShiftStart",
	"SHIFTEND":              "ShiftEnd",
	"LUNCHSTART":            "LunchStart",
	"LUNCHEND":              "LunchEnd",
	"OUTPUNCH":              "OutPunch",
	"OUTPUNCH_DATE":         "OutPunchDate",
	"OUTPUNCH_TIME":         "OutPunchTime",
}

func punchSlot(header string) (int, bool) {
	if !strings.HasPrefix(header, "PUNCH") || !strings.HasSuffix(header, "_TIME") {
		return 0, false
	}
	n := cast.ToInt(strings.TrimSuffix(strings.TrimPrefix(header, "PUNCH"), "_TIME"))
	if n < 1 || n > models.PunchSlots {
		return 0, false
	}
	return n, true
}

func assignField(rec *models.PunchRecord, header, value string) {
	key := strings.ToUpper(strings.TrimSpace(header))
	if slot, ok := punchSlot(key); ok {
		rec.PunchTimes[slot-1] = value
		return
	}
	canon, ok := canonicalField[key]
	if !ok {
		// Unknown columns pass through unused.
		return
	}
	switch canon {
	case "UserID":
		rec.UserID = value
	case "UserName":
		rec.UserName = value
	case "ShortName":
		rec.ShortName = value
	case "IntegrationReference":
		rec.IntegrationReference = value
	case "ProcessDate":
		rec.ProcessDate = value
	case "ScheduleShift":
		rec.ScheduleShift = value
	case "WorkingShift":
		rec.WorkingShift = value
	case "DayStatus":
		rec.DayStatus = value
	case "LateIn":
		rec.LateInFlag = value
	case "LateInHHMM":
		rec.LateInDuration = value
	case "EarlyOut":
		rec.EarlyOutFlag = value
	case "EarlyOutHHMM":
		rec.EarlyOutDuration = value
	case "Overtime":
		rec.OvertimeFlag = value
	case "OvertimeHHMM":
		rec.OvertimeDuration = value
	case "WorkingTime":
		rec.WorkingTime = value
	case "NetWorkHours":
		rec.NetWorkHours = value
	case "AdjustedHours":
		rec.AdjustedHours = value
	case "ShiftStart":
		rec.ShiftStart = value
	case "ShiftEnd":
		rec.ShiftEnd = value
	case "LunchStart":
		rec.LunchStart = value
	case "LunchEnd":
		rec.LunchEnd = value
	case "OutPunch":
		rec.OutPunch = value
	case "OutPunchDate":
		rec.OutPunchDate = value
	case "OutPunchTime":
		rec.OutPunchTime = value
	}
}

// ParsePipe parses the pipe-delimited wire form: line 0 is the header row,
// every following line a data row with the same column count. Rows with a
// mismatched column count are skipped individually and reported; a payload
// without data rows yields an empty slice, not an error.
func ParsePipe(payload []byte) ([]*models.PunchRecord, []SkippedRow) {
	text := strings.TrimSpace(string(payload))
	if text == "" {
		return nil, nil
	}
	lines := strings.Split(text, "\n")
	if len(lines) < 2 {
		return nil, nil
	}

	headers := strings.Split(strings.TrimRight(lines[0], "\r"), "|")

	records := make([]*models.PunchRecord, 0, len(lines)-1)
	var skipped []SkippedRow

	for i, line := range lines[1:] {
		values := strings.Split(strings.TrimRight(line, "\r"), "|")
		if len(values) != len(headers) {
			skipped = append(skipped, SkippedRow{Line: i + 2, Columns: len(values)})
			continue
		}
		rec := &models.PunchRecord{}
		for j, h := range headers {
			assignField(rec, h, values[j])
		}
		records = append(records, rec)
	}
	return records, skipped
}

// ParseJSON parses the JSON wire form: an array of objects whose keys are
// any of the known field spellings. Non-object elements are skipped and
// reported by array position (1-based, mirroring ParsePipe's line numbers).
func ParseJSON(payload []byte) ([]*models.PunchRecord, []SkippedRow, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, nil, err
	}

	records := make([]*models.PunchRecord, 0, len(raw))
	var skipped []SkippedRow

	for i, elem := range raw {
		var fields map[string]any
		if err := json.Unmarshal(elem, &fields); err != nil {
			skipped = append(skipped, SkippedRow{Line: i + 1})
			continue
		}
		rec := &models.PunchRecord{}
		for k, v := range fields {
			assignField(rec, k, cast.ToString(v))
		}
		records = append(records, rec)
	}
	return records, skipped, nil
}

// Parse sniffs the payload shape and dispatches to ParseJSON or ParsePipe.
// The error is non-nil only when a JSON-shaped payload fails to decode
// entirely; malformed rows inside an otherwise valid payload never abort
// the parse.
func Parse(payload []byte) ([]*models.PunchRecord, []SkippedRow, error) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return ParseJSON(trimmed)
	}
	records, skipped := ParsePipe(payload)
	return records, skipped, nil
}
