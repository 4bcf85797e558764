package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"camsd/internal/models"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		rec  models.PunchRecord
		want models.DayState
	}{
		{"present", models.PunchRecord{DayStatus: "Present"}, models.StatePresent},
		{"absent", models.PunchRecord{DayStatus: "Absent"}, models.StateAbsent},
		{"holiday", models.PunchRecord{DayStatus: "Holiday"}, models.StateHoliday},
		{"leave", models.PunchRecord{DayStatus: "Leave"}, models.StateLeave},
		{"late", models.PunchRecord{DayStatus: "Present", LateInFlag: "1"}, models.StateLate},
		{"unknown status", models.PunchRecord{DayStatus: "HalfDay"}, models.StatePresent},
		{"empty status", models.PunchRecord{}, models.StatePresent},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Classify(&c.rec))
		})
	}
}

func TestClassify_ExplicitStatusBeatsLateFlag(t *testing.T) {
	assert.Equal(t, models.StateLeave,
		Classify(&models.PunchRecord{DayStatus: "Leave", LateInFlag: "1"}))
	assert.Equal(t, models.StateAbsent,
		Classify(&models.PunchRecord{DayStatus: "Absent", LateInFlag: "1"}))
	assert.Equal(t, models.StateHoliday,
		Classify(&models.PunchRecord{DayStatus: "Holiday", LateInFlag: "1"}))
}

func TestClassify_LateFlagOnUnknownStatus(t *testing.T) {
	// a truthy late flag still wins over the present fallback
	assert.Equal(t, models.StateLate,
		Classify(&models.PunchRecord{DayStatus: "HalfDay", LateInFlag: "2"}))
}

func TestIsKnownStatus(t *testing.T) {
	for _, s := range []string{"Present", "Absent", "Holiday", "Leave", "WO"} {
		assert.True(t, IsKnownStatus(s), s)
	}
	assert.False(t, IsKnownStatus("present"))
	assert.False(t, IsKnownStatus("HalfDay"))
	assert.False(t, IsKnownStatus(""))
}
