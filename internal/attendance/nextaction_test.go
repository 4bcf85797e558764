package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"camsd/internal/models"
)

func TestResolveToday_NoRecord(t *testing.T) {
	state := ResolveToday(nil)
	assert.Equal(t, models.ActionCheckIn, state.NextAction)
	assert.Equal(t, "", state.LastPunchTime)
	assert.Equal(t, 0, state.PunchCount)
}

func TestResolveToday_EmptyRecord(t *testing.T) {
	state := ResolveToday(&models.PunchRecord{})
	assert.Equal(t, models.ActionCheckIn, state.NextAction)
	assert.Equal(t, 0, state.PunchCount)
}

func TestResolveToday_OddPunches(t *testing.T) {
	rec := &models.PunchRecord{}
	rec.PunchTimes[0] = "09:00:00"

	state := ResolveToday(rec)
	assert.Equal(t, models.ActionCheckOut, state.NextAction)
	assert.Equal(t, "09:00:00", state.LastPunchTime)
	assert.Equal(t, 1, state.PunchCount)
}

func TestResolveToday_EvenPunches(t *testing.T) {
	rec := &models.PunchRecord{}
	rec.PunchTimes[0] = "09:00:00"
	rec.PunchTimes[1] = "13:00:00"

	state := ResolveToday(rec)
	assert.Equal(t, models.ActionCheckIn, state.NextAction)
	assert.Equal(t, "13:00:00", state.LastPunchTime)
	assert.Equal(t, 2, state.PunchCount)
}

func TestResolveToday_SentinelsDoNotCount(t *testing.T) {
	rec := &models.PunchRecord{}
	rec.PunchTimes[0] = "09:00:00"
	rec.PunchTimes[1] = "00:00:00"
	rec.PunchTimes[2] = " "

	state := ResolveToday(rec)
	assert.Equal(t, models.ActionCheckOut, state.NextAction)
	assert.Equal(t, 1, state.PunchCount)
}

func TestResolveToday_NearFullDay(t *testing.T) {
	// 11 valid punches: no cap, parity alone decides
	rec := &models.PunchRecord{}
	for i := 0; i < 11; i++ {
		rec.PunchTimes[i] = "10:00:00"
	}

	state := ResolveToday(rec)
	assert.Equal(t, models.ActionCheckOut, state.NextAction)
	assert.Equal(t, 11, state.PunchCount)
}
