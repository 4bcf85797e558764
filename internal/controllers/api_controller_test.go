package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"camsd/internal/models"
	"camsd/internal/providers"
	"camsd/internal/structures"
)

// --- local mocks, controller tests only need call recording ---

type ctrlTestLogger struct{}

func (m *ctrlTestLogger) Errorf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *ctrlTestLogger) Warnf(_ providers.TypeEnum, _ string, _ ...interface{})  {}
func (m *ctrlTestLogger) Debugf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *ctrlTestLogger) Infof(_ providers.TypeEnum, _ string, _ ...interface{})  {}
func (m *ctrlTestLogger) Fatalf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *ctrlTestLogger) Close()                                                  {}

type ctrlTestCache struct {
	data map[string][]byte
	sets int
}

func (c *ctrlTestCache) Get(key string) ([]byte, bool) {
	v, ok := c.data[key]
	return v, ok
}

func (c *ctrlTestCache) Set(key string, value []byte) {
	c.data[key] = value
	c.sets++
}

type ctrlTestService struct {
	records  []*models.PunchRecord
	summary  models.Summary
	todayRec *models.PunchRecord
	today    models.TodayState
	punches  []models.Punch
	action   models.NextAction
	err      error
	markErr  error
	syncErr  error
}

func (s *ctrlTestService) SyncUser(_ context.Context, _ string) error { return s.syncErr }
func (s *ctrlTestService) SyncAll(_ context.Context)                  {}
func (s *ctrlTestService) GetRecords(_ context.Context, _ string) ([]*models.PunchRecord, error) {
	return s.records, s.err
}
func (s *ctrlTestService) GetSummary(_ context.Context, _ string) (models.Summary, error) {
	return s.summary, s.err
}
func (s *ctrlTestService) GetToday(_ context.Context, _ string) (*models.PunchRecord, models.TodayState, []models.Punch, error) {
	return s.todayRec, s.today, s.punches, s.err
}
func (s *ctrlTestService) GetPunches(_ context.Context, _, _ string) ([]models.Punch, error) {
	return s.punches, s.err
}
func (s *ctrlTestService) Mark(_ context.Context, _ string) (models.NextAction, error) {
	return s.action, s.markErr
}
func (s *ctrlTestService) TrackedUsers() []string              { return []string{"61008"} }
func (s *ctrlTestService) LastSync(_ string) (time.Time, bool) { return time.Time{}, false }
func (s *ctrlTestService) RecordCount(_ string) int            { return len(s.records) }

type ctrlTestEnterprise struct {
	leaves   []models.Leave
	balance  *models.LeaveBalance
	claims   []models.Reimbursement
	settings map[string]any
	err      error
}

func (s *ctrlTestEnterprise) Leaves(_ context.Context, _ string) ([]models.Leave, error) {
	return s.leaves, s.err
}
func (s *ctrlTestEnterprise) LeaveBalance(_ context.Context, _ string) (*models.LeaveBalance, error) {
	return s.balance, s.err
}
func (s *ctrlTestEnterprise) Reimbursements(_ context.Context, _ string) ([]models.Reimbursement, error) {
	return s.claims, s.err
}

func (s *ctrlTestEnterprise) Settings(_ context.Context) (map[string]any, error) {
	return s.settings, s.err
}

func newTestController(service *ctrlTestService, enterprise *ctrlTestEnterprise) (*ApiController, *ctrlTestCache) {
	cache := &ctrlTestCache{data: map[string][]byte{}}
	ac := NewApiController(&ctrlTestLogger{}, service, enterprise, cache, &structures.Config{})
	return ac, cache
}

func TestGetAttendance(t *testing.T) {
	svc := &ctrlTestService{records: []*models.PunchRecord{{UserID: "61008", DayStatus: "Present"}}}
	ac, cache := newTestController(svc, &ctrlTestEnterprise{})

	req := httptest.NewRequest(http.MethodGet, "/attendance?user=61008", nil)
	rr := httptest.NewRecorder()
	ac.GetAttendance(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp attendanceResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "61008", resp.UserID)
	require.Len(t, resp.Records, 1)
	assert.Equal(t, "Present", resp.Records[0].DayStatus)
	assert.Equal(t, 1, cache.sets)
}

func TestGetAttendance_MissingUser(t *testing.T) {
	ac, _ := newTestController(&ctrlTestService{}, &ctrlTestEnterprise{})

	req := httptest.NewRequest(http.MethodGet, "/attendance", nil)
	rr := httptest.NewRecorder()
	ac.GetAttendance(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetAttendance_ServiceError(t *testing.T) {
	svc := &ctrlTestService{err: errors.New("upstream down")}
	ac, _ := newTestController(svc, &ctrlTestEnterprise{})

	req := httptest.NewRequest(http.MethodGet, "/attendance?user=61008", nil)
	rr := httptest.NewRecorder()
	ac.GetAttendance(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestGetAttendance_ServedFromCache(t *testing.T) {
	ac, cache := newTestController(&ctrlTestService{err: errors.New("should not be called")}, &ctrlTestEnterprise{})
	cache.data["att:61008"] = []byte(`{"userId":"61008","records":[]}`)

	req := httptest.NewRequest(http.MethodGet, "/attendance?user=61008", nil)
	rr := httptest.NewRecorder()
	ac.GetAttendance(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"userId":"61008","records":[]}`, rr.Body.String())
}

func TestGetAttendance_NilRecordsSerializeAsEmptyArray(t *testing.T) {
	ac, _ := newTestController(&ctrlTestService{records: nil}, &ctrlTestEnterprise{})

	req := httptest.NewRequest(http.MethodGet, "/attendance?user=61008", nil)
	rr := httptest.NewRecorder()
	ac.GetAttendance(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"records":[]`)
}

func TestGetSummary(t *testing.T) {
	svc := &ctrlTestService{summary: models.Summary{
		PresentDays:      18,
		TotalWorkingDays: 20,
		AttendanceRate:   90,
		AverageHours:     "8.1",
	}}
	ac, _ := newTestController(svc, &ctrlTestEnterprise{})

	req := httptest.NewRequest(http.MethodGet, "/attendance/summary?user=61008", nil)
	rr := httptest.NewRecorder()
	ac.GetSummary(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var got models.Summary
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, 18, got.PresentDays)
	assert.Equal(t, "8.1", got.AverageHours)
}

func TestGetToday(t *testing.T) {
	svc := &ctrlTestService{
		todayRec: &models.PunchRecord{UserID: "61008"},
		today: models.TodayState{
			NextAction:    models.ActionCheckOut,
			LastPunchTime: "09:15:00",
			PunchCount:    1,
		},
		punches: []models.Punch{{Slot: 1, Time: "09:15:00", Display: "9:15 AM", Direction: models.DirectionIn}},
	}
	ac, _ := newTestController(svc, &ctrlTestEnterprise{})

	req := httptest.NewRequest(http.MethodGet, "/attendance/today?user=61008", nil)
	rr := httptest.NewRecorder()
	ac.GetToday(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp todayResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, models.ActionCheckOut, resp.NextAction)
	assert.Equal(t, "09:15:00", resp.LastPunchTime)
	assert.Equal(t, 1, resp.PunchCount)
	require.Len(t, resp.Punches, 1)
}

func TestGetToday_NoRecord(t *testing.T) {
	svc := &ctrlTestService{today: models.TodayState{NextAction: models.ActionCheckIn}}
	ac, _ := newTestController(svc, &ctrlTestEnterprise{})

	req := httptest.NewRequest(http.MethodGet, "/attendance/today?user=61008", nil)
	rr := httptest.NewRecorder()
	ac.GetToday(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp todayResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Nil(t, resp.Record)
	assert.Equal(t, models.ActionCheckIn, resp.NextAction)
	assert.NotNil(t, resp.Punches)
}

func TestGetPunches_DateNormalized(t *testing.T) {
	svc := &ctrlTestService{punches: []models.Punch{{Slot: 1, Time: "09:00:00"}}}
	ac, cache := newTestController(svc, &ctrlTestEnterprise{})

	req := httptest.NewRequest(http.MethodGet, "/attendance/punches?user=61008&date=20/12/2024", nil)
	rr := httptest.NewRecorder()
	ac.GetPunches(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	_, ok := cache.data["punches:61008:20241220"]
	assert.True(t, ok, "cache key should carry the normalized date")
}

func TestGetPunches_BadDate(t *testing.T) {
	ac, _ := newTestController(&ctrlTestService{}, &ctrlTestEnterprise{})

	req := httptest.NewRequest(http.MethodGet, "/attendance/punches?user=61008&date=tomorrow", nil)
	rr := httptest.NewRecorder()
	ac.GetPunches(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetPunches_NoDateUsesToday(t *testing.T) {
	svc := &ctrlTestService{punches: []models.Punch{{Slot: 1, Time: "09:00:00"}}}
	ac, _ := newTestController(svc, &ctrlTestEnterprise{})

	req := httptest.NewRequest(http.MethodGet, "/attendance/punches?user=61008", nil)
	rr := httptest.NewRecorder()
	ac.GetPunches(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var punches []models.Punch
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &punches))
	assert.Len(t, punches, 1)
}

func TestMarkAttendance(t *testing.T) {
	svc := &ctrlTestService{action: models.ActionCheckIn}
	ac, _ := newTestController(svc, &ctrlTestEnterprise{})

	req := httptest.NewRequest(http.MethodPost, "/attendance/mark?user=61008", nil)
	rr := httptest.NewRecorder()
	ac.MarkAttendance(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	var resp markResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, models.ActionCheckIn, resp.Action)
}

func TestMarkAttendance_UpstreamFailure(t *testing.T) {
	svc := &ctrlTestService{markErr: errors.New("terminal offline")}
	ac, _ := newTestController(svc, &ctrlTestEnterprise{})

	req := httptest.NewRequest(http.MethodPost, "/attendance/mark?user=61008", nil)
	rr := httptest.NewRecorder()
	ac.MarkAttendance(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

func TestForceSync(t *testing.T) {
	ac, _ := newTestController(&ctrlTestService{}, &ctrlTestEnterprise{})

	req := httptest.NewRequest(http.MethodPost, "/sync?user=61008", nil)
	rr := httptest.NewRecorder()
	ac.ForceSync(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestForceSync_Failure(t *testing.T) {
	ac, _ := newTestController(&ctrlTestService{syncErr: errors.New("down")}, &ctrlTestEnterprise{})

	req := httptest.NewRequest(http.MethodPost, "/sync?user=61008", nil)
	rr := httptest.NewRecorder()
	ac.ForceSync(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

func TestGetLeaves(t *testing.T) {
	enterprise := &ctrlTestEnterprise{leaves: []models.Leave{{ID: "L1", Status: "approved"}}}
	ac, _ := newTestController(&ctrlTestService{}, enterprise)

	req := httptest.NewRequest(http.MethodGet, "/leaves?user=61008", nil)
	rr := httptest.NewRecorder()
	ac.GetLeaves(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var leaves []models.Leave
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &leaves))
	require.Len(t, leaves, 1)
	assert.Equal(t, "L1", leaves[0].ID)
}

func TestGetReimbursements(t *testing.T) {
	enterprise := &ctrlTestEnterprise{claims: []models.Reimbursement{{ID: "R1", Amount: 500}}}
	ac, _ := newTestController(&ctrlTestService{}, enterprise)

	req := httptest.NewRequest(http.MethodGet, "/reimbursements?user=61008", nil)
	rr := httptest.NewRecorder()
	ac.GetReimbursements(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var claims []models.Reimbursement
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &claims))
	require.Len(t, claims, 1)
	assert.InDelta(t, 500.0, claims[0].Amount, 0.001)
}

func TestGetLeaveBalance(t *testing.T) {
	enterprise := &ctrlTestEnterprise{balance: &models.LeaveBalance{
		EmployeeID:  "61008",
		AnnualLeave: 12,
		SickLeave:   5,
	}}
	ac, cache := newTestController(&ctrlTestService{}, enterprise)

	req := httptest.NewRequest(http.MethodGet, "/leaves/balance?user=61008", nil)
	rr := httptest.NewRecorder()
	ac.GetLeaveBalance(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var balance models.LeaveBalance
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &balance))
	assert.Equal(t, 12, balance.AnnualLeave)
	assert.Equal(t, 5, balance.SickLeave)
	_, ok := cache.data["bal:61008"]
	assert.True(t, ok)
}

func TestGetLeaveBalance_MissingUser(t *testing.T) {
	ac, _ := newTestController(&ctrlTestService{}, &ctrlTestEnterprise{})

	req := httptest.NewRequest(http.MethodGet, "/leaves/balance", nil)
	rr := httptest.NewRecorder()
	ac.GetLeaveBalance(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetSettings(t *testing.T) {
	enterprise := &ctrlTestEnterprise{settings: map[string]any{"orgName": "ITI"}}
	ac, cache := newTestController(&ctrlTestService{}, enterprise)

	req := httptest.NewRequest(http.MethodGet, "/settings", nil)
	rr := httptest.NewRecorder()
	ac.GetSettings(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var settings map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &settings))
	assert.Equal(t, "ITI", settings["orgName"])
	_, ok := cache.data["settings"]
	assert.True(t, ok)
}

func TestGetSettings_NilSerializesAsEmptyObject(t *testing.T) {
	ac, _ := newTestController(&ctrlTestService{}, &ctrlTestEnterprise{})

	req := httptest.NewRequest(http.MethodGet, "/settings", nil)
	rr := httptest.NewRecorder()
	ac.GetSettings(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "{}", rr.Body.String())
}

func TestGetLeaves_NilSerializesAsEmptyArray(t *testing.T) {
	ac, _ := newTestController(&ctrlTestService{}, &ctrlTestEnterprise{})

	req := httptest.NewRequest(http.MethodGet, "/leaves?user=61008", nil)
	rr := httptest.NewRecorder()
	ac.GetLeaves(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", rr.Body.String())
}
