package services

import (
	"context"
	"time"

	"camsd/internal/attendance"
	"camsd/internal/models"
	"camsd/internal/providers"
	"camsd/internal/structures"
	"camsd/internal/upstream"
)

type AttendanceServiceInterface interface {
	SyncUser(ctx context.Context, userID string) error
	SyncAll(ctx context.Context)
	GetRecords(ctx context.Context, userID string) ([]*models.PunchRecord, error)
	GetSummary(ctx context.Context, userID string) (models.Summary, error)
	GetToday(ctx context.Context, userID string) (*models.PunchRecord, models.TodayState, []models.Punch, error)
	GetPunches(ctx context.Context, userID, date string) ([]models.Punch, error)
	Mark(ctx context.Context, userID string) (models.NextAction, error)
	TrackedUsers() []string
	LastSync(userID string) (time.Time, bool)
	RecordCount(userID string) int
}

// AttendanceService owns the fetch → parse → derive flow. All mutable
// state lives in the injected AttendanceSet; the service itself carries no
// package-level state, and a failed sync never touches the last good
// collection.
type AttendanceService struct {
	conf    *structures.Config
	logger  providers.Logger
	client  upstream.ClientInterface
	set     *models.AttendanceSet
	metrics providers.MetricsProviderInterface
}

func NewAttendanceService(conf *structures.Config, logger providers.Logger, client upstream.ClientInterface, set *models.AttendanceSet, metrics providers.MetricsProviderInterface) AttendanceServiceInterface {
	return &AttendanceService{
		conf:    conf,
		logger:  logger,
		client:  client,
		set:     set,
		metrics: metrics,
	}
}

// SyncUser fetches the current month for one user and atomically replaces
// the cached collection. On fetch or decode failure the previous data
// stays in place.
func (s *AttendanceService) SyncUser(ctx context.Context, userID string) error {
	start := time.Now()
	from, to := attendance.MonthRange(start)

	payload, err := s.client.FetchAttendance(ctx, userID, from, to)
	if err != nil {
		s.metrics.IncSyncErrors()
		s.logger.Errorf(providers.TypeApp, "Sync failed for user %s: %s", userID, err)
		return err
	}

	records, skipped, err := attendance.Parse(payload)
	if err != nil {
		s.metrics.IncSyncErrors()
		s.logger.Errorf(providers.TypeApp, "Unparseable payload for user %s: %s", userID, err)
		return err
	}
	if len(skipped) > 0 {
		s.metrics.IncSkippedRows(len(skipped))
		for _, row := range skipped {
			s.logger.Warnf(providers.TypeApp, "User %s: skipped wire row %d (%d columns)", userID, row.Line, row.Columns)
		}
	}

	unknown := 0
	for _, rec := range records {
		if !attendance.IsKnownStatus(rec.DayStatus) {
			unknown++
		}
	}
	if unknown > 0 {
		s.metrics.IncUnknownStatus(unknown)
	}

	s.set.Put(userID, records, attendance.IndexByDate(records))
	s.metrics.SetRecordsTotal(userID, len(records))
	s.metrics.ObserveSyncDuration(time.Since(start))
	s.logger.Infof(providers.TypeApp, "Synced %d records for user %s", len(records), userID)
	return nil
}

// SyncAll refreshes every tracked user: the configured list plus anyone
// already in the set from an on-demand fetch.
func (s *AttendanceService) SyncAll(ctx context.Context) {
	for _, userID := range s.TrackedUsers() {
		if err := s.SyncUser(ctx, userID); err != nil {
			// Logged in SyncUser; keep going, other users are independent.
			continue
		}
	}
}

func (s *AttendanceService) TrackedUsers() []string {
	seen := make(map[string]struct{})
	var users []string
	for _, u := range s.conf.Sync.Users {
		if _, ok := seen[u]; !ok {
			seen[u] = struct{}{}
			users = append(users, u)
		}
	}
	for _, u := range s.set.Users() {
		if _, ok := seen[u]; !ok {
			seen[u] = struct{}{}
			users = append(users, u)
		}
	}
	return users
}

// ensureSynced returns the user's records, fetching on first request for a
// user that has never synced (and has no snapshot data).
func (s *AttendanceService) ensureSynced(ctx context.Context, userID string) ([]*models.PunchRecord, error) {
	if records, ok := s.set.Get(userID); ok {
		return records, nil
	}
	if err := s.SyncUser(ctx, userID); err != nil {
		return nil, err
	}
	records, _ := s.set.Get(userID)
	return records, nil
}

func (s *AttendanceService) GetRecords(ctx context.Context, userID string) ([]*models.PunchRecord, error) {
	return s.ensureSynced(ctx, userID)
}

func (s *AttendanceService) GetSummary(ctx context.Context, userID string) (models.Summary, error) {
	records, err := s.ensureSynced(ctx, userID)
	if err != nil {
		return models.Summary{}, err
	}
	return attendance.Summarize(records), nil
}

// GetToday returns today's record (nil when absent), the derived next
// action, and the normalized punches.
func (s *AttendanceService) GetToday(ctx context.Context, userID string) (*models.PunchRecord, models.TodayState, []models.Punch, error) {
	if _, err := s.ensureSynced(ctx, userID); err != nil {
		return nil, models.TodayState{}, nil, err
	}

	today := time.Now().Format(attendance.CanonicalDate)
	rec, _ := s.set.GetByDate(userID, today)
	return rec, attendance.ResolveToday(rec), attendance.NormalizePunches(rec), nil
}

// GetPunches returns the normalized punch list for one canonical YYYYMMDD
// date. A day without a record yields an empty list, not an error.
func (s *AttendanceService) GetPunches(ctx context.Context, userID, date string) ([]models.Punch, error) {
	if _, err := s.ensureSynced(ctx, userID); err != nil {
		return nil, err
	}
	rec, ok := s.set.GetByDate(userID, date)
	if !ok {
		return nil, nil
	}
	return attendance.NormalizePunches(rec), nil
}

// Mark resolves the next punch type from today's data, forwards it
// upstream, and resyncs so the new punch is visible immediately.
func (s *AttendanceService) Mark(ctx context.Context, userID string) (models.NextAction, error) {
	_, state, _, err := s.GetToday(ctx, userID)
	if err != nil {
		return "", err
	}
	if err := s.client.MarkAttendance(ctx, userID, state.NextAction); err != nil {
		return "", err
	}
	if err := s.SyncUser(ctx, userID); err != nil {
		s.logger.Warnf(providers.TypeApp, "Resync after mark failed for user %s: %s", userID, err)
	}
	return state.NextAction, nil
}

func (s *AttendanceService) LastSync(userID string) (time.Time, bool) {
	return s.set.SyncedAt(userID)
}

func (s *AttendanceService) RecordCount(userID string) int {
	return s.set.RecordCount(userID)
}
