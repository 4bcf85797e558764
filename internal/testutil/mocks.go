package testutil

import (
	"sync"
	"time"

	"camsd/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// Count returns the number of entries at a given level.
func (m *MockLogger) Count(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.Logs {
		if e.Level == level {
			n++
		}
	}
	return n
}

// MockCompressor passes data through unchanged, or fails on demand.
type MockCompressor struct {
	CompressErr   error
	DecompressErr error
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressErr != nil {
		return nil, m.CompressErr
	}
	return val, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressErr != nil {
		return nil, m.DecompressErr
	}
	return val, nil
}

// MockMetrics implements providers.MetricsProviderInterface and counts
// what it saw.
type MockMetrics struct {
	mu            sync.Mutex
	Requests      int
	CacheHits     int
	CacheMisses   int
	SyncDurations int
	SyncErrors    int
	SkippedRows   int
	UnknownStatus int
	RecordCounts  map[string]int
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{RecordCounts: make(map[string]int)}
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests++
}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}
func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}
func (m *MockMetrics) ObserveSyncDuration(_ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SyncDurations++
}
func (m *MockMetrics) IncSyncErrors() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SyncErrors++
}
func (m *MockMetrics) IncSkippedRows(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SkippedRows += count
}
func (m *MockMetrics) IncUnknownStatus(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UnknownStatus += count
}
func (m *MockMetrics) SetRecordsTotal(userID string, count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RecordCounts[userID] = count
}
