package models

import (
	"sync"
	"time"
)

// UserRecords is the synced state for one employee: the full record list in
// wire order plus a by-date index keyed on normalized YYYYMMDD dates.
// Records with unparseable dates appear in Records but not in ByDate.
type UserRecords struct {
	Records  []*PunchRecord `json:"records"`
	ByDate   map[string]int `json:"byDate"`
	SyncedAt time.Time      `json:"syncedAt"`
}

// AttendanceSet holds the last successfully synced collection per user.
// A sync replaces a user's collection wholesale; there is no partial merge.
type AttendanceSet struct {
	mu    sync.RWMutex
	users map[string]*UserRecords
}

func NewAttendanceSet() *AttendanceSet {
	return &AttendanceSet{
		users: make(map[string]*UserRecords),
	}
}

// Put replaces the collection for a user. The index keeps the last record
// per date, so a duplicate (userId, processDate) pair resolves to the later
// row in the payload.
func (as *AttendanceSet) Put(userID string, records []*PunchRecord, byDate map[string]int) {
	as.mu.Lock()
	defer as.mu.Unlock()
	as.users[userID] = &UserRecords{
		Records:  records,
		ByDate:   byDate,
		SyncedAt: time.Now(),
	}
}

// Get returns the user's records slice. The slice itself is shared;
// records are immutable after parsing, so callers must not mutate them.
func (as *AttendanceSet) Get(userID string) ([]*PunchRecord, bool) {
	as.mu.RLock()
	defer as.mu.RUnlock()
	ur, ok := as.users[userID]
	if !ok {
		return nil, false
	}
	return ur.Records, true
}

// GetByDate returns the record for one normalized YYYYMMDD date.
func (as *AttendanceSet) GetByDate(userID, date string) (*PunchRecord, bool) {
	as.mu.RLock()
	defer as.mu.RUnlock()
	ur, ok := as.users[userID]
	if !ok {
		return nil, false
	}
	idx, ok := ur.ByDate[date]
	if !ok || idx < 0 || idx >= len(ur.Records) {
		return nil, false
	}
	return ur.Records[idx], true
}

// SyncedAt returns when the user's collection was last replaced.
func (as *AttendanceSet) SyncedAt(userID string) (time.Time, bool) {
	as.mu.RLock()
	defer as.mu.RUnlock()
	ur, ok := as.users[userID]
	if !ok {
		return time.Time{}, false
	}
	return ur.SyncedAt, true
}

// Users lists user IDs with synced data.
func (as *AttendanceSet) Users() []string {
	as.mu.RLock()
	defer as.mu.RUnlock()
	ids := make([]string, 0, len(as.users))
	for id := range as.users {
		ids = append(ids, id)
	}
	return ids
}

// Len returns the number of users with synced data.
func (as *AttendanceSet) Len() int {
	as.mu.RLock()
	defer as.mu.RUnlock()
	return len(as.users)
}

// RecordCount returns how many records a user has.
func (as *AttendanceSet) RecordCount(userID string) int {
	as.mu.RLock()
	defer as.mu.RUnlock()
	ur, ok := as.users[userID]
	if !ok {
		return 0
	}
	return len(ur.Records)
}

// Snapshot copies the map shell for persistence. Record pointers are
// shared; records are never mutated after parse.
func (as *AttendanceSet) Snapshot() map[string]*UserRecords {
	as.mu.RLock()
	defer as.mu.RUnlock()
	cp := make(map[string]*UserRecords, len(as.users))
	for k, v := range as.users {
		cp[k] = v
	}
	return cp
}

// Restore replaces the whole set, skipping nil entries from a corrupt
// snapshot.
func (as *AttendanceSet) Restore(data map[string]*UserRecords) {
	as.mu.Lock()
	defer as.mu.Unlock()
	as.users = make(map[string]*UserRecords, len(data))
	for k, v := range data {
		if v == nil {
			continue
		}
		as.users[k] = v
	}
}
