package attendance

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"camsd/internal/models"
	"camsd/internal/testutil"
)

func seededSet() *models.AttendanceSet {
	set := models.NewAttendanceSet()
	records := []*models.PunchRecord{
		{UserID: "61008", ProcessDate: "20/12/2024", DayStatus: "Present"},
		{UserID: "61008", ProcessDate: "21/12/2024", DayStatus: "Absent"},
	}
	set.Put("61008", records, IndexByDate(records))
	return set
}

func TestFileManager_SaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attendance.dat")
	logger := &testutil.MockLogger{}
	compressor := &testutil.MockCompressor{}

	source := NewFileManager(compressor, seededSet(), logger)
	require.NoError(t, source.SaveToFile(path))

	restored := models.NewAttendanceSet()
	target := NewFileManager(compressor, restored, logger)
	require.NoError(t, target.LoadFromFile(path))

	records, ok := restored.Get("61008")
	require.True(t, ok)
	require.Len(t, records, 2)
	rec, ok := restored.GetByDate("61008", "20241220")
	require.True(t, ok)
	assert.Equal(t, "Present", rec.DayStatus)
}

func TestFileManager_LoadMissingFileIsClean(t *testing.T) {
	logger := &testutil.MockLogger{}
	fm := NewFileManager(&testutil.MockCompressor{}, models.NewAttendanceSet(), logger)

	err := fm.LoadFromFile(filepath.Join(t.TempDir(), "nope.dat"))
	assert.NoError(t, err)
	assert.Equal(t, 1, logger.Count("info"))
}

func TestFileManager_LoadUncompressedFallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attendance.dat")
	envelope := SnapshotFile{
		Version: snapshotVersion,
		Users: map[string]*models.UserRecords{
			"61008": {Records: []*models.PunchRecord{{UserID: "61008"}}},
		},
	}
	raw, err := json.Marshal(envelope)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0644))

	set := models.NewAttendanceSet()
	fm := NewFileManager(&testutil.MockCompressor{DecompressErr: errors.New("not zstd")}, set, &testutil.MockLogger{})

	require.NoError(t, fm.LoadFromFile(path))
	assert.Equal(t, 1, set.Len())
}

func TestFileManager_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attendance.dat")
	require.NoError(t, os.WriteFile(path, []byte("not a snapshot"), 0644))

	fm := NewFileManager(&testutil.MockCompressor{}, models.NewAttendanceSet(), &testutil.MockLogger{})
	assert.Error(t, fm.LoadFromFile(path))
}

func TestFileManager_LoadNewerVersionRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attendance.dat")
	raw, err := json.Marshal(SnapshotFile{Version: snapshotVersion + 1})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0644))

	fm := NewFileManager(&testutil.MockCompressor{}, models.NewAttendanceSet(), &testutil.MockLogger{})
	assert.Error(t, fm.LoadFromFile(path))
}

func TestFileManager_SaveCompressErrorLeavesNoTmp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "attendance.dat")
	fm := NewFileManager(&testutil.MockCompressor{CompressErr: errors.New("boom")}, seededSet(), &testutil.MockLogger{})

	assert.Error(t, fm.SaveToFile(path))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFileManager_SaveWithZstd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attendance.dat")
	compressor, err := NewZstdCompressor()
	require.NoError(t, err)
	logger := &testutil.MockLogger{}

	require.NoError(t, NewFileManager(compressor, seededSet(), logger).SaveToFile(path))

	set := models.NewAttendanceSet()
	require.NoError(t, NewFileManager(compressor, set, logger).LoadFromFile(path))
	assert.Equal(t, 2, set.RecordCount("61008"))
}
