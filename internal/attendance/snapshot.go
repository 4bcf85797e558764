package attendance

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"

	"camsd/internal/attendance/interfaces"
	"camsd/internal/models"
	"camsd/internal/providers"
)

const snapshotVersion = 1

// SnapshotFile is the on-disk envelope for last-good attendance data. It
// lets the daemon serve the previous sync after a restart while the
// upstream is unreachable.
type SnapshotFile struct {
	Version int                            `json:"version"`
	Users   map[string]*models.UserRecords `json:"users"`
}

// FileManager persists and restores the attendance set. Writes go through
// a tmp file with fsync and rename so a crash mid-write never corrupts the
// previous snapshot.
type FileManager struct {
	set        *models.AttendanceSet
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewFileManager(compressor interfaces.CompressorInterface, set *models.AttendanceSet, logger providers.Logger) *FileManager {
	return &FileManager{
		set:        set,
		compressor: compressor,
		logger:     logger,
	}
}

func (f *FileManager) SaveToFile(fileName string) error {
	envelope := SnapshotFile{
		Version: snapshotVersion,
		Users:   f.set.Snapshot(),
	}

	jsonData, err := json.Marshal(envelope)
	if err != nil {
		return err
	}
	data, err := f.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	if _, err = file.Write(data); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}
	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}
	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}
	return os.Rename(tmpFile, fileName)
}

// LoadFromFile restores a snapshot. A missing file is a clean first start,
// not an error. Uncompressed files are accepted too, so a snapshot written
// before compression was enabled still restores.
func (f *FileManager) LoadFromFile(fileName string) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			f.logger.Infof(providers.TypeApp, "No snapshot at %s, starting empty", fileName)
			return nil
		}
		return err
	}

	jsonData, err := f.compressor.Decompress(data)
	if err != nil {
		jsonData = data
	}

	var envelope SnapshotFile
	if err = json.Unmarshal(jsonData, &envelope); err != nil {
		return fmt.Errorf("snapshot decode failed: %w", err)
	}
	if envelope.Version > snapshotVersion {
		return fmt.Errorf("snapshot version %d is newer than supported %d", envelope.Version, snapshotVersion)
	}

	f.set.Restore(envelope.Users)
	f.logger.Infof(providers.TypeApp, "Restored snapshot for %d users", f.set.Len())
	return nil
}
