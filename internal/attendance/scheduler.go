package attendance

import (
	"context"
	"sync"

	"github.com/roylee0704/gron"

	"camsd/internal/attendance/interfaces"
	"camsd/internal/providers"
	"camsd/internal/structures"
)

// Scheduler drives the two periodic jobs: resyncing tracked users from the
// upstream and persisting the last-good snapshot.
type Scheduler struct {
	config      *structures.Config
	logger      providers.Logger
	syncer      interfaces.Syncer
	fileManager *FileManager
	cron        *gron.Cron
	opsMu       sync.Mutex
}

func (s *Scheduler) Init() {
	s.cron = gron.New()
	saveInterval := s.config.Persistence.SaveInterval
	syncInterval := s.config.Sync.Interval

	s.cron.AddFunc(gron.Every(saveInterval), func() {
		s.opsMu.Lock()
		defer s.opsMu.Unlock()

		err := s.fileManager.SaveToFile(s.config.Persistence.FilePath)
		if err != nil {
			s.logger.Errorf(providers.TypeApp, "Error while persisting data: %s", err)
			return
		}
		s.logger.Infof(providers.TypeApp, "Persisted data to file %s", s.config.Persistence.FilePath)
	})

	s.cron.AddFunc(gron.Every(syncInterval), func() {
		s.logger.Infof(providers.TypeApp, "Syncing attendance data...")
		ctx, cancel := context.WithTimeout(context.Background(), syncInterval)
		s.syncer.SyncAll(ctx)
		cancel()
		s.logger.Infof(providers.TypeApp, "Attendance sync finished")
	})

	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *Scheduler) Restore() error {
	return s.fileManager.LoadFromFile(s.config.Persistence.FilePath)
}

func (s *Scheduler) Persist() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	s.logger.Infof(providers.TypeApp, "Persisting attendance data to file...")
	err := s.fileManager.SaveToFile(s.config.Persistence.FilePath)
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while persisting data: %s", err)
		return err
	}
	return nil
}

func NewScheduler(config *structures.Config, logger providers.Logger, syncer interfaces.Syncer, fileManager *FileManager) interfaces.SchedulerInterface {
	return &Scheduler{
		config:      config,
		logger:      logger,
		syncer:      syncer,
		fileManager: fileManager,
	}
}
