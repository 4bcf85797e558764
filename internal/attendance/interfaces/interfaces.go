package interfaces

import "context"

type CompressorInterface interface {
	Compress(val []byte) ([]byte, error)
	Decompress(val []byte) ([]byte, error)
}

type SchedulerInterface interface {
	Init()
	Stop()
	Restore() error
	Persist() error
}

// Syncer is what the scheduler needs from the attendance service: refresh
// every tracked user's current-month data.
type Syncer interface {
	SyncAll(ctx context.Context)
}
