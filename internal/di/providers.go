package di

import (
	"camsd/internal/attendance/interfaces"
	"camsd/internal/services"
)

// provideSyncer narrows the attendance service to what the scheduler needs.
func provideSyncer(service services.AttendanceServiceInterface) interfaces.Syncer {
	return service
}
