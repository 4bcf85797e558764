//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"camsd/internal"
	"camsd/internal/attendance"
	"camsd/internal/controllers"
	"camsd/internal/models"
	"camsd/internal/providers"
	"camsd/internal/services"
	"camsd/internal/structures"
	"camsd/internal/upstream"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		models.NewAttendanceSet,
		upstream.NewClient,
		services.NewAttendanceService,
		services.NewEnterpriseService,
		provideSyncer,

		attendance.NewZstdCompressor,
		attendance.NewFileManager,
		attendance.NewScheduler,

		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
