package main

import (
	"context"
	"log/slog"

	"portal/config"
	logs "portal/internal/infra/log"
	"portal/internal/infra/persistence/model"
	"portal/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type migrateParams struct {
	fx.In

	DB     *gorm.DB
	Logger *slog.Logger
	Config *config.Config
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		fx.Invoke(
			migrate,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewGatewayRepository,
			postgres.NewUserRepository,
			postgres.NewResourceRepository,
			postgres.NewSensorTypeRepository,
			postgres.NewFanRepository,
			postgres.NewTemperatureRepository,
			postgres.NewEventLogRepository,
		),
	)
}

// migrate applies the table definitions and reports what was registered.
func migrate(params migrateParams) error {
	if err := params.DB.AutoMigrate(model.All()...); err != nil {
		return err
	}

	params.Logger.Info("database schema ready",
		slog.String("service", params.Config.Env.ServiceName),
		slog.Int("tables", len(model.All())),
	)

	return nil
}
