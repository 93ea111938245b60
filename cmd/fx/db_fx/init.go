package db_fx

import (
	"festiva/internal/infra"
	"festiva/internal/services"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	infra.InitPostgresql,
	services.LedgerModeFromEnv,
)
