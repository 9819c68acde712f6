package infra_fx

import (
	"go.uber.org/fx"

	"nyaya/internal/infra"
)

var Module = fx.Provide(
	infra.LoadConfig,
	infra.NewPostgres,
)
