package admin_fx

import (
	"go.uber.org/fx"

	"nyaya/internal/repositories"
	"nyaya/internal/services"
)

var Module = fx.Provide(provideAdminService)

func provideAdminService(accountRepo repositories.AccountRepository) services.AdminServiceInterface {
	return services.NewAdminService(accountRepo)
}
