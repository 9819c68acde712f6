package profile_fx

import (
	"go.uber.org/fx"

	"nyaya/internal/repositories"
	"nyaya/internal/services"
)

var Module = fx.Provide(provideProfileService)

func provideProfileService(accountRepo repositories.AccountRepository) services.ProfileServiceInterface {
	return services.NewProfileService(accountRepo)
}
