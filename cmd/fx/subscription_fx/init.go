package subscription_fx

import (
	"go.uber.org/fx"

	"nyaya/internal/repositories"
	"nyaya/internal/services"
)

var Module = fx.Provide(provideSubscriptionService)

func provideSubscriptionService(accountRepo repositories.AccountRepository) services.SubscriptionServiceInterface {
	return services.NewSubscriptionService(accountRepo)
}
