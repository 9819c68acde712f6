package account_fx

import (
	"time"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"nyaya/internal/repositories"
	"nyaya/internal/services"
)

var Module = fx.Provide(
	provideAccountRepo, provideSessionService)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideSessionService(accountRepo repositories.AccountRepository) services.SessionServiceInterface {
	return services.NewSessionService(accountRepo, 3*time.Second)
}
