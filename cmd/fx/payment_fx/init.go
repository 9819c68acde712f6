package payment_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"nyaya/internal/infra"
	"nyaya/internal/repositories"
	"nyaya/internal/services"
)

var Module = fx.Provide(
	providePaymentRepo, providePaymentService)

func providePaymentRepo(db *gorm.DB) repositories.PaymentRepository {
	return repositories.NewPaymentRepository(db)
}

func providePaymentService(
	db *gorm.DB,
	paymentRepo repositories.PaymentRepository,
	subscriptions services.SubscriptionServiceInterface,
	cfg *infra.Config,
) (services.PaymentService, error) {
	return services.NewPaymentService(db, paymentRepo, subscriptions, services.PayOSConfig{
		ClientID:    cfg.PayOS.ClientID,
		APIKey:      cfg.PayOS.APIKey,
		ChecksumKey: cfg.PayOS.ChecksumKey,
		ReturnURL:   cfg.PayOS.ReturnURL,
		CancelURL:   cfg.PayOS.CancelURL,
	})
}
