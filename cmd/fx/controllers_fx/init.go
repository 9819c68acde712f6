package controllers_fx

import (
	"go.uber.org/fx"

	"nyaya/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewSessionController),
	fx.Provide(controllers.NewProfileController),
	fx.Provide(controllers.NewAdminController),
	fx.Provide(controllers.NewSubscriptionController),
	fx.Provide(controllers.NewPaymentController))
