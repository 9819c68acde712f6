package main

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"nyaya/cmd/fx/account_fx"
	"nyaya/cmd/fx/admin_fx"
	"nyaya/cmd/fx/controllers_fx"
	"nyaya/cmd/fx/infra_fx"
	"nyaya/cmd/fx/payment_fx"
	"nyaya/cmd/fx/profile_fx"
	"nyaya/cmd/fx/subscription_fx"
	"nyaya/internal/api/controllers"
	"nyaya/internal/infra"
	"nyaya/internal/models/db_models"
	"nyaya/internal/services"
	"nyaya/pkg/logger"
	"nyaya/pkg/middleware"
)

func main() {
	app := fx.New(
		infra_fx.Module,
		account_fx.Module,
		profile_fx.Module,
		admin_fx.Module,
		subscription_fx.Module,
		payment_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *infra.Config, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Init("nyaya", cfg.Debug)

			if err := infra.AutoMigrate(db); err != nil {
				return err
			}

			go func() {
				addr := fmt.Sprintf(":%d", cfg.Server.Port)
				log.Info().Str("addr", addr).Msg("starting HTTP server")
				if err := engine.Run(addr); err != nil {
					log.Fatal().Err(err).Msg("failed to start server")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("stopping HTTP server")
			infra.ClosePostgres(db)
			return nil
		},
	})
}

func ProvideRouter(
	cfg *infra.Config,
	sessions services.SessionServiceInterface,
	sessionController *controllers.SessionController,
	profileController *controllers.ProfileController,
	adminController *controllers.AdminController,
	subscriptionController *controllers.SubscriptionController,
	paymentController *controllers.PaymentController) *gin.Engine {

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORSMiddleware(cfg.Server.Origin))

	authed := middleware.SessionMiddleware([]byte(cfg.Identity.JWTSecret), sessions)

	r.POST("/auth/session", authed, sessionController.Resolve)

	profile := r.Group("/profile", authed)
	profile.GET("", profileController.GetProfile)
	profile.POST("", profileController.SubmitProfile)
	profile.POST("/avatar", profileController.UpdateAvatar)

	admin := r.Group("/admin", authed, middleware.RoleMiddleware(db_models.RoleAdmin))
	admin.POST("/grant", adminController.GrantAdmin)
	admin.POST("/revoke", adminController.RevokeAdmin)

	r.GET("/plans", subscriptionController.ListPlans)
	r.GET("/plans/:id", subscriptionController.GetPlan)

	subscription := r.Group("/subscription", authed)
	subscription.POST("/activate", subscriptionController.Activate)
	subscription.GET("/status", subscriptionController.Status)

	r.POST("/payment/checkout", authed, paymentController.CreateCheckout)
	r.POST("/payment/webhook", paymentController.Webhook)

	return r
}
