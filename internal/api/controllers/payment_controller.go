package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nyaya/internal/models/request_models"
	"nyaya/internal/services"
	"nyaya/pkg/middleware"
	"nyaya/pkg/utils"
)

type PaymentController struct {
	paymentService services.PaymentService
}

func NewPaymentController(paymentService services.PaymentService) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

func (p *PaymentController) CreateCheckout(c *gin.Context) {
	account, ok := middleware.SessionAccount(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	if account.Transient {
		utils.RespondError(c, http.StatusServiceUnavailable, "Checkout temporarily unavailable, try again shortly")
		return
	}

	var req request_models.CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	checkout, err := p.paymentService.CreateCheckoutForPlan(c.Request.Context(), account.ID, req.PlanID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, checkout, "Checkout created")
}

// Webhook is called by the gateway, not the UI; the service verifies the
// payload signature itself and writes its own response.
func (p *PaymentController) Webhook(c *gin.Context) {
	p.paymentService.HandleWebhook(c)
}
