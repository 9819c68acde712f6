package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nyaya/internal/models/request_models"
	"nyaya/internal/services"
	"nyaya/pkg/middleware"
	"nyaya/pkg/utils"
)

type SubscriptionController struct {
	subscriptionService services.SubscriptionServiceInterface
}

func NewSubscriptionController(subscriptionService services.SubscriptionServiceInterface) *SubscriptionController {
	return &SubscriptionController{
		subscriptionService: subscriptionService,
	}
}

// ListPlans godoc
// @Summary List the plan catalog
// @Tags Subscription
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /plans [get]
func (s *SubscriptionController) ListPlans(c *gin.Context) {
	utils.RespondSuccess(c, s.subscriptionService.Plans(), "Plans fetched")
}

func (s *SubscriptionController) GetPlan(c *gin.Context) {
	plan, err := s.subscriptionService.PlanInfo(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Plan fetched")
}

// Activate godoc
// @Summary Activate a premium subscription
// @Description The payment reference must already be confirmed with the gateway; this endpoint trusts it.
// @Tags Subscription
// @Accept json
// @Produce json
// @Param request body request_models.ActivateSubscriptionRequest true "Activation payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /subscription/activate [post]
func (s *SubscriptionController) Activate(c *gin.Context) {
	account, ok := middleware.SessionAccount(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req request_models.ActivateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := s.subscriptionService.Activate(c.Request.Context(), account.Email, req.PlanID, req.PaymentReference)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Subscription activated")
}

func (s *SubscriptionController) Status(c *gin.Context) {
	account, ok := middleware.SessionAccount(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	// Degraded sessions read as not-premium rather than erroring.
	if account.Transient {
		utils.RespondSuccess(c, gin.H{"is_premium": false, "active": false}, "Subscription status")
		return
	}

	status, err := s.subscriptionService.Status(c.Request.Context(), account.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, status, "Subscription status")
}
