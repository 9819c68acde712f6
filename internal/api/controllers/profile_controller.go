package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"nyaya/internal/models/db_models"
	"nyaya/internal/models/request_models"
	"nyaya/internal/models/response_models"
	"nyaya/internal/services"
	"nyaya/pkg/middleware"
	"nyaya/pkg/utils"
)

type ProfileController struct {
	profileService services.ProfileServiceInterface
}

func NewProfileController(profileService services.ProfileServiceInterface) *ProfileController {
	return &ProfileController{
		profileService: profileService,
	}
}

// sessionAccountID extracts the persisted account id, rejecting transient
// sessions: profile writes need a durable row behind them.
func sessionAccountID(c *gin.Context) (uuid.UUID, bool) {
	account, ok := middleware.SessionAccount(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return uuid.Nil, false
	}
	if account.Transient || account.ID == uuid.Nil {
		utils.RespondError(c, http.StatusServiceUnavailable, "Profile temporarily unavailable, try again shortly")
		return uuid.Nil, false
	}
	return account.ID, true
}

// GetProfile godoc
// @Summary Fetch the caller's profile
// @Tags Profile
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profile [get]
func (p *ProfileController) GetProfile(c *gin.Context) {
	accountID, ok := sessionAccountID(c)
	if !ok {
		return
	}

	account, err := p.profileService.GetProfile(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, accountResponse(account), "Profile fetched")
}

// SubmitProfile godoc
// @Summary Submit the onboarding form
// @Description Accepts partial submissions; finish=true completes onboarding once all role-required fields are present.
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body request_models.ProfileSetupRequest true "Profile setup payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profile [post]
func (p *ProfileController) SubmitProfile(c *gin.Context) {
	accountID, ok := sessionAccountID(c)
	if !ok {
		return
	}

	var req request_models.ProfileSetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	account, err := p.profileService.SubmitProfile(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, accountResponse(account), "Profile updated")
}

// UpdateAvatar godoc
// @Summary Update the profile photo
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body request_models.AvatarUpdateRequest true "Avatar payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profile/avatar [post]
func (p *ProfileController) UpdateAvatar(c *gin.Context) {
	accountID, ok := sessionAccountID(c)
	if !ok {
		return
	}

	var req request_models.AvatarUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := p.profileService.UpdateAvatar(c.Request.Context(), accountID, req.AvatarURL); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Avatar updated")
}

func accountResponse(account *db_models.Account) response_models.AccountResponse {
	return response_models.AccountResponse{
		ID:            account.ID.String(),
		Email:         account.Email,
		DisplayName:   account.DisplayName,
		AvatarURL:     account.AvatarURL,
		Role:          string(account.Role),
		ProfileState:  string(account.ProfileState),
		IsVerified:    account.IsVerified,
		IsPremium:     account.IsPremium,
		PremiumPlanID: account.PremiumPlanID,
	}
}
