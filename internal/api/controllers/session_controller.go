package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nyaya/pkg/middleware"
	"nyaya/pkg/utils"
)

type SessionController struct{}

func NewSessionController() *SessionController {
	return &SessionController{}
}

// Resolve godoc
// @Summary Resolve the current session
// @Description Returns the internal account for the authenticated identity, creating it on first login. Never fails on datastore trouble; a transient view is returned instead.
// @Tags Session
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /auth/session [post]
func (s *SessionController) Resolve(c *gin.Context) {
	account, ok := middleware.SessionAccount(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	utils.RespondSuccess(c, account.ToResponse(), "Session resolved")
}
