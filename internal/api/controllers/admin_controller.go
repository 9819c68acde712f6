package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"nyaya/internal/models/db_models"
	"nyaya/internal/models/request_models"
	"nyaya/internal/models/response_models"
	"nyaya/internal/services"
	"nyaya/pkg/middleware"
	"nyaya/pkg/utils"
)

type AdminController struct {
	adminService services.AdminServiceInterface
}

func NewAdminController(adminService services.AdminServiceInterface) *AdminController {
	return &AdminController{
		adminService: adminService,
	}
}

// GrantAdmin promotes the target email to admin. Routes are already gated by
// the role middleware; the service re-checks the caller regardless.
func (a *AdminController) GrantAdmin(c *gin.Context) {
	a.changeRole(c, a.adminService.GrantAdmin)
}

// RevokeAdmin demotes the target email; the fallback role depends on bar
// registration at revoke time.
func (a *AdminController) RevokeAdmin(c *gin.Context) {
	a.changeRole(c, a.adminService.RevokeAdmin)
}

type roleChange func(ctx context.Context, caller services.SessionAccount, targetEmail string) (*db_models.Account, error)

func (a *AdminController) changeRole(c *gin.Context, op roleChange) {
	caller, ok := middleware.SessionAccount(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req request_models.AdminRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	target, err := op(c.Request.Context(), caller, req.TargetEmail)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.AdminRoleResponse{
		Email: target.Email,
		Role:  string(target.Role),
	}, "Role updated")
}
