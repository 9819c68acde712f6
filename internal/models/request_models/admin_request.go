package request_models

type AdminRoleRequest struct {
	TargetEmail string `json:"target_email" binding:"required,email"`
}
