package response_models

type AccountResponse struct {
	ID            string `json:"id,omitempty"`
	Email         string `json:"email"`
	DisplayName   string `json:"display_name"`
	AvatarURL     string `json:"avatar_url,omitempty"`
	Role          string `json:"role"`
	ProfileState  string `json:"profile_state"`
	IsVerified    bool   `json:"is_verified"`
	IsPremium     bool   `json:"is_premium"`
	PremiumPlanID string `json:"premium_plan_id,omitempty"`
	// True when the account could not be loaded from the datastore and this
	// view was built from the identity provider's session alone.
	Transient bool `json:"transient,omitempty"`
}

type AdminRoleResponse struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}
