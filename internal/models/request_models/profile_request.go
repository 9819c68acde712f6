package request_models

// ProfileSetupRequest is submitted by the onboarding form, possibly several
// times; Finish signals the explicit completion step.
type ProfileSetupRequest struct {
	Role              string   `json:"role" binding:"required,oneof=general advocate"`
	FirstName         string   `json:"first_name"`
	LastName          string   `json:"last_name"`
	BarRegistrationNo *string  `json:"bar_registration_no,omitempty"`
	YearsOfExperience int      `json:"years_of_experience,omitempty"`
	City              string   `json:"city,omitempty"`
	Specializations   []string `json:"specializations,omitempty"`
	Bio               string   `json:"bio,omitempty"`
	Education         []string `json:"education,omitempty"`
	Languages         []string `json:"languages,omitempty"`
	PracticeAreas     []string `json:"practice_areas,omitempty"`
	OfficeAddress     string   `json:"office_address,omitempty"`
	Finish            bool     `json:"finish"`
}

type AvatarUpdateRequest struct {
	AvatarURL string `json:"avatar_url" binding:"required,url"`
}
