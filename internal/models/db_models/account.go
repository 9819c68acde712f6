package db_models

import (
	"github.com/lib/pq"
)

type Role string

const (
	RoleGeneral  Role = "general"
	RoleAdvocate Role = "advocate"
	RoleAdmin    Role = "admin"
)

// ProfileState is the onboarding position of an account. States only move
// forward; see the transition table below.
type ProfileState string

const (
	ProfileUnset           ProfileState = "unset"
	ProfileRoleSelected    ProfileState = "role_selected"
	ProfileDetailsComplete ProfileState = "details_complete"
	ProfileComplete        ProfileState = "complete"
)

// profileOrder encodes the allowed forward transitions. A state may move to
// any state with a higher ordinal, never backward.
var profileOrder = map[ProfileState]int{
	ProfileUnset:           0,
	ProfileRoleSelected:    1,
	ProfileDetailsComplete: 2,
	ProfileComplete:        3,
}

// CanAdvanceTo reports whether moving from s to next is a forward transition.
// Staying in place is allowed so repeated form submissions are no-ops.
func (s ProfileState) CanAdvanceTo(next ProfileState) bool {
	return profileOrder[next] >= profileOrder[s]
}

type Account struct {
	BaseModel
	// Opaque subject identifier from the identity provider. Set once at
	// creation, never rewritten.
	ExternalID  string `gorm:"uniqueIndex;not null"`
	Email       string `gorm:"index"`
	DisplayName string
	AvatarURL   string

	Role         Role         `gorm:"type:varchar(16);default:'general';index"`
	ProfileState ProfileState `gorm:"type:varchar(24);default:'unset'"`
	IsVerified   bool         `gorm:"default:false"`

	// Subscription fields. PremiumExpiresAt is meaningful only while
	// IsPremium is set; nil with IsPremium means a manual forever grant.
	IsPremium        bool `gorm:"default:false"`
	PremiumPlanID    string
	PremiumExpiresAt *int64
	PaymentRef       string

	// Advocate-only attributes.
	BarRegistrationNo *string
	YearsOfExperience int
	City              string
	Bio               string
	OfficeAddress     string
	Specializations   pq.StringArray `gorm:"type:text[]"`
	Languages         pq.StringArray `gorm:"type:text[]"`
	Education         pq.StringArray `gorm:"type:text[]"`
	PracticeAreas     pq.StringArray `gorm:"type:text[]"`
}

func (a *Account) IsProfileComplete() bool {
	return a.ProfileState == ProfileComplete
}

func (a *Account) HasBarRegistration() bool {
	return a.BarRegistrationNo != nil && *a.BarRegistrationNo != ""
}
