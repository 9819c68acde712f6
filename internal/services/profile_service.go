package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"nyaya/internal/models/db_models"
	"nyaya/internal/models/request_models"
	"nyaya/internal/repositories"
	"nyaya/pkg/utils"
)

type ProfileServiceInterface interface {
	GetProfile(ctx context.Context, accountID uuid.UUID) (*db_models.Account, error)
	// SubmitProfile applies one onboarding form submission. Partial writes
	// are allowed at any step; the profile state only ever moves forward, and
	// reaches complete only on an explicit finish with all advocate fields
	// present.
	SubmitProfile(ctx context.Context, accountID uuid.UUID, req request_models.ProfileSetupRequest) (*db_models.Account, error)
	// UpdateAvatar may happen at any state without affecting progression.
	UpdateAvatar(ctx context.Context, accountID uuid.UUID, avatarURL string) error
}

type ProfileService struct {
	accountRepo repositories.AccountRepository
}

func NewProfileService(accountRepo repositories.AccountRepository) ProfileServiceInterface {
	return &ProfileService{
		accountRepo: accountRepo,
	}
}

func (p *ProfileService) GetProfile(ctx context.Context, accountID uuid.UUID) (*db_models.Account, error) {
	account, err := p.accountRepo.FindByID(ctx, accountID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	return account, nil
}

func (p *ProfileService) SubmitProfile(ctx context.Context, accountID uuid.UUID, req request_models.ProfileSetupRequest) (*db_models.Account, error) {
	account, err := p.GetProfile(ctx, accountID)
	if err != nil {
		return nil, err
	}

	role := db_models.Role(req.Role)

	// Validate before committing anything; a failed advocate submission
	// leaves the account untouched.
	if role == db_models.RoleAdvocate {
		if err := validateAdvocateFields(req); err != nil {
			return nil, err
		}
	}

	if name := utils.NormalizeDisplayName(req.FirstName, req.LastName); name != "" {
		account.DisplayName = name
	}

	// Role toggles are allowed until completion pins it. Admin is granted
	// and revoked only through the admin endpoints; the form never touches
	// it, whatever the onboarding state.
	if account.Role != db_models.RoleAdmin && account.ProfileState != db_models.ProfileComplete {
		account.Role = role
	}

	if role == db_models.RoleAdvocate {
		account.BarRegistrationNo = req.BarRegistrationNo
		account.YearsOfExperience = req.YearsOfExperience
		account.City = req.City
		account.Specializations = req.Specializations
		account.Languages = req.Languages
		account.PracticeAreas = req.PracticeAreas
		account.Education = req.Education
		account.Bio = req.Bio
		account.OfficeAddress = req.OfficeAddress
	}

	p.advanceState(account, role, req.Finish)

	if err := p.accountRepo.Save(ctx, account); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return account, nil
}

// advanceState moves the profile state forward; it never regresses, so edits
// after completion leave the state in place.
func (p *ProfileService) advanceState(account *db_models.Account, role db_models.Role, finish bool) {
	next := db_models.ProfileRoleSelected
	if detailsComplete(account, role) {
		next = db_models.ProfileDetailsComplete
	}
	if finish && next == db_models.ProfileDetailsComplete {
		next = db_models.ProfileComplete
	}

	if !account.ProfileState.CanAdvanceTo(next) {
		return
	}
	if next == account.ProfileState {
		return
	}

	account.ProfileState = next

	if next == db_models.ProfileComplete {
		account.IsVerified = true
		// A half-finished role toggle must not leave a bar-registered
		// account as general. Admins keep their role.
		if account.Role != db_models.RoleAdmin && account.HasBarRegistration() {
			account.Role = db_models.RoleAdvocate
		}
		log.Info().
			Str("account_id", account.ID.String()).
			Str("role", string(account.Role)).
			Msg("profile onboarding completed")
	}
}

// detailsComplete reports whether all role-specific fields are persisted.
// General accounts have none beyond a display name.
func detailsComplete(account *db_models.Account, role db_models.Role) bool {
	if role != db_models.RoleAdvocate {
		return account.DisplayName != ""
	}
	return account.HasBarRegistration() &&
		account.City != "" &&
		len(account.Specializations) > 0 &&
		len(account.Languages) > 0 &&
		len(account.PracticeAreas) > 0
}

func validateAdvocateFields(req request_models.ProfileSetupRequest) error {
	switch {
	case req.FirstName == "":
		return utils.NewValidationError("first_name")
	case req.City == "":
		return utils.NewValidationError("city")
	case len(req.Specializations) == 0:
		return utils.NewValidationError("specializations")
	case len(req.Languages) == 0:
		return utils.NewValidationError("languages")
	case len(req.PracticeAreas) == 0:
		return utils.NewValidationError("practice_areas")
	}
	return nil
}

func (p *ProfileService) UpdateAvatar(ctx context.Context, accountID uuid.UUID, avatarURL string) error {
	account, err := p.GetProfile(ctx, accountID)
	if err != nil {
		return err
	}

	account.AvatarURL = avatarURL
	if err := p.accountRepo.Save(ctx, account); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}
