package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"nyaya/internal/models/db_models"
	"nyaya/internal/models/request_models"
	"nyaya/internal/repositories"
	"nyaya/pkg/utils"
)

func seedAccount(t *testing.T, db *gorm.DB) *db_models.Account {
	t.Helper()
	account := &db_models.Account{
		ExternalID:   "auth0|" + t.Name(),
		Email:        "user@example.com",
		Role:         db_models.RoleGeneral,
		ProfileState: db_models.ProfileUnset,
	}
	require.NoError(t, db.Create(account).Error)
	return account
}

func advocateRequest() request_models.ProfileSetupRequest {
	return request_models.ProfileSetupRequest{
		Role:              "advocate",
		FirstName:         "asha",
		LastName:          "verma",
		BarRegistrationNo: strPtr("MH/123/2010"),
		YearsOfExperience: 8,
		City:              "Mumbai",
		Specializations:   []string{"criminal"},
		Languages:         []string{"hindi", "english"},
		PracticeAreas:     []string{"high court"},
	}
}

func TestSubmitProfileAdvocateValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProfileService(repositories.NewAccountRepository(db))
	account := seedAccount(t, db)

	cases := []struct {
		field  string
		mutate func(*request_models.ProfileSetupRequest)
	}{
		{"first_name", func(r *request_models.ProfileSetupRequest) { r.FirstName = "" }},
		{"city", func(r *request_models.ProfileSetupRequest) { r.City = "" }},
		{"specializations", func(r *request_models.ProfileSetupRequest) { r.Specializations = nil }},
		{"languages", func(r *request_models.ProfileSetupRequest) { r.Languages = nil }},
		{"practice_areas", func(r *request_models.ProfileSetupRequest) { r.PracticeAreas = nil }},
	}

	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			req := advocateRequest()
			tc.mutate(&req)

			_, err := svc.SubmitProfile(context.Background(), account.ID, req)

			var verr *utils.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}

	// None of the failed submissions may have committed partial state.
	var fresh db_models.Account
	require.NoError(t, db.First(&fresh, "id = ?", account.ID).Error)
	assert.Equal(t, db_models.ProfileUnset, fresh.ProfileState)
	assert.Equal(t, db_models.RoleGeneral, fresh.Role)
	assert.Nil(t, fresh.BarRegistrationNo)
}

func TestSubmitProfileGeneralFlow(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProfileService(repositories.NewAccountRepository(db))
	account := seedAccount(t, db)

	updated, err := svc.SubmitProfile(context.Background(), account.ID, request_models.ProfileSetupRequest{
		Role:      "general",
		FirstName: "ravi",
		LastName:  "KUMAR",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ravi Kumar", updated.DisplayName)
	assert.Equal(t, db_models.ProfileDetailsComplete, updated.ProfileState)
	assert.False(t, updated.IsVerified)

	finished, err := svc.SubmitProfile(context.Background(), account.ID, request_models.ProfileSetupRequest{
		Role:      "general",
		FirstName: "ravi",
		LastName:  "kumar",
		Finish:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, db_models.ProfileComplete, finished.ProfileState)
	assert.True(t, finished.IsVerified)
	assert.Equal(t, db_models.RoleGeneral, finished.Role)
}

func TestSubmitProfileAdvocateFlow(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProfileService(repositories.NewAccountRepository(db))
	account := seedAccount(t, db)

	req := advocateRequest()
	req.Finish = true

	finished, err := svc.SubmitProfile(context.Background(), account.ID, req)
	require.NoError(t, err)
	assert.Equal(t, db_models.ProfileComplete, finished.ProfileState)
	assert.True(t, finished.IsVerified)
	assert.Equal(t, db_models.RoleAdvocate, finished.Role)
	assert.Equal(t, "Asha Verma", finished.DisplayName)
}

func TestFinishWithoutBarNumberStaysIncomplete(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProfileService(repositories.NewAccountRepository(db))
	account := seedAccount(t, db)

	req := advocateRequest()
	req.BarRegistrationNo = nil
	req.Finish = true

	updated, err := svc.SubmitProfile(context.Background(), account.ID, req)
	require.NoError(t, err)
	assert.Equal(t, db_models.ProfileRoleSelected, updated.ProfileState)
	assert.False(t, updated.IsVerified)
}

func TestProfileStateNeverRegresses(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProfileService(repositories.NewAccountRepository(db))
	account := seedAccount(t, db)

	req := advocateRequest()
	req.Finish = true
	_, err := svc.SubmitProfile(context.Background(), account.ID, req)
	require.NoError(t, err)

	// Re-entering the form edits fields in place without regression.
	edit := advocateRequest()
	edit.City = "Pune"
	updated, err := svc.SubmitProfile(context.Background(), account.ID, edit)
	require.NoError(t, err)
	assert.Equal(t, db_models.ProfileComplete, updated.ProfileState)
	assert.Equal(t, "Pune", updated.City)

	// A half-finished toggle to general cannot demote a completed advocate.
	toggle := request_models.ProfileSetupRequest{Role: "general", FirstName: "asha"}
	toggled, err := svc.SubmitProfile(context.Background(), account.ID, toggle)
	require.NoError(t, err)
	assert.Equal(t, db_models.RoleAdvocate, toggled.Role)
	assert.Equal(t, db_models.ProfileComplete, toggled.ProfileState)
}

func TestSubmitProfileNeverChangesAdminRole(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProfileService(repositories.NewAccountRepository(db))
	account := seedAccount(t, db)
	require.NoError(t, db.Model(account).Update("role", db_models.RoleAdmin).Error)

	// An admin granted before onboarding fills the form as a regular user;
	// that must not revoke the grant.
	updated, err := svc.SubmitProfile(context.Background(), account.ID, request_models.ProfileSetupRequest{
		Role:      "general",
		FirstName: "root",
	})
	require.NoError(t, err)
	assert.Equal(t, db_models.RoleAdmin, updated.Role)

	// Finishing an advocate profile keeps the role too.
	req := advocateRequest()
	req.Finish = true
	finished, err := svc.SubmitProfile(context.Background(), account.ID, req)
	require.NoError(t, err)
	assert.Equal(t, db_models.ProfileComplete, finished.ProfileState)
	assert.Equal(t, db_models.RoleAdmin, finished.Role)

	var fresh db_models.Account
	require.NoError(t, db.First(&fresh, "id = ?", account.ID).Error)
	assert.Equal(t, db_models.RoleAdmin, fresh.Role)
}

func TestUpdateAvatarAtAnyState(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProfileService(repositories.NewAccountRepository(db))
	account := seedAccount(t, db)

	require.NoError(t, svc.UpdateAvatar(context.Background(), account.ID, "https://cdn.example.com/new.png"))

	var fresh db_models.Account
	require.NoError(t, db.First(&fresh, "id = ?", account.ID).Error)
	assert.Equal(t, "https://cdn.example.com/new.png", fresh.AvatarURL)
	assert.Equal(t, db_models.ProfileUnset, fresh.ProfileState, "avatar updates must not affect progression")
}
