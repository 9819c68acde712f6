package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nyaya/internal/models/db_models"
	"nyaya/internal/repositories"
)

var testIdentity = ExternalIdentity{
	SubjectID: "auth0|abc123",
	Email:     "Asha@Example.com",
	Name:      "Asha Verma",
	AvatarURL: "https://cdn.example.com/a.png",
}

func TestResolveProvisionsOnFirstLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSessionService(repositories.NewAccountRepository(db), time.Second)

	account := svc.Resolve(context.Background(), testIdentity)

	assert.False(t, account.Transient)
	assert.Equal(t, testIdentity.SubjectID, account.ExternalID)
	assert.Equal(t, testIdentity.Email, account.Email)
	assert.Equal(t, db_models.RoleGeneral, account.Role)
	assert.Equal(t, db_models.ProfileUnset, account.ProfileState)
	assert.False(t, account.IsVerified)
	assert.False(t, account.IsPremium)
}

func TestResolveIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSessionService(repositories.NewAccountRepository(db), time.Second)

	first := svc.Resolve(context.Background(), testIdentity)
	second := svc.Resolve(context.Background(), testIdentity)

	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&db_models.Account{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "repeat logins must not create a second row")
}

func TestResolveDoesNotOverwriteExistingFields(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewAccountRepository(db)
	svc := NewSessionService(repo, time.Second)

	svc.Resolve(context.Background(), testIdentity)

	existing, err := repo.FindByExternalID(context.Background(), testIdentity.SubjectID)
	require.NoError(t, err)
	existing.DisplayName = "Adv. Asha Verma"
	existing.Role = db_models.RoleAdvocate
	require.NoError(t, repo.Save(context.Background(), existing))

	// Session enrichment only; no implicit field overwrite on later logins.
	again := svc.Resolve(context.Background(), testIdentity)
	assert.Equal(t, "Adv. Asha Verma", again.DisplayName)
	assert.Equal(t, db_models.RoleAdvocate, again.Role)
}

// failingAccountRepo simulates a datastore that is down.
type failingAccountRepo struct {
	repositories.AccountRepository
}

func (f *failingAccountRepo) FindByExternalID(ctx context.Context, externalID string) (*db_models.Account, error) {
	return nil, errors.New("dial tcp: connection refused")
}

func TestResolveFallsBackToTransientView(t *testing.T) {
	svc := NewSessionService(&failingAccountRepo{}, 100*time.Millisecond)

	account := svc.Resolve(context.Background(), testIdentity)

	assert.True(t, account.Transient)
	assert.Equal(t, testIdentity.Email, account.Email)
	assert.Equal(t, testIdentity.Name, account.DisplayName)
	assert.Equal(t, db_models.RoleGeneral, account.Role)
	assert.Equal(t, db_models.ProfileUnset, account.ProfileState)
	assert.False(t, account.IsPremium, "degraded sessions read as not premium")
}

// slowAccountRepo never answers within the deadline.
type slowAccountRepo struct {
	repositories.AccountRepository
}

func (s *slowAccountRepo) FindByExternalID(ctx context.Context, externalID string) (*db_models.Account, error) {
	time.Sleep(2 * time.Second)
	return nil, nil
}

func TestResolveFallsBackOnTimeout(t *testing.T) {
	svc := NewSessionService(&slowAccountRepo{}, 50*time.Millisecond)

	started := time.Now()
	account := svc.Resolve(context.Background(), testIdentity)

	assert.True(t, account.Transient)
	assert.Less(t, time.Since(started), time.Second, "login must not block on a slow datastore")
}

func TestRecoveryAfterOutage(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewAccountRepository(db)

	// Outage: transient view, nothing persisted.
	down := NewSessionService(&failingAccountRepo{}, 50*time.Millisecond)
	transient := down.Resolve(context.Background(), testIdentity)
	assert.True(t, transient.Transient)

	var count int64
	require.NoError(t, db.Model(&db_models.Account{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	// Datastore recovers: the same identity now gets a persisted account
	// with the provider's email and name as defaults.
	up := NewSessionService(repo, time.Second)
	persisted := up.Resolve(context.Background(), testIdentity)
	assert.False(t, persisted.Transient)
	assert.Equal(t, testIdentity.Email, persisted.Email)
	assert.Equal(t, testIdentity.Name, persisted.DisplayName)
}
