package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nyaya/internal/models/db_models"
	"nyaya/internal/repositories"
	"nyaya/pkg/utils"
)

func TestPlanCatalog(t *testing.T) {
	assert.Len(t, AllPlans(), 4)

	yearly := PlanByID("yearly")
	require.NotNil(t, yearly)
	assert.Equal(t, 365, yearly.DurationInDays)

	assert.Nil(t, PlanByID("weekly"))
}

func TestPricePerMonth(t *testing.T) {
	monthly := PlanByID("monthly")
	require.NotNil(t, monthly)
	assert.Equal(t, monthly.PriceMinor, monthly.PricePerMonthMinor())

	yearly := PlanByID("yearly")
	require.NotNil(t, yearly)
	assert.Equal(t, yearly.PriceMinor*30/365, yearly.PricePerMonthMinor())
}

func TestActivateYearly(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSubscriptionService(repositories.NewAccountRepository(db))
	seedRole(t, db, "sub@example.com", db_models.RoleGeneral, nil)

	result, err := svc.Activate(context.Background(), "sub@example.com", "yearly", "pay_ref_1")
	require.NoError(t, err)

	want := time.Now().AddDate(0, 0, 365).Unix()
	assert.InDelta(t, want, result.PremiumExpiresAt, 5)

	var fresh db_models.Account
	require.NoError(t, db.First(&fresh, "lower(email) = ?", "sub@example.com").Error)
	assert.True(t, fresh.IsPremium)
	assert.Equal(t, "yearly", fresh.PremiumPlanID)
	assert.Equal(t, "pay_ref_1", fresh.PaymentRef)
}

func TestActivateOverwritesExpiry(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSubscriptionService(repositories.NewAccountRepository(db))
	seedRole(t, db, "sub@example.com", db_models.RoleGeneral, nil)

	_, err := svc.Activate(context.Background(), "sub@example.com", "3-years", "pay_ref_1")
	require.NoError(t, err)

	// A new activation replaces the expiry, durations never stack.
	result, err := svc.Activate(context.Background(), "sub@example.com", "monthly", "pay_ref_2")
	require.NoError(t, err)

	want := time.Now().AddDate(0, 0, 30).Unix()
	assert.InDelta(t, want, result.PremiumExpiresAt, 5)
}

func TestActivateFailures(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSubscriptionService(repositories.NewAccountRepository(db))
	seedRole(t, db, "sub@example.com", db_models.RoleGeneral, nil)

	_, err := svc.Activate(context.Background(), "sub@example.com", "weekly", "ref")
	assert.ErrorIs(t, err, utils.ErrInvalidPlan)

	_, err = svc.Activate(context.Background(), "nobody@example.com", "yearly", "ref")
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}

func TestComputeStatus(t *testing.T) {
	now := time.Now()
	future := now.AddDate(0, 0, 10).Unix()
	past := now.AddDate(0, 0, -3).Unix()

	t.Run("not premium", func(t *testing.T) {
		status := ComputeStatus(&db_models.Account{}, now)
		assert.False(t, status.Active)
	})

	t.Run("active", func(t *testing.T) {
		status := ComputeStatus(&db_models.Account{IsPremium: true, PremiumExpiresAt: &future}, now)
		assert.True(t, status.Active)
		require.NotNil(t, status.DaysRemaining)
		assert.Equal(t, 10, *status.DaysRemaining)
	})

	t.Run("lapsed without any write", func(t *testing.T) {
		// The stored flag still says premium; the read recomputes.
		status := ComputeStatus(&db_models.Account{IsPremium: true, PremiumExpiresAt: &past}, now)
		assert.False(t, status.Active)
		require.NotNil(t, status.DaysRemaining)
		assert.Negative(t, *status.DaysRemaining)
	})

	t.Run("forever grant", func(t *testing.T) {
		status := ComputeStatus(&db_models.Account{IsPremium: true}, now)
		assert.True(t, status.Active)
		assert.Nil(t, status.DaysRemaining)
	})
}
