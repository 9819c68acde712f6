package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"nyaya/internal/models/db_models"
	"nyaya/internal/models/response_models"
	"nyaya/internal/repositories"
	"nyaya/pkg/utils"
)

type SubscriptionServiceInterface interface {
	Plans() []response_models.SubscriptionPlan
	PlanInfo(planID string) (response_models.SubscriptionPlan, error)
	// Activate trusts paymentRef as proof of a confirmed charge; verifying
	// the charge with the gateway is the caller's precondition. Re-activation
	// overwrites the previous expiry, durations never stack.
	Activate(ctx context.Context, accountEmail, planID, paymentRef string) (response_models.ActivateSubscriptionResponse, error)
	ActivateByAccountID(ctx context.Context, accountID uuid.UUID, planID, paymentRef string) (response_models.ActivateSubscriptionResponse, error)
	// ActivateInTx grants the subscription inside the caller's transaction,
	// so settlement and the grant commit or roll back together.
	ActivateInTx(ctx context.Context, tx *gorm.DB, accountID uuid.UUID, planID, paymentRef string) (response_models.ActivateSubscriptionResponse, error)
	Status(ctx context.Context, accountID uuid.UUID) (response_models.SubscriptionStatusResponse, error)
}

type SubscriptionService struct {
	accountRepo repositories.AccountRepository
}

func NewSubscriptionService(accountRepo repositories.AccountRepository) SubscriptionServiceInterface {
	return &SubscriptionService{
		accountRepo: accountRepo,
	}
}

func (s *SubscriptionService) Plans() []response_models.SubscriptionPlan {
	catalog := AllPlans()
	plans := make([]response_models.SubscriptionPlan, 0, len(catalog))
	for _, p := range catalog {
		plans = append(plans, p.ToResponse())
	}
	return plans
}

func (s *SubscriptionService) PlanInfo(planID string) (response_models.SubscriptionPlan, error) {
	plan := PlanByID(planID)
	if plan == nil {
		return response_models.SubscriptionPlan{}, utils.ErrInvalidPlan
	}
	return plan.ToResponse(), nil
}

func (s *SubscriptionService) Activate(ctx context.Context, accountEmail, planID, paymentRef string) (response_models.ActivateSubscriptionResponse, error) {
	account, err := s.accountRepo.FindByEmail(ctx, accountEmail)
	if err != nil {
		return response_models.ActivateSubscriptionResponse{}, utils.ErrDatabaseError
	}
	if account == nil {
		return response_models.ActivateSubscriptionResponse{}, utils.ErrAccountNotFound
	}

	return s.activate(ctx, s.accountRepo, account, planID, paymentRef)
}

func (s *SubscriptionService) ActivateByAccountID(ctx context.Context, accountID uuid.UUID, planID, paymentRef string) (response_models.ActivateSubscriptionResponse, error) {
	return s.activateByID(ctx, s.accountRepo, accountID, planID, paymentRef)
}

func (s *SubscriptionService) ActivateInTx(ctx context.Context, tx *gorm.DB, accountID uuid.UUID, planID, paymentRef string) (response_models.ActivateSubscriptionResponse, error) {
	return s.activateByID(ctx, repositories.NewAccountRepository(tx), accountID, planID, paymentRef)
}

func (s *SubscriptionService) activateByID(ctx context.Context, repo repositories.AccountRepository, accountID uuid.UUID, planID, paymentRef string) (response_models.ActivateSubscriptionResponse, error) {
	account, err := repo.FindByID(ctx, accountID.String())
	if err != nil {
		return response_models.ActivateSubscriptionResponse{}, utils.ErrDatabaseError
	}
	if account == nil {
		return response_models.ActivateSubscriptionResponse{}, utils.ErrAccountNotFound
	}

	return s.activate(ctx, repo, account, planID, paymentRef)
}

func (s *SubscriptionService) activate(ctx context.Context, repo repositories.AccountRepository, account *db_models.Account, planID, paymentRef string) (response_models.ActivateSubscriptionResponse, error) {
	plan := PlanByID(planID)
	if plan == nil {
		return response_models.ActivateSubscriptionResponse{}, utils.ErrInvalidPlan
	}

	expiresAt := time.Now().AddDate(0, 0, plan.DurationInDays).Unix()

	account.IsPremium = true
	account.PremiumPlanID = plan.ID
	account.PremiumExpiresAt = &expiresAt
	account.PaymentRef = paymentRef

	if err := repo.Save(ctx, account); err != nil {
		return response_models.ActivateSubscriptionResponse{}, utils.ErrDatabaseError
	}

	log.Info().
		Str("account_id", account.ID.String()).
		Str("plan_id", plan.ID).
		Time("expires_at", utils.FromUnixSecondsIST(expiresAt)).
		Msg("subscription activated")

	return response_models.ActivateSubscriptionResponse{
		PlanID:           plan.ID,
		PremiumExpiresAt: expiresAt,
	}, nil
}

func (s *SubscriptionService) Status(ctx context.Context, accountID uuid.UUID) (response_models.SubscriptionStatusResponse, error) {
	account, err := s.accountRepo.FindByID(ctx, accountID.String())
	if err != nil {
		return response_models.SubscriptionStatusResponse{}, utils.ErrDatabaseError
	}
	if account == nil {
		return response_models.SubscriptionStatusResponse{}, utils.ErrAccountNotFound
	}

	return ComputeStatus(account, time.Now()), nil
}

// ComputeStatus derives the premium status at read time. The stored IsPremium
// flag is never trusted alone and is never auto-flipped on lapse; a nil
// expiry with the flag set is a manual forever grant.
func ComputeStatus(account *db_models.Account, now time.Time) response_models.SubscriptionStatusResponse {
	status := response_models.SubscriptionStatusResponse{
		IsPremium:        account.IsPremium,
		PlanID:           account.PremiumPlanID,
		PremiumExpiresAt: account.PremiumExpiresAt,
	}

	if !account.IsPremium {
		return status
	}

	if account.PremiumExpiresAt == nil {
		status.Active = true
		return status
	}

	days := utils.DaysUntil(*account.PremiumExpiresAt, now)
	status.DaysRemaining = &days
	status.Active = now.Unix() < *account.PremiumExpiresAt

	return status
}

// PremiumActive is the read-time check used wherever a single bool is needed.
func PremiumActive(account *db_models.Account, now time.Time) bool {
	return ComputeStatus(account, now).Active
}
