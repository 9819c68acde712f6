package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"nyaya/internal/models/db_models"
	"nyaya/internal/repositories"
	"nyaya/pkg/utils"
)

// MergeSummary is the per-email audit record emitted for every duplicate
// group the reconciler repaired.
type MergeSummary struct {
	Email        string
	KeeperID     uuid.UUID
	LosersMerged int
}

type ReconcilerServiceInterface interface {
	// Run merges accounts sharing a normalized email. Each group is repaired
	// inside one transaction: dependent rows are rewritten to the keeper
	// before any loser is deleted. Safe to re-run; a clean table is a no-op.
	Run(ctx context.Context) ([]MergeSummary, error)
}

type ReconcilerService struct {
	db          *gorm.DB
	accountRepo repositories.AccountRepository
}

func NewReconcilerService(db *gorm.DB, accountRepo repositories.AccountRepository) ReconcilerServiceInterface {
	return &ReconcilerService{
		db:          db,
		accountRepo: accountRepo,
	}
}

// Tables holding an account_id foreign key. Every one of these must be
// rewritten before a loser row may be deleted.
var dependentModels = []interface{}{
	&db_models.PaymentRecord{},
	&db_models.NewsArticle{},
	&db_models.Podcast{},
	&db_models.MeetingRoom{},
	&db_models.MediaUpload{},
}

func (r *ReconcilerService) Run(ctx context.Context) ([]MergeSummary, error) {
	accounts, err := r.accountRepo.ListAllByCreation(ctx)
	if err != nil {
		return nil, err
	}

	groups := make(map[string][]db_models.Account)
	order := make([]string, 0)
	for _, account := range accounts {
		email := utils.NormalizeEmail(account.Email)
		if email == "" {
			continue
		}
		if _, seen := groups[email]; !seen {
			order = append(order, email)
		}
		groups[email] = append(groups[email], account)
	}

	summaries := make([]MergeSummary, 0)
	for _, email := range order {
		group := groups[email]
		if len(group) < 2 {
			continue
		}

		keeper := pickKeeper(group)
		summary, err := r.mergeGroup(ctx, email, keeper, group)
		if err != nil {
			// Report per group and keep going; one broken group must not
			// abort the whole batch.
			log.Error().Err(err).Str("email", email).Msg("merge failed")
			continue
		}

		summaries = append(summaries, summary)
		log.Info().
			Str("email", email).
			Str("keeper_id", summary.KeeperID.String()).
			Int("losers_merged", summary.LosersMerged).
			Msg("duplicate accounts merged")
	}

	return summaries, nil
}

// pickKeeper prefers a completed profile over an incomplete one, then the
// earliest creation. The group is already ordered by created_at ascending.
func pickKeeper(group []db_models.Account) db_models.Account {
	for _, account := range group {
		if account.IsProfileComplete() {
			return account
		}
	}
	return group[0]
}

func (r *ReconcilerService) mergeGroup(ctx context.Context, email string, keeper db_models.Account, group []db_models.Account) (MergeSummary, error) {
	summary := MergeSummary{Email: email, KeeperID: keeper.ID}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, loser := range group {
			if loser.ID == keeper.ID {
				continue
			}

			for _, model := range dependentModels {
				err := tx.Model(model).
					Where("account_id = ?", loser.ID).
					Update("account_id", keeper.ID).Error
				if err != nil {
					return err
				}
			}

			// Hard delete; the loser must not linger as a soft-deleted row
			// with the shared email.
			if err := tx.Unscoped().Delete(&db_models.Account{}, "id = ?", loser.ID).Error; err != nil {
				return err
			}

			summary.LosersMerged++
		}
		return nil
	})
	if err != nil {
		return MergeSummary{}, err
	}

	return summary, nil
}
