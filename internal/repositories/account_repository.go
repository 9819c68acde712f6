package repositories

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"nyaya/internal/models/db_models"
)

type AccountRepository interface {
	// UpsertByExternalID inserts the account unless one already exists for
	// its ExternalID, then returns the persisted row either way. Safe under
	// concurrent first logins.
	UpsertByExternalID(ctx context.Context, account *db_models.Account) (*db_models.Account, error)
	FindByExternalID(ctx context.Context, externalID string) (*db_models.Account, error)
	FindByID(ctx context.Context, id string) (*db_models.Account, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
	Save(ctx context.Context, account *db_models.Account) error
	ListAllByCreation(ctx context.Context) ([]db_models.Account, error)
	CountByRole(ctx context.Context, role db_models.Role) (int64, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (a *accountRepository) UpsertByExternalID(ctx context.Context, account *db_models.Account) (*db_models.Account, error) {
	err := a.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "external_id"}},
			DoNothing: true,
		}).
		Create(account).Error
	if err != nil {
		return nil, err
	}

	// Re-fetch so a conflict-losing insert still returns the winning row.
	return a.FindByExternalID(ctx, account.ExternalID)
}

func (a *accountRepository) FindByExternalID(ctx context.Context, externalID string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "external_id = ?", externalID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) FindByID(ctx context.Context, id string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

// FindByEmail matches case-insensitively; stored emails are not normalized.
func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).
		First(&account, "lower(email) = ?", strings.ToLower(strings.TrimSpace(email))).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) Save(ctx context.Context, account *db_models.Account) error {
	return a.db.WithContext(ctx).Save(account).Error
}

func (a *accountRepository) ListAllByCreation(ctx context.Context) ([]db_models.Account, error) {
	var accounts []db_models.Account
	err := a.db.WithContext(ctx).Order("created_at ASC").Find(&accounts).Error
	if err != nil {
		return nil, err
	}

	return accounts, nil
}

func (a *accountRepository) CountByRole(ctx context.Context, role db_models.Role) (int64, error) {
	var count int64
	err := a.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("role = ?", role).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
