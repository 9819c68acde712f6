package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"nyaya/internal/models/db_models"
)

type PaymentRepository interface {
	CreatePending(ctx context.Context, record *db_models.PaymentRecord) error
	FindByProviderRef(ctx context.Context, providerRef string) (*db_models.PaymentRecord, error)
	// MarkPaid flips a pending record to paid inside tx. Already-paid records
	// are left untouched so webhook retries stay idempotent.
	MarkPaid(tx *gorm.DB, record *db_models.PaymentRecord) error
	MarkFailed(ctx context.Context, record *db_models.PaymentRecord) error
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (p *paymentRepository) CreatePending(ctx context.Context, record *db_models.PaymentRecord) error {
	record.Status = db_models.PaymentStatusPending
	return p.db.WithContext(ctx).Create(record).Error
}

func (p *paymentRepository) FindByProviderRef(ctx context.Context, providerRef string) (*db_models.PaymentRecord, error) {
	var record db_models.PaymentRecord
	err := p.db.WithContext(ctx).First(&record, "provider_ref = ?", providerRef).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &record, nil
}

func (p *paymentRepository) MarkPaid(tx *gorm.DB, record *db_models.PaymentRecord) error {
	if record.Status == db_models.PaymentStatusPaid {
		return nil
	}
	now := time.Now().Unix()
	return tx.Model(record).Updates(map[string]interface{}{
		"status":  db_models.PaymentStatusPaid,
		"paid_at": now,
	}).Error
}

func (p *paymentRepository) MarkFailed(ctx context.Context, record *db_models.PaymentRecord) error {
	return p.db.WithContext(ctx).Model(record).
		Update("status", db_models.PaymentStatusFailed).Error
}
