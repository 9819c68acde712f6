package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// PaymentRecord is created pending at checkout and flipped to paid exactly
// once by the verified gateway webhook. Paid records are never mutated.
type PaymentRecord struct {
	BaseModel
	AccountID   uuid.UUID     `gorm:"index"`
	AmountMinor int64
	Currency    string        `gorm:"size:3"`
	Status      PaymentStatus `gorm:"type:varchar(16);index"`

	Provider    string `gorm:"index"`
	ProviderRef string `gorm:"index"` // idempotency across webhooks
	PlanID      string

	PaidAt *int64

	Receipt  datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Account Account `gorm:"foreignKey:AccountID"`
}
