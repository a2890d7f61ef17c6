package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment is a recorded real-world repayment between two participants of an
// event. The ledger is append-only: payments are never edited or deleted, and
// outstanding debt is always recomputed from the full list. Amounts are stored
// in minor units so the settlement math never touches floats.
type Payment struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	EventID     uuid.UUID   `gorm:"type:uuid;index" json:"event_id"`
	FromID      uuid.UUID   `gorm:"type:uuid" json:"from_id"`
	From        Participant `gorm:"foreignKey:FromID" json:"from,omitempty"`
	ToID        uuid.UUID   `gorm:"type:uuid" json:"to_id"`
	To          Participant `gorm:"foreignKey:ToID" json:"to,omitempty"`
	AmountMinor int64       `gorm:"not null" json:"amount_minor"`
	Source      string      `gorm:"not null;size:20" json:"source"` // detailed, simplified
	Notes       string      `json:"notes,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type CreatePaymentRequest struct {
	FromID string  `json:"from_id" binding:"required"`
	ToID   string  `json:"to_id" binding:"required"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Source string  `json:"source" binding:"required,oneof=detailed simplified"`
	Notes  string  `json:"notes"`
}
