package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Expense is paid in full by one participant and split equally across every
// participant of the event, payer included. There is no splits table: shares
// are recomputed by the settlement engine on every read, so editing an
// expense never leaves stale split rows behind.
type Expense struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	EventID     uuid.UUID   `gorm:"type:uuid;index" json:"event_id"`
	Event       Event       `gorm:"foreignKey:EventID" json:"-"`
	PaidBy      uuid.UUID   `gorm:"type:uuid" json:"paid_by"`
	Payer       Participant `gorm:"foreignKey:PaidBy" json:"payer,omitempty"`
	Description string      `gorm:"not null;size:255" json:"description"`
	Amount      float64     `gorm:"type:decimal(12,2);not null" json:"amount"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// Request structs
type CreateExpenseRequest struct {
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	PaidBy      string  `json:"paid_by" binding:"required"`
}

type UpdateExpenseRequest struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	PaidBy      string  `json:"paid_by"`
}
