// Package engine is the debt settlement core: it turns shared expenses and
// recorded repayments into who-owes-whom debts and a minimal transfer set that
// settles them. Every function here is a pure transformation of immutable
// inputs — no database, no clock, no I/O — so computations for different
// events can run concurrently without coordination.
//
// All amounts are int64 minor units (cents). Conversion to and from decimal
// happens in engine/money at the boundary.
package engine

import (
	"time"

	"github.com/google/uuid"
)

// Participant is the identity unit of a settlement computation. The ID is an
// opaque string owned by the caller; Name is only used for presentation
// ordering in the detailed view.
type Participant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Expense is a single shared expense, paid in full by the payer and split
// equally across all participants of the computation, payer included.
type Expense struct {
	ID      string  `json:"id"`
	Amount  float64 `json:"amount"`
	PayerID string  `json:"payer_id"`
}

// Debt is a directed edge: From owes To AmountMinor. Raw debts come out of
// DeriveRawDebts, simplified debts out of NetBalances, detailed debts out of
// AggregatePairwise — all the same shape, recomputed fresh on every call.
type Debt struct {
	ID          string      `json:"id"`
	From        Participant `json:"from"`
	To          Participant `json:"to"`
	AmountMinor int64       `json:"amount_minor"`
}

// PaymentSource records which debt view a payment was made against.
type PaymentSource string

const (
	SourceDetailed   PaymentSource = "detailed"
	SourceSimplified PaymentSource = "simplified"
)

// Payment is a recorded real-world transfer FromID -> ToID meant to reduce
// FromID's debt to ToID. Payments are append-only and never edited.
type Payment struct {
	ID          string        `json:"id"`
	EventID     string        `json:"event_id"`
	FromID      string        `json:"from_id"`
	ToID        string        `json:"to_id"`
	AmountMinor int64         `json:"amount_minor"`
	CreatedAt   time.Time     `json:"created_at"`
	Source      PaymentSource `json:"source"`
}

// RecordPayment constructs a Payment value. It is a pure constructor: the
// caller owns persistence and any validation against outstanding debt.
func RecordPayment(eventID, fromID, toID string, amountMinor int64, source PaymentSource, createdAt time.Time) Payment {
	return Payment{
		ID:          uuid.NewString(),
		EventID:     eventID,
		FromID:      fromID,
		ToID:        toID,
		AmountMinor: amountMinor,
		CreatedAt:   createdAt,
		Source:      source,
	}
}

// debtNamespace seeds the deterministic (UUIDv5) debt IDs so the same logical
// debt gets the same ID across recomputations, which keeps diffs stable.
var debtNamespace = uuid.MustParse("c35f5c0d-9b6a-4c57-8a2e-3f1d2b9e7a41")

func debtID(parts ...string) string {
	name := ""
	for i, p := range parts {
		if i > 0 {
			name += "/"
		}
		name += p
	}
	return uuid.NewSHA1(debtNamespace, []byte(name)).String()
}
