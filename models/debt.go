package models

import "github.com/google/uuid"

// DebtEntry is one directed debt in an API response, with the amount in both
// minor units (what the engine computed) and decimal (for display).
type DebtEntry struct {
	From        uuid.UUID `json:"from"`
	FromName    string    `json:"from_name"`
	To          uuid.UUID `json:"to"`
	ToName      string    `json:"to_name"`
	Amount      float64   `json:"amount"`
	AmountMinor int64     `json:"amount_minor"`
	Currency    string    `json:"currency"`
}

// EventDebtSummary is returned for GET /api/events/:id/debts. Raw is the
// per-expense derivation, Simplified the minimal transfer set before
// payments, Outstanding/OutstandingDetailed the two views after all recorded
// payments are netted in.
type EventDebtSummary struct {
	EventID             uuid.UUID   `json:"event_id"`
	EventName           string      `json:"event_name"`
	Currency            string      `json:"currency"`
	TotalSpent          float64     `json:"total_spent"`
	Raw                 []DebtEntry `json:"raw"`
	Simplified          []DebtEntry `json:"simplified"`
	Outstanding         []DebtEntry `json:"outstanding"`
	OutstandingDetailed []DebtEntry `json:"outstanding_detailed"`
}
