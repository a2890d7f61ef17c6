package services

import (
	"context"
	"encoding/json"
	"time"

	"settleup-backend/config"
	"settleup-backend/database"
	"settleup-backend/engine"
	"settleup-backend/engine/money"
	"settleup-backend/models"

	"github.com/google/uuid"
)

var ctx = context.Background()

// Computed summaries are cached briefly; every expense/participant/payment
// mutation invalidates, so the TTL only bounds staleness across instances.
var debtCacheTTL = 30 * time.Second

func debtCacheKey(eventID uuid.UUID) string {
	return "debts:" + eventID.String()
}

// ComputeEventDebts loads a consistent snapshot of an event (participants in
// position order, expenses in creation order, the full payment ledger), runs
// the settlement engine over it and returns all four debt views. Results are
// cached in redis when available; without redis every call recomputes, which
// is fine because the engine is pure and cheap.
func ComputeEventDebts(eventID uuid.UUID) (models.EventDebtSummary, error) {
	if database.Redis != nil {
		if val, err := database.Redis.Get(ctx, debtCacheKey(eventID)).Result(); err == nil {
			var cached models.EventDebtSummary
			if json.Unmarshal([]byte(val), &cached) == nil {
				return cached, nil
			}
		}
	}

	var event models.Event
	if err := database.DB.First(&event, eventID).Error; err != nil {
		return models.EventDebtSummary{}, err
	}

	var participants []models.Participant
	database.DB.Where("event_id = ?", eventID).Order("position ASC").Find(&participants)

	var expenses []models.Expense
	database.DB.Where("event_id = ?", eventID).Order("created_at ASC, id ASC").Find(&expenses)

	var payments []models.Payment
	database.DB.Where("event_id = ?", eventID).Order("created_at ASC, id ASC").Find(&payments)

	engineParticipants := make([]engine.Participant, 0, len(participants))
	for _, p := range participants {
		engineParticipants = append(engineParticipants, engine.Participant{
			ID:   p.ID.String(),
			Name: p.Name,
		})
	}

	engineExpenses := make([]engine.Expense, 0, len(expenses))
	var totalSpent float64
	for _, e := range expenses {
		engineExpenses = append(engineExpenses, engine.Expense{
			ID:      e.ID.String(),
			Amount:  e.Amount,
			PayerID: e.PaidBy.String(),
		})
		totalSpent += money.Round(e.Amount)
	}

	enginePayments := make([]engine.Payment, 0, len(payments))
	for _, p := range payments {
		enginePayments = append(enginePayments, engine.Payment{
			ID:          p.ID.String(),
			EventID:     p.EventID.String(),
			FromID:      p.FromID.String(),
			ToID:        p.ToID.String(),
			AmountMinor: p.AmountMinor,
			CreatedAt:   p.CreatedAt,
			Source:      engine.PaymentSource(p.Source),
		})
	}

	raw := engine.DeriveRawDebts(engineParticipants, engineExpenses)
	simplified := engine.NetBalances(raw)
	outstanding := engine.ApplyPayments(raw, enginePayments)
	detailed := engine.AggregatePairwise(outstanding, config.AppConfig.Locale)

	summary := models.EventDebtSummary{
		EventID:             event.ID,
		EventName:           event.Name,
		Currency:            event.Currency,
		TotalSpent:          money.Round(totalSpent),
		Raw:                 toDebtEntries(raw, event.Currency),
		Simplified:          toDebtEntries(simplified, event.Currency),
		Outstanding:         toDebtEntries(outstanding, event.Currency),
		OutstandingDetailed: toDebtEntries(detailed, event.Currency),
	}

	if database.Redis != nil {
		if encoded, err := json.Marshal(summary); err == nil {
			database.Redis.Set(ctx, debtCacheKey(eventID), encoded, debtCacheTTL)
		}
	}

	return summary, nil
}

// InvalidateEventDebts drops the cached summary for an event. Handlers call
// this after every mutation that feeds the computation.
func InvalidateEventDebts(eventID uuid.UUID) {
	if database.Redis != nil {
		database.Redis.Del(ctx, debtCacheKey(eventID))
	}
}

func toDebtEntries(debts []engine.Debt, currency string) []models.DebtEntry {
	entries := make([]models.DebtEntry, 0, len(debts))
	for _, d := range debts {
		fromID, _ := uuid.Parse(d.From.ID)
		toID, _ := uuid.Parse(d.To.ID)
		entries = append(entries, models.DebtEntry{
			From:        fromID,
			FromName:    d.From.Name,
			To:          toID,
			ToName:      d.To.Name,
			Amount:      money.FromMinorUnits(d.AmountMinor),
			AmountMinor: d.AmountMinor,
			Currency:    currency,
		})
	}
	return entries
}
