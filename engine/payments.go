package engine

// ApplyPayments merges recorded payments into a raw debt set and returns the
// outstanding debts, already minimum-cardinality.
//
// A payment compensates the original debt direction, so each one is modeled as
// a reverse debt (payee owes payer) and the combined list is re-netted. Because
// netting only depends on final net balances, the result is the same for any
// permutation of the payment list — recomputing from the full ledger is
// idempotent.
//
// Payments whose payer never appears as a debtor, or whose payee never appears
// as a creditor, in the raw debt set are dropped silently: stale references
// contribute nothing rather than crashing the computation. Over-payments are
// not rejected here — they simply net into a debt in the opposite direction;
// callers that want to forbid that must validate before recording.
func ApplyPayments(rawDebts []Debt, payments []Payment) []Debt {
	debtorsByID := make(map[string]Participant)
	creditorsByID := make(map[string]Participant)
	for _, d := range rawDebts {
		debtorsByID[d.From.ID] = d.From
		creditorsByID[d.To.ID] = d.To
	}

	combined := make([]Debt, len(rawDebts), len(rawDebts)+len(payments))
	copy(combined, rawDebts)

	for _, p := range payments {
		payer, okFrom := debtorsByID[p.FromID]
		payee, okTo := creditorsByID[p.ToID]
		if !okFrom || !okTo || p.AmountMinor <= 0 {
			continue
		}
		combined = append(combined, Debt{
			ID:          debtID(p.ID, p.ToID, p.FromID),
			From:        payee,
			To:          payer,
			AmountMinor: p.AmountMinor,
		})
	}

	return NetBalances(combined)
}
