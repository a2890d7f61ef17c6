package engine

import "settleup-backend/engine/money"

// DeriveRawDebts computes the per-expense, per-participant debts owed to each
// expense's payer. Each expense is split equally across all participants in
// minor units: base share is the floor of total/n, and the rounding remainder
// goes one cent each to the first remainder participants by list position. The
// position count includes the payer's own slot, so the same participant order
// always reproduces the same shares.
//
// Expenses whose payer is not in the participant list contribute no debts, and
// zero shares are omitted. An empty participant list yields no debts at all.
func DeriveRawDebts(participants []Participant, expenses []Expense) []Debt {
	if len(participants) == 0 {
		return nil
	}

	n := int64(len(participants))
	var debts []Debt

	for _, exp := range expenses {
		payerIndex := -1
		for i, p := range participants {
			if p.ID == exp.PayerID {
				payerIndex = i
				break
			}
		}
		if payerIndex < 0 {
			continue
		}

		totalMinor := money.ToMinorUnits(exp.Amount)
		baseShare := totalMinor / n
		remainder := totalMinor % n

		for i, p := range participants {
			if i == payerIndex {
				continue
			}
			share := baseShare
			if int64(i) < remainder {
				share++
			}
			if share <= 0 {
				continue
			}
			debts = append(debts, Debt{
				ID:          debtID(exp.ID, p.ID, exp.PayerID),
				From:        p,
				To:          participants[payerIndex],
				AmountMinor: share,
			})
		}
	}

	return debts
}
