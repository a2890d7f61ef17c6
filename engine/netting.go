package engine

// participantBalance carries one participant's running signed balance in the
// order the participant first appeared in the input debt list. That insertion
// order is the tie-break for the greedy match below, which is what makes the
// output reproducible run to run.
type participantBalance struct {
	participant Participant
	amount      int64
}

// NetBalances reduces any directed debt list to the minimum number of
// transfers that settle the same per-participant net balances.
//
// Balances are accumulated first: each debt subtracts from the debtor and adds
// to the creditor. Participants with a positive balance become creditors,
// negative ones debtors (carrying the absolute value), zero balances drop out.
// A two-pointer greedy match then emits transfers of min(debtor remaining,
// creditor remaining) until both sides are exhausted, which yields at most
// creditors+debtors-1 transfers and conserves every net balance exactly.
func NetBalances(debts []Debt) []Debt {
	index := make(map[string]int)
	var balances []*participantBalance

	balanceFor := func(p Participant) *participantBalance {
		if i, ok := index[p.ID]; ok {
			return balances[i]
		}
		index[p.ID] = len(balances)
		balances = append(balances, &participantBalance{participant: p})
		return balances[len(balances)-1]
	}

	for _, d := range debts {
		balanceFor(d.From).amount -= d.AmountMinor
		balanceFor(d.To).amount += d.AmountMinor
	}

	var creditors, debtors []participantBalance
	for _, b := range balances {
		switch {
		case b.amount > 0:
			creditors = append(creditors, *b)
		case b.amount < 0:
			debtors = append(debtors, participantBalance{b.participant, -b.amount})
		}
	}

	var transfers []Debt
	d, c := 0, 0
	for d < len(debtors) && c < len(creditors) {
		amount := debtors[d].amount
		if creditors[c].amount < amount {
			amount = creditors[c].amount
		}

		transfers = append(transfers, Debt{
			ID:          debtID(debtors[d].participant.ID, creditors[c].participant.ID),
			From:        debtors[d].participant,
			To:          creditors[c].participant,
			AmountMinor: amount,
		})

		debtors[d].amount -= amount
		creditors[c].amount -= amount
		if debtors[d].amount == 0 {
			d++
		}
		if creditors[c].amount == 0 {
			c++
		}
	}

	return transfers
}
