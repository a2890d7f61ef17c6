package engine

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// pairExposure is the accumulated signed amount between one unordered pair,
// canonicalized so first.ID < second.ID. Positive means first owes second.
type pairExposure struct {
	first, second Participant
	amountMinor   int64
}

// AggregatePairwise collapses a debt list into one net amount per unordered
// participant pair. Unlike NetBalances it never routes money through a third
// participant: A owing B and B owing C stay two separate entries.
//
// Output is sorted by debtor name then creditor name under the given locale's
// collation rules, so the detailed view reads stably for humans. The locale is
// explicit configuration; the engine has no ambient locale.
func AggregatePairwise(debts []Debt, locale language.Tag) []Debt {
	index := make(map[string]int)
	var pairs []*pairExposure

	for _, d := range debts {
		first, second := d.From, d.To
		sign := int64(1)
		if second.ID < first.ID {
			first, second = second, first
			sign = -1
		}

		key := first.ID + "/" + second.ID
		i, ok := index[key]
		if !ok {
			i = len(pairs)
			index[key] = i
			pairs = append(pairs, &pairExposure{first: first, second: second})
		}
		pairs[i].amountMinor += sign * d.AmountMinor
	}

	var out []Debt
	for _, p := range pairs {
		switch {
		case p.amountMinor > 0:
			out = append(out, Debt{
				ID:          debtID(p.first.ID, p.second.ID),
				From:        p.first,
				To:          p.second,
				AmountMinor: p.amountMinor,
			})
		case p.amountMinor < 0:
			out = append(out, Debt{
				ID:          debtID(p.second.ID, p.first.ID),
				From:        p.second,
				To:          p.first,
				AmountMinor: -p.amountMinor,
			})
		}
	}

	coll := collate.New(locale)
	sort.SliceStable(out, func(i, j int) bool {
		if c := coll.CompareString(out[i].From.Name, out[j].From.Name); c != 0 {
			return c < 0
		}
		return coll.CompareString(out[i].To.Name, out[j].To.Name) < 0
	})

	return out
}
