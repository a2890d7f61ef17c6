package engine

import "testing"

var (
	alice = Participant{ID: "a", Name: "Alice"}
	bob   = Participant{ID: "b", Name: "Bob"}
	carol = Participant{ID: "c", Name: "Carol"}
	dave  = Participant{ID: "d", Name: "Dave"}
)

// share returns the emitted amount from debtor to creditor, 0 if absent.
func share(debts []Debt, from, to Participant) int64 {
	var total int64
	for _, d := range debts {
		if d.From.ID == from.ID && d.To.ID == to.ID {
			total += d.AmountMinor
		}
	}
	return total
}

func TestDeriveRawDebtsEqualSplit(t *testing.T) {
	participants := []Participant{alice, bob, carol}
	expenses := []Expense{{ID: "e1", Amount: 100, PayerID: "a"}}

	debts := DeriveRawDebts(participants, expenses)

	if len(debts) != 2 {
		t.Fatalf("expected 2 debts, got %d: %+v", len(debts), debts)
	}
	// 10000 / 3 = 3333 base, remainder 1 goes to index 0 (Alice, the payer).
	if got := share(debts, bob, alice); got != 3333 {
		t.Errorf("Bob owes Alice %d, want 3333", got)
	}
	if got := share(debts, carol, alice); got != 3333 {
		t.Errorf("Carol owes Alice %d, want 3333", got)
	}
}

func TestDeriveRawDebtsRemainderByPosition(t *testing.T) {
	// 101 cents split 3 ways: base 33, remainder 2 → positions 0 and 1 get 34.
	participants := []Participant{alice, bob, carol}
	expenses := []Expense{{ID: "e1", Amount: 1.01, PayerID: "c"}}

	debts := DeriveRawDebts(participants, expenses)

	if got := share(debts, alice, carol); got != 34 {
		t.Errorf("Alice owes Carol %d, want 34", got)
	}
	if got := share(debts, bob, carol); got != 34 {
		t.Errorf("Bob owes Carol %d, want 34", got)
	}
	if got := share(debts, carol, carol); got != 0 {
		t.Errorf("payer must not owe themselves, got %d", got)
	}
}

func TestDeriveRawDebtsConservation(t *testing.T) {
	participants := []Participant{alice, bob, carol, dave}
	expenses := []Expense{
		{ID: "e1", Amount: 100.01, PayerID: "a"},
		{ID: "e2", Amount: 0.07, PayerID: "b"},
		{ID: "e3", Amount: 42.42, PayerID: "d"},
	}

	for _, exp := range expenses {
		debts := DeriveRawDebts(participants, []Expense{exp})

		totalMinor := int64(0)
		for _, d := range debts {
			totalMinor += d.AmountMinor
		}

		// The payer's own implicit share is whatever of the total was not
		// emitted as debts; it must be a valid share, i.e. emitted debts plus
		// the payer's share reproduce the expense amount exactly.
		wantTotal := map[string]int64{"e1": 10001, "e2": 7, "e3": 4242}[exp.ID]
		payerShare := wantTotal - totalMinor
		if payerShare < 0 || payerShare > wantTotal {
			t.Errorf("expense %s: emitted %d of %d minor units", exp.ID, totalMinor, wantTotal)
		}
		base := wantTotal / 4
		if payerShare != base && payerShare != base+1 {
			t.Errorf("expense %s: payer share %d is not base %d or base+1", exp.ID, payerShare, base)
		}
	}
}

func TestDeriveRawDebtsUnknownPayerSkipped(t *testing.T) {
	participants := []Participant{alice, bob}
	expenses := []Expense{
		{ID: "e1", Amount: 10, PayerID: "ghost"},
		{ID: "e2", Amount: 10, PayerID: "a"},
	}

	debts := DeriveRawDebts(participants, expenses)

	if len(debts) != 1 {
		t.Fatalf("expected 1 debt, got %d", len(debts))
	}
	if got := share(debts, bob, alice); got != 500 {
		t.Errorf("Bob owes Alice %d, want 500", got)
	}
}

func TestDeriveRawDebtsNoParticipants(t *testing.T) {
	debts := DeriveRawDebts(nil, []Expense{{ID: "e1", Amount: 10, PayerID: "a"}})
	if len(debts) != 0 {
		t.Errorf("expected no debts for empty participant list, got %d", len(debts))
	}
}

func TestDeriveRawDebtsZeroShareOmitted(t *testing.T) {
	// 1 cent split 3 ways: base 0, remainder 1 to index 0. Bob and Carol owe
	// nothing and must not appear as zero-amount edges.
	participants := []Participant{alice, bob, carol}
	debts := DeriveRawDebts(participants, []Expense{{ID: "e1", Amount: 0.01, PayerID: "b"}})

	if len(debts) != 1 {
		t.Fatalf("expected 1 debt, got %d: %+v", len(debts), debts)
	}
	if got := share(debts, alice, bob); got != 1 {
		t.Errorf("Alice owes Bob %d, want 1", got)
	}
}

func TestDeriveRawDebtsDeterministicIDs(t *testing.T) {
	participants := []Participant{alice, bob, carol}
	expenses := []Expense{{ID: "e1", Amount: 100, PayerID: "a"}}

	first := DeriveRawDebts(participants, expenses)
	second := DeriveRawDebts(participants, expenses)

	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("debt %d: IDs differ across recomputation: %s vs %s", i, first[i].ID, second[i].ID)
		}
	}
}
