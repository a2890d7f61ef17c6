package engine

import (
	"testing"
	"time"

	"golang.org/x/text/language"
)

// Full pipeline: derive → simplify, then record a repayment and check both
// outstanding views. Three people on a trip, Alice fronts €100.
func TestTripSettlementEndToEnd(t *testing.T) {
	participants := []Participant{alice, bob, carol}
	expenses := []Expense{{ID: "dinner", Amount: 100, PayerID: "a"}}

	raw := DeriveRawDebts(participants, expenses)
	if len(raw) != 2 {
		t.Fatalf("expected 2 raw debts, got %+v", raw)
	}
	// 10000 / 3: Alice's own (index 0) share absorbs the remainder cent.
	if share(raw, bob, alice) != 3333 || share(raw, carol, alice) != 3333 {
		t.Fatalf("unexpected raw shares: %+v", raw)
	}

	simplified := NetBalances(raw)
	if len(simplified) != 2 {
		t.Fatalf("expected 2 transfers, got %+v", simplified)
	}
	if share(simplified, bob, alice) != 3333 || share(simplified, carol, alice) != 3333 {
		t.Fatalf("unexpected simplified transfers: %+v", simplified)
	}

	// Bob settles up in full.
	paid := RecordPayment("trip", "b", "a", 3333, SourceSimplified, time.Unix(1700000000, 0))
	outstanding := ApplyPayments(raw, []Payment{paid})

	if len(outstanding) != 1 {
		t.Fatalf("expected only Carol's debt to remain, got %+v", outstanding)
	}
	if outstanding[0].From.ID != "c" || outstanding[0].To.ID != "a" || outstanding[0].AmountMinor != 3333 {
		t.Fatalf("unexpected outstanding debt: %+v", outstanding[0])
	}

	detailed := AggregatePairwise(outstanding, language.English)
	if len(detailed) != 1 || detailed[0].From.ID != "c" || detailed[0].AmountMinor != 3333 {
		t.Fatalf("detailed view disagrees: %+v", detailed)
	}
}
