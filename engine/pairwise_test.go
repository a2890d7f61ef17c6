package engine

import (
	"reflect"
	"testing"

	"golang.org/x/text/language"
)

func TestAggregatePairwiseNetsPerPair(t *testing.T) {
	debts := []Debt{
		{From: alice, To: bob, AmountMinor: 1000},
		{From: bob, To: alice, AmountMinor: 300},
		{From: alice, To: bob, AmountMinor: 50},
	}

	detailed := AggregatePairwise(debts, language.English)

	if len(detailed) != 1 {
		t.Fatalf("expected 1 pair entry, got %d: %+v", len(detailed), detailed)
	}
	got := detailed[0]
	if got.From.ID != "a" || got.To.ID != "b" || got.AmountMinor != 750 {
		t.Errorf("expected a → b for 750, got %s → %s for %d", got.From.ID, got.To.ID, got.AmountMinor)
	}
}

func TestAggregatePairwiseDirectionBySign(t *testing.T) {
	debts := []Debt{
		{From: alice, To: bob, AmountMinor: 200},
		{From: bob, To: alice, AmountMinor: 900},
	}

	detailed := AggregatePairwise(debts, language.English)

	if len(detailed) != 1 {
		t.Fatalf("expected 1 pair entry, got %+v", detailed)
	}
	got := detailed[0]
	if got.From.ID != "b" || got.To.ID != "a" || got.AmountMinor != 700 {
		t.Errorf("expected b → a for 700, got %s → %s for %d", got.From.ID, got.To.ID, got.AmountMinor)
	}
}

func TestAggregatePairwiseCancelledPairOmitted(t *testing.T) {
	debts := []Debt{
		{From: alice, To: bob, AmountMinor: 400},
		{From: bob, To: alice, AmountMinor: 400},
		{From: carol, To: dave, AmountMinor: 10},
	}

	detailed := AggregatePairwise(debts, language.English)

	if len(detailed) != 1 || detailed[0].From.ID != "c" {
		t.Errorf("expected only the c → d pair to survive, got %+v", detailed)
	}
}

func TestAggregatePairwiseDoesNotChain(t *testing.T) {
	// A → B and B → C must stay two entries even though a settlement view
	// would route A → C directly.
	debts := []Debt{
		{From: alice, To: bob, AmountMinor: 1000},
		{From: bob, To: carol, AmountMinor: 1000},
	}

	detailed := AggregatePairwise(debts, language.English)

	if len(detailed) != 2 {
		t.Fatalf("expected 2 pair entries, got %+v", detailed)
	}
	if share(detailed, alice, bob) != 1000 || share(detailed, bob, carol) != 1000 {
		t.Errorf("pairs were chained: %+v", detailed)
	}
}

func TestAggregatePairwiseSortedByName(t *testing.T) {
	zoe := Participant{ID: "z", Name: "Zoe"}
	debts := []Debt{
		{From: zoe, To: alice, AmountMinor: 100},
		{From: bob, To: carol, AmountMinor: 100},
		{From: bob, To: alice, AmountMinor: 100},
	}

	detailed := AggregatePairwise(debts, language.English)

	var names [][2]string
	for _, d := range detailed {
		names = append(names, [2]string{d.From.Name, d.To.Name})
	}
	want := [][2]string{{"Bob", "Alice"}, {"Bob", "Carol"}, {"Zoe", "Alice"}}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("presentation order wrong: got %v, want %v", names, want)
	}
}

func TestDetailedAndSimplifiedAgreeOnBalances(t *testing.T) {
	participants := []Participant{alice, bob, carol, dave}
	raw := DeriveRawDebts(participants, []Expense{
		{ID: "e1", Amount: 99.99, PayerID: "a"},
		{ID: "e2", Amount: 20, PayerID: "b"},
		{ID: "e3", Amount: 0.05, PayerID: "c"},
	})

	simplified := NetBalances(raw)
	detailed := AggregatePairwise(raw, language.English)

	if !reflect.DeepEqual(signedBalances(simplified), signedBalances(detailed)) {
		t.Errorf("views disagree on net balances: simplified %v, detailed %v",
			signedBalances(simplified), signedBalances(detailed))
	}
}
