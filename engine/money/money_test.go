package money

import (
	"math"
	"testing"
)

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   int64
	}{
		{"whole amount", 100, 10000},
		{"exact cents", 33.33, 3333},
		{"rounds half up", 0.005, 1},
		{"rounds down below half", 0.004, 0},
		{"binary float drift", 19.99, 1999},
		{"zero", 0, 0},
		{"negative coerced to zero", -5, 0},
		{"NaN coerced to zero", math.NaN(), 0},
		{"positive infinity coerced to zero", math.Inf(1), 0},
		{"negative infinity coerced to zero", math.Inf(-1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToMinorUnits(tt.amount); got != tt.want {
				t.Errorf("ToMinorUnits(%v) = %d, want %d", tt.amount, got, tt.want)
			}
		})
	}
}

func TestFromMinorUnits(t *testing.T) {
	if got := FromMinorUnits(3333); got != 33.33 {
		t.Errorf("FromMinorUnits(3333) = %v, want 33.33", got)
	}
	if got := FromMinorUnits(0); got != 0 {
		t.Errorf("FromMinorUnits(0) = %v, want 0", got)
	}
}

func TestRoundCanonicalizesToCents(t *testing.T) {
	tests := []struct {
		amount float64
		want   float64
	}{
		{10.004, 10.00},
		{10.005, 10.01},
		{33.333333, 33.33},
		{-1, 0},
	}

	for _, tt := range tests {
		if got := Round(tt.amount); got != tt.want {
			t.Errorf("Round(%v) = %v, want %v", tt.amount, got, tt.want)
		}
	}
}
