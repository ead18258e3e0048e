package calc

import "testing"

func TestMileagePenalty_ChargesOnlyExcess(t *testing.T) {
	// 36-month lease: 36k allowed, 45k expected, 9k excess at $0.25/mile
	almostEqual(t, MileagePenalty(12000, 15000, 0.25, 36), 2250, 1e-9, "penalty")
}

func TestMileagePenalty_ZeroWhenWithinAllowance(t *testing.T) {
	if got := MileagePenalty(12000, 12000, 0.25, 36); got != 0 {
		t.Fatalf("at allowance: got %.4f, want 0", got)
	}
	if got := MileagePenalty(15000, 10000, 0.25, 36); got != 0 {
		t.Fatalf("under allowance: got %.4f, want 0", got)
	}
}

func TestMileagePenalty_FractionalYears(t *testing.T) {
	// 30 months = 2.5 years: 30k allowed, 37.5k expected
	almostEqual(t, MileagePenalty(12000, 15000, 0.20, 30), 1500, 1e-9, "2.5yr penalty")
}

func TestMileagePenalty_DegenerateTerm(t *testing.T) {
	if got := MileagePenalty(12000, 15000, 0.25, 0); got != 0 {
		t.Fatalf("zero term: got %.4f, want 0", got)
	}
}
