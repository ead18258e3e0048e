package calc

import "testing"

func TestValueAtMonth_Endpoints(t *testing.T) {
	if got := ValueAtMonth(35000, 21000, 36, 0); got != 35000 {
		t.Fatalf("value at month 0 = %.4f, want initial value", got)
	}
	if got := ValueAtMonth(35000, 21000, 36, 36); got != 21000 {
		t.Fatalf("value at horizon = %.4f, want end value", got)
	}
}

func TestValueAtMonth_Midpoint(t *testing.T) {
	almostEqual(t, ValueAtMonth(35000, 21000, 36, 18), 28000, 1e-9, "midpoint value")
}

func TestValueAtMonth_ClampsMonth(t *testing.T) {
	if got := ValueAtMonth(35000, 21000, 36, -5); got != 35000 {
		t.Fatalf("negative month = %.4f, want initial value", got)
	}
	if got := ValueAtMonth(35000, 21000, 36, 100); got != 21000 {
		t.Fatalf("month past horizon = %.4f, want end value", got)
	}
}

func TestValueAtMonth_DegenerateHorizon(t *testing.T) {
	for _, h := range []int{0, -12} {
		if got := ValueAtMonth(35000, 21000, h, 5); got != 21000 {
			t.Fatalf("horizon %d: got %.4f, want end value", h, got)
		}
	}
}

func TestValueAtMonth_AppreciationAllowed(t *testing.T) {
	// endValue above initialValue interpolates upward; the model does not
	// assume depreciation
	almostEqual(t, ValueAtMonth(10000, 16000, 12, 6), 13000, 1e-9, "appreciating value")
}
