package cli

import "testing"

func TestFormatCost(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{376.65, "$377"},
		{21987.5, "$21,988"},
		{-1500, "-$1,500"},
	}

	for _, tc := range cases {
		if got := FormatCost(tc.in); got != tc.want {
			t.Fatalf("FormatCost(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatCostPrecise(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{381.3333, "$381.33"},
		{450, "$450.00"},
		{1234.999, "$1,235.00"},
	}

	for _, tc := range cases {
		if got := FormatCostPrecise(tc.in); got != tc.want {
			t.Fatalf("FormatCostPrecise(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-45000, "-45,000"},
	}

	for _, tc := range cases {
		if got := FormatNumber(tc.in); got != tc.want {
			t.Fatalf("FormatNumber(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatTerm(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{36, "3y"},
		{30, "2y 6m"},
		{9, "9m"},
		{0, "0m"},
	}

	for _, tc := range cases {
		if got := FormatTerm(tc.in); got != tc.want {
			t.Fatalf("FormatTerm(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestResample_KeepsEndpoints(t *testing.T) {
	values := make([]float64, 84)
	for i := range values {
		values[i] = float64(i)
	}

	out := resample(values, 40)
	if len(out) != 40 {
		t.Fatalf("resampled length = %d, want 40", len(out))
	}
	if out[0] != values[0] || out[39] != values[83] {
		t.Fatalf("endpoints not preserved: first %.0f last %.0f", out[0], out[39])
	}
}
