// Package validate checks a scenario before computation. The projection
// core assumes its inputs already passed these checks; it only keeps its
// own degenerate-case floors.
package validate

import (
	"fmt"
	"strings"

	"github.com/bmathews04/Lease-vs-Buy-Tool/internal/model"
)

// MaxHorizonMonths bounds the comparison horizon (7 years).
const MaxHorizonMonths = 84

// Issue is one field-level validation failure.
type Issue struct {
	Field string
	Msg   string
}

func (i Issue) String() string {
	return i.Field + ": " + i.Msg
}

// Issues is the full list of validation failures for a scenario.
type Issues []Issue

func (is Issues) Error() string {
	if len(is) == 0 {
		return "scenario is valid"
	}
	parts := make([]string, len(is))
	for i, issue := range is {
		parts[i] = issue.String()
	}
	return "invalid scenario: " + strings.Join(parts, "; ")
}

// Check validates a scenario and returns every problem found, not just the
// first. A nil return means the scenario is safe to project.
func Check(s model.Scenario) Issues {
	var issues Issues

	add := func(field, format string, args ...any) {
		issues = append(issues, Issue{Field: field, Msg: fmt.Sprintf(format, args...)})
	}

	if s.HorizonMonths <= 0 {
		add("horizon", "must be at least 1 month")
	} else if s.HorizonMonths > MaxHorizonMonths {
		add("horizon", "must be at most %d months", MaxHorizonMonths)
	}

	// Buy side
	if s.Buy.PurchasePrice <= 0 {
		add("purchase-price", "must be positive")
	}
	if s.Buy.UpfrontFees < 0 {
		add("upfront-fees", "must not be negative")
	}
	if s.Buy.DownPayment < 0 {
		add("down-payment", "must not be negative")
	}
	if s.Buy.LoanTermMonths <= 0 {
		add("loan-term", "must be at least 1 month")
	}
	checkPercent(&issues, "tax-rate", s.Buy.TaxRatePercent)
	checkPercent(&issues, "loan-apr", s.Buy.APRPercent)
	checkPercent(&issues, "end-value-pct", s.Buy.EndValuePercent)

	// Lease side
	if s.Lease.MonthlyPayment < 0 {
		add("lease-payment", "must not be negative")
	}
	if s.Lease.TermMonths <= 0 {
		add("lease-term", "must be at least 1 month")
	}
	if s.Lease.DriveOff < 0 {
		add("drive-off", "must not be negative")
	}
	if s.Lease.DispositionFee < 0 {
		add("disposition-fee", "must not be negative")
	}
	if s.Lease.Mileage.AllowedPerYear <= 0 {
		add("allowed-miles", "must be positive")
	}
	if s.Lease.Mileage.ExpectedPerYear <= 0 {
		add("expected-miles", "must be positive")
	}
	if s.Lease.Mileage.FeePerMile < 0 {
		add("mileage-fee", "must not be negative")
	}

	return issues
}

func checkPercent(issues *Issues, field string, v float64) {
	if v < 0 || v > 100 {
		*issues = append(*issues, Issue{Field: field, Msg: "must be between 0 and 100"})
	}
}
