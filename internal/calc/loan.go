// Package calc implements the financial formulas behind the lease-vs-buy
// comparison: amortized-loan math, lease pricing, depreciation, and mileage
// penalties. All functions are pure and never round; rounding is a
// presentation concern.
package calc

import "math"

// MonthlyPayment returns the constant monthly payment for a fixed-rate
// amortized loan. Degenerate inputs (non-positive principal or term) yield 0,
// matching a partially-filled scenario rather than an error.
func MonthlyPayment(principal, aprPercent float64, termMonths int) float64 {
	if termMonths <= 0 || principal <= 0 {
		return 0
	}

	r := aprPercent / 100 / 12
	if r == 0 {
		return principal / float64(termMonths)
	}

	n := float64(termMonths)
	growth := math.Pow(1+r, n)
	return principal * (r * growth) / (growth - 1)
}

// RemainingBalance returns the outstanding principal after monthsElapsed
// payments. monthsElapsed is clamped to [0, termMonths]. The result is
// floored at 0 to absorb floating-point overshoot at the final payment.
func RemainingBalance(principal, aprPercent float64, termMonths, monthsElapsed int) float64 {
	if termMonths <= 0 || principal <= 0 {
		return 0
	}

	if monthsElapsed < 0 {
		monthsElapsed = 0
	}
	if monthsElapsed > termMonths {
		monthsElapsed = termMonths
	}

	r := aprPercent / 100 / 12
	payment := MonthlyPayment(principal, aprPercent, termMonths)

	if r == 0 {
		return math.Max(0, principal-payment*float64(monthsElapsed))
	}

	// B_k = P*(1+r)^k - PMT*((1+r)^k - 1)/r
	factor := math.Pow(1+r, float64(monthsElapsed))
	balance := principal*factor - payment*(factor-1)/r
	return math.Max(0, balance)
}
