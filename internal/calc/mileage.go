package calc

import "math"

// MileagePenalty returns the excess-mileage fee due at lease end. The lease
// term converts to fractional years; only miles beyond the total allowance
// are charged. The penalty is realized once at turn-in, never prorated.
func MileagePenalty(allowedPerYear, expectedPerYear, feePerMile float64, termMonths int) float64 {
	if termMonths <= 0 {
		return 0
	}

	years := float64(termMonths) / 12
	totalAllowed := allowedPerYear * years
	totalExpected := expectedPerYear * years
	excess := math.Max(0, totalExpected-totalAllowed)
	return excess * feePerMile
}
