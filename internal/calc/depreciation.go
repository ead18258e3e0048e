package calc

// ValueAtMonth estimates an owned vehicle's value at a given month by linear
// interpolation between its initial value at month 0 and endValue at
// horizonMonths. month is clamped to [0, horizonMonths]; a non-positive
// horizon returns endValue.
func ValueAtMonth(initialValue, endValue float64, horizonMonths, month int) float64 {
	if horizonMonths <= 0 {
		return endValue
	}

	if month < 0 {
		month = 0
	}
	if month > horizonMonths {
		month = horizonMonths
	}

	slope := (endValue - initialValue) / float64(horizonMonths)
	return initialValue + slope*float64(month)
}
