package calc

// LeasePaymentFromMoneyFactor returns the pre-tax monthly lease payment:
// depreciation fee plus finance fee. Degenerate inputs yield 0. Tax, if
// modeled, is the caller's concern (payment * (1 + taxRate/100)).
func LeasePaymentFromMoneyFactor(capCost, residualValue, moneyFactor float64, termMonths int) float64 {
	if termMonths <= 0 || capCost <= 0 {
		return 0
	}

	depreciationFee := (capCost - residualValue) / float64(termMonths)
	financeFee := (capCost + residualValue) * moneyFactor
	return depreciationFee + financeFee
}

// APRToMoneyFactor converts an annual percentage rate to a lease money
// factor using the industry rule of thumb APR/2400. Approximate, not exact.
func APRToMoneyFactor(aprPercent float64) float64 {
	return aprPercent / 2400
}
