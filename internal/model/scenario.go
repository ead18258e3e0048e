// Package model defines the value objects passed between the input surfaces
// and the projection core. A Scenario is constructed once per computation
// and passed by value; nothing in this package is mutated after build.
package model

import "github.com/bmathews04/Lease-vs-Buy-Tool/internal/calc"

// MileagePlan describes the lease mileage allowance versus expected driving.
type MileagePlan struct {
	AllowedPerYear  float64
	ExpectedPerYear float64
	FeePerMile      float64
}

// BuyTerms holds the purchase-side inputs.
type BuyTerms struct {
	PurchasePrice  float64 // negotiated price before tax
	UpfrontFees    float64 // doc, title, etc.
	TaxRatePercent float64
	DownPayment    float64
	APRPercent     float64
	LoanTermMonths int

	// EndValuePercent is the expected resale value at the end of the
	// comparison horizon, as a percent of the purchase price.
	EndValuePercent float64
}

// TotalPurchaseCost returns price + fees + sales tax.
func (b BuyTerms) TotalPurchaseCost() float64 {
	taxable := b.PurchasePrice + b.UpfrontFees
	return taxable * (1 + b.TaxRatePercent/100)
}

// LoanAmount returns the financed portion, floored at 0.
func (b BuyTerms) LoanAmount() float64 {
	amount := b.TotalPurchaseCost() - b.DownPayment
	if amount < 0 {
		return 0
	}
	return amount
}

// EndValueAtHorizon returns the expected resale value at horizon end.
func (b BuyTerms) EndValueAtHorizon() float64 {
	return b.PurchasePrice * (b.EndValuePercent / 100)
}

// LeaseTerms holds the lease-side inputs reduced to what the projector
// needs: a tax-inclusive monthly payment plus the one-time cash events.
// Construct with LeaseFromQuote or LeaseFromMoneyFactor; the projector is
// agnostic to which path produced the payment.
type LeaseTerms struct {
	MonthlyPayment float64 // including tax
	TermMonths     int
	DriveOff       float64 // cash due at signing
	DispositionFee float64 // turn-in fee at lease end
	Mileage        MileagePlan
}

// LeaseFromQuote builds LeaseTerms from a dealer-quoted monthly payment that
// already includes tax.
func LeaseFromQuote(monthlyWithTax float64, termMonths int, driveOff, dispositionFee float64, mileage MileagePlan) LeaseTerms {
	return LeaseTerms{
		MonthlyPayment: monthlyWithTax,
		TermMonths:     termMonths,
		DriveOff:       driveOff,
		DispositionFee: dispositionFee,
		Mileage:        mileage,
	}
}

// LeaseFromMoneyFactor builds LeaseTerms by deriving the payment from cap
// cost, residual value, and money factor, then applying sales tax per
// payment.
func LeaseFromMoneyFactor(capCost, residualValue, moneyFactor, taxRatePercent float64, termMonths int, driveOff, dispositionFee float64, mileage MileagePlan) LeaseTerms {
	base := calc.LeasePaymentFromMoneyFactor(capCost, residualValue, moneyFactor, termMonths)
	return LeaseTerms{
		MonthlyPayment: base * (1 + taxRatePercent/100),
		TermMonths:     termMonths,
		DriveOff:       driveOff,
		DispositionFee: dispositionFee,
		Mileage:        mileage,
	}
}

// Scenario is one complete lease-vs-buy comparison input. HorizonMonths is
// independent of either term; projections continue past the shorter term.
type Scenario struct {
	Buy           BuyTerms
	Lease         LeaseTerms
	HorizonMonths int
}
