package project

import (
	"math"
	"testing"

	"github.com/bmathews04/Lease-vs-Buy-Tool/internal/calc"
	"github.com/bmathews04/Lease-vs-Buy-Tool/internal/model"
)

func testScenario() model.Scenario {
	return model.Scenario{
		Buy: model.BuyTerms{
			PurchasePrice:   35000,
			UpfrontFees:     500,
			TaxRatePercent:  6.25,
			DownPayment:     5000,
			APRPercent:      5,
			LoanTermMonths:  60,
			EndValuePercent: 60,
		},
		Lease: model.LeaseFromQuote(450, 36, 2000, 395, model.MileagePlan{
			AllowedPerYear:  12000,
			ExpectedPerYear: 15000,
			FeePerMile:      0.25,
		}),
		HorizonMonths: 36,
	}
}

func TestRun_SeriesLengthAndOrder(t *testing.T) {
	p := Run(testScenario())

	if len(p.Months) != 36 {
		t.Fatalf("series length = %d, want 36", len(p.Months))
	}
	for i, mc := range p.Months {
		if mc.Month != i+1 {
			t.Fatalf("month at index %d = %d, want %d", i, mc.Month, i+1)
		}
	}
}

func TestRun_BuySummaryScalars(t *testing.T) {
	s := testScenario()
	p := Run(s)

	wantTotal := 35500 * 1.0625
	if math.Abs(p.Buy.TotalPurchaseCost-wantTotal) > 0.01 {
		t.Fatalf("TotalPurchaseCost = %.2f, want %.2f", p.Buy.TotalPurchaseCost, wantTotal)
	}

	wantLoan := wantTotal - 5000
	if math.Abs(p.Buy.LoanAmount-wantLoan) > 0.01 {
		t.Fatalf("LoanAmount = %.2f, want %.2f", p.Buy.LoanAmount, wantLoan)
	}

	if p.Buy.EndValueAtHorizon != 21000 {
		t.Fatalf("EndValueAtHorizon = %.2f, want 21000", p.Buy.EndValueAtHorizon)
	}

	wantPayment := calc.MonthlyPayment(wantLoan, 5, 60)
	if math.Abs(p.Buy.MonthlyPayment-wantPayment) > 1e-9 {
		t.Fatalf("MonthlyPayment = %.4f, want %.4f", p.Buy.MonthlyPayment, wantPayment)
	}
}

func TestRun_BuyNetCostSignConvention(t *testing.T) {
	s := testScenario()
	p := Run(s)

	// Month 1 by hand: down + 1 payment + remaining balance - car value.
	// Remaining balance is added back, not subtracted.
	loan := s.Buy.LoanAmount()
	pmt := calc.MonthlyPayment(loan, 5, 60)
	remaining := calc.RemainingBalance(loan, 5, 60, 1)
	value := calc.ValueAtMonth(35000, 21000, 36, 1)
	want := 5000 + pmt + remaining - value

	if math.Abs(p.Months[0].Buy-want) > 1e-6 {
		t.Fatalf("month-1 buy net cost = %.4f, want %.4f", p.Months[0].Buy, want)
	}
}

func TestRun_LeaseEndAddsPenaltyAndDisposition(t *testing.T) {
	p := Run(testScenario())

	// 36k allowed vs 45k expected over 3 years at $0.25/mile
	if math.Abs(p.Lease.MileagePenalty-2250) > 1e-9 {
		t.Fatalf("MileagePenalty = %.2f, want 2250", p.Lease.MileagePenalty)
	}

	beforeEnd := p.Months[34].Lease
	atEnd := p.Months[35].Lease
	wantJump := 450 + 2250 + 395.0
	if math.Abs((atEnd-beforeEnd)-wantJump) > 1e-6 {
		t.Fatalf("lease-end jump = %.2f, want %.2f", atEnd-beforeEnd, wantJump)
	}

	wantFullTerm := 2000 + 450*36 + 2250 + 395.0
	if math.Abs(p.Lease.NetCostFullTerm-wantFullTerm) > 1e-6 {
		t.Fatalf("NetCostFullTerm = %.2f, want %.2f", p.Lease.NetCostFullTerm, wantFullTerm)
	}
}

func TestRun_LeaseSeriesFlatPastTerm(t *testing.T) {
	s := testScenario()
	s.HorizonMonths = 60 // horizon extends two years past the 36-month lease
	p := Run(s)

	fullTerm := p.Lease.NetCostFullTerm
	for m := 36; m < 60; m++ {
		if p.Months[m].Lease != fullTerm {
			t.Fatalf("lease cost at month %d = %.2f, want flat %.2f", m+1, p.Months[m].Lease, fullTerm)
		}
	}
}

func TestRun_BuySeriesContinuesPastLoanTerm(t *testing.T) {
	s := testScenario()
	s.Buy.LoanTermMonths = 24
	s.HorizonMonths = 48
	p := Run(s)

	// After payoff the payment count stays pinned at the loan term and the
	// balance is zero, so only depreciation moves the series.
	loan := s.Buy.LoanAmount()
	pmt := calc.MonthlyPayment(loan, 5, 24)
	for _, m := range []int{30, 48} {
		value := calc.ValueAtMonth(35000, 21000, 48, m)
		want := 5000 + pmt*24 + 0 - value
		if math.Abs(p.Months[m-1].Buy-want) > 0.01 {
			t.Fatalf("buy cost at month %d = %.2f, want %.2f", m, p.Months[m-1].Buy, want)
		}
	}
}

func TestRun_RecommendationFollowsDifferenceSign(t *testing.T) {
	s := testScenario()
	p := Run(s)

	want := model.RecommendEither
	switch {
	case p.Difference > 0:
		want = model.RecommendLease
	case p.Difference < 0:
		want = model.RecommendBuy
	}
	if p.Recommendation != want {
		t.Fatalf("Recommendation = %v with difference %.2f, want %v", p.Recommendation, p.Difference, want)
	}

	// A free lease must beat buying
	s.Lease = model.LeaseFromQuote(0, 36, 0, 0, model.MileagePlan{AllowedPerYear: 12000, ExpectedPerYear: 10000})
	p = Run(s)
	if p.Recommendation != model.RecommendLease {
		t.Fatalf("free lease: Recommendation = %v, want lease", p.Recommendation)
	}
}

func TestRun_MoneyFactorPathMatchesQuotePath(t *testing.T) {
	// Deriving the payment from money factor then projecting must equal
	// projecting a quote for the same payment: the projector is agnostic.
	mileage := model.MileagePlan{AllowedPerYear: 12000, ExpectedPerYear: 12000}
	derived := model.LeaseFromMoneyFactor(36000, 22040, 0.00125, 6.25, 36, 2000, 395, mileage)
	quoted := model.LeaseFromQuote(derived.MonthlyPayment, 36, 2000, 395, mileage)

	s := testScenario()
	s.Lease = derived
	a := Run(s)
	s.Lease = quoted
	b := Run(s)

	for i := range a.Months {
		if a.Months[i].Lease != b.Months[i].Lease {
			t.Fatalf("month %d: derived %.4f != quoted %.4f", i+1, a.Months[i].Lease, b.Months[i].Lease)
		}
	}
}
