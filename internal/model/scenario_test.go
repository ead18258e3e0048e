package model

import (
	"math"
	"testing"

	"github.com/bmathews04/Lease-vs-Buy-Tool/internal/calc"
)

func TestBuyTerms_DerivedValues(t *testing.T) {
	b := BuyTerms{
		PurchasePrice:   35000,
		UpfrontFees:     500,
		TaxRatePercent:  6.25,
		DownPayment:     5000,
		EndValuePercent: 60,
	}

	wantTotal := 35500 * 1.0625
	if math.Abs(b.TotalPurchaseCost()-wantTotal) > 1e-9 {
		t.Fatalf("TotalPurchaseCost = %.4f, want %.4f", b.TotalPurchaseCost(), wantTotal)
	}

	if math.Abs(b.LoanAmount()-(wantTotal-5000)) > 1e-9 {
		t.Fatalf("LoanAmount = %.4f, want %.4f", b.LoanAmount(), wantTotal-5000)
	}

	if b.EndValueAtHorizon() != 21000 {
		t.Fatalf("EndValueAtHorizon = %.4f, want 21000", b.EndValueAtHorizon())
	}
}

func TestBuyTerms_LoanAmountFlooredAtZero(t *testing.T) {
	b := BuyTerms{PurchasePrice: 10000, DownPayment: 50000}
	if got := b.LoanAmount(); got != 0 {
		t.Fatalf("LoanAmount with oversized down payment = %.4f, want 0", got)
	}
}

func TestLeaseFromMoneyFactor_AppliesTaxPerPayment(t *testing.T) {
	l := LeaseFromMoneyFactor(30000, 18000, 0.001, 6.25, 36, 2000, 395, MileagePlan{})

	base := calc.LeasePaymentFromMoneyFactor(30000, 18000, 0.001, 36)
	want := base * 1.0625
	if math.Abs(l.MonthlyPayment-want) > 1e-9 {
		t.Fatalf("MonthlyPayment = %.4f, want %.4f", l.MonthlyPayment, want)
	}
}

func TestLeaseFromQuote_PaymentTakenVerbatim(t *testing.T) {
	// Quote path assumes tax is already baked in
	l := LeaseFromQuote(450, 36, 2000, 395, MileagePlan{AllowedPerYear: 12000})

	if l.MonthlyPayment != 450 {
		t.Fatalf("MonthlyPayment = %.4f, want 450 unchanged", l.MonthlyPayment)
	}
	if l.TermMonths != 36 || l.DriveOff != 2000 || l.DispositionFee != 395 {
		t.Fatalf("lease terms not carried through: %+v", l)
	}
}

func TestRecommendation_String(t *testing.T) {
	cases := []struct {
		r    Recommendation
		want string
	}{
		{RecommendLease, "lease"},
		{RecommendBuy, "buy"},
		{RecommendEither, "either"},
	}

	for _, tc := range cases {
		if got := tc.r.String(); got != tc.want {
			t.Fatalf("Recommendation(%d).String() = %q, want %q", tc.r, got, tc.want)
		}
	}
}
