// Package project drives the per-month engines across the comparison
// horizon, producing the net-cost series and the horizon-end verdict.
package project

import (
	"github.com/bmathews04/Lease-vs-Buy-Tool/internal/calc"
	"github.com/bmathews04/Lease-vs-Buy-Tool/internal/model"
)

// Run projects a scenario month by month from 1 to HorizonMonths and
// returns the complete comparison. Pure function: safe to call concurrently
// for independent scenarios.
func Run(s model.Scenario) model.Projection {
	loanAmount := s.Buy.LoanAmount()
	loanPayment := calc.MonthlyPayment(loanAmount, s.Buy.APRPercent, s.Buy.LoanTermMonths)
	endValue := s.Buy.EndValueAtHorizon()

	mileagePenalty := calc.MileagePenalty(
		s.Lease.Mileage.AllowedPerYear,
		s.Lease.Mileage.ExpectedPerYear,
		s.Lease.Mileage.FeePerMile,
		s.Lease.TermMonths,
	)
	totalLeasePayments := s.Lease.MonthlyPayment * float64(s.Lease.TermMonths)
	leaseFullTerm := s.Lease.DriveOff + totalLeasePayments + mileagePenalty + s.Lease.DispositionFee

	months := make([]model.MonthlyCost, 0, s.HorizonMonths)
	for m := 1; m <= s.HorizonMonths; m++ {
		months = append(months, model.MonthlyCost{
			Month: m,
			Buy:   buyNetCost(s, loanAmount, loanPayment, endValue, m),
			Lease: leaseNetCost(s.Lease, leaseFullTerm, mileagePenalty, m),
		})
	}

	p := model.Projection{
		Months: months,
		Buy: model.BuySummary{
			MonthlyPayment:    loanPayment,
			TotalPurchaseCost: s.Buy.TotalPurchaseCost(),
			LoanAmount:        loanAmount,
			EndValueAtHorizon: endValue,
		},
		Lease: model.LeaseSummary{
			MonthlyPayment:     s.Lease.MonthlyPayment,
			DriveOff:           s.Lease.DriveOff,
			TotalLeasePayments: totalLeasePayments,
			MileagePenalty:     mileagePenalty,
			DispositionFee:     s.Lease.DispositionFee,
			NetCostFullTerm:    leaseFullTerm,
		},
	}

	if len(months) > 0 {
		last := months[len(months)-1]
		p.Buy.NetCostAtHorizon = last.Buy
		p.Lease.NetCostAtHorizon = last.Lease
		p.Difference = last.Buy - last.Lease
	}

	switch {
	case p.Difference > 0:
		p.Recommendation = model.RecommendLease
	case p.Difference < 0:
		p.Recommendation = model.RecommendBuy
	default:
		p.Recommendation = model.RecommendEither
	}

	return p
}

// buyNetCost nets cumulative cash outlay against car equity at month m.
// The remaining loan balance is added, not subtracted: money still owed
// offsets the benefit of lower payments to date. Counterintuitive but kept
// deliberately so results line up with the established comparison outputs.
func buyNetCost(s model.Scenario, loanAmount, loanPayment, endValue float64, m int) float64 {
	paidMonths := m
	if paidMonths > s.Buy.LoanTermMonths {
		paidMonths = s.Buy.LoanTermMonths
	}
	paymentsMade := loanPayment * float64(paidMonths)
	remaining := calc.RemainingBalance(loanAmount, s.Buy.APRPercent, s.Buy.LoanTermMonths, m)
	value := calc.ValueAtMonth(s.Buy.PurchasePrice, endValue, s.HorizonMonths, m)

	return s.Buy.DownPayment + paymentsMade + remaining - value
}

// leaseNetCost is cumulative cash out while the lease runs, with the
// mileage penalty and disposition fee landing exactly at the final lease
// month. Past lease end the cost holds flat; no replacement vehicle is
// modeled.
func leaseNetCost(l model.LeaseTerms, fullTerm, mileagePenalty float64, m int) float64 {
	if m > l.TermMonths {
		return fullTerm
	}

	cost := l.DriveOff + l.MonthlyPayment*float64(m)
	if m == l.TermMonths {
		cost += mileagePenalty + l.DispositionFee
	}
	return cost
}
