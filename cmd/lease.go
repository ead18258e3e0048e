package cmd

import (
	"fmt"

	"github.com/bmathews04/Lease-vs-Buy-Tool/internal/calc"
	"github.com/bmathews04/Lease-vs-Buy-Tool/internal/cli"

	"github.com/spf13/cobra"
)

var leaseCmd = &cobra.Command{
	Use:   "lease",
	Short: "Lease payment breakdown from money factor",
	Long:  "Derive the monthly lease payment from cap cost, residual value, and money factor, split into depreciation and finance fees.",
	RunE:  runLease,
}

func init() {
	rootCmd.AddCommand(leaseCmd)
}

func runLease(_ *cobra.Command, _ []string) error {
	s := buildScenario()

	capCost := flagCapCost
	if capCost < 0 {
		// No negotiated cap cost given; fall back to MSRP so the breakdown
		// is still illustrative.
		capCost = flagMSRP
	}

	mf := flagMoneyFactor
	mfSource := "given directly"
	if mf < 0 {
		mf = calc.APRToMoneyFactor(flagLeaseAPR)
		mfSource = fmt.Sprintf("from %s APR", cli.FormatPercent(flagLeaseAPR))
	}

	residual := flagMSRP * (flagResidualPct / 100)
	term := s.Lease.TermMonths
	taxRate := s.Buy.TaxRatePercent

	base := calc.LeasePaymentFromMoneyFactor(capCost, residual, mf, term)
	if base == 0 {
		fmt.Println("\n  Not enough lease information with these inputs.")
		return nil
	}

	depreciationFee := (capCost - residual) / float64(term)
	financeFee := base - depreciationFee
	withTax := base * (1 + taxRate/100)
	penalty := calc.MileagePenalty(
		s.Lease.Mileage.AllowedPerYear,
		s.Lease.Mileage.ExpectedPerYear,
		s.Lease.Mileage.FeePerMile,
		term,
	)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("LEASE  %s over %s", cli.FormatCost(capCost), cli.FormatTerm(term))))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Item", "Amount"},
		Rows: [][]string{
			{"Cap cost", cli.FormatCost(capCost)},
			{"Residual value", cli.FormatCost(residual)},
			{fmt.Sprintf("Money factor (%s)", mfSource), fmt.Sprintf("%.5f", mf)},
			{"---"},
			{"Depreciation fee / mo", cli.FormatCostPrecise(depreciationFee)},
			{"Finance fee / mo", cli.FormatCostPrecise(financeFee)},
			{"Payment before tax", cli.FormatCostPrecise(base)},
			{fmt.Sprintf("Payment with %s tax", cli.FormatPercent(taxRate)), cli.FormatCostPrecise(withTax)},
			{"---"},
			{"Mileage allowance", cli.FormatMiles(s.Lease.Mileage.AllowedPerYear) + "/yr"},
			{"Expected driving", cli.FormatMiles(s.Lease.Mileage.ExpectedPerYear) + "/yr"},
			{"Est. mileage penalty", cli.FormatCost(penalty)},
		},
	}))
	fmt.Println()

	return nil
}
