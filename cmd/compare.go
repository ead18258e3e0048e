package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bmathews04/Lease-vs-Buy-Tool/internal/cli"
	"github.com/bmathews04/Lease-vs-Buy-Tool/internal/model"
	"github.com/bmathews04/Lease-vs-Buy-Tool/internal/project"
	"github.com/bmathews04/Lease-vs-Buy-Tool/internal/validate"

	"github.com/spf13/cobra"
)

var flagJSON bool

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Full lease-vs-buy comparison with tables and chart",
	RunE:  runCompare,
}

func init() {
	compareCmd.Flags().BoolVar(&flagJSON, "json", false, "Emit the projection as JSON")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(_ *cobra.Command, _ []string) error {
	scenario := buildScenario()

	if issues := validate.Check(scenario); len(issues) > 0 {
		fmt.Fprintln(os.Stderr, "  Scenario has problems:")
		for _, issue := range issues {
			fmt.Fprintf(os.Stderr, "    %s\n", issue)
		}
		return fmt.Errorf("%d invalid input(s)", len(issues))
	}

	p := project.Run(scenario)

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	}

	renderComparison(scenario, p)
	return nil
}

func renderComparison(s model.Scenario, p model.Projection) {
	horizon := cli.FormatTerm(s.HorizonMonths)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("LEASE VS BUY  %s horizon", horizon)))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Buying",
		Headers: []string{"Item", "Amount"},
		Rows: [][]string{
			{"Monthly payment", cli.FormatCostPrecise(p.Buy.MonthlyPayment)},
			{"Total purchase cost", cli.FormatCost(p.Buy.TotalPurchaseCost)},
			{"Loan amount financed", cli.FormatCost(p.Buy.LoanAmount)},
			{"Loan term", cli.FormatTerm(s.Buy.LoanTermMonths)},
			{"Est. value at horizon", cli.FormatCost(p.Buy.EndValueAtHorizon)},
			{"---"},
			{"Net cost at horizon", cli.FormatCost(p.Buy.NetCostAtHorizon)},
		},
	}))
	fmt.Println()

	leaseRows := [][]string{
		{"Monthly payment", cli.FormatCostPrecise(p.Lease.MonthlyPayment)},
		{"Drive-off", cli.FormatCost(p.Lease.DriveOff)},
		{"Lease term", cli.FormatTerm(s.Lease.TermMonths)},
		{"Payments over term", cli.FormatCost(p.Lease.TotalLeasePayments)},
	}
	if p.Lease.MileagePenalty > 0 {
		leaseRows = append(leaseRows, []string{"Mileage penalty", cli.FormatCost(p.Lease.MileagePenalty)})
	}
	leaseRows = append(leaseRows,
		[]string{"Disposition fee", cli.FormatCost(p.Lease.DispositionFee)},
		[]string{"---"},
		[]string{"Net cost, full lease", cli.FormatCost(p.Lease.NetCostFullTerm)},
		[]string{"Net cost at horizon", cli.FormatCost(p.Lease.NetCostAtHorizon)},
	)
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Leasing",
		Headers: []string{"Item", "Amount"},
		Rows:    leaseRows,
	}))
	fmt.Println()

	fmt.Println(cli.RenderRecommendation(verdictLine(p, horizon)))
	fmt.Println()

	buySeries := make([]float64, len(p.Months))
	leaseSeries := make([]float64, len(p.Months))
	for i, m := range p.Months {
		buySeries[i] = m.Buy
		leaseSeries[i] = m.Lease
	}

	fmt.Println("  Net cost over time")
	fmt.Print(cli.RenderSeriesChart(buySeries, leaseSeries, 48))
	fmt.Println()

	fmt.Println("  Net cost at horizon")
	fmt.Print(cli.RenderComparisonBars(p.Buy.NetCostAtHorizon, p.Lease.NetCostAtHorizon, 30))
	fmt.Println()

	fmt.Println(cli.RenderNote("Net cost = cash out (down payment, payments, fees, penalties)"))
	fmt.Println(cli.RenderNote("minus what you effectively own at the end."))
	fmt.Println()
}

func verdictLine(p model.Projection, horizon string) string {
	diff := p.Difference
	if diff < 0 {
		diff = -diff
	}

	switch p.Recommendation {
	case model.RecommendLease:
		return fmt.Sprintf("Leasing is cheaper by about %s over %s under these assumptions.", cli.FormatCost(diff), horizon)
	case model.RecommendBuy:
		return fmt.Sprintf("Buying is cheaper by about %s over %s under these assumptions.", cli.FormatCost(diff), horizon)
	default:
		return "Both options have roughly the same net cost with these inputs."
	}
}
