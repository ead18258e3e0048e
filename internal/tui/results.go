package tui

import (
	"fmt"
	"strings"

	"github.com/bmathews04/Lease-vs-Buy-Tool/internal/cli"
	"github.com/bmathews04/Lease-vs-Buy-Tool/internal/model"
)

// renderDashboard builds the scrollable results content: summaries, the
// verdict, the trajectory chart, and the full month-by-month table.
func renderDashboard(s model.Scenario, p model.Projection) string {
	var b strings.Builder

	horizon := cli.FormatTerm(s.HorizonMonths)

	b.WriteString("\n")
	b.WriteString(cli.RenderTitle(fmt.Sprintf("LEASE VS BUY  %s horizon", horizon)))
	b.WriteString("\n\n")

	b.WriteString(cli.RenderTable(cli.Table{
		Title:   "Summary",
		Headers: []string{"", "Buy", "Lease"},
		Rows: [][]string{
			{"Monthly payment", cli.FormatCostPrecise(p.Buy.MonthlyPayment), cli.FormatCostPrecise(p.Lease.MonthlyPayment)},
			{"Up front", cli.FormatCost(s.Buy.DownPayment), cli.FormatCost(p.Lease.DriveOff)},
			{"One-time at lease end", "—", cli.FormatCost(p.Lease.MileagePenalty + p.Lease.DispositionFee)},
			{"---"},
			{"Net cost at horizon", cli.FormatCost(p.Buy.NetCostAtHorizon), cli.FormatCost(p.Lease.NetCostAtHorizon)},
		},
	}))
	b.WriteString("\n")

	b.WriteString(cli.RenderRecommendation(verdict(p, horizon)))
	b.WriteString("\n\n")

	buySeries := make([]float64, len(p.Months))
	leaseSeries := make([]float64, len(p.Months))
	for i, m := range p.Months {
		buySeries[i] = m.Buy
		leaseSeries[i] = m.Lease
	}

	b.WriteString("  Net cost over time\n")
	b.WriteString(cli.RenderSeriesChart(buySeries, leaseSeries, 48))
	b.WriteString("\n")

	b.WriteString("  Net cost at horizon\n")
	b.WriteString(cli.RenderComparisonBars(p.Buy.NetCostAtHorizon, p.Lease.NetCostAtHorizon, 30))
	b.WriteString("\n")

	rows := make([][]string, 0, len(p.Months))
	for _, m := range p.Months {
		rows = append(rows, []string{
			fmt.Sprintf("%d", m.Month),
			cli.FormatCost(m.Buy),
			cli.FormatCost(m.Lease),
		})
	}
	b.WriteString(cli.RenderTable(cli.Table{
		Title:   "Month by Month",
		Headers: []string{"Month", "Buy", "Lease"},
		Rows:    rows,
	}))
	b.WriteString("\n")

	b.WriteString(cli.RenderNote("Net cost = cash out minus what you effectively own at the end."))
	b.WriteString("\n")

	return b.String()
}

func verdict(p model.Projection, horizon string) string {
	diff := p.Difference
	if diff < 0 {
		diff = -diff
	}

	switch p.Recommendation {
	case model.RecommendLease:
		return fmt.Sprintf("Leasing is cheaper by about %s over %s.", cli.FormatCost(diff), horizon)
	case model.RecommendBuy:
		return fmt.Sprintf("Buying is cheaper by about %s over %s.", cli.FormatCost(diff), horizon)
	default:
		return "Both options cost roughly the same with these inputs."
	}
}
