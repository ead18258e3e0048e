package cmd

import (
	"fmt"

	"github.com/bmathews04/Lease-vs-Buy-Tool/internal/calc"
	"github.com/bmathews04/Lease-vs-Buy-Tool/internal/cli"

	"github.com/spf13/cobra"
)

var flagSchedule bool

var loanCmd = &cobra.Command{
	Use:   "loan",
	Short: "Loan payment and remaining-balance breakdown",
	Long:  "Show the monthly payment for the buying scenario's loan, with an optional year-by-year balance schedule.",
	RunE:  runLoan,
}

func init() {
	loanCmd.Flags().BoolVar(&flagSchedule, "schedule", false, "Show year-by-year remaining balance")
	rootCmd.AddCommand(loanCmd)
}

func runLoan(_ *cobra.Command, _ []string) error {
	s := buildScenario()
	principal := s.Buy.LoanAmount()
	apr := s.Buy.APRPercent
	term := s.Buy.LoanTermMonths

	payment := calc.MonthlyPayment(principal, apr, term)
	if payment == 0 {
		fmt.Println("\n  Nothing to finance with these inputs.")
		return nil
	}

	totalPaid := payment * float64(term)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("LOAN  %s at %s", cli.FormatCost(principal), cli.FormatPercent(apr))))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Item", "Amount"},
		Rows: [][]string{
			{"Amount financed", cli.FormatCost(principal)},
			{"Term", cli.FormatTerm(term)},
			{"Monthly payment", cli.FormatCostPrecise(payment)},
			{"---"},
			{"Total of payments", cli.FormatCost(totalPaid)},
			{"Total interest", cli.FormatCost(totalPaid - principal)},
		},
	}))

	if flagSchedule {
		fmt.Println()
		rows := make([][]string, 0, term/12+1)
		for m := 12; ; m += 12 {
			if m > term {
				m = term
			}
			balance := calc.RemainingBalance(principal, apr, term, m)
			paid := payment * float64(m)
			rows = append(rows, []string{
				cli.FormatTerm(m),
				cli.FormatCost(paid),
				cli.FormatCost(balance),
			})
			if m == term {
				break
			}
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Balance Schedule",
			Headers: []string{"After", "Paid", "Remaining"},
			Rows:    rows,
		}))
	}

	fmt.Println()
	return nil
}
