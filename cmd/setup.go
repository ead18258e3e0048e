package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bmathews04/Lease-vs-Buy-Tool/internal/cli"
	"github.com/bmathews04/Lease-vs-Buy-Tool/internal/config"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Save your default assumptions",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to leasebuy!")
	fmt.Println("  Press Enter to keep the value in brackets.")
	fmt.Println()

	fmt.Println("  General")
	cfg.General.HorizonYears = promptInt(reader, "Comparison horizon (years)", cfg.General.HorizonYears)
	cfg.General.TaxRatePercent = promptFloat(reader, "Sales tax rate (%)", cfg.General.TaxRatePercent)
	fmt.Println()

	fmt.Println("  Buying")
	cfg.Buy.PurchasePrice = promptFloat(reader, "Vehicle price before tax ($)", cfg.Buy.PurchasePrice)
	cfg.Buy.DownPayment = promptFloat(reader, "Down payment ($)", cfg.Buy.DownPayment)
	cfg.Buy.LoanAPRPercent = promptFloat(reader, "Loan APR (%)", cfg.Buy.LoanAPRPercent)
	cfg.Buy.LoanTermMonths = promptInt(reader, "Loan term (months)", cfg.Buy.LoanTermMonths)
	fmt.Println()

	fmt.Println("  Leasing")
	cfg.Lease.MonthlyPayment = promptFloat(reader, "Monthly lease payment incl. tax ($)", cfg.Lease.MonthlyPayment)
	cfg.Lease.TermMonths = promptInt(reader, "Lease term (months)", cfg.Lease.TermMonths)
	cfg.Lease.DriveOff = promptFloat(reader, "Drive-off / due at signing ($)", cfg.Lease.DriveOff)
	cfg.Lease.AllowedPerYear = promptFloat(reader, "Mileage allowance per year", cfg.Lease.AllowedPerYear)
	cfg.Lease.ExpectedPerYear = promptFloat(reader, "Expected miles per year", cfg.Lease.ExpectedPerYear)

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `leasebuy setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}

func promptFloat(reader *bufio.Reader, label string, current float64) float64 {
	fmt.Printf("    %s [%s]: ", label, strconv.FormatFloat(current, 'f', -1, 64))
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return current
	}

	v, err := strconv.ParseFloat(line, 64)
	if err != nil || v < 0 {
		fmt.Fprintf(os.Stderr, "      keeping %s (couldn't read %q)\n", cli.FormatCostPrecise(current), line)
		return current
	}
	return v
}

func promptInt(reader *bufio.Reader, label string, current int) int {
	fmt.Printf("    %s [%d]: ", label, current)
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return current
	}

	v, err := strconv.Atoi(line)
	if err != nil || v <= 0 {
		fmt.Fprintf(os.Stderr, "      keeping %d (couldn't read %q)\n", current, line)
		return current
	}
	return v
}
