// Package cmd wires the leasebuy CLI commands.
package cmd

import (
	"os"

	"github.com/bmathews04/Lease-vs-Buy-Tool/internal/calc"
	"github.com/bmathews04/Lease-vs-Buy-Tool/internal/config"
	"github.com/bmathews04/Lease-vs-Buy-Tool/internal/model"

	"github.com/spf13/cobra"
)

// Scenario flags. Float flags default to the sentinel -1, meaning "use the
// configured default"; every real value is non-negative.
var (
	flagHorizonYears int
	flagTaxRate      float64

	flagPrice       float64
	flagFees        float64
	flagDown        float64
	flagLoanAPR     float64
	flagLoanTerm    int
	flagEndValuePct float64

	flagLeasePayment float64
	flagLeaseTerm    int
	flagDriveOff     float64
	flagDisposition  float64

	flagMSRP        float64
	flagCapCost     float64
	flagResidualPct float64
	flagLeaseAPR    float64
	flagMoneyFactor float64

	flagAllowedMiles  float64
	flagExpectedMiles float64
	flagMileFee       float64
)

var rootCmd = &cobra.Command{
	Use:   "leasebuy",
	Short: "Lease vs Buy Calculator",
	Long:  "Compare the net cost of leasing versus buying a vehicle over a chosen horizon.",
	RunE:  runCompare,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()

	pf.IntVarP(&flagHorizonYears, "horizon-years", "y", 0, "Comparison horizon in years (default from config)")
	pf.Float64Var(&flagTaxRate, "tax-rate", -1, "Sales tax rate (%)")

	pf.Float64Var(&flagPrice, "price", -1, "Negotiated vehicle price before tax")
	pf.Float64Var(&flagFees, "fees", -1, "Upfront fees (doc, title, etc.)")
	pf.Float64Var(&flagDown, "down", -1, "Down payment")
	pf.Float64Var(&flagLoanAPR, "loan-apr", -1, "Loan APR (%)")
	pf.IntVar(&flagLoanTerm, "loan-term", 0, "Loan term in months")
	pf.Float64Var(&flagEndValuePct, "end-value-pct", -1, "Expected resale value at horizon end (% of price)")

	pf.Float64Var(&flagLeasePayment, "lease-payment", -1, "Quoted monthly lease payment including tax")
	pf.IntVar(&flagLeaseTerm, "lease-term", 0, "Lease term in months")
	pf.Float64Var(&flagDriveOff, "drive-off", -1, "Cash due at lease signing")
	pf.Float64Var(&flagDisposition, "disposition", -1, "Disposition / turn-in fee at lease end")

	pf.Float64Var(&flagMSRP, "msrp", 38000, "MSRP, for the money-factor lease path")
	pf.Float64Var(&flagCapCost, "cap-cost", -1, "Negotiated cap cost; setting this derives the lease payment from money factor")
	pf.Float64Var(&flagResidualPct, "residual-pct", 58, "Lease residual value (% of MSRP)")
	pf.Float64Var(&flagLeaseAPR, "lease-apr", 3, "Lease APR (%), converted to a money factor")
	pf.Float64Var(&flagMoneyFactor, "money-factor", -1, "Money factor; overrides --lease-apr")

	pf.Float64Var(&flagAllowedMiles, "allowed-miles", -1, "Mileage allowance per year")
	pf.Float64Var(&flagExpectedMiles, "expected-miles", -1, "Expected miles driven per year")
	pf.Float64Var(&flagMileFee, "mile-fee", -1, "Excess mileage charge per mile")
}

// pick returns the flag value when set, otherwise the configured default.
func pick(flag, configured float64) float64 {
	if flag >= 0 {
		return flag
	}
	return configured
}

func pickInt(flag, configured int) int {
	if flag > 0 {
		return flag
	}
	return configured
}

// buildScenario merges config defaults with flag overrides into one
// scenario. The lease payment comes from the money-factor path when
// --cap-cost is given, otherwise from the quoted payment.
func buildScenario() model.Scenario {
	cfg, _ := config.Load()

	horizonYears := pickInt(flagHorizonYears, cfg.General.HorizonYears)
	taxRate := pick(flagTaxRate, cfg.General.TaxRatePercent)

	endValuePct := flagEndValuePct
	if endValuePct < 0 {
		endValuePct = config.DefaultEndValuePercent(horizonYears)
	}

	buy := model.BuyTerms{
		PurchasePrice:   pick(flagPrice, cfg.Buy.PurchasePrice),
		UpfrontFees:     pick(flagFees, cfg.Buy.UpfrontFees),
		TaxRatePercent:  taxRate,
		DownPayment:     pick(flagDown, cfg.Buy.DownPayment),
		APRPercent:      pick(flagLoanAPR, cfg.Buy.LoanAPRPercent),
		LoanTermMonths:  pickInt(flagLoanTerm, cfg.Buy.LoanTermMonths),
		EndValuePercent: endValuePct,
	}

	mileage := model.MileagePlan{
		AllowedPerYear:  pick(flagAllowedMiles, cfg.Lease.AllowedPerYear),
		ExpectedPerYear: pick(flagExpectedMiles, cfg.Lease.ExpectedPerYear),
		FeePerMile:      pick(flagMileFee, cfg.Lease.FeePerMile),
	}

	leaseTerm := pickInt(flagLeaseTerm, cfg.Lease.TermMonths)
	driveOff := pick(flagDriveOff, cfg.Lease.DriveOff)
	disposition := pick(flagDisposition, cfg.Lease.DispositionFee)

	var lease model.LeaseTerms
	if flagCapCost >= 0 {
		mf := flagMoneyFactor
		if mf < 0 {
			mf = calc.APRToMoneyFactor(flagLeaseAPR)
		}
		residual := flagMSRP * (flagResidualPct / 100)
		lease = model.LeaseFromMoneyFactor(flagCapCost, residual, mf, taxRate, leaseTerm, driveOff, disposition, mileage)
	} else {
		lease = model.LeaseFromQuote(pick(flagLeasePayment, cfg.Lease.MonthlyPayment), leaseTerm, driveOff, disposition, mileage)
	}

	return model.Scenario{
		Buy:           buy,
		Lease:         lease,
		HorizonMonths: horizonYears * 12,
	}
}
