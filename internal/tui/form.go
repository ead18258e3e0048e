package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bmathews04/Lease-vs-Buy-Tool/internal/config"
	"github.com/bmathews04/Lease-vs-Buy-Tool/internal/model"

	"github.com/charmbracelet/huh"
)

// scenarioInputs holds the form's string-typed fields. huh edits strings;
// scenario() parses them once the form completes.
type scenarioInputs struct {
	horizonYears string
	taxRate      string

	price       string
	fees        string
	down        string
	loanAPR     string
	loanTerm    string
	endValuePct string

	leasePayment string
	leaseTerm    string
	driveOff     string
	disposition  string

	allowedMiles  string
	expectedMiles string
	mileFee       string
}

func newScenarioInputs(cfg config.Config) *scenarioInputs {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

	return &scenarioInputs{
		horizonYears: strconv.Itoa(cfg.General.HorizonYears),
		taxRate:      f(cfg.General.TaxRatePercent),

		price:       f(cfg.Buy.PurchasePrice),
		fees:        f(cfg.Buy.UpfrontFees),
		down:        f(cfg.Buy.DownPayment),
		loanAPR:     f(cfg.Buy.LoanAPRPercent),
		loanTerm:    strconv.Itoa(cfg.Buy.LoanTermMonths),
		endValuePct: f(config.DefaultEndValuePercent(cfg.General.HorizonYears)),

		leasePayment: f(cfg.Lease.MonthlyPayment),
		leaseTerm:    strconv.Itoa(cfg.Lease.TermMonths),
		driveOff:     f(cfg.Lease.DriveOff),
		disposition:  f(cfg.Lease.DispositionFee),

		allowedMiles:  f(cfg.Lease.AllowedPerYear),
		expectedMiles: f(cfg.Lease.ExpectedPerYear),
		mileFee:       f(cfg.Lease.FeePerMile),
	}
}

// scenario parses the collected strings. Field validators already rejected
// non-numeric input, so parse errors fall back to zero and the scenario
// validator reports them coherently.
func (in *scenarioInputs) scenario() model.Scenario {
	num := func(s string) float64 {
		v, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
		return v
	}
	count := func(s string) int {
		v, _ := strconv.Atoi(strings.TrimSpace(s))
		return v
	}

	mileage := model.MileagePlan{
		AllowedPerYear:  num(in.allowedMiles),
		ExpectedPerYear: num(in.expectedMiles),
		FeePerMile:      num(in.mileFee),
	}

	return model.Scenario{
		Buy: model.BuyTerms{
			PurchasePrice:   num(in.price),
			UpfrontFees:     num(in.fees),
			TaxRatePercent:  num(in.taxRate),
			DownPayment:     num(in.down),
			APRPercent:      num(in.loanAPR),
			LoanTermMonths:  count(in.loanTerm),
			EndValuePercent: num(in.endValuePct),
		},
		Lease: model.LeaseFromQuote(
			num(in.leasePayment),
			count(in.leaseTerm),
			num(in.driveOff),
			num(in.disposition),
			mileage,
		),
		HorizonMonths: count(in.horizonYears) * 12,
	}
}

func newScenarioForm(in *scenarioInputs) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Comparison horizon (years)").
				Value(&in.horizonYears).
				Validate(requirePositiveInt),
			huh.NewInput().
				Title("Sales tax rate (%)").
				Value(&in.taxRate).
				Validate(requireNumber),
		).Title("General"),

		huh.NewGroup(
			huh.NewInput().
				Title("Vehicle price before tax ($)").
				Value(&in.price).
				Validate(requireNumber),
			huh.NewInput().
				Title("Upfront fees ($)").
				Value(&in.fees).
				Validate(requireNumber),
			huh.NewInput().
				Title("Down payment ($)").
				Value(&in.down).
				Validate(requireNumber),
			huh.NewInput().
				Title("Loan APR (%)").
				Value(&in.loanAPR).
				Validate(requireNumber),
			huh.NewInput().
				Title("Loan term (months)").
				Value(&in.loanTerm).
				Validate(requirePositiveInt),
			huh.NewInput().
				Title("Value at horizon end (% of price)").
				Value(&in.endValuePct).
				Validate(requireNumber),
		).Title("Buying"),

		huh.NewGroup(
			huh.NewInput().
				Title("Monthly payment incl. tax ($)").
				Value(&in.leasePayment).
				Validate(requireNumber),
			huh.NewInput().
				Title("Lease term (months)").
				Value(&in.leaseTerm).
				Validate(requirePositiveInt),
			huh.NewInput().
				Title("Drive-off / due at signing ($)").
				Value(&in.driveOff).
				Validate(requireNumber),
			huh.NewInput().
				Title("Disposition fee ($)").
				Value(&in.disposition).
				Validate(requireNumber),
			huh.NewInput().
				Title("Mileage allowance per year").
				Value(&in.allowedMiles).
				Validate(requireNumber),
			huh.NewInput().
				Title("Expected miles per year").
				Value(&in.expectedMiles).
				Validate(requireNumber),
			huh.NewInput().
				Title("Excess charge per mile ($)").
				Value(&in.mileFee).
				Validate(requireNumber),
		).Title("Leasing"),
	)
}

func requireNumber(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if v < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}

func requirePositiveInt(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("enter a whole number")
	}
	if v <= 0 {
		return fmt.Errorf("must be at least 1")
	}
	return nil
}
