package tui

import (
	"testing"

	"github.com/bmathews04/Lease-vs-Buy-Tool/internal/config"
	"github.com/bmathews04/Lease-vs-Buy-Tool/internal/validate"
)

func TestScenarioInputs_DefaultsProduceValidScenario(t *testing.T) {
	in := newScenarioInputs(config.DefaultConfig())
	s := in.scenario()

	if issues := validate.Check(s); len(issues) != 0 {
		t.Fatalf("default inputs failed validation: %v", issues)
	}

	if s.HorizonMonths != 36 {
		t.Fatalf("HorizonMonths = %d, want 36", s.HorizonMonths)
	}
	if s.Lease.MonthlyPayment != 450 {
		t.Fatalf("lease payment = %.2f, want 450", s.Lease.MonthlyPayment)
	}
}

func TestScenarioInputs_ParsesEditedValues(t *testing.T) {
	in := newScenarioInputs(config.DefaultConfig())
	in.horizonYears = "5"
	in.price = "42000.50"
	in.loanTerm = " 72 " // whitespace tolerated

	s := in.scenario()
	if s.HorizonMonths != 60 {
		t.Fatalf("HorizonMonths = %d, want 60", s.HorizonMonths)
	}
	if s.Buy.PurchasePrice != 42000.50 {
		t.Fatalf("PurchasePrice = %.2f, want 42000.50", s.Buy.PurchasePrice)
	}
	if s.Buy.LoanTermMonths != 72 {
		t.Fatalf("LoanTermMonths = %d, want 72", s.Buy.LoanTermMonths)
	}
}

func TestRequireNumber(t *testing.T) {
	if err := requireNumber("42.5"); err != nil {
		t.Fatalf("requireNumber(42.5) errored: %v", err)
	}
	if err := requireNumber("abc"); err == nil {
		t.Fatal("requireNumber accepted non-numeric input")
	}
	if err := requireNumber("-3"); err == nil {
		t.Fatal("requireNumber accepted a negative value")
	}
}

func TestRequirePositiveInt(t *testing.T) {
	if err := requirePositiveInt("36"); err != nil {
		t.Fatalf("requirePositiveInt(36) errored: %v", err)
	}
	if err := requirePositiveInt("0"); err == nil {
		t.Fatal("requirePositiveInt accepted zero")
	}
	if err := requirePositiveInt("3.5"); err == nil {
		t.Fatal("requirePositiveInt accepted a fraction")
	}
}
