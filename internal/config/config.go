// Package config loads and saves the user's default assumptions so repeat
// comparisons only need the numbers that changed.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all leasebuy configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Buy     BuyDefaults   `toml:"buy"`
	Lease   LeaseDefaults `toml:"lease"`
}

// GeneralConfig holds settings shared by both sides of the comparison.
type GeneralConfig struct {
	HorizonYears   int     `toml:"horizon_years"`
	TaxRatePercent float64 `toml:"tax_rate_percent"`
	Theme          string  `toml:"theme,omitempty"`
}

// BuyDefaults holds default purchase-side assumptions.
type BuyDefaults struct {
	PurchasePrice  float64 `toml:"purchase_price"`
	UpfrontFees    float64 `toml:"upfront_fees"`
	DownPayment    float64 `toml:"down_payment"`
	LoanAPRPercent float64 `toml:"loan_apr_percent"`
	LoanTermMonths int     `toml:"loan_term_months"`
}

// LeaseDefaults holds default lease-side assumptions.
type LeaseDefaults struct {
	MonthlyPayment  float64 `toml:"monthly_payment"`
	TermMonths      int     `toml:"term_months"`
	DriveOff        float64 `toml:"drive_off"`
	DispositionFee  float64 `toml:"disposition_fee"`
	AllowedPerYear  float64 `toml:"allowed_miles_per_year"`
	ExpectedPerYear float64 `toml:"expected_miles_per_year"`
	FeePerMile      float64 `toml:"excess_fee_per_mile"`
}

// DefaultConfig returns the stock assumptions: a $35k car on a 60-month
// loan at 5% against a $450/month 36-month lease.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			HorizonYears:   3,
			TaxRatePercent: 6.25,
		},
		Buy: BuyDefaults{
			PurchasePrice:  35000,
			UpfrontFees:    500,
			DownPayment:    5000,
			LoanAPRPercent: 5,
			LoanTermMonths: 60,
		},
		Lease: LeaseDefaults{
			MonthlyPayment:  450,
			TermMonths:      36,
			DriveOff:        2000,
			DispositionFee:  395,
			AllowedPerYear:  12000,
			ExpectedPerYear: 15000,
			FeePerMile:      0.25,
		},
	}
}

// defaultEndValueByYears maps horizon years to a rough resale value as a
// percent of purchase price, for users who don't supply their own estimate.
var defaultEndValueByYears = map[int]float64{
	1: 80,
	2: 70,
	3: 60,
	4: 50,
	5: 45,
	6: 40,
	7: 35,
}

// DefaultEndValuePercent returns the default resale-value percent for a
// horizon, falling back to 50% outside the table.
func DefaultEndValuePercent(horizonYears int) float64 {
	if pct, ok := defaultEndValueByYears[horizonYears]; ok {
		return pct
	}
	return 50
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "leasebuy")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "leasebuy")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
