// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatCost formats a dollar amount rounded to whole units with comma
// separators. Negative amounts (net positions better than break-even) keep
// their sign.
func FormatCost(v float64) string {
	if v < 0 {
		return "-" + FormatCost(-v)
	}
	return "$" + FormatNumber(int64(math.Round(v)))
}

// FormatCostPrecise formats a dollar amount with cents, for per-month
// payments where whole-dollar rounding hides real differences.
func FormatCostPrecise(v float64) string {
	if v < 0 {
		return "-" + FormatCostPrecise(-v)
	}
	whole := int64(v)
	cents := math.Round((v - float64(whole)) * 100)
	if cents >= 100 {
		whole++
		cents -= 100
	}
	return fmt.Sprintf("$%s.%02d", FormatNumber(whole), int64(cents))
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a percentage given in [0,100].
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

// FormatMiles formats a mileage figure.
func FormatMiles(v float64) string {
	return FormatNumber(int64(math.Round(v))) + " mi"
}

// FormatTerm formats a month count as "Ny Nm", collapsing zero parts.
// e.g., 36 -> "3y", 30 -> "2y 6m", 9 -> "9m"
func FormatTerm(months int) string {
	if months <= 0 {
		return "0m"
	}

	years := months / 12
	rem := months % 12

	switch {
	case years == 0:
		return fmt.Sprintf("%dm", rem)
	case rem == 0:
		return fmt.Sprintf("%dy", years)
	default:
		return fmt.Sprintf("%dy %dm", years, rem)
	}
}
