package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors (Flexoki Dark)
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorOrange    = lipgloss.Color("#DA702C")
	ColorRed       = lipgloss.Color("#D14D41")
	ColorBlue      = lipgloss.Color("#4385BE")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	goodStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	buyStyle = lipgloss.NewStyle().
			Foreground(ColorBlue)

	leaseStyle = lipgloss.NewStyle().
			Foreground(ColorOrange)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// Table represents a bordered text table for CLI output. A row of exactly
// {"---"} renders as a separator line.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderRecommendation renders the verdict line with the winner colored.
func RenderRecommendation(text string) string {
	return "  " + goodStyle.Render(text)
}

// RenderNote renders a dim explanatory footnote.
func RenderNote(text string) string {
	return "  " + mutedStyle.Render(text)
}

// RenderTable renders a bordered table with headers and rows.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	numCols := len(t.Headers)
	if numCols == 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		if len(h) > widths[i] {
			widths[i] = len(h)
		}
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < numCols && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder

	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	b.WriteString(borderLine(widths, "╭", "┬", "╮"))

	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range t.Headers {
			b.WriteString(headerStyle.Render(fmt.Sprintf(" %-*s ", widths[i], h)))
			b.WriteString(dimStyle.Render("│"))
		}
		b.WriteString("\n")
		b.WriteString(borderLine(widths, "├", "┼", "┤"))
	}

	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			b.WriteString(borderLine(widths, "├", "┼", "┤"))
			continue
		}

		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}

			// First column left-aligned, numeric columns right-aligned
			var padded string
			if i == 0 {
				padded = fmt.Sprintf(" %-*s ", widths[i], cell)
			} else {
				padded = fmt.Sprintf(" %*s ", widths[i], cell)
			}
			b.WriteString(valueStyle.Render(padded))
			b.WriteString(dimStyle.Render("│"))
		}
		b.WriteString("\n")
	}

	b.WriteString(borderLine(widths, "╰", "┴", "╯"))

	return b.String()
}

func borderLine(widths []int, left, mid, right string) string {
	var b strings.Builder
	b.WriteString(left)
	for i, w := range widths {
		b.WriteString(strings.Repeat("─", w+2))
		if i < len(widths)-1 {
			b.WriteString(mid)
		}
	}
	b.WriteString(right)
	return dimStyle.Render(b.String()) + "\n"
}

// RenderSeriesChart renders two aligned sparklines sharing one scale so the
// buy and lease net-cost trajectories can be compared month by month. The
// scale runs from the minimum to the maximum across both series.
func RenderSeriesChart(buy, lease []float64, width int) string {
	if len(buy) == 0 || len(buy) != len(lease) {
		return ""
	}

	lo, hi := buy[0], buy[0]
	for _, series := range [][]float64{buy, lease} {
		for _, v := range series {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	buyVals, leaseVals := buy, lease
	if width > 0 && len(buy) > width {
		buyVals = resample(buy, width)
		leaseVals = resample(lease, width)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %s  %s\n", buyStyle.Render("Buy  "), sparkline(buyVals, lo, span, buyStyle)))
	b.WriteString(fmt.Sprintf("  %s  %s\n", leaseStyle.Render("Lease"), sparkline(leaseVals, lo, span, leaseStyle)))
	b.WriteString(RenderNote(fmt.Sprintf("months 1-%d, scale %s to %s",
		len(buy), FormatCost(lo), FormatCost(hi))))
	b.WriteString("\n")
	return b.String()
}

func sparkline(values []float64, lo, span float64, style lipgloss.Style) string {
	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	var b strings.Builder
	for _, v := range values {
		idx := int((v - lo) / span * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		b.WriteRune(blocks[idx])
	}
	return style.Render(b.String())
}

// resample picks n evenly spaced points from values, keeping both endpoints.
func resample(values []float64, n int) []float64 {
	if n >= len(values) || n < 2 {
		return values
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = values[i*(len(values)-1)/(n-1)]
	}
	return out
}

// RenderComparisonBars renders the horizon-end totals as two labeled
// horizontal bars on a shared scale.
func RenderComparisonBars(buyCost, leaseCost float64, maxWidth int) string {
	peak := buyCost
	if leaseCost > peak {
		peak = leaseCost
	}
	if peak <= 0 {
		peak = 1
	}

	bar := func(v float64, style lipgloss.Style) string {
		n := int(v / peak * float64(maxWidth))
		if n < 0 {
			n = 0
		}
		return style.Render(strings.Repeat("█", n))
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %s  %s %s\n", buyStyle.Render("Buy  "), bar(buyCost, buyStyle), FormatCost(buyCost)))
	b.WriteString(fmt.Sprintf("  %s  %s %s\n", leaseStyle.Render("Lease"), bar(leaseCost, leaseStyle), FormatCost(leaseCost)))
	return b.String()
}
