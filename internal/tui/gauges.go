package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"panetop/internal/stats"
)

// Band thresholds, strictly increasing; first match wins and the last
// band catches everything else.
var bandThresholds = [3]float64{25, 50, 75}

// BandColor maps a gauge percentage to its color band.
func BandColor(pct float64) lipgloss.Color {
	for i, limit := range bandThresholds {
		if pct < limit {
			return bandColors[i]
		}
	}
	return bandColors[len(bandColors)-1]
}

// renderGauge renders a titled, bordered gauge: a bar filled to pct with
// the band color, and a value label to its right. The total rendered
// width is width columns.
func renderGauge(title, label string, pct float64, width int) string {
	// Border and horizontal padding eat four columns.
	inner := width - 4
	if inner < 8 {
		inner = 8
	}

	barWidth := inner - lipgloss.Width(label) - 1
	if barWidth < 4 {
		barWidth = 4
	}

	bar := progress.New(
		progress.WithSolidFill(string(BandColor(pct))),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)

	content := titleStyle.Render(truncate(title, inner)) + "\n" +
		bar.ViewAs(clampPercent(pct)/100) + " " + label

	return gaugeBoxStyle.Width(width - 2).Render(content)
}

// renderNetworkPanel renders the throughput box: one aggregate line, or
// one line per interface when aggregation is off.
func renderNetworkPanel(rates stats.Rates, aggregate bool, width int) string {
	inner := width - 4
	if inner < 8 {
		inner = 8
	}

	var lines []string
	if aggregate || len(rates.PerInterface) == 0 {
		lines = append(lines, fmt.Sprintf("↓ %s  ↑ %s",
			formatRate(rates.RxPerSec), formatRate(rates.TxPerSec)))
	} else {
		for _, r := range rates.PerInterface {
			lines = append(lines, fmt.Sprintf("%-8s ↓ %s  ↑ %s",
				truncate(r.Name, 8), formatRate(r.RxPerSec), formatRate(r.TxPerSec)))
		}
	}

	for i, line := range lines {
		lines[i] = lipgloss.PlaceHorizontal(inner, lipgloss.Center, netStyle.Render(line))
	}

	content := titleStyle.Render("Network") + "\n" + strings.Join(lines, "\n")
	return gaugeBoxStyle.Width(width - 2).Render(content)
}

// formatRate formats a bytes-per-second value with a unit suffix chosen
// by magnitude, one digit after the decimal point.
func formatRate(bytesPerSec float64) string {
	switch {
	case bytesPerSec >= 1<<30:
		return fmt.Sprintf("%.1f GB/s", bytesPerSec/(1<<30))
	case bytesPerSec >= 1<<20:
		return fmt.Sprintf("%.1f MB/s", bytesPerSec/(1<<20))
	case bytesPerSec >= 1<<10:
		return fmt.Sprintf("%.1f KB/s", bytesPerSec/(1<<10))
	default:
		return fmt.Sprintf("%.1f B/s", bytesPerSec)
	}
}

// formatGB formats a byte count in gigabytes with one decimal.
func formatGB(b uint64) string {
	return fmt.Sprintf("%.1f GB", float64(b)/(1<<30))
}

// clampPercent limits a percentage to [0, 100] for bar rendering.
func clampPercent(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// truncate shortens a string to a maximum length
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
