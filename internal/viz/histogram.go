// Package viz renders sampled distributions for the terminal.
package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/fieldtopo/internal/stats"
)

// Histogram renders an ascii histogram of the values with a styled header
// and a summary footer line.
func Histogram(title string, values []float64, bins, height int) string {
	counts, centers := stats.Histogram(values, bins)
	if len(counts) == 0 {
		return subtleStyle.Render("no finite values to plot")
	}

	s := stats.Summarize(values)

	var b strings.Builder
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(graphStyle.Render(asciigraph.Plot(counts,
		asciigraph.Height(height),
		asciigraph.Caption(fmt.Sprintf("range [%.4g, %.4g]", centers[0], centers[len(centers)-1])),
	)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(fmt.Sprintf(
		"n=%d  mean=%.4g  std=%.4g  min=%.4g  max=%.4g",
		s.Count, s.Mean, s.Std, s.Min, s.Max)))
	if s.NonFinite > 0 {
		b.WriteString(subtleStyle.Render(fmt.Sprintf("  (%d non-finite excluded)", s.NonFinite)))
	}
	b.WriteString("\n")
	return b.String()
}
