package ui

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/renato0307/lettercount/internal/domain"
	"github.com/renato0307/lettercount/internal/theme"
)

const (
	chartBarRune  = "█"
	chartBarWidth = 50 // Width of the longest bar
)

// RenderList writes one "<letter>: <count> occurrences" line per letter,
// in the order of h.Letters
func RenderList(w io.Writer, h *domain.Histogram) error {
	for _, lc := range h.Letters {
		if _, err := fmt.Fprintf(w, "%c: %d occurrences\n", lc.Letter, lc.Count); err != nil {
			return err
		}
	}
	return nil
}

// RenderElapsed writes the closing wall-clock line
func RenderElapsed(w io.Writer, elapsed time.Duration) error {
	_, err := fmt.Fprintf(w, "Elapsed time: %s\n", elapsed)
	return err
}

// RenderChart renders the histogram as horizontal bars scaled to the most
// frequent letter, preceded by a per-extension legend
func RenderChart(repo string, h *domain.Histogram) string {
	var sb strings.Builder

	sb.WriteString(theme.TitleStyle.Render("Letter frequency - " + repo))
	sb.WriteString("\n")

	legend := make([]string, 0, len(h.Groups))
	for i, g := range h.Groups {
		legend = append(legend, theme.GroupStyle(i).Render("●")+
			theme.SubtitleStyle.Render(fmt.Sprintf(" %s %s files, %s letters",
				g.Extension, humanize.Comma(int64(g.Files)), humanize.Comma(g.Letters))))
	}
	sb.WriteString(strings.Join(legend, "  "))
	sb.WriteString("\n\n")

	if len(h.Letters) == 0 {
		sb.WriteString(theme.MutedStyle.Render("No letters counted."))
		sb.WriteString("\n")
		return sb.String()
	}

	var peak int64
	for _, lc := range h.Letters {
		peak = max(peak, lc.Count)
	}

	for _, lc := range h.Letters {
		barStyle := theme.BarStyle
		if lc.Count == peak {
			barStyle = theme.BarPeakStyle
		}
		sb.WriteString(theme.LetterStyle.Render(string(lc.Letter)))
		sb.WriteString(" ")
		sb.WriteString(barStyle.Render(strings.Repeat(chartBarRune, barLength(lc.Count, peak, chartBarWidth))))
		sb.WriteString(" ")
		sb.WriteString(theme.CountStyle.Render(humanize.Comma(lc.Count)))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(theme.MutedStyle.Render(fmt.Sprintf("Total: %s letters in %s files",
		humanize.Comma(h.Total()), humanize.Comma(int64(h.Files())))))
	sb.WriteString("\n")

	return sb.String()
}

// RenderError formats a top-level failure for stderr
func RenderError(err error) string {
	return theme.ErrorStyle.Render("Error:") + " " + err.Error()
}

// barLength scales count against peak; any non-zero count gets at least one cell
func barLength(count, peak int64, width int) int {
	if count <= 0 || peak <= 0 {
		return 0
	}
	n := int(math.Round(float64(count) / float64(peak) * float64(width)))
	return max(n, 1)
}
