// Package cli renders payoff results for the terminal.
package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	ColorBorder = lipgloss.Color("#282726")
	ColorText   = lipgloss.Color("#FFFCF0")
	ColorMuted  = lipgloss.Color("#6F6E69")
	ColorAccent = lipgloss.Color("#00BFFF")
	ColorTrack  = lipgloss.Color("#1A1F2F")
	ColorWarn   = lipgloss.Color("#DA702C")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	warnStyle = lipgloss.NewStyle().
			Foreground(ColorWarn)
)

// Table is a bordered text table. Columns after the first are right-aligned.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTitle renders a centered title in a rounded box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(50).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders t with box-drawing borders. A row of {"---"} draws a separator.
func RenderTable(t Table) string {
	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}
	if numCols == 0 {
		return ""
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < numCols && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	line := func(left, mid, right string) string {
		parts := make([]string, numCols)
		for i, w := range widths {
			parts[i] = strings.Repeat("─", w+2)
		}
		return mutedStyle.Render(left + strings.Join(parts, mid) + right)
	}
	sep := mutedStyle.Render("│")

	renderRow := func(cells []string, style *lipgloss.Style) string {
		var b strings.Builder
		b.WriteString(sep)
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			pad := strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
			if style != nil {
				cell = style.Render(cell)
			}
			if i == 0 {
				b.WriteString(" " + cell + pad + " ")
			} else {
				b.WriteString(" " + pad + cell + " ")
			}
			b.WriteString(sep)
		}
		return b.String()
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  " + headerStyle.Render(t.Title) + "\n")
	}
	b.WriteString(line("┌", "┬", "┐") + "\n")
	if len(t.Headers) > 0 {
		b.WriteString(renderRow(t.Headers, &headerStyle) + "\n")
		b.WriteString(line("├", "┼", "┤") + "\n")
	}
	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			b.WriteString(line("├", "┼", "┤") + "\n")
			continue
		}
		b.WriteString(renderRow(row, nil) + "\n")
	}
	b.WriteString(line("└", "┴", "┘") + "\n")
	return b.String()
}

// RenderProgress draws a horizontal bar for a 0-100 percentage.
func RenderProgress(percent float64, width int) string {
	percent = max(0, min(100, percent))
	filled := int(percent / 100 * float64(width))

	bar := lipgloss.NewStyle().Foreground(ColorAccent).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(ColorTrack).Render(strings.Repeat("█", width-filled))
	return fmt.Sprintf("%s %s", bar, headerStyle.Render(fmt.Sprintf("%.1f%% Paid", percent)))
}

// RenderWarning renders a highlighted warning line.
func RenderWarning(msg string) string {
	return warnStyle.Render("  ! " + msg)
}
