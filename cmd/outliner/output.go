package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"

	"github.com/tsawler/outliner/batch"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1)
)

// FormatSummary renders the end-of-run report: one line per document,
// then a totals box.
func FormatSummary(w io.Writer, s batch.Summary) {
	for _, r := range s.Results {
		name := filepath.Base(r.Path)
		if r.Failed() {
			fmt.Fprintf(w, "%s %s  %s\n",
				errorStyle.Render("✗"), name, dimStyle.Render(r.Err.Error()))
			continue
		}
		fmt.Fprintf(w, "%s %s  %s %d  %s %.2fs\n",
			successStyle.Render("✓"), name,
			dimStyle.Render("headings:"), r.Entries,
			dimStyle.Render("in"), r.Duration.Seconds())
	}

	var status string
	if s.Failed > 0 {
		status = errorStyle.Render(fmt.Sprintf("%d failed", s.Failed))
	} else {
		status = successStyle.Render("all succeeded")
	}

	content := fmt.Sprintf("%s\n%s %d  %s %d  %s  %s %.2fs",
		titleStyle.Render("Outline Extraction Complete"),
		dimStyle.Render("Documents:"), s.Total,
		dimStyle.Render("Succeeded:"), s.Succeeded,
		status,
		dimStyle.Render("Elapsed:"), s.Elapsed.Seconds())
	fmt.Fprintln(w, boxStyle.Render(content))
}
