package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	passStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// Printer renders a report as a human-readable transcript.
type Printer struct {
	// Verbose also prints per-category progress lines
	Verbose bool

	// Quiet suppresses everything except errors
	Quiet bool
}

// Print writes the transcript to w.
func (p Printer) Print(w io.Writer, r *Report) {
	if !p.Quiet {
		fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Validating %s", r.File)))
	}

	if p.Verbose && !p.Quiet {
		for _, cat := range []string{"syntax", "structure", "referential"} {
			status := r.Categories[cat]
			mark := passStyle.Render("ok")
			if status == StatusFail {
				mark = failStyle.Render("FAIL")
			}
			fmt.Fprintf(w, "  %-12s %s\n", cat, mark)
		}
	}

	for _, line := range r.Results {
		switch {
		case strings.HasPrefix(line, "error:"):
			fmt.Fprintln(w, failStyle.Render(line))
		case strings.HasPrefix(line, "warning:"):
			if !p.Quiet {
				fmt.Fprintln(w, warnStyle.Render(line))
			}
		default:
			if !p.Quiet {
				fmt.Fprintln(w, line)
			}
		}
	}

	if p.Quiet {
		return
	}
	summary := fmt.Sprintf("%s: %d errors, %d warnings", r.Status, r.ErrorCount, r.WarningCount)
	if r.Status == StatusPass {
		fmt.Fprintln(w, passStyle.Render(summary))
	} else {
		fmt.Fprintln(w, failStyle.Render(summary))
	}
}
