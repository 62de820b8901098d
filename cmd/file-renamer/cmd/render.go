package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bianoble/file-renamer/internal/engine"
	"github.com/bianoble/file-renamer/internal/listing"
	"github.com/bianoble/file-renamer/internal/plan"
)

type theme struct {
	header   lipgloss.Style
	oldName  lipgloss.Style
	newName  lipgloss.Style
	muted    lipgloss.Style
	conflict lipgloss.Style
	success  lipgloss.Style
	failure  lipgloss.Style
}

func newTheme(color bool) theme {
	if !color {
		plain := lipgloss.NewStyle()
		return theme{plain, plain, plain, plain, plain, plain, plain}
	}
	return theme{
		header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#06B6D4")),
		oldName:  lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8")),
		newName:  lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")),
		muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#64748B")),
		conflict: lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")),
		success:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981")),
		failure:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444")),
	}
}

func currentTheme() theme {
	return newTheme(!noColor)
}

// pad right-pads s to width display cells.
func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// renderPlan prints the operations and conflicts of p.
func renderPlan(w io.Writer, p *plan.Plan, th theme) {
	fmt.Fprintln(w, th.header.Render(fmt.Sprintf("Plan for %s (%s)", p.Directory, p.Mode)))

	width := 0
	for _, op := range p.Operations {
		width = max(width, lipgloss.Width(op.OldName))
	}
	for _, c := range p.Conflicts {
		width = max(width, lipgloss.Width(c.TargetName))
	}

	for _, op := range p.Operations {
		line := fmt.Sprintf("  %s  →  %s", th.oldName.Render(pad(op.OldName, width)), th.newName.Render(op.NewName))
		if op.SourceName != "" {
			line += th.muted.Render(fmt.Sprintf("   (from %s)", op.SourceName))
		}
		fmt.Fprintln(w, line)
	}

	if len(p.Conflicts) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, th.conflict.Render("Conflicts (not renamed):"))
		for _, c := range p.Conflicts {
			reason := c.Reason
			if c.Detail != "" {
				reason += ": " + c.Detail
			}
			fmt.Fprintf(w, "  %s  →  %s   %s\n", pad(c.TargetName, width), c.NewName, th.conflict.Render(reason))
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, th.muted.Render(fmt.Sprintf("%d rename(s), %d conflict(s)", len(p.Operations), len(p.Conflicts))))
}

// renderResult prints the execution summary and every failure.
func renderResult(w io.Writer, r *engine.ExecuteResult, th theme) {
	summary := fmt.Sprintf("Renamed %d file(s).", r.Success)
	if len(r.Errors) == 0 {
		fmt.Fprintln(w, th.success.Render(summary))
		return
	}

	fmt.Fprintln(w, summary)
	fmt.Fprintln(w, th.failure.Render(fmt.Sprintf("%d rename(s) failed:", len(r.Errors))))
	for _, e := range r.Errors {
		fmt.Fprintf(w, "  %s\n", e)
	}
	if r.Canceled {
		fmt.Fprintln(w, th.muted.Render("Interrupted: remaining renames were not started."))
	}
}

// renderListing prints one line per file with its size.
func renderListing(w io.Writer, dir string, entries []listing.FileEntry, th theme) {
	fmt.Fprintln(w, th.header.Render(dir))

	width := 0
	for _, e := range entries {
		width = max(width, lipgloss.Width(e.Name))
	}
	for i, e := range entries {
		fmt.Fprintf(w, "  %s  %s  %s\n",
			th.muted.Render(fmt.Sprintf("%3d", i+1)),
			pad(e.Name, width),
			th.muted.Render(humanSize(e.Size)))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, th.muted.Render(fmt.Sprintf("%d file(s)", len(entries))))
}
