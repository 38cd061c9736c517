package output

import (
	"fmt"
	"io"

	"github.com/Adamcf123/OpenSpec/internal/frontmatter"
	"github.com/Adamcf123/OpenSpec/internal/integrations"
	"github.com/Adamcf123/OpenSpec/internal/scaffold"
	"github.com/Adamcf123/OpenSpec/internal/slash"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Printer writes styled reports to w.
type Printer struct {
	w io.Writer
}

// New returns a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Header prints a boxed title.
func (p *Printer) Header(title string) {
	fmt.Fprintln(p.w, HeaderBox().Render(StyleTitle.Render(title)))
}

// Success prints a line prefixed with a check mark.
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", MarkOK, fmt.Sprintf(format, args...))
}

// Warn prints a warning line.
func (p *Printer) Warn(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", MarkWarn, StyleWarning.Render(fmt.Sprintf(format, args...)))
}

// Info prints an unstyled line.
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Scaffold lists files written by init.
func (p *Printer) Scaffold(r *scaffold.Result) {
	if r == nil {
		return
	}
	for _, f := range r.Files {
		fmt.Fprintf(p.w, "  %s %s\n", MarkOK, f)
	}
	for _, f := range r.Skipped {
		fmt.Fprintf(p.w, "  %s %s %s\n", MarkPending, f, StyleMuted.Render("(exists, kept)"))
	}
}

// Generate summarizes per-tool generate or update results.
func (p *Printer) Generate(results []integrations.GenerateResult) {
	for _, r := range results {
		switch {
		case r.Skipped:
			fmt.Fprintf(p.w, "  %s %s %s\n", MarkPending, StyleBold.Render(string(r.Tool)), StyleMuted.Render("skipped"))
		case len(r.Written) == 0:
			fmt.Fprintf(p.w, "  %s %s %s\n", MarkPending, StyleBold.Render(string(r.Tool)), StyleMuted.Render("nothing to update"))
		default:
			fmt.Fprintf(p.w, "  %s %s %d file(s) %s\n", MarkOK, StyleBold.Render(string(r.Tool)), len(r.Written), StyleMuted.Render("["+r.Policy+"]"))
			for _, path := range r.Written {
				fmt.Fprintf(p.w, "      %s\n", StyleMuted.Render(path))
			}
		}
		for _, w := range r.Warnings {
			fmt.Fprintf(p.w, "    %s %s\n", MarkWarn, StyleWarning.Render(w))
		}
	}
}

// Status prints one line per tool followed by its targets.
func (p *Printer) Status(results []integrations.StatusResult) {
	for _, r := range results {
		if !r.Available {
			fmt.Fprintf(p.w, "  %s %s %s\n", MarkPending, StyleBold.Render(string(r.Tool)), StyleMuted.Render("unavailable"))
			continue
		}
		summary := r.Summary()
		fmt.Fprintf(p.w, "  %s %s %s\n", summaryMark(summary), StyleBold.Render(string(r.Tool)), summary)
		for _, t := range r.Targets {
			fmt.Fprintf(p.w, "      %s %-8s %s\n", stateMark(t.State), t.ID, StyleMuted.Render(t.Path))
		}
	}
}

// DryRun lists the paths a dry run would have written.
func (p *Printer) DryRun(paths []string) {
	fmt.Fprintf(p.w, "%s %s\n", MarkPending, StyleWarning.Render(fmt.Sprintf("Dry run: %d file(s) would be written, nothing changed on disk", len(paths))))
	for _, path := range paths {
		fmt.Fprintf(p.w, "      %s\n", StyleMuted.Render(path))
	}
}

// Issues prints frontmatter validation issues for one file.
func (p *Printer) Issues(path string, issues []frontmatter.ValidationIssue) {
	fmt.Fprintf(p.w, "  %s %s\n", MarkFail, path)
	for _, issue := range issues {
		fmt.Fprintf(p.w, "      %s\n", StyleError.Render(issue.String()))
	}
}

func summaryMark(summary string) string {
	switch summary {
	case "up-to-date":
		return MarkOK
	case "stale", "partial":
		return MarkWarn
	default:
		return MarkPending
	}
}

func stateMark(s slash.State) string {
	switch s {
	case slash.StateUpToDate:
		return MarkOK
	case slash.StateStale:
		return MarkWarn
	default:
		return MarkPending
	}
}

// Table renders a header row and body rows as a bordered table.
func Table(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(StyleMuted).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return StyleTitle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(headers...).
		Rows(rows...)
	return t.Render()
}
