package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/smykla-labs/adapterqa/internal/catalogue"
	"github.com/smykla-labs/adapterqa/internal/outcome"
	"github.com/smykla-labs/adapterqa/pkg/mdtable"
)

const (
	ruleWidth = 80

	// TimestampLayout is the ISO-8601 form used for the generated timestamp in the text report.
	TimestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

// TextWriter renders a Report as a checklist-style console report.
type TextWriter struct {
	color bool
}

// NewTextWriter creates a TextWriter. When color is false no escape sequences are written.
func NewTextWriter(color bool) *TextWriter {
	return &TextWriter{color: color}
}

// Write renders r to w.
func (t *TextWriter) Write(w io.Writer, r *Report) error {
	var sb strings.Builder

	t.writeHeader(&sb, r)
	t.writeSummary(&sb, r)

	if len(r.Failed) > 0 {
		t.writeFailures(&sb, r.Failed)
	} else {
		t.writePassed(&sb, r.Passed)
	}

	t.writeNotes(&sb, r.Noted())
	t.writeFooter(&sb)

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return errors.Wrap(err, "write text report")
	}

	return nil
}

func (t *TextWriter) writeHeader(sb *strings.Builder, r *Report) {
	sb.WriteString("\n" + strings.Repeat("=", ruleWidth) + "\n")
	sb.WriteString(t.paint("ADAPTER QA REPORT", text.Bold) + "\n")
	sb.WriteString(strings.Repeat("=", ruleWidth) + "\n")
	fmt.Fprintf(sb, "\nGenerated: %s\n", r.Generated.Format(TimestampLayout))
}

func (t *TextWriter) writeSummary(sb *strings.Builder, r *Report) {
	s := r.Summary

	sb.WriteString("\n## Summary\n\n")
	fmt.Fprintf(sb, "Total Checks: %d\n", s.Total)
	fmt.Fprintf(sb, "Passed: %s\n", t.paint(strconv.Itoa(s.Passed), text.FgGreen))

	failed := strconv.Itoa(s.Failed)
	if s.Failed > 0 {
		failed = t.paint(failed, text.FgRed)
	}

	fmt.Fprintf(sb, "Failed: %s\n", failed)

	if s.Failed == 0 {
		return
	}

	table := mdtable.New("Severity", "Failures").SetAlignment(1, mdtable.AlignRight)

	classified := 0

	for _, sev := range catalogue.Levels() {
		n := s.BySeverity(sev)
		if n == 0 {
			continue
		}

		classified += n
		table.AddRow(sev.Icon()+" "+sev.Label(), strconv.Itoa(n))
	}

	if rest := s.Failed - classified; rest > 0 {
		table.AddRow(catalogue.SeverityUnknown.Icon()+" "+catalogue.SeverityUnknown.Label(), strconv.Itoa(rest))
	}

	sb.WriteString("\nFailures by Severity:\n\n")
	sb.WriteString(table.String())
}

func (t *TextWriter) writeFailures(sb *strings.Builder, items []Item) {
	fmt.Fprintf(sb, "\n## Failed Checks (%d)\n\n", len(items))

	for _, item := range items {
		heading := fmt.Sprintf("[%s] %s", item.RuleID, shortTitle(item.Title))
		if item.Subject != "" {
			heading += " (" + item.Subject + ")"
		}

		fmt.Fprintf(sb, "### %s %s\n\n", item.Severity.Icon(), t.paint(heading, SeverityColors(item.Severity)...))

		if item.Rationale != "" {
			fmt.Fprintf(sb, "**Why this matters:** %s\n\n", item.Rationale)
		}

		if item.SuggestedFix != "" {
			fmt.Fprintf(sb, "**How to fix:** %s\n\n", item.SuggestedFix)
		}

		if item.ErrorMessage != "" {
			fmt.Fprintf(sb, "**Error:** `%s`\n\n", firstLine(item.ErrorMessage))
		}

		sb.WriteString("---\n")
	}
}

// writePassed lists passed checks. It runs only when nothing failed.
func (t *TextWriter) writePassed(sb *strings.Builder, items []Item) {
	if len(items) == 0 {
		return
	}

	fmt.Fprintf(sb, "\n## All Checks Passed! ✅\n\n%d checks completed successfully.\n\n", len(items))

	for _, item := range items {
		line := fmt.Sprintf("✅ [%s] %s", item.RuleID, shortTitle(item.Title))
		if item.Subject != "" {
			line += " (" + item.Subject + ")"
		}

		sb.WriteString(line + "\n")
	}
}

func (t *TextWriter) writeNotes(sb *strings.Builder, items []Item) {
	if len(items) == 0 {
		return
	}

	fmt.Fprintf(sb, "\n## Advisory Notes (%d)\n\n", len(items))

	for _, item := range items {
		line := fmt.Sprintf("ℹ️  [%s] %s", item.RuleID, shortTitle(item.Title))
		if item.Subject != "" {
			line += " (" + item.Subject + ")"
		}

		sb.WriteString(t.paint(line, text.FgCyan) + "\n")

		for _, note := range item.Notes {
			fmt.Fprintf(sb, "     %s\n", note)
		}
	}
}

func (t *TextWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString("\n" + strings.Repeat("=", ruleWidth) + "\n")
	sb.WriteString("END OF REPORT\n")
	sb.WriteString(strings.Repeat("=", ruleWidth) + "\n\n")
}

func (t *TextWriter) paint(s string, colors ...text.Color) string {
	if !t.color || len(colors) == 0 {
		return s
	}

	return text.Colors(colors).Sprint(s)
}

// SeverityColors returns the terminal colours used for a severity.
func SeverityColors(sev catalogue.Severity) text.Colors {
	switch sev {
	case catalogue.SeverityCritical:
		return text.Colors{text.FgRed, text.Bold}
	case catalogue.SeverityHigh:
		return text.Colors{text.FgRed}
	case catalogue.SeverityMedium:
		return text.Colors{text.FgYellow}
	case catalogue.SeverityLow:
		return text.Colors{text.FgGreen}
	default:
		return nil
	}
}

func shortTitle(title string) string {
	o := outcome.Outcome{Title: title}

	return o.ShortTitle()
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")

	return line
}
