package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"junit2html/internal/aggregate"
	"junit2html/internal/domain"
	"junit2html/internal/report"
)

var (
	successColor = color.New(color.FgGreen)
	failureColor = color.New(color.FgRed)
	errorColor   = color.New(color.FgMagenta)
	skipColor    = color.New(color.FgYellow)
	headerColor  = color.New(color.FgCyan)
)

// statusColor returns the console colour used for a status
func statusColor(s domain.Status) *color.Color {
	switch s {
	case domain.StatusFail:
		return failureColor
	case domain.StatusError:
		return errorColor
	case domain.StatusSkip:
		return skipColor
	}
	return successColor
}

// Formatter prints run results to the console
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a new Formatter writing to out
func NewFormatter(out io.Writer) *Formatter {
	return &Formatter{out: out}
}

// PrintWritten confirms that a file was written
func (f *Formatter) PrintWritten(path string) {
	successColor.Fprintf(f.out, "✓ Wrote %s\n", path)
}

// SummaryLine is the one-line totals summary printed after every run
func SummaryLine(t domain.ReportTotals) string {
	return fmt.Sprintf("Suites: %d, Tests: %d, Passed: %d, Failures: %d, Errors: %d, Skipped: %d",
		t.Suites, t.Tests, t.Passed(), t.Failures, t.Errors, t.Skipped)
}

// PrintSummary prints the totals line, red when anything failed
func (f *Formatter) PrintSummary(t domain.ReportTotals) {
	c := successColor
	if t.Failures > 0 || t.Errors > 0 {
		c = failureColor
	}
	c.Fprintln(f.out, SummaryLine(t))
}

// PrintSuiteTable prints one row per suite summary
func (f *Formatter) PrintSuiteTable(suites []domain.SuiteSummary) {
	nameWidth := len("Suite")
	for _, s := range suites {
		if n := len([]rune(s.Name)); n > nameWidth {
			nameWidth = n
		}
	}
	if nameWidth > 48 {
		nameWidth = 48
	}

	rule := func(left, mid, right string) {
		fmt.Fprintf(f.out, "%s%s%s%s%s\n", left, strings.Repeat("─", nameWidth+2), mid,
			strings.Repeat("─", 51), right)
	}

	rule("┌", "┬", "┐")
	headerColor.Fprintf(f.out, "│ %-*s │ %6s %6s %6s %6s %6s %14s │\n", nameWidth, "Suite",
		"Tests", "Pass", "Fail", "Error", "Skip", "Time")
	for _, s := range suites {
		rule("├", "┼", "┤")
		fmt.Fprintf(f.out, "│ %-*s │ %6d ", nameWidth, truncate(s.Name, nameWidth), s.Tests)
		successColor.Fprintf(f.out, "%6d ", s.Passed())
		failureColor.Fprintf(f.out, "%6d ", s.Failures)
		errorColor.Fprintf(f.out, "%6d ", s.Errors)
		skipColor.Fprintf(f.out, "%6d ", s.Skipped)
		fmt.Fprintf(f.out, "%14s │\n", report.FormatDuration(s.Elapsed))
	}
	rule("└", "┴", "┘")
}

// PrintFailureTree prints every non-passing case as a suite/class/case tree
func (f *Formatter) PrintFailureTree(groups []aggregate.SuiteGroup) {
	var suites []aggregate.SuiteGroup
	for _, g := range groups {
		if g.Tests-g.Passed() > 0 {
			suites = append(suites, g)
		}
	}
	if len(suites) == 0 {
		successColor.Fprintln(f.out, "✓ All tests passed!")
		return
	}

	for i, suite := range suites {
		lastSuite := i == len(suites)-1
		headerColor.Fprintf(f.out, "%s%s\n", branch(lastSuite), suite.Name)

		var classes []aggregate.ClassGroup
		for _, cls := range suite.Classes {
			if cls.Tests-cls.Passed() > 0 {
				classes = append(classes, cls)
			}
		}
		for j, cls := range classes {
			lastClass := j == len(classes)-1
			prefix := indent(lastSuite)
			skipColor.Fprintf(f.out, "%s%s%s\n", prefix, branch(lastClass), cls.Name)

			var cases []domain.TestCaseRecord
			for _, tc := range cls.Cases {
				if tc.Status != domain.StatusPass {
					cases = append(cases, tc)
				}
			}
			for k, tc := range cases {
				statusColor(tc.Status).Fprintf(f.out, "%s%s[%s] %s\n",
					prefix+indent(lastClass), branch(k == len(cases)-1), tc.Status.Label(), tc.Name)
			}
		}
	}
}

func branch(last bool) string {
	if last {
		return "└── "
	}
	return "├── "
}

func indent(last bool) string {
	if last {
		return "    "
	}
	return "│   "
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}
