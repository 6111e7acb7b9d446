// Package aggregate turns parsed JUnit suites into the report data model.
// Everything here is a pure function of its input.
package aggregate

import (
	"sort"

	"junit2html/internal/domain"
)

// Aggregate builds the suite summaries, the flat case list and the run
// totals. Suites sharing a name keep one summary row per input suite while
// their cases are later grouped under a single heading by Group.
func Aggregate(parsed []domain.ParsedSuite) domain.Report {
	report := domain.Report{
		Suites: make([]domain.SuiteSummary, 0, len(parsed)),
	}

	for _, s := range parsed {
		report.Suites = append(report.Suites, Summarize(s))
		report.Cases = append(report.Cases, s.Cases...)
	}

	sort.SliceStable(report.Suites, func(i, j int) bool {
		a, b := report.Suites[i], report.Suites[j]
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.File < b.File
	})
	sort.SliceStable(report.Cases, func(i, j int) bool {
		return caseLess(report.Cases[i], report.Cases[j])
	})

	report.Totals = Totals(report.Suites)
	return report
}

// Summarize computes the summary row of one suite. Attribute counters win
// when present, otherwise they are derived from the case list. A missing
// time attribute means zero.
func Summarize(s domain.ParsedSuite) domain.SuiteSummary {
	var derived domain.Counts
	for _, c := range s.Cases {
		derived.AddCase(c)
	}

	summary := domain.SuiteSummary{
		Name: s.Name,
		File: s.File,
		Counts: domain.Counts{
			Tests:    valueOr(s.Tests, derived.Tests),
			Failures: valueOr(s.Failures, derived.Failures),
			Errors:   valueOr(s.Errors, derived.Errors),
			Skipped:  valueOr(s.Skipped, derived.Skipped),
		},
	}
	if s.Time != nil {
		summary.Elapsed = domain.Seconds(*s.Time)
	}
	return summary
}

// Totals sums suite summaries into the run totals
func Totals(suites []domain.SuiteSummary) domain.ReportTotals {
	totals := domain.ReportTotals{Suites: len(suites)}
	for _, s := range suites {
		totals.Add(s.Counts)
	}
	return totals
}

func valueOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

func caseLess(a, b domain.TestCaseRecord) bool {
	if a.Suite != b.Suite {
		return a.Suite < b.Suite
	}
	if ac, bc := a.GroupClass(), b.GroupClass(); ac != bc {
		return ac < bc
	}
	return a.Name < b.Name
}
