package domain

import (
	"math"
	"time"
)

// Counts holds the result counters shared by every total and subtotal
type Counts struct {
	Tests    int           `json:"tests"`
	Failures int           `json:"failures"`
	Errors   int           `json:"errors"`
	Skipped  int           `json:"skipped"`
	Elapsed  time.Duration `json:"elapsed"`
}

// Passed is the only place the passed count is derived.
func (c Counts) Passed() int {
	return c.Tests - c.Failures - c.Errors - c.Skipped
}

// Add accumulates other into c
func (c *Counts) Add(other Counts) {
	c.Tests += other.Tests
	c.Failures += other.Failures
	c.Errors += other.Errors
	c.Skipped += other.Skipped
	c.Elapsed += other.Elapsed
}

// AddCase counts a single case by its status
func (c *Counts) AddCase(tc TestCaseRecord) {
	c.Tests++
	switch tc.Status {
	case StatusFail:
		c.Failures++
	case StatusError:
		c.Errors++
	case StatusSkip:
		c.Skipped++
	}
	c.Elapsed += tc.Elapsed
}

// SuiteSummary is one <testsuite> element of one input file
type SuiteSummary struct {
	Name string `json:"name"`
	File string `json:"file"`
	Counts
}

// ReportTotals aggregates all suite summaries of a run
type ReportTotals struct {
	Suites int `json:"suites"`
	Counts
}

// Report is the complete aggregated result set handed to the renderers
type Report struct {
	Suites []SuiteSummary   `json:"suites"`
	Cases  []TestCaseRecord `json:"cases"`
	Totals ReportTotals     `json:"totals"`
}

// ParsedSuite is a suite as read from XML, before aggregation.
// Attribute counters are nil when the attribute was absent or unparsable.
type ParsedSuite struct {
	Name     string
	File     string
	Tests    *int
	Failures *int
	Errors   *int
	Skipped  *int
	Time     *float64
	Cases    []TestCaseRecord
}

// Seconds converts a JUnit time value in seconds to a Duration
func Seconds(sec float64) time.Duration {
	return time.Duration(math.Round(sec * float64(time.Second)))
}
