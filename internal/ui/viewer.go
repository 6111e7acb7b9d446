package ui

import (
	"sort"

	"junit2html/internal/domain"
)

// Viewer displays test results in an interactive TUI
type Viewer interface {
	View(title string, rep domain.Report, all bool) error
}

// browseCases returns the cases shown by the viewer: every case when all is
// set, otherwise only the ones that did not pass. Worst status first.
func browseCases(cases []domain.TestCaseRecord, all bool) []domain.TestCaseRecord {
	var out []domain.TestCaseRecord
	for _, tc := range cases {
		if all || tc.Status != domain.StatusPass {
			out = append(out, tc)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Status.Priority() < out[j].Status.Priority()
	})
	return out
}
