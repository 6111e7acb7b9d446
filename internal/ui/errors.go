package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"junit2html/internal/domain"
	"junit2html/internal/report"
)

// ErrorViewer browses test cases in an interactive TUI
type ErrorViewer struct {
	out io.Writer
}

// NewErrorViewer creates a new ErrorViewer; out receives the message
// printed instead of the TUI when there is nothing to show.
func NewErrorViewer(out io.Writer) *ErrorViewer {
	return &ErrorViewer{out: out}
}

// View displays the cases of rep in an interactive TUI
func (ev *ErrorViewer) View(title string, rep domain.Report, all bool) error {
	cases := browseCases(rep.Cases, all)
	if len(cases) == 0 {
		successColor.Fprintln(ev.out, "✓ No test failures found!")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	for i, tc := range cases {
		list.AddItem(listItemText(tc, i+1), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)

	// path of the selected case
	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetWordWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	// list on the left (1/3), details on the right (2/3)
	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(headerText(title, rep.Totals, len(cases)))

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(cases) {
			statsView.SetText(formatCaseStats(cases[index]))
			detailsView.SetText(formatCaseDetails(cases[index])).ScrollToBeginning()
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				app.Stop()
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(int, string, string, rune) {
		updateDetails()
	})
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// tagColor maps a status to a tview colour tag
func tagColor(s domain.Status) string {
	switch s {
	case domain.StatusFail:
		return "red"
	case domain.StatusError:
		return "fuchsia"
	case domain.StatusSkip:
		return "yellow"
	}
	return "green"
}

func headerText(title string, totals domain.ReportTotals, shown int) string {
	return fmt.Sprintf(" %s | %d of %d tests | [red]%d failed[white], [fuchsia]%d errors[white], [yellow]%d skipped[white] | ↑↓ navigate, → details, ← back, q quit ",
		tview.Escape(title), shown, totals.Tests, totals.Failures, totals.Errors, totals.Skipped)
}

func listItemText(tc domain.TestCaseRecord, number int) string {
	return fmt.Sprintf("[yellow]%d.[%s] %-5s[white] %s", number, tagColor(tc.Status), tc.Status.Label(), tview.Escape(tc.Name))
}

// formatCaseStats formats the location line shown above the details
func formatCaseStats(tc domain.TestCaseRecord) string {
	return fmt.Sprintf("[cyan]suite:[white] [yellow]%s[white]  [cyan]class:[white] [yellow]%s[white]\n[cyan]file:[white] %s  [cyan]time:[white] %s\n",
		tview.Escape(tc.Suite), tview.Escape(tc.GroupClass()), tview.Escape(tc.File), report.FormatDuration(tc.Elapsed))
}

// formatCaseDetails formats a test case using tview colour tags
func formatCaseDetails(tc domain.TestCaseRecord) string {
	var w strings.Builder

	color := tagColor(tc.Status)
	fmt.Fprintf(&w, "[%s]%s: %s[white]\n\n", color, tc.Status.Label(), tview.Escape(tc.Name))

	if tc.Message != "" {
		fmt.Fprintf(&w, "[yellow]Message:[white]\n%s\n\n", tview.Escape(tc.Message))
	} else if tc.HasDetails() {
		fmt.Fprintf(&w, "[gray](no message)[white]\n\n")
	}

	if detail := strings.TrimSpace(tc.Detail); detail != "" {
		fmt.Fprintf(&w, "[yellow]Details:[white]\n%s\n", tview.Escape(detail))
	}

	return w.String()
}
