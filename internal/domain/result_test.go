package domain

import (
	"testing"
	"time"
)

func TestCounts_Passed(t *testing.T) {
	c := Counts{Tests: 10, Failures: 2, Errors: 1, Skipped: 3}
	if got := c.Passed(); got != 4 {
		t.Errorf("expected 4 passed, got %d", got)
	}
}

func TestCounts_AddCase(t *testing.T) {
	var c Counts
	for _, s := range []Status{StatusPass, StatusFail, StatusError, StatusSkip, StatusPass} {
		c.AddCase(TestCaseRecord{Status: s, Elapsed: time.Second})
	}
	want := Counts{Tests: 5, Failures: 1, Errors: 1, Skipped: 1, Elapsed: 5 * time.Second}
	if c != want {
		t.Errorf("expected %+v, got %+v", want, c)
	}
	if c.Passed() != 2 {
		t.Errorf("expected 2 passed, got %d", c.Passed())
	}
}

func TestSeconds(t *testing.T) {
	tests := []struct {
		in   float64
		want time.Duration
	}{
		{0, 0},
		{0.1, 100 * time.Millisecond},
		{45.2, 45200 * time.Millisecond},
		{125.5, 125500 * time.Millisecond},
	}
	for _, tt := range tests {
		if got := Seconds(tt.in); got != tt.want {
			t.Errorf("Seconds(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestStatus(t *testing.T) {
	order := []Status{StatusError, StatusFail, StatusSkip, StatusPass}
	for i := 1; i < len(order); i++ {
		if order[i-1].Priority() >= order[i].Priority() {
			t.Errorf("%s should sort before %s", order[i-1], order[i])
		}
	}

	if StatusError.Label() != "ERROR" || StatusSkip.Label() != "SKIP" {
		t.Errorf("unexpected labels %q %q", StatusError.Label(), StatusSkip.Label())
	}

	if s, ok := ParseStatus("err"); !ok || s != StatusError {
		t.Errorf("ParseStatus(err) = %q, %v", s, ok)
	}
	if _, ok := ParseStatus("all"); ok {
		t.Error("ParseStatus(all) should not resolve to a status")
	}
}

func TestTestCaseRecord(t *testing.T) {
	if got := (TestCaseRecord{}).GroupClass(); got != DefaultClassname {
		t.Errorf("expected placeholder classname, got %q", got)
	}
	if (TestCaseRecord{Status: StatusSkip}).HasDetails() {
		t.Error("bare skip should not have details")
	}
	if !(TestCaseRecord{Status: StatusSkip, Detail: "reason"}).HasDetails() {
		t.Error("skip with detail should have details")
	}
	if (TestCaseRecord{Status: StatusPass, Message: "x"}).HasDetails() {
		t.Error("pass never has details")
	}
}
