package domain

import "time"

// DefaultClassname groups cases whose classname attribute is empty
const DefaultClassname = "Default"

// TestCaseRecord is one normalized test case result
type TestCaseRecord struct {
	Suite     string        `json:"suite"`
	File      string        `json:"file"` // base name of the input file
	Classname string        `json:"classname"`
	Name      string        `json:"name"`
	Elapsed   time.Duration `json:"elapsed"`
	Status    Status        `json:"status"`
	Message   string        `json:"message,omitempty"` // first failure/error/skip message
	Detail    string        `json:"detail,omitempty"`  // body text of that element
}

// GroupClass returns the classname used as grouping key
func (c TestCaseRecord) GroupClass() string {
	if c.Classname == "" {
		return DefaultClassname
	}
	return c.Classname
}

// HasDetails reports whether the case gets an expandable details block.
// Failures and errors always do, skips only when they carry text.
func (c TestCaseRecord) HasDetails() bool {
	switch c.Status {
	case StatusFail, StatusError:
		return true
	case StatusSkip:
		return c.Message != "" || c.Detail != ""
	}
	return false
}
