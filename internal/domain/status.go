package domain

// Status classifies the outcome of a single test case
type Status string

const (
	StatusPass  Status = "pass"
	StatusFail  Status = "fail"
	StatusError Status = "error"
	StatusSkip  Status = "skip"
)

// Label returns the upper-case label shown in reports
func (s Status) Label() string {
	switch s {
	case StatusPass:
		return "PASS"
	case StatusFail:
		return "FAIL"
	case StatusError:
		return "ERROR"
	case StatusSkip:
		return "SKIP"
	default:
		return string(s)
	}
}

// Priority orders statuses for the default sort: error, fail, skip, pass.
func (s Status) Priority() int {
	switch s {
	case StatusError:
		return 0
	case StatusFail:
		return 1
	case StatusSkip:
		return 2
	default:
		return 3
	}
}

// ParseStatus maps a filter value or label back to a Status.
// Empty and "all" return ok=false.
func ParseStatus(v string) (Status, bool) {
	switch v {
	case "pass", "PASS", "ok":
		return StatusPass, true
	case "fail", "FAIL":
		return StatusFail, true
	case "error", "ERROR", "err":
		return StatusError, true
	case "skip", "SKIP", "skipped":
		return StatusSkip, true
	}
	return "", false
}
