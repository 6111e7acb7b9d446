package report

import (
	"fmt"
	"time"
)

// FormatSeconds renders an elapsed time the way the report shows it:
// "45.20s" below a minute, "2m5.50s" from one minute on.
func FormatSeconds(sec float64) string {
	if sec >= 60 {
		m := int(sec / 60)
		return fmt.Sprintf("%dm%.2fs", m, sec-float64(m*60))
	}
	return fmt.Sprintf("%.2fs", sec)
}

// FormatDuration is FormatSeconds for a Duration
func FormatDuration(d time.Duration) string {
	return FormatSeconds(d.Seconds())
}

// machineSeconds is the value stored in data-elapsed for client-side sorting
func machineSeconds(d time.Duration) string {
	return fmt.Sprintf("%.3f", d.Seconds())
}
