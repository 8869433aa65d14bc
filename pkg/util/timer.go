package util

import (
	"fmt"
	"time"
)

// FormatSeconds renders d as fractional seconds, e.g. "0.001250 sec"
func FormatSeconds(d time.Duration) string {
	return fmt.Sprintf("%0.6f sec", d.Seconds())
}

// FormatRatio renders a growth ratio, leaving the first sample blank
func FormatRatio(r float64) string {
	if r == 0 {
		return "-"
	}
	return fmt.Sprintf("%.2fx", r)
}
