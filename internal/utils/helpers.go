package utils

import (
	"math"

	"github.com/dustin/go-humanize"
)

// FormatSalary formats a salary figure rounded to whole units with thousands separators
func FormatSalary(v float64) string {
	return humanize.Comma(int64(math.Round(v)))
}

// FormatCount formats an offer count with thousands separators
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}

// FormatShare formats part/total as a percentage with one decimal
func FormatShare(part, total int) string {
	if total == 0 {
		return "-"
	}
	return humanize.FtoaWithDigits(float64(part)*100/float64(total), 1) + "%"
}
