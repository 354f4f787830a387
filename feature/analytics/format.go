package analytics

import (
	"fmt"
	"math"
	"strconv"
)

// formatCurrency renders a dollar amount rounded to whole dollars with comma
// separated thousands, e.g. 1234567.8 -> "$1,234,568".
func formatCurrency(v float64) string {
	n := int64(math.Round(v))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	if len(s) > 3 {
		var out []byte
		for i, c := range []byte(s) {
			if i > 0 && (len(s)-i)%3 == 0 {
				out = append(out, ',')
			}
			out = append(out, c)
		}
		s = string(out)
	}
	return sign + "$" + s
}

// formatPercent renders a rate with one decimal, e.g. 12.34 -> "12.3%".
func formatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}
