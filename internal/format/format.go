// Package format holds the display formatting shared by the document
// generators: US-style currency and thousands-grouped numbers.
package format

import (
	"strconv"
	"strings"
)

// Currency renders an amount as dollars with cents and thousands
// separators, e.g. 95000 becomes "$95,000.00".
func Currency(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	s := strconv.FormatFloat(amount, 'f', 2, 64)
	dot := strings.IndexByte(s, '.')
	return "$" + sign + groupThousands(s[:dot]) + s[dot:]
}

// Thousands renders an integer with comma separators, e.g. 1250000
// becomes "1,250,000".
func Thousands(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	return sign + groupThousands(strconv.FormatInt(n, 10))
}

// groupThousands inserts commas into a bare digit string.
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
