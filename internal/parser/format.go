package parser

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatPKR renders an amount as Pakistani rupees, rounded to whole
// rupees with thousands separators, e.g. "Rs 2,500".
func FormatPKR(amount decimal.Decimal) string {
	whole := amount.Round(0).String()

	negative := strings.HasPrefix(whole, "-")
	digits := strings.TrimPrefix(whole, "-")

	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	out := "Rs " + b.String()
	if negative {
		out = "-" + out
	}
	return out
}
