// Package export renders the Debt List for other tools: CSV, a PDF summary and a
// shareable link.
package export

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatMoney renders an amount as dollars with cents and thousands separators,
// e.g. 1234.5 -> "$1,234.50". Rounding is half away from zero.
func FormatMoney(amount float64) string {
	s := decimal.NewFromFloat(amount).StringFixed(2)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, cents, _ := strings.Cut(s, ".")

	var b strings.Builder
	lead := len(whole) % 3
	if lead > 0 {
		b.WriteString(whole[:lead])
	}
	for i := lead; i < len(whole); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(whole[i : i+3])
	}
	return sign + "$" + b.String() + "." + cents
}

// FormatPercent renders an APR percentage with two decimals, e.g. 19.99 -> "19.99%".
func FormatPercent(apr float64) string {
	return decimal.NewFromFloat(apr).StringFixed(2) + "%"
}
