package report

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency renders d as dollars with thousands separators, e.g. $12,000.00.
func FormatCurrency(d decimal.Decimal) string {
	if d.Sign() < 0 {
		return "$-" + groupThousands(d.Abs().StringFixed(2))
	}
	return "$" + groupThousands(d.StringFixed(2))
}

// FormatSignedCurrency always carries the sign, e.g. $+500.00 or $-250.00.
func FormatSignedCurrency(d decimal.Decimal) string {
	if d.Sign() < 0 {
		return "$-" + groupThousands(d.Abs().StringFixed(2))
	}
	return "$+" + groupThousands(d.StringFixed(2))
}

// signedFixed renders d with two decimals and an explicit sign, e.g. +500.00.
func signedFixed(d decimal.Decimal) string {
	if d.Sign() < 0 {
		return d.StringFixed(2)
	}
	return "+" + d.StringFixed(2)
}

// groupThousands inserts commas into the integer part of an unsigned
// fixed-point string.
func groupThousands(s string) string {
	intPart, frac, hasFrac := strings.Cut(s, ".")
	if len(intPart) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}
