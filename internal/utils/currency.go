package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var inrPrinter = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR renders an amount the way the storefront displays it: rupee
// sign, Indian digit grouping, no fractional digits.
func FormatINR(amount float64) string {
	return inrPrinter.Sprintf("₹%v", number.Decimal(amount, number.MaxFractionDigits(0)))
}
