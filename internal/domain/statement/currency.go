package statement

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var usdPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders minor units as US dollars, e.g. 173000 -> "$1,730.00".
// The division by percentFactor happens here and nowhere earlier.
func FormatCurrency(minorUnits, percentFactor int64) string {
	value := float64(minorUnits) / float64(percentFactor)
	if value < 0 {
		return "-$" + usdPrinter.Sprint(number.Decimal(-value, number.Scale(2)))
	}
	return "$" + usdPrinter.Sprint(number.Decimal(value, number.Scale(2)))
}
