package gofpdf

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var esMX = message.NewPrinter(language.MustParse("es-MX"))

// money renders an amount the way the documents always have: dollar sign,
// thousands separators, exactly two decimals.
func money(v float64) string {
	return esMX.Sprintf("$%v", number.Decimal(v,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2)))
}
