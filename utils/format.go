package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var copPrinter = message.NewPrinter(language.MustParse("es-CO"))

// FormatCOP renders an integer peso amount the way the storefront displays
// prices: es-CO thousands grouping with a currency prefix, e.g. 35000 -> "$35.000".
func FormatCOP(amount int64) string {
	return copPrinter.Sprintf("$%v", number.Decimal(amount))
}
