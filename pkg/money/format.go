// Package money formatea montos para mensajes y documentos (ej. "TSh 531,000").
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Format devuelve el monto redondeado a entero con separador de miles y prefijo de moneda.
func Format(currency string, amount decimal.Decimal) string {
	n := amount.Round(0).IntPart()
	if currency == "" {
		return printer.Sprintf("%d", n)
	}
	return currency + " " + printer.Sprintf("%d", n)
}

// Millions devuelve el monto en millones con un decimal (ej. "TSh 2.4M"), usado en resúmenes.
func Millions(currency string, amount decimal.Decimal) string {
	m := amount.Div(decimal.NewFromInt(1_000_000)).StringFixed(1)
	return currency + " " + m + "M"
}
