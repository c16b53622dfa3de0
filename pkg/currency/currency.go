// Package currency formatea montos para las columnas "display" de los reportes.
package currency

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter convierte un monto en texto con símbolo y separadores del locale.
type Formatter struct {
	symbol  string
	printer *message.Printer
}

// New construye el formatter. Un locale inválido cae a inglés.
func New(symbol, locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Formatter{symbol: symbol, printer: message.NewPrinter(tag)}
}

// Format devuelve el monto con dos decimales, ej: "$1,234.50".
func (f *Formatter) Format(amount decimal.Decimal) string {
	v, _ := amount.Round(2).Abs().Float64()
	s := f.printer.Sprintf("%s%v", f.symbol, number.Decimal(v, number.Scale(2)))
	if amount.Round(2).IsNegative() {
		return "-" + s
	}
	return s
}
