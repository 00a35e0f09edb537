// Package numfmt formats chart numbers for a locale.
package numfmt

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders numbers with the grouping and decimal separators of a locale.
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a Formatter for tag.
func New(tag language.Tag) *Formatter {
	return &Formatter{
		tag:     tag,
		printer: message.NewPrinter(tag),
	}
}

// Language returns the formatter's locale.
func (f *Formatter) Language() language.Tag {
	return f.tag
}

// Integer rounds v to a whole number and groups its digits.
func (f *Formatter) Integer(v float64) string {
	return f.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(0)))
}

// Decimal prints v with up to maxFrac fraction digits, dropping trailing zeros.
func (f *Formatter) Decimal(v float64, maxFrac int) string {
	return f.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(maxFrac)))
}

// Fixed prints v with exactly prec fraction digits.
func (f *Formatter) Fixed(v float64, prec int) string {
	return f.printer.Sprint(number.Decimal(v, number.Scale(prec)))
}

// Dollars prints v as a dollar amount with at most two fraction digits.
func (f *Formatter) Dollars(v float64) string {
	return "$" + f.Decimal(v, 2)
}
