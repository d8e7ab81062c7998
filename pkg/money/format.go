package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders a minor-unit amount as display text. The catalog and cart
// treat it as a pluggable collaborator so a host can swap locale or currency.
type Formatter interface {
	FormatCents(cents int64) string
}

// RUB formats kopeck amounts with ru-RU digit grouping and a ruble suffix,
// matching what the storefront shows on cards and in the cart.
type RUB struct {
	printer *message.Printer
}

// NewRUB builds the default ruble formatter.
func NewRUB() *RUB {
	return &RUB{printer: message.NewPrinter(language.Russian)}
}

// FormatCents renders the amount. Whole-ruble amounts omit the kopeck part,
// fractional amounts use the locale decimal comma.
func (f *RUB) FormatCents(cents int64) string {
	negative := cents < 0
	if negative {
		cents = -cents
	}
	rubles := cents / 100
	kopecks := cents % 100

	var out string
	if kopecks == 0 {
		out = f.printer.Sprintf("%d", rubles)
	} else {
		out = f.printer.Sprintf("%d,%02d", rubles, kopecks)
	}
	if negative {
		out = "-" + out
	}
	return out + " руб."
}
