package i18n

import (
	"time"

	"golang.org/x/text/number"
)

// Money formats an amount in cents as dollars with the locale's separators.
func (l Localizer) Money(cents int) string {
	if l.printer == nil {
		l = New(Default())
	}
	return l.printer.Sprintf("$%v", number.Decimal(float64(cents)/100, number.Scale(2)))
}

// Date formats a calendar date in the locale's numeric order.
func (l Localizer) Date(t time.Time) string {
	if base, _ := l.tag.Base(); base.String() == "en" || l.printer == nil {
		return t.Format("01/02/2006")
	}
	return t.Format("02/01/2006")
}

// Lang returns the BCP 47 string for the html lang attribute.
func (l Localizer) Lang() string {
	if l.printer == nil {
		return Default().String()
	}
	return l.tag.String()
}
