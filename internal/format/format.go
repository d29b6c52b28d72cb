// Package format renders customer-facing amounts, dates and order
// numbers the way the storefront shows them: Hebrew locale, ILS,
// Asia/Jerusalem time.
package format

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.Hebrew)

var jerusalem = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Jerusalem")
	if err != nil {
		return time.FixedZone("IST", 2*60*60)
	}
	return loc
}()

// Location is the store's display timezone.
func Location() *time.Location {
	return jerusalem
}

// Amount renders a monetary value with localized thousands separators
// and 0-2 fraction digits.
func Amount(v float64) string {
	return printer.Sprint(number.Decimal(v,
		number.MaxFractionDigits(2),
		number.MinFractionDigits(0),
	))
}

// Currency renders an ILS amount with the shekel sign.
func Currency(v float64) string {
	return "₪" + Amount(v)
}

// OrderNumber renders the human-facing order number, zero-padded to
// five digits with a leading hash.
func OrderNumber(n int) string {
	return fmt.Sprintf("#%05d", n)
}

// Date renders a date in Hebrew-locale day.month.year order.
func Date(t time.Time) string {
	return t.In(jerusalem).Format("2.1.2006")
}

// DateTime renders an instant with time of day.
func DateTime(t time.Time) string {
	return t.In(jerusalem).Format("2.1.2006, 15:04:05")
}
