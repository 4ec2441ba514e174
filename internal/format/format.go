// Package format renders prices and date ranges for a display locale.
//
// Locale data lives behind the Formatter interface so it can be swapped
// without touching aggregation code. When locale data is missing the
// formatter reports domain.ErrUnsupportedLocale and callers use the Fixed*
// helpers, which need no locale data at all.
package format

import (
	"fmt"
	"strconv"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/trilhabr/home-aggregator/internal/domain"
)

// Formatter renders display strings for one locale and one currency.
type Formatter interface {
	// Currency renders an amount given in minor units (cents).
	Currency(minor int64) (string, error)
	// DateRange renders an inclusive calendar range.
	DateRange(start, end time.Time) (string, error)
	// Symbol is the currency symbol, also used by the fixed fallback.
	Symbol() string
}

// localeData holds the calendar tokens for a supported locale.
type localeData struct {
	months [12]string
	// dayMonth renders a day without the year; dayMonthYear with it.
	dayMonth     func(day int, month string) string
	dayMonthYear func(day int, month string, year int) string
}

var supported = []language.Tag{
	language.BrazilianPortuguese,
	language.AmericanEnglish,
}

// locales is indexed in step with supported.
var locales = []localeData{
	{
		months: [12]string{"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"},
		dayMonth: func(day int, month string) string {
			return fmt.Sprintf("%02d %s", day, month)
		},
		dayMonthYear: func(day int, month string, year int) string {
			return fmt.Sprintf("%02d %s %d", day, month, year)
		},
	},
	{
		months: [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		dayMonth: func(day int, month string) string {
			return fmt.Sprintf("%s %02d", month, day)
		},
		dayMonthYear: func(day int, month string, year int) string {
			return fmt.Sprintf("%s %02d, %d", month, day, year)
		},
	},
}

// symbols maps ISO 4217 codes to display symbols. Unknown codes render as
// the code itself.
var symbols = map[string]string{
	"BRL": "R$",
	"USD": "US$",
	"EUR": "€",
}

var matcher = language.NewMatcher(supported)

// Localized is the Formatter backed by golang.org/x/text locale data.
type Localized struct {
	tag     language.Tag
	data    localeData
	ok      bool
	symbol  string
	printer *message.Printer
}

// New builds a Formatter for the BCP 47 locale and ISO 4217 currency code.
// An invalid currency code is an error. An unsupported locale is not: the
// returned formatter reports domain.ErrUnsupportedLocale on every call so
// that callers degrade to the fixed patterns.
func New(locale, currencyCode string) (*Localized, error) {
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return nil, fmt.Errorf("format.New: currency %q: %w", currencyCode, err)
	}
	sym, found := symbols[unit.String()]
	if !found {
		sym = unit.String()
	}

	f := &Localized{symbol: sym}
	tag, err := language.Parse(locale)
	if err != nil {
		return f, nil
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return f, nil
	}
	f.tag = supported[idx]
	f.data = locales[idx]
	f.ok = true
	f.printer = message.NewPrinter(f.tag)
	return f, nil
}

// Tag is the matched locale, or language.Und when unsupported.
func (f *Localized) Tag() language.Tag { return f.tag }

func (f *Localized) Symbol() string { return f.symbol }

// Currency renders minor as "<symbol> <amount>" using the locale's decimal
// and grouping separators with exactly two fraction digits.
func (f *Localized) Currency(minor int64) (string, error) {
	if !f.ok {
		return "", domain.ErrUnsupportedLocale
	}
	amount := float64(minor) / 100
	return f.symbol + " " + f.printer.Sprintf("%v", number.Decimal(amount, number.Scale(2))), nil
}

// DateRange renders start and end. When both fall in the same month of the
// same year the year is printed once, after the end date.
func (f *Localized) DateRange(start, end time.Time) (string, error) {
	if !f.ok {
		return "", domain.ErrUnsupportedLocale
	}
	month := func(t time.Time) string { return f.data.months[t.Month()-1] }

	full := func(t time.Time) string { return f.data.dayMonthYear(t.Day(), month(t), t.Year()) }
	if start.Year() == end.Year() && start.Month() == end.Month() {
		return f.data.dayMonth(start.Day(), month(start)) + " – " + full(end), nil
	}
	return full(start) + " – " + full(end), nil
}

// FixedCurrency renders "<symbol> <amount>" with a dot separator and two
// decimals, independent of any locale data.
func FixedCurrency(symbol string, minor int64) string {
	return symbol + " " + strconv.FormatFloat(float64(minor)/100, 'f', 2, 64)
}

// FixedDateRange renders both endpoints as ISO calendar dates.
func FixedDateRange(start, end time.Time) string {
	return start.Format(time.DateOnly) + " – " + end.Format(time.DateOnly)
}
