package money

import (
	"errors"
	"fmt"

	"github.com/govalues/decimal"
)

var (
	errNonPositiveRate = errors.New("exchange rate must be positive")
	errIdentityRate    = errors.New("exchange rate between the same currency must be equal to 1")
)

// ExchangeRate represents a unidirectional exchange rate between two currencies.
// Unlike the float rate accepted by [Amount.AsCurr], it keeps the rate as an
// exact decimal, so repeated conversions with the same rate are reproducible.
// The zero value corresponds to an exchange rate of "XXX/XXX 0", which cannot
// be used for conversion.
// This type is designed to be safe for concurrent use by multiple goroutines.
type ExchangeRate struct {
	base  Currency        // currency being exchanged
	quote Currency        // currency being obtained in exchange for the base currency
	value decimal.Decimal // units of quote currency per 1 unit of base currency
}

// NewExchRate returns a new exchange rate between the base and quote currencies.
//
// NewExchRate returns an error if the rate is not positive, or if base and
// quote are the same currency and the rate is not equal to 1.
func NewExchRate(base, quote Currency, rate decimal.Decimal) (ExchangeRate, error) {
	if !rate.IsPos() {
		return ExchangeRate{}, fmt.Errorf("creating %v/%v rate %v: %w", base, quote, rate, errNonPositiveRate)
	}
	if base == quote && !rate.IsOne() {
		return ExchangeRate{}, fmt.Errorf("creating %v/%v rate %v: %w", base, quote, rate, errIdentityRate)
	}
	return ExchangeRate{base: base, quote: quote, value: rate}, nil
}

// ParseExchRate converts currency and decimal strings to an exchange rate.
// See also constructors [ParseCurr] and [decimal.Parse].
func ParseExchRate(base, quote, rate string) (ExchangeRate, error) {
	b, err := ParseCurr(base)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("parsing base currency: %w", err)
	}
	q, err := ParseCurr(quote)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("parsing quote currency: %w", err)
	}
	d, err := decimal.Parse(rate)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("parsing rate: %w", err)
	}
	return NewExchRate(b, q, d)
}

// MustParseExchRate is like [ParseExchRate] but panics if any of the strings cannot be parsed.
// It simplifies safe initialization of global variables holding exchange rates.
func MustParseExchRate(base, quote, rate string) ExchangeRate {
	r, err := ParseExchRate(base, quote, rate)
	if err != nil {
		panic(fmt.Sprintf("ParseExchRate(%q, %q, %q) failed: %v", base, quote, rate, err))
	}
	return r
}

// Base returns the currency being exchanged.
func (r ExchangeRate) Base() Currency {
	return r.base
}

// Quote returns the currency being obtained in exchange for the base currency.
func (r ExchangeRate) Quote() Currency {
	return r.quote
}

// Decimal returns the rate as a decimal.
func (r ExchangeRate) Decimal() decimal.Decimal {
	return r.value
}

// Conv returns the amount converted from the base currency to the quote currency.
// The result is rounded to the scale of the quote currency, exactly as
// [Amount.AsCurr] does.
//
// Conv returns an error if:
//   - the amount is not denominated in the base currency;
//   - the rate is the zero value;
//   - the integer part of the result has more than
//     ([decimal.MaxPrec] - [Currency.Scale]) digits.
func (r ExchangeRate) Conv(b Amount) (Amount, error) {
	c, err := r.conv(b)
	if err != nil {
		return Amount{}, fmt.Errorf("converting %v with %v: %w", b, r, err)
	}
	return c, nil
}

func (r ExchangeRate) conv(b Amount) (Amount, error) {
	if b.Curr() != r.Base() {
		return Amount{}, mismatch("convert", b.Curr(), r.Base())
	}
	if !r.value.IsPos() {
		return Amount{}, errNonPositiveRate
	}
	if r.Base() == r.Quote() {
		return b, nil
	}
	return b.conv(r.Quote(), r.value)
}

// Inv returns the inverse of the exchange rate, with base and quote swapped.
//
// Inv returns an error if the rate is the zero value.
func (r ExchangeRate) Inv() (ExchangeRate, error) {
	d := r.value
	if d.IsZero() {
		return ExchangeRate{}, fmt.Errorf("inverting %v: %w", r, ErrDivisionByZero)
	}
	e, err := d.One().Quo(d)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("inverting %v: %w", r, overflow(err))
	}
	return NewExchRate(r.Quote(), r.Base(), e)
}

// Mul returns an exchange rate with the same base and quote currencies,
// but with the rate multiplied by a positive factor e.
// This is useful for applying a spread or a fee to a mid-market rate.
func (r ExchangeRate) Mul(e decimal.Decimal) (ExchangeRate, error) {
	d, err := r.value.Mul(e)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("computing [%v * %v]: %w", r, e, overflow(err))
	}
	return NewExchRate(r.Base(), r.Quote(), d)
}

// String method implements the [fmt.Stringer] interface and returns a string
// representation of the exchange rate, such as "USD/JPY 110.60".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r ExchangeRate) String() string {
	return r.Base().Code() + "/" + r.Quote().Code() + " " + r.value.String()
}

// Format implements [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	%s, %v: USD/EUR 1.2345
//	%q:    "USD/EUR 1.2345"
//	%f:     1.2345
//	%c:     USD/EUR
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (r ExchangeRate) Format(state fmt.State, verb rune) {
	pair := r.Base().Code() + "/" + r.Quote().Code()
	var text string
	switch verb {
	case 's', 'S', 'v', 'V':
		text = r.String()
	case 'q', 'Q':
		text = `"` + r.String() + `"`
	case 'f', 'F':
		text = r.value.String()
	case 'c', 'C':
		text = pair
	default:
		fmt.Fprintf(state, "%%!%c(money.ExchangeRate=%v)", verb, r)
		return
	}
	fmt.Fprint(state, pad(state, text))
}
