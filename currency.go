package money

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
)

//go:generate go run scripts/currency/codegen.go

// Currency type represents a currency in the global financial system.
// The zero value is [XXX], which indicates an unknown currency.
//
// Currency is implemented as an integer index into in-memory tables that
// store properties defined by [ISO 4217], such as code and scale, together
// with the display symbols used in different regions.
// Two currencies are the same if and only if their codes are equal.
//
// When persisting a currency value, use the alphabetic code returned by
// the [Currency.Code] method, rather than the integer index, as mapping between
// index and a particular currency may change in future versions.
//
// [ISO 4217]: https://en.wikipedia.org/wiki/ISO_4217
type Currency uint8

// ParseCurr converts a string to currency.
// The input string must be in one of the following formats:
//
//	USD
//	usd
//	840
//
// ParseCurr returns [ErrInvalidCurrency] if the string does not represent
// a known currency code.
func ParseCurr(curr string) (Currency, error) {
	c, ok := currLookup[curr]
	if !ok {
		return XXX, fmt.Errorf("%w %q", ErrInvalidCurrency, curr)
	}
	return c, nil
}

// MustParseCurr is like [ParseCurr] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding currencies.
func MustParseCurr(curr string) Currency {
	c, err := ParseCurr(curr)
	if err != nil {
		panic(fmt.Sprintf("ParseCurr(%q) failed: %v", curr, err))
	}
	return c
}

// String method implements the [fmt.Stringer] interface and returns
// the 3-letter code of the currency.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Currency) String() string {
	return c.Code()
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also constructor [ParseCurr].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (c *Currency) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	return c.UnmarshalText(text)
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns a quoted 3-letter code.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (c Currency) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.Code() + `"`), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// See also constructor [ParseCurr].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (c *Currency) UnmarshalText(text []byte) error {
	curr, err := ParseCurr(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", XXX, err)
	}
	*c = curr
	return nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
// MarshalText always returns a 3-letter code.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.Code()), nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb       | Example | Description     |
//	| ---------- | ------- | --------------- |
//	| %c, %s, %v | USD     | Currency        |
//	| %q         | "USD"   | Quoted currency |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (c Currency) Format(state fmt.State, verb rune) {
	text := c.Code()
	switch verb {
	case 'q', 'Q':
		text = `"` + text + `"`
	case 's', 'S', 'v', 'V', 'c', 'C':
		// plain code
	default:
		fmt.Fprintf(state, "%%!%c(money.Currency=%v)", verb, text)
		return
	}
	fmt.Fprint(state, pad(state, text))
}

// pad applies the width and the '-' flag of the state to the text.
func pad(state fmt.State, text string) string {
	w, ok := state.Width()
	if !ok || w <= utf8.RuneCountInString(text) {
		return text
	}
	spaces := strings.Repeat(" ", w-utf8.RuneCountInString(text))
	if state.Flag('-') {
		return text + spaces
	}
	return spaces + text
}

// Scale returns the number of digits after the decimal point required for
// representing the minor unit of a currency.
// The currently supported currencies use scales of 0, 2, or 3:
//   - A scale of 0 indicates currencies without minor units.
//     For example, the [Japanese Yen] does not have minor units.
//   - A scale of 2 indicates currencies that use 2 digits to represent their minor units.
//     For example, the [US Dollar] represents its minor unit, 1 cent, as 0.01 dollars.
//   - A scale of 3 indicates currencies with 3 digits in their minor units.
//     For instance, the minor unit of the [Omani Rial], 1 baisa, is represented as 0.001 rials.
//
// [Japanese Yen]: https://en.wikipedia.org/wiki/Japanese_yen
// [US Dollar]: https://en.wikipedia.org/wiki/United_States_dollar
// [Omani Rial]: https://en.wikipedia.org/wiki/Omani_rial
func (c Currency) Scale() int {
	return int(scaleLookup[c])
}

// Num returns the [3-digit code] assigned to the currency by the ISO 4217 standard.
//
// [3-digit code]: https://en.wikipedia.org/wiki/ISO_4217#Numeric_codes
func (c Currency) Num() string {
	return numLookup[c]
}

// Code returns the [3-letter code] assigned to the currency by the ISO 4217 standard.
// This code is a unique identifier of the currency and is used in
// international finance and commerce.
// This method always returns a valid code.
//
// [3-letter code]: https://en.wikipedia.org/wiki/ISO_4217#National_currencies
func (c Currency) Code() string {
	return codeLookup[c]
}

// Symbol returns the display symbol of the currency for the given locale.
// A currency may have a local symbol in the regions where it is legal tender,
// for example "$" for US Dollars in the United States, and an international
// symbol elsewhere, for example "US$".
// If the currency has no symbol at all, Symbol returns its 3-letter code.
// See also method [Amount.Display].
func (c Currency) Symbol(loc language.Tag) string {
	if r := localeRegion(loc); r != "" {
		if sym, ok := localSymbolLookup[localKey{c, r}]; ok {
			return sym
		}
	}
	return symbolLookup[c]
}

// localKey identifies a currency symbol used within a particular region.
type localKey struct {
	curr   Currency
	region string // ISO 3166-1 alpha-2 code
}
