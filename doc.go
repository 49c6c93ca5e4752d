/*
Package money implements monetary amounts in ISO 4217 currencies.
It builds on the [decimal] package for exact decimal arithmetic and pairs
every value with a [Currency] that fixes its number of minor-unit digits.

# Features

  - Immutable amounts, safe for use by multiple goroutines
  - Results always carry the scale of their currency
  - Banker's rounding (half to even) applied in one place
  - Arithmetic and comparison that refuse to mix currencies
  - Conversion between currencies with float or decimal exchange rates
  - Locale-aware display with local and international currency symbols

# Representation

An [Amount] consists of a [Currency] and a decimal value whose scale equals
the scale of the currency.
"USD 1" is stored as 1.00 and "JPY 1.5" is stored as 2.
A [Currency] is an index into an in-memory table holding the code,
the numeric code, the scale and the symbols of the currency.
The zero value of an Amount is "XXX 0", where [XXX] means "no currency".
The built-in table covers the major traded currencies, not all of ISO 4217.
Other codes are rejected with [ErrInvalidCurrency], and a locale whose
region uses such a currency resolves to [XXX].

# Rounding

Every constructor and every arithmetic operation rounds its result to the
scale of the currency using rounding half to even:

	USD 0.125 -> USD 0.12
	USD 0.135 -> USD 0.14
	JPY 2.5   -> JPY 2

Multiplication and division are computed from the stored values of the
operands and rounded once, at the end.
Methods [Amount.Round], [Amount.Ceil], [Amount.Floor] and [Amount.Trunc]
round to fewer digits and then zero-pad the result back to the scale of
the currency.

# Supported Ranges

An amount can hold at most [decimal.MaxPrec] digits, so the number of digits
in its integer part is limited to 19 minus the scale of its currency.
For US Dollars this is 17 digits, for Japanese Yen 19 digits.
Operations whose result does not fit return an error wrapping
[ErrAmountOverflow].

# Locale

[Amount.Display] formats an amount for a given [language.Tag].
The currency symbol depends on the region of the locale: US Dollars are
shown as "$" in the United States and as "US$" elsewhere.
A locale without a region, such as "en", gets the international symbols.
The process-wide default locale is read from LC_ALL, LC_MONETARY or LANG
at program start and can be changed with [SetDefaultLocale].
[DefaultCurr] and [Amount.DisplayDefault] resolve it on every call.

# Errors

Operations return errors instead of panicking, except for the Must
functions meant for initialization of global variables.
The errors wrap one of the sentinel values [ErrInvalidNumber],
[ErrCurrencyMismatch], [ErrDivisionByZero], [ErrAmountOverflow]
and [ErrInvalidCurrency], which can be matched with [errors.Is].
A currency mismatch is reported as a [*CurrencyMismatchError] naming
the operation and both currencies.

[language.Tag]: https://pkg.go.dev/golang.org/x/text/language#Tag
*/
package money
