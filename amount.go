package money

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/govalues/decimal"
	"golang.org/x/text/language"
)

// Amount type represents a monetary amount.
// Its zero value corresponds to "XXX 0", where [XXX] indicates an unknown currency.
//
// The scale of an amount always equals the scale of its currency: every
// constructor and every operation rounds its result to the currency's minor
// unit using [rounding half to even] (banker's rounding).
// Amount is immutable and safe for concurrent use by multiple goroutines.
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
type Amount struct {
	curr  Currency        // ISO 4217 currency
	value decimal.Decimal // monetary value, scale equals curr.Scale()
}

// newAmountUnsafe creates a new amount without checking the scale.
// Use it only if you are absolutely sure that the arguments are valid.
func newAmountUnsafe(c Currency, d decimal.Decimal) Amount {
	return Amount{curr: c, value: d}
}

// newAmountSafe rounds or zero-pads the decimal to the scale of the currency.
// This is the single place where results are rounded.
func newAmountSafe(c Currency, d decimal.Decimal) (Amount, error) {
	d = d.Round(c.Scale())
	if d.Scale() < c.Scale() {
		d = d.Pad(c.Scale())
		if d.Scale() < c.Scale() {
			return Amount{}, fmt.Errorf("padding amount: %w", ErrAmountOverflow)
		}
	}
	return newAmountUnsafe(c, d), nil
}

// newDecimal returns a decimal equal to coef / 10^scale.
// Scales outside of the range supported by the decimal package, including
// negative ones, are passed through the exponent notation of [decimal.Parse].
func newDecimal(coef int64, scale int) (decimal.Decimal, error) {
	if scale >= decimal.MinScale && scale <= decimal.MaxScale {
		return decimal.New(coef, scale)
	}
	d, err := decimal.Parse(strconv.FormatInt(coef, 10) + "e" + strconv.Itoa(-scale))
	if err != nil {
		return decimal.Decimal{}, overflow(err)
	}
	return d, nil
}

// newDecimalFromFloat64 converts a float to the decimal with the shortest
// representation that rounds back to the same float.
func newDecimalFromFloat64(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Decimal{}, fmt.Errorf("converting float %v: %w", f, ErrInvalidNumber)
	}
	d, err := decimal.Parse(strconv.FormatFloat(f, 'f', -1, 64))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting float %v: %w", f, overflow(err))
	}
	return d, nil
}

// NewAmount returns an amount equal to coef / 10^scale, rounded to the scale
// of the currency.
// The scale may be negative, for example NewAmount(USD, 1, -2) is "USD 100.00".
//
// NewAmount returns an error if the integer part of the result has more than
// ([decimal.MaxPrec] - [Currency.Scale]) digits.
// For example, when currency is US Dollars, NewAmount will return an error
// if the integer part of the result has more than 17 digits (19 - 2 = 17).
func NewAmount(curr Currency, coef int64, scale int) (Amount, error) {
	d, err := newDecimal(coef, scale)
	if err != nil {
		return Amount{}, fmt.Errorf("converting coefficient: %w", err)
	}
	a, err := newAmountSafe(curr, d)
	if err != nil {
		return Amount{}, fmt.Errorf("converting coefficient: %w", err)
	}
	return a, nil
}

// MustNewAmount is like [NewAmount] but panics if the amount cannot be constructed.
// It simplifies safe initialization of global variables holding amounts.
func MustNewAmount(curr Currency, coef int64, scale int) Amount {
	a, err := NewAmount(curr, coef, scale)
	if err != nil {
		panic(fmt.Sprintf("NewAmount(%v, %v, %v) failed: %v", curr, coef, scale, err))
	}
	return a
}

// NewAmountFromDecimal returns an amount with the specified currency and value
// rounded to the scale of the currency.
// See also method [Amount.Decimal].
//
// NewAmountFromDecimal returns an error if the integer part of the result has more than
// ([decimal.MaxPrec] - [Currency.Scale]) digits.
func NewAmountFromDecimal(curr Currency, amount decimal.Decimal) (Amount, error) {
	return newAmountSafe(curr, amount)
}

// NewAmountFromFloat64 converts a float to an amount rounded to the scale
// of the currency.
// The float is first converted to its shortest decimal representation,
// so 0.1 becomes exactly 0.1 rather than its binary approximation.
// See also method [Amount.Float64].
//
// NewAmountFromFloat64 returns an error if:
//   - the float is a special value (NaN or Inf), see [ErrInvalidNumber];
//   - the integer part of the result has more than
//     ([decimal.MaxPrec] - [Currency.Scale]) digits.
func NewAmountFromFloat64(curr Currency, amount float64) (Amount, error) {
	d, err := newDecimalFromFloat64(amount)
	if err != nil {
		return Amount{}, err
	}
	return newAmountSafe(curr, d)
}

// NewAmountFromMinorUnits converts an integer, representing minor units of
// currency (e.g. cents, pennies, fens), to an amount.
// See also method [Amount.MinorUnits].
func NewAmountFromMinorUnits(curr Currency, units int64) (Amount, error) {
	return NewAmount(curr, units, curr.Scale())
}

// NewLocalAmount is like [NewAmount] but uses the currency of the default
// locale, resolved at the moment of the call.
// See also function [DefaultCurr].
func NewLocalAmount(coef int64, scale int) (Amount, error) {
	return NewAmount(DefaultCurr(), coef, scale)
}

// NewLocalAmountFromDecimal is like [NewAmountFromDecimal] but uses the currency
// of the default locale, resolved at the moment of the call.
func NewLocalAmountFromDecimal(amount decimal.Decimal) (Amount, error) {
	return NewAmountFromDecimal(DefaultCurr(), amount)
}

// NewLocalAmountFromFloat64 is like [NewAmountFromFloat64] but uses the currency
// of the default locale, resolved at the moment of the call.
func NewLocalAmountFromFloat64(amount float64) (Amount, error) {
	return NewAmountFromFloat64(DefaultCurr(), amount)
}

// ParseAmount converts currency and decimal strings to an amount rounded to
// the scale of the currency.
// See also constructors [ParseCurr] and [decimal.Parse].
func ParseAmount(curr, amount string) (Amount, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing currency: %w", err)
	}
	d, err := decimal.Parse(amount)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount: %w", err)
	}
	return newAmountSafe(c, d)
}

// MustParseAmount is like [ParseAmount] but panics if any of the strings cannot be parsed.
// This function simplifies safe initialization of global variables holding amounts.
func MustParseAmount(curr, amount string) Amount {
	a, err := ParseAmount(curr, amount)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q, %q) failed: %v", curr, amount, err))
	}
	return a
}

// MinorUnits returns the amount in minor units of currency
// (e.g. cents, pennies, fens).
// See also constructor [NewAmountFromMinorUnits].
//
// If the result cannot be represented as an int64, then false is returned.
func (a Amount) MinorUnits() (units int64, ok bool) {
	d := a.Decimal()
	u := d.Coef()
	if d.IsNeg() {
		if u > -math.MinInt64 {
			return 0, false
		}
		return -int64(u), true
	}
	if u > math.MaxInt64 {
		return 0, false
	}
	return int64(u), true
}

// Float64 returns the nearest binary floating-point number rounded
// using [rounding half to even] (banker's rounding).
// See also constructor [NewAmountFromFloat64].
//
// This conversion may lose data, as float64 has a smaller precision
// than the decimal type.
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (a Amount) Float64() (f float64, ok bool) {
	return a.Decimal().Float64()
}

// Curr returns the currency of the amount.
func (a Amount) Curr() Currency {
	return a.curr
}

// Decimal returns the decimal representation of the amount.
// Its scale is equal to the scale of the currency.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0
//	+1 if a > 0
func (a Amount) Sign() int {
	return a.Decimal().Sign()
}

// IsNeg returns:
//
//	true  if a < 0
//	false otherwise
func (a Amount) IsNeg() bool {
	return a.Decimal().IsNeg()
}

// IsPos returns:
//
//	true  if a > 0
//	false otherwise
func (a Amount) IsPos() bool {
	return a.Decimal().IsPos()
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
func (a Amount) IsZero() bool {
	return a.Decimal().IsZero()
}

// Scale returns the number of digits after the decimal point.
// It is always equal to the scale of the currency.
func (a Amount) Scale() int {
	return a.Decimal().Scale()
}

// Abs returns the absolute value of the amount.
// If the amount is not negative, Abs returns it unchanged.
func (a Amount) Abs() Amount {
	if !a.IsNeg() {
		return a
	}
	return newAmountUnsafe(a.Curr(), a.Decimal().Abs())
}

// Neg returns an amount with the opposite sign.
func (a Amount) Neg() Amount {
	return newAmountUnsafe(a.Curr(), a.Decimal().Neg())
}

// SameCurr returns true if amounts are denominated in the same currency.
// See also method [Amount.Curr].
func (a Amount) SameCurr(b Amount) bool {
	return a.Curr() == b.Curr()
}

// Equal returns true if amounts are denominated in the same currency and
// are numerically equal.
// Amounts in different currencies are never equal, regardless of their values.
func (a Amount) Equal(b Amount) bool {
	return a.SameCurr(b) && a.Decimal().Cmp(b.Decimal()) == 0
}

// Cmp compares amounts and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
//
// Amounts are ordered by their numeric values first.
// Numerically equal amounts in different currencies are ordered by their
// currency codes. This tie-break does not reflect any exchange rate;
// it only makes the order total, so amounts can be sorted or kept in
// ordered containers. See also method [Amount.Equal].
func (a Amount) Cmp(b Amount) int {
	if c := a.Decimal().Cmp(b.Decimal()); c != 0 {
		return c
	}
	return strings.Compare(a.Curr().Code(), b.Curr().Code())
}

// Min returns the smaller amount.
//
// Min returns an error if amounts are denominated in different currencies.
func (a Amount) Min(b Amount) (Amount, error) {
	if !a.SameCurr(b) {
		return Amount{}, fmt.Errorf("computing [min(%v, %v)]: %w", a, b, mismatch("compare", a.Curr(), b.Curr()))
	}
	if a.Cmp(b) <= 0 {
		return a, nil
	}
	return b, nil
}

// Max returns the larger amount.
//
// Max returns an error if amounts are denominated in different currencies.
func (a Amount) Max(b Amount) (Amount, error) {
	if !a.SameCurr(b) {
		return Amount{}, fmt.Errorf("computing [max(%v, %v)]: %w", a, b, mismatch("compare", a.Curr(), b.Curr()))
	}
	if a.Cmp(b) >= 0 {
		return a, nil
	}
	return b, nil
}

// Add returns the sum of amount a and amounts bs, added from left to right
// and rounded to the scale of the currency.
// Add without arguments returns amount a.
//
// Add returns an error if:
//   - any of the amounts is denominated in a different currency, the first
//     mismatching amount is reported;
//   - the integer part of the result has more than ([decimal.MaxPrec] - [Currency.Scale]) digits.
//     For example, when currency is US Dollars, Add will return an error if the integer
//     part of the result has more than 17 digits (19 - 2 = 17).
func (a Amount) Add(bs ...Amount) (Amount, error) {
	c, err := a.add(bs)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v]: %w", sumExpr(a, bs), err)
	}
	return c, nil
}

func (a Amount) add(bs []Amount) (Amount, error) {
	d := a.Decimal()
	for _, b := range bs {
		if !a.SameCurr(b) {
			return Amount{}, mismatch("add", a.Curr(), b.Curr())
		}
		var err error
		d, err = d.Add(b.Decimal())
		if err != nil {
			return Amount{}, overflow(err)
		}
	}
	return newAmountSafe(a.Curr(), d)
}

func sumExpr(a Amount, bs []Amount) string {
	var sb strings.Builder
	sb.WriteString(a.String())
	for _, b := range bs {
		sb.WriteString(" + ")
		sb.WriteString(b.String())
	}
	return sb.String()
}

// Sub returns the difference between amounts a and b.
//
// Sub returns an error if:
//   - amounts are denominated in different currencies;
//   - the integer part of the result has more than ([decimal.MaxPrec] - [Currency.Scale]) digits.
func (a Amount) Sub(b Amount) (Amount, error) {
	c, err := a.sub(b)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v - %v]: %w", a, b, err)
	}
	return c, nil
}

func (a Amount) sub(b Amount) (Amount, error) {
	if !a.SameCurr(b) {
		return Amount{}, mismatch("subtract", a.Curr(), b.Curr())
	}
	d, err := a.Decimal().Sub(b.Decimal())
	if err != nil {
		return Amount{}, overflow(err)
	}
	return newAmountSafe(a.Curr(), d)
}

// MulAmount returns the product of amounts a and b, rounded to the scale of
// the currency.
// The product is computed from the stored values of both amounts and rounded
// once, at the end.
//
// MulAmount returns an error if:
//   - amounts are denominated in different currencies;
//   - the integer part of the result has more than ([decimal.MaxPrec] - [Currency.Scale]) digits.
func (a Amount) MulAmount(b Amount) (Amount, error) {
	if !a.SameCurr(b) {
		return Amount{}, fmt.Errorf("computing [%v * %v]: %w", a, b, mismatch("multiply", a.Curr(), b.Curr()))
	}
	c, err := a.mul(b.Decimal())
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v * %v]: %w", a, b, err)
	}
	return c, nil
}

// Mul returns the product of amount a and factor e, rounded to the scale of
// the currency.
// Factors with more digits after the decimal point than the currency allows
// are not rounded; only the product is.
//
// Mul returns an error if the integer part of the result has more than
// ([decimal.MaxPrec] - [Currency.Scale]) digits.
func (a Amount) Mul(e decimal.Decimal) (Amount, error) {
	c, err := a.mul(e)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v * %v]: %w", a, e, err)
	}
	return c, nil
}

// MulInt64 is like [Amount.Mul] but takes an integer factor.
func (a Amount) MulInt64(n int64) (Amount, error) {
	e, err := decimal.New(n, 0)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v * %v]: %w", a, n, overflow(err))
	}
	return a.Mul(e)
}

// MulFloat64 is like [Amount.Mul] but takes a float factor.
// The factor is converted to its shortest decimal representation first.
//
// MulFloat64 returns [ErrInvalidNumber] if the factor is NaN or Inf.
func (a Amount) MulFloat64(f float64) (Amount, error) {
	e, err := newDecimalFromFloat64(f)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v * %v]: %w", a, f, err)
	}
	return a.Mul(e)
}

func (a Amount) mul(e decimal.Decimal) (Amount, error) {
	d, err := mulRound(a.Decimal(), e, a.Scale())
	if err != nil {
		return Amount{}, err
	}
	return newAmountSafe(a.Curr(), d)
}

// FMA returns the [fused multiply-addition] of amounts a, b, and factor e.
// It computes a * e + b and rounds only the final result.
// This method is useful for improving the accuracy and performance of algorithms
// that involve the accumulation of products, such as daily interest accrual.
//
// FMA returns an error if:
//   - amounts are denominated in different currencies;
//   - the integer part of the result has more than ([decimal.MaxPrec] - [Currency.Scale]) digits.
//
// [fused multiply-addition]: https://en.wikipedia.org/wiki/Multiply%E2%80%93accumulate_operation#Fused_multiply%E2%80%93add
func (a Amount) FMA(e decimal.Decimal, b Amount) (Amount, error) {
	c, err := a.fma(e, b)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v * %v + %v]: %w", a, e, b, err)
	}
	return c, nil
}

func (a Amount) fma(e decimal.Decimal, b Amount) (Amount, error) {
	if !a.SameCurr(b) {
		return Amount{}, mismatch("add", a.Curr(), b.Curr())
	}
	d, err := fmaRound(a.Decimal(), e, b.Decimal(), a.Scale())
	if err != nil {
		return Amount{}, err
	}
	return newAmountSafe(a.Curr(), d)
}

// QuoAmount returns the quotient of amounts a and b, rounded to the scale of
// the currency.
// See also method [Amount.Rat], which returns the ratio as a plain decimal.
//
// QuoAmount returns an error if:
//   - amounts are denominated in different currencies;
//   - amount b is zero, see [ErrDivisionByZero];
//   - the integer part of the result has more than ([decimal.MaxPrec] - [Currency.Scale]) digits.
func (a Amount) QuoAmount(b Amount) (Amount, error) {
	if !a.SameCurr(b) {
		return Amount{}, fmt.Errorf("computing [%v / %v]: %w", a, b, mismatch("divide", a.Curr(), b.Curr()))
	}
	c, err := a.quo(b.Decimal())
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v / %v]: %w", a, b, err)
	}
	return c, nil
}

// Quo returns the quotient of amount a and divisor e, rounded to the scale of
// the currency.
// See also methods [Amount.QuoAmount] and [Amount.Split].
//
// Quo returns an error if:
//   - the divisor is 0, see [ErrDivisionByZero];
//   - the integer part of the result has more than ([decimal.MaxPrec] - [Currency.Scale]) digits.
func (a Amount) Quo(e decimal.Decimal) (Amount, error) {
	c, err := a.quo(e)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v / %v]: %w", a, e, err)
	}
	return c, nil
}

// QuoInt64 is like [Amount.Quo] but takes an integer divisor.
func (a Amount) QuoInt64(n int64) (Amount, error) {
	e, err := decimal.New(n, 0)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v / %v]: %w", a, n, overflow(err))
	}
	return a.Quo(e)
}

// QuoFloat64 is like [Amount.Quo] but takes a float divisor.
//
// QuoFloat64 returns [ErrInvalidNumber] if the divisor is NaN or Inf,
// and [ErrDivisionByZero] if it is zero.
func (a Amount) QuoFloat64(f float64) (Amount, error) {
	e, err := newDecimalFromFloat64(f)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v / %v]: %w", a, f, err)
	}
	return a.Quo(e)
}

func (a Amount) quo(e decimal.Decimal) (Amount, error) {
	if e.IsZero() {
		return Amount{}, ErrDivisionByZero
	}
	d, err := quoRound(a.Decimal(), e, a.Scale())
	if err != nil {
		return Amount{}, err
	}
	return newAmountSafe(a.Curr(), d)
}

// Rem returns the remainder of dividing amount a by amount b.
// The remainder has the same sign as amount a, so that
// a = b * q + r for an integer q.
//
// Rem returns an error if:
//   - amounts are denominated in different currencies;
//   - amount b is zero, see [ErrDivisionByZero];
//   - the integer quotient has more than [decimal.MaxPrec] digits.
func (a Amount) Rem(b Amount) (Amount, error) {
	c, err := a.rem(b)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v mod %v]: %w", a, b, err)
	}
	return c, nil
}

func (a Amount) rem(b Amount) (Amount, error) {
	if !a.SameCurr(b) {
		return Amount{}, mismatch("get remainder of", a.Curr(), b.Curr())
	}
	if b.IsZero() {
		return Amount{}, ErrDivisionByZero
	}
	_, r, err := a.Decimal().QuoRem(b.Decimal())
	if err != nil {
		return Amount{}, overflow(err)
	}
	return newAmountSafe(a.Curr(), r)
}

// Rat returns the ratio between amounts a and b as a decimal.
// This method is useful for determining percentages within a single currency.
//
// Rat returns an error if:
//   - amounts are denominated in different currencies;
//   - amount b is zero, see [ErrDivisionByZero];
//   - the integer part of the result has more than [decimal.MaxPrec] digits.
func (a Amount) Rat(b Amount) (decimal.Decimal, error) {
	if !a.SameCurr(b) {
		return decimal.Decimal{}, fmt.Errorf("computing [%v / %v]: %w", a, b, mismatch("divide", a.Curr(), b.Curr()))
	}
	if b.IsZero() {
		return decimal.Decimal{}, fmt.Errorf("computing [%v / %v]: %w", a, b, ErrDivisionByZero)
	}
	d, err := a.Decimal().Quo(b.Decimal())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("computing [%v / %v]: %w", a, b, overflow(err))
	}
	return d, nil
}

// Split returns a slice of amounts that sum up to the original amount,
// ensuring the parts are as equal as possible.
// If the original amount cannot be divided equally among the specified number
// of parts, the remainder is distributed one minor unit at a time among the
// first parts of the slice.
//
// Split returns an error if the number of parts is not a positive integer.
func (a Amount) Split(parts int) ([]Amount, error) {
	r, err := a.split(parts)
	if err != nil {
		return nil, fmt.Errorf("splitting %v into %v parts: %w", a, parts, err)
	}
	return r, nil
}

func (a Amount) split(parts int) ([]Amount, error) {
	if parts <= 0 {
		return nil, errInvalidParts
	}
	c, d := a.Curr(), a.Decimal()
	par, err := decimal.New(int64(parts), 0)
	if err != nil {
		return nil, overflow(err)
	}

	// Quotient, truncated to the minor unit
	quo, err := truncQuo(d, parts, c.Scale())
	if err != nil {
		return nil, err
	}

	// Remainder
	rem, err := quo.Mul(par)
	if err != nil {
		return nil, overflow(err)
	}
	rem, err = d.Sub(rem)
	if err != nil {
		return nil, overflow(err)
	}
	ulp := quo.ULP().CopySign(rem)

	res := make([]Amount, parts)
	for i := 0; i < parts; i++ {
		part := quo
		if !rem.IsZero() {
			part, err = part.Add(ulp)
			if err != nil {
				return nil, overflow(err)
			}
			rem, err = rem.Sub(ulp)
			if err != nil {
				return nil, overflow(err)
			}
		}
		res[i], err = newAmountSafe(c, part)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Round returns an amount rounded to the specified number of digits after
// the decimal point using [rounding half to even] (banker's rounding).
// The result is zero-padded back to the scale of the currency, so Round
// has no effect if the scale is not less than the scale of the currency.
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (a Amount) Round(scale int) Amount {
	c, d := a.Curr(), a.Decimal()
	return newAmountUnsafe(c, d.Round(scale).Pad(c.Scale()))
}

// Ceil returns an amount rounded up to the specified number of digits after
// the decimal point using [rounding toward positive infinity].
// See also method [Amount.Floor].
//
// [rounding toward positive infinity]: https://en.wikipedia.org/wiki/Rounding#Rounding_up
func (a Amount) Ceil(scale int) Amount {
	c, d := a.Curr(), a.Decimal()
	return newAmountUnsafe(c, d.Ceil(scale).Pad(c.Scale()))
}

// Floor returns an amount rounded down to the specified number of digits after
// the decimal point using [rounding toward negative infinity].
// See also method [Amount.Ceil].
//
// [rounding toward negative infinity]: https://en.wikipedia.org/wiki/Rounding#Rounding_down
func (a Amount) Floor(scale int) Amount {
	c, d := a.Curr(), a.Decimal()
	return newAmountUnsafe(c, d.Floor(scale).Pad(c.Scale()))
}

// Trunc returns an amount truncated to the specified number of digits after
// the decimal point using [rounding toward zero].
//
// [rounding toward zero]: https://en.wikipedia.org/wiki/Rounding#Rounding_toward_zero
func (a Amount) Trunc(scale int) Amount {
	c, d := a.Curr(), a.Decimal()
	return newAmountUnsafe(c, d.Trunc(scale).Pad(c.Scale()))
}

// AsCurr converts the amount to the target currency by multiplying it by
// the exchange rate and rounding the product to the scale of the target
// currency.
// If the amount is already denominated in the target currency, AsCurr returns
// it unchanged and the rate is ignored.
// See also type [ExchangeRate] for exchange rates that are decimals.
//
// AsCurr returns an error if:
//   - the rate is NaN or Inf, see [ErrInvalidNumber];
//   - the integer part of the result has more than
//     ([decimal.MaxPrec] - [Currency.Scale]) digits.
func (a Amount) AsCurr(curr Currency, rate float64) (Amount, error) {
	if a.Curr() == curr {
		return a, nil
	}
	e, err := newDecimalFromFloat64(rate)
	if err != nil {
		return Amount{}, fmt.Errorf("converting %v to %v: %w", a, curr, err)
	}
	b, err := a.conv(curr, e)
	if err != nil {
		return Amount{}, fmt.Errorf("converting %v to %v: %w", a, curr, err)
	}
	return b, nil
}

func (a Amount) conv(curr Currency, e decimal.Decimal) (Amount, error) {
	d, err := mulRound(a.Decimal(), e, curr.Scale())
	if err != nil {
		return Amount{}, err
	}
	return newAmountSafe(curr, d)
}

// Display returns the amount as it is shown to users of the given locale:
// the currency symbol for the locale followed by a space and the amount,
// for example "US$ -10.11".
// If the symbol is a single character, such as "$" or "€", there is no space
// and the minus sign precedes the symbol, for example "-$10.11".
// The amount is always written in plain decimal notation without grouping.
// See also methods [Currency.Symbol] and [Amount.DisplayDefault].
func (a Amount) Display(loc language.Tag) string {
	c, d := a.Curr(), a.Decimal()
	sym := c.Symbol(loc)
	if utf8.RuneCountInString(sym) != 1 {
		return sym + " " + d.String()
	}
	if d.IsNeg() {
		return "-" + sym + d.Abs().String()
	}
	return sym + d.String()
}

// DisplayDefault is like [Amount.Display] but uses the default locale,
// resolved at the moment of the call.
// See also function [DefaultLocale].
func (a Amount) DisplayDefault() string {
	return a.Display(DefaultLocale())
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of an amount, such as "USD -10.11".
// Unlike [Amount.Display], the result does not depend on any locale.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	return a.Curr().Code() + " " + a.Decimal().String()
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example     | Description                |
//	| ------ | ----------- | -------------------------- |
//	| %s, %v | USD 5.67    | Currency and amount        |
//	| %q     | "USD 5.67"  | Quoted currency and amount |
//	| %f     | 5.67        | Amount                     |
//	| %d     | 567         | Amount in minor units      |
//	| %c     | USD         | Currency                   |
//
// The '-' format flag can be used with all verbs.
// The '+', ' ', '0' format flags can be used with all verbs except %c.
//
// Precision is only supported for the %f verb.
// It can only add digits, it is never less than the scale of the currency.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (a Amount) Format(state fmt.State, verb rune) {
	c, d := a.Curr(), a.Decimal()

	// Digits
	var num string
	switch verb {
	case 'd', 'D':
		num = strconv.FormatUint(d.Coef(), 10)
	case 'f', 'F':
		if p, ok := state.Precision(); ok && p > d.Scale() {
			d = d.Pad(p)
		}
		fallthrough
	default:
		num = d.Abs().String()
	}

	// Arithmetic sign
	sign := ""
	switch {
	case verb == 'c' || verb == 'C':
		num = ""
	case d.IsNeg():
		sign = "-"
	case state.Flag('+'):
		sign = "+"
	case state.Flag(' '):
		sign = " "
	}

	// Currency code and quotes
	head, quote := "", ""
	switch verb {
	case 'c', 'C':
		head = c.Code()
	case 'f', 'F', 'd', 'D':
		// skip
	case 'q', 'Q':
		head, quote = c.Code()+" ", `"`
	default:
		head = c.Code() + " "
	}

	// Leading zeros
	if w, ok := state.Width(); ok && state.Flag('0') && verb != 'c' && verb != 'C' {
		if n := w - len(quote+head+sign+num+quote); n > 0 {
			num = strings.Repeat("0", n) + num
		}
	}

	text := quote + head + sign + num + quote
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F', 'd', 'D', 'c', 'C':
		fmt.Fprint(state, pad(state, text))
	default:
		fmt.Fprintf(state, "%%!%c(money.Amount=%v)", verb, a)
	}
}
