package money

import (
	"errors"
	"fmt"
)

// The error kinds returned by this package.
// Use [errors.Is] to match them; the returned errors are wrapped with
// a description of the failed computation.
var (
	ErrInvalidNumber    = errors.New("invalid number")          // NaN or infinite float
	ErrCurrencyMismatch = errors.New("currency mismatch")       // operands in different currencies
	ErrDivisionByZero   = errors.New("division by zero")        // zero divisor
	ErrAmountOverflow   = errors.New("amount overflow")         // result exceeds decimal precision
	ErrInvalidCurrency  = errors.New("invalid currency")        // unknown currency code
	errInvalidParts     = errors.New("invalid number of parts") // non-positive split
	errInvalidLocale    = errors.New("invalid locale")          // locale without language or region
)

// CurrencyMismatchError is returned when a binary operation is attempted
// on amounts denominated in different currencies.
// It matches [ErrCurrencyMismatch] when used with [errors.Is].
type CurrencyMismatchError struct {
	Op    string   // operation name, e.g. "add" or "get remainder of"
	Left  Currency // currency of the receiver
	Right Currency // currency of the other operand
}

func (e *CurrencyMismatchError) Error() string {
	return fmt.Sprintf("can't %v different currencies %v and %v", e.Op, e.Left, e.Right)
}

// Is reports whether target is [ErrCurrencyMismatch].
func (e *CurrencyMismatchError) Is(target error) bool {
	return target == ErrCurrencyMismatch
}

func mismatch(op string, a, b Currency) error {
	return &CurrencyMismatchError{Op: op, Left: a, Right: b}
}

// overflow marks an error from the decimal package as an amount overflow.
func overflow(err error) error {
	return fmt.Errorf("%w: %w", ErrAmountOverflow, err)
}
