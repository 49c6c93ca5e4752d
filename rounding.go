package money

import (
	"github.com/govalues/decimal"
	wide "github.com/shopspring/decimal"
)

// The helpers below compute products and quotients exactly and round them
// once, half to even, to the scale of the currency. The decimal package
// rounds every result to 19 digits, so rounding its result again to the
// currency scale could move the last minor unit.

// wideOf returns an arbitrary-precision copy of d.
func wideOf(d decimal.Decimal) wide.Decimal {
	return wide.RequireFromString(d.String())
}

// narrow converts w, which has at most scale digits after the decimal point,
// back to a decimal with exactly that scale.
func narrow(w wide.Decimal, scale int) (decimal.Decimal, error) {
	d, err := decimal.Parse(w.StringFixed(int32(scale)))
	if err != nil {
		return decimal.Decimal{}, overflow(err)
	}
	if d.Scale() < scale {
		return decimal.Decimal{}, ErrAmountOverflow
	}
	return d, nil
}

// mulRound returns d * e rounded to the scale.
// Products that fit into 19 digits are computed without leaving the decimal package.
func mulRound(d, e decimal.Decimal, scale int) (decimal.Decimal, error) {
	if d.Prec()+e.Prec() <= decimal.MaxPrec && d.Scale()+e.Scale() <= decimal.MaxScale {
		p, err := d.Mul(e)
		if err != nil {
			return decimal.Decimal{}, overflow(err)
		}
		return p.Round(scale), nil
	}
	p := wideOf(d).Mul(wideOf(e))
	return narrow(p.RoundBank(int32(scale)), scale)
}

// fmaRound returns d * e + f rounded to the scale.
func fmaRound(d, e, f decimal.Decimal, scale int) (decimal.Decimal, error) {
	p := wideOf(d).Mul(wideOf(e)).Add(wideOf(f))
	return narrow(p.RoundBank(int32(scale)), scale)
}

// quoRound returns d / e rounded to the scale.
// The divisor must not be zero.
func quoRound(d, e decimal.Decimal, scale int) (decimal.Decimal, error) {
	x, y := wideOf(d), wideOf(e)
	s := int32(scale)

	// Quotient truncated toward zero, remainder with the sign of x
	q, r := x.QuoRem(y, s)
	if r.IsZero() {
		return narrow(q, scale)
	}

	// Compare the remainder with half of the minor unit
	unit := wide.New(1, -s)
	half := r.Abs().Mul(wide.NewFromInt(2)).Cmp(y.Abs().Mul(unit))
	if half > 0 || half == 0 && q.Shift(s).BigInt().Bit(0) == 1 {
		if x.Sign()*y.Sign() < 0 {
			unit = unit.Neg()
		}
		q = q.Add(unit)
	}
	return narrow(q, scale)
}

// truncQuo returns d / n truncated toward zero to the scale.
func truncQuo(d decimal.Decimal, n int, scale int) (decimal.Decimal, error) {
	q, _ := wideOf(d).QuoRem(wide.NewFromInt(int64(n)), int32(scale))
	return narrow(q, scale)
}
