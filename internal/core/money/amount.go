// Package money provides exact-precision monetary arithmetic for the
// simulation core. All wallet balances, asset values, and transaction
// amounts flow through Amount so that no computation can silently promote
// to binary floating point.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Scale is the number of decimal places Div rounds every quotient to.
// 28 matches the minimum the spec requires.
const Scale = 28

func init() {
	decimal.DivisionPrecision = Scale
}

// Amount wraps decimal.Decimal so call sites can't accidentally mix in a
// float64 without going through FromFloat/Float64 explicitly.
type Amount struct {
	d decimal.Decimal
}

// Zero is the additive identity.
var Zero = Amount{d: decimal.Zero}

// New constructs an Amount from an int64 of whole currency units.
func New(whole int64) Amount {
	return Amount{d: decimal.NewFromInt(whole)}
}

// NewFromString parses a decimal literal such as "1234.56". It is the
// preferred constructor at config/JSON boundaries since it never touches
// binary floating point.
func NewFromString(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero, fmt.Errorf("money: invalid decimal %q: %w", s, err)
	}
	return Amount{d: d}, nil
}

// FromFloat is an explicit, named boundary crossing from float64, used for
// RNG draws, float factors (penalties, credit-score deltas), analytics
// results, and CLI flags.
func FromFloat(f float64) Amount {
	return Amount{d: decimal.NewFromFloat(f)}
}

// Float64 is the explicit, named boundary crossing to float64, used by the
// analytics statistics, by nodes passing decimal parameters to the RNG, and
// by CreditScoreNode's ratio and balance bands.
func (a Amount) Float64() float64 {
	f, _ := a.d.Float64()
	return f
}

func (a Amount) Add(b Amount) Amount { return Amount{d: a.d.Add(b.d)} }
func (a Amount) Sub(b Amount) Amount { return Amount{d: a.d.Sub(b.d)} }
func (a Amount) Mul(b Amount) Amount { return Amount{d: a.d.Mul(b.d)} }

// Div performs exact division rounded to Scale digits using banker's
// rounding (round-half-even), per spec.md §4.A.
func (a Amount) Div(b Amount) Amount {
	q, r := a.d.QuoRem(b.d, Scale) // q truncated toward zero
	two := decimal.NewFromInt(2)
	// Compare the remainder with half a unit in the last place.
	c := r.Abs().Mul(two).Cmp(b.d.Abs().Shift(-Scale))
	if c > 0 || (c == 0 && !q.Shift(Scale).Mod(two).IsZero()) {
		ulp := decimal.New(1, -Scale)
		if a.d.Sign()*b.d.Sign() < 0 {
			ulp = ulp.Neg()
		}
		q = q.Add(ulp)
	}
	return Amount{d: q}
}

// MulFloat multiplies by a raw float64 factor (used for RNG noise factors
// like InvestmentReturnNode's gauss(1.0, 0.01) multiplier). The float is
// converted to a decimal at the call boundary, not silently.
func (a Amount) MulFloat(f float64) Amount {
	return Amount{d: a.d.Mul(decimal.NewFromFloat(f))}
}

func (a Amount) Neg() Amount { return Amount{d: a.d.Neg()} }

func (a Amount) IsZero() bool { return a.d.IsZero() }
func (a Amount) IsNeg() bool  { return a.d.IsNegative() }
func (a Amount) IsPos() bool  { return a.d.IsPositive() }

func (a Amount) Cmp(b Amount) int { return a.d.Cmp(b.d) }

func (a Amount) GreaterThan(b Amount) bool        { return a.d.GreaterThan(b.d) }
func (a Amount) GreaterThanOrEqual(b Amount) bool { return a.d.GreaterThanOrEqual(b.d) }
func (a Amount) LessThan(b Amount) bool           { return a.d.LessThan(b.d) }
func (a Amount) LessThanOrEqual(b Amount) bool    { return a.d.LessThanOrEqual(b.d) }
func (a Amount) Equal(b Amount) bool              { return a.d.Equal(b.d) }

// Max and Min are used throughout the node set (e.g. flooring principal
// reduction at zero, clamping deficits).
func Max(a, b Amount) Amount {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

func Min(a, b Amount) Amount {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Clamp restricts a to the inclusive range [lo, hi].
func Clamp(a, lo, hi Amount) Amount {
	if a.LessThan(lo) {
		return lo
	}
	if a.GreaterThan(hi) {
		return hi
	}
	return a
}

// Round applies banker's rounding at the given number of decimal places.
func (a Amount) Round(places int32) Amount {
	return Amount{d: a.d.RoundBank(places)}
}

func (a Amount) String() string {
	return a.d.StringFixedBank(2)
}

// StringExact renders every significant digit, used by snapshot/export
// boundaries where truncation would lose precision.
func (a Amount) StringExact() string {
	return a.d.String()
}

// MarshalJSON emits the canonical decimal string per spec.md §6 ("all
// monetary fields are emitted as canonical decimal strings").
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.d.String() + `"`), nil
}

// UnmarshalJSON accepts both quoted decimal strings and bare JSON numbers.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("money: %w", err)
	}
	a.d = d
	return nil
}
