package jpy

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/govalues/decimal"
)

var (
	// ErrInvalidMagnitude is returned when an amount is created from a value
	// that is not numeric.
	ErrInvalidMagnitude = errors.New("invalid magnitude")
	// ErrTypeMismatch is returned when an operand cannot be coerced into an amount.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrNotComparable is returned by ordering comparisons when an operand
	// cannot be ordered against an amount.
	ErrNotComparable = errors.New("not comparable")
	// ErrDivisionByZero is returned when an exact magnitude is divided by zero.
	ErrDivisionByZero = errors.New("division by zero")
)

// Amount type represents an amount of Japanese Yen.
// Its magnitude is an arbitrary-precision integer, a float64, or an
// arbitrary-precision fraction, see [Kind].
// The zero value corresponds to "¥0" of kind [Integer].
//
// Amounts are values: operations return new amounts and never modify the
// receiver, except for the explicit in-place methods [Amount.RoundInPlace],
// [Amount.DecimalizeInPlace], and [Amount.RationalizeInPlace].
// Amount is safe for concurrent reads; the in-place methods must not be
// called concurrently on the same variable.
//
// Amounts cannot be compared with ==, use [Amount.Equal] or [Amount.Cmp].
type Amount struct {
	_   [0]func() // not comparable
	mag magnitude
}

// Rationaler is implemented by exact numeric types which can report their
// value as a fraction, such as [shopspring decimal].
// Values implementing Rationaler are accepted wherever a numeric value is
// expected and become amounts of kind [Rational].
//
// [shopspring decimal]: https://pkg.go.dev/github.com/shopspring/decimal#Decimal.Rat
type Rationaler interface {
	Rat() *big.Rat
}

// New returns an amount with the given magnitude.
// The following types are accepted, everything else is rejected with
// [ErrInvalidMagnitude]:
//
//	| Type                                | Kind     |
//	| ----------------------------------- | -------- |
//	| int, int8, ..., int64, uint, ...    | Integer  |
//	| *big.Int                            | Integer  |
//	| float32, float64                    | Float    |
//	| *big.Rat, decimal.Decimal           | Rational |
//	| Rationaler                          | Rational |
//	| Amount, *Amount                     | same     |
//
// Creating an amount from another amount copies its magnitude and kind.
// Big numbers are copied, later changes to them do not affect the amount.
func New(v any) (Amount, error) {
	m, err := magnitudeOf(v)
	if err != nil {
		return Amount{}, fmt.Errorf("creating %T from %v: %w", Amount{}, typeName(v), err)
	}
	return Amount{mag: m}, nil
}

// MustNew is like [New] but panics if the amount cannot be created.
// It simplifies safe initialization of global variables holding amounts.
func MustNew(v any) Amount {
	a, err := New(v)
	if err != nil {
		panic(fmt.Sprintf("New(%v) failed: %v", v, err))
	}
	return a
}

//gocyclo:ignore
func magnitudeOf(v any) (magnitude, error) {
	switch v := v.(type) {
	case Amount:
		return v.mag, nil
	case *Amount:
		if v != nil {
			return v.mag, nil
		}
	case int:
		return intMag(big.NewInt(int64(v))), nil
	case int8:
		return intMag(big.NewInt(int64(v))), nil
	case int16:
		return intMag(big.NewInt(int64(v))), nil
	case int32:
		return intMag(big.NewInt(int64(v))), nil
	case int64:
		return intMag(big.NewInt(v)), nil
	case uint:
		return intMag(new(big.Int).SetUint64(uint64(v))), nil
	case uint8:
		return intMag(new(big.Int).SetUint64(uint64(v))), nil
	case uint16:
		return intMag(new(big.Int).SetUint64(uint64(v))), nil
	case uint32:
		return intMag(new(big.Int).SetUint64(uint64(v))), nil
	case uint64:
		return intMag(new(big.Int).SetUint64(v)), nil
	case float32:
		return floatMag(float64(v)), nil
	case float64:
		return floatMag(v), nil
	case *big.Int:
		if v != nil {
			return intMag(new(big.Int).Set(v)), nil
		}
	case *big.Rat:
		if v != nil {
			return ratMag(new(big.Rat).Set(v)), nil
		}
	case decimal.Decimal:
		r, ok := new(big.Rat).SetString(v.String())
		if ok {
			return ratMag(r), nil
		}
	case Rationaler:
		if r := v.Rat(); r != nil {
			return ratMag(new(big.Rat).Set(r)), nil
		}
	}
	return magnitude{}, ErrInvalidMagnitude
}

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}

// Magnitude returns the numeric value of the amount:
// a *big.Int for [Integer], a float64 for [Float], and a *big.Rat for [Rational].
// Big numbers are returned as copies.
func (a Amount) Magnitude() any {
	switch a.mag.kind {
	case Integer:
		return new(big.Int).Set(a.mag.int())
	case Rational:
		return new(big.Rat).Set(a.mag.rat())
	}
	return a.mag.f
}

// Kind returns the numeric kind of the magnitude.
func (a Amount) Kind() Kind {
	return a.mag.kind
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0 or a is NaN
//	+1 if a > 0
func (a Amount) Sign() int {
	return a.mag.sign()
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
func (a Amount) IsZero() bool {
	return a.mag.isFinite() && a.mag.sign() == 0
}

// IsInt returns true if the amount has no fractional part.
// Infinities and NaN are not integers.
func (a Amount) IsInt() bool {
	switch a.mag.kind {
	case Integer:
		return true
	case Rational:
		return a.mag.rat().IsInt()
	}
	r, ok := a.mag.exactRat()
	return ok && r.IsInt()
}

// Neg returns an amount with the opposite sign.
func (a Amount) Neg() Amount {
	return Amount{mag: neg(a.mag)}
}

// Abs returns the absolute value of the amount.
func (a Amount) Abs() Amount {
	if a.Sign() < 0 {
		return a.Neg()
	}
	return a
}

// Add returns the sum of amount a and b.
// Operand b can be an amount or any numeric value accepted by [New].
// The kind of the result follows [Amount.Coerce].
//
// Add returns a [*TypeMismatchError] if b is not numeric.
func (a Amount) Add(b any) (Amount, error) {
	right, left, err := a.Coerce(b)
	if err != nil {
		return Amount{}, err
	}
	return Amount{mag: add(left.mag, right.mag)}, nil
}

// Sub returns the difference between amount a and b.
//
// Sub returns a [*TypeMismatchError] if b is not numeric.
func (a Amount) Sub(b any) (Amount, error) {
	right, left, err := a.Coerce(b)
	if err != nil {
		return Amount{}, err
	}
	return Amount{mag: sub(left.mag, right.mag)}, nil
}

// Mul returns the product of amount a and b.
//
// Mul returns a [*TypeMismatchError] if b is not numeric.
func (a Amount) Mul(b any) (Amount, error) {
	right, left, err := a.Coerce(b)
	if err != nil {
		return Amount{}, err
	}
	return Amount{mag: mul(left.mag, right.mag)}, nil
}

// Quo returns the quotient of amount a and divisor b.
// Dividing two integers uses floor division, so ¥-7 / 2 is ¥-4.
// A float divisor of 0 produces an infinity or NaN.
// See also method [Amount.DivMod].
//
// Quo returns an error if:
//   - b is not numeric;
//   - both a and b are exact (Integer or Rational) and b is 0.
func (a Amount) Quo(b any) (Amount, error) {
	right, left, err := a.Coerce(b)
	if err != nil {
		return Amount{}, err
	}
	m, err := quo(left.mag, right.mag)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v / %v]: %w", left, right, err)
	}
	return Amount{mag: m}, nil
}

// Mod returns the floored remainder of amount a and divisor b.
// The sign of a non-zero remainder is the same as the sign of the divisor,
// so ¥-7 % 2 is ¥1.
//
// Mod returns an error if:
//   - b is not numeric;
//   - both a and b are exact (Integer or Rational) and b is 0.
func (a Amount) Mod(b any) (Amount, error) {
	right, left, err := a.Coerce(b)
	if err != nil {
		return Amount{}, err
	}
	m, err := mod(left.mag, right.mag)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v %% %v]: %w", left, right, err)
	}
	return Amount{mag: m}, nil
}

// DivMod returns the quotient q and remainder r of amount a and divisor b
// such that a = b * q + r, where q = floor(a / b) is always of kind [Integer]
// and r has the sign of b.
// See also methods [Amount.Quo] and [Amount.Mod].
//
// DivMod returns an error if:
//   - b is not numeric;
//   - b is 0, regardless of its kind;
//   - the quotient is not finite.
func (a Amount) DivMod(b any) (q, r Amount, err error) {
	right, left, err := a.Coerce(b)
	if err != nil {
		return Amount{}, Amount{}, err
	}
	qm, rm, err := divMod(left.mag, right.mag)
	if err != nil {
		return Amount{}, Amount{}, fmt.Errorf("computing [%v divmod %v]: %w", left, right, err)
	}
	return Amount{mag: qm}, Amount{mag: rm}, nil
}

// Pow returns amount a raised to the power of b.
// Integer ** non-negative Integer is an Integer, an exact base with an
// integral exponent is a Rational, and everything else is a Float.
// Exponents larger than 2^20 in magnitude are computed in floating-point,
// except for the bases 0, 1 and -1, which stay exact.
//
// Pow returns an error if:
//   - b is not numeric;
//   - a is an exact 0 and b is a negative integral exponent.
func (a Amount) Pow(b any) (Amount, error) {
	right, left, err := a.Coerce(b)
	if err != nil {
		return Amount{}, err
	}
	m, err := pow(left.mag, right.mag)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v ** %v]: %w", left, right, err)
	}
	return Amount{mag: m}, nil
}

// Equal returns true if amount a and b have the same numeric value,
// regardless of their kinds: ¥10 equals ¥10.0 and 10.
// Kinds are compared the same way as in [Amount.Cmp].
// Unlike the ordering methods, Equal never fails: if b cannot be coerced
// into an amount or either side is NaN, it returns false.
func (a Amount) Equal(b any) bool {
	right, left, err := a.Coerce(b)
	if err != nil {
		return false
	}
	c, ok := compare(left.mag, right.mag)
	return ok && c == 0
}

// Cmp compares amount a and b and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
//
// A Rational compared with a Float is converted to a Float first, the way
// arithmetic between them widens, so ¥1/3 equals 1.0/3.
// Any other pair of kinds is compared exactly, without rounding.
//
// Cmp returns an error wrapping [ErrNotComparable] if b cannot be coerced
// into an amount or if either side is NaN.
func (a Amount) Cmp(b any) (int, error) {
	right, left, err := a.Coerce(b)
	if err != nil {
		return 0, fmt.Errorf("comparison of %T with %v failed: %w: %w", a, typeName(b), ErrNotComparable, err)
	}
	c, ok := compare(left.mag, right.mag)
	if !ok {
		return 0, fmt.Errorf("comparison of %v with %v failed: %w", left, right, ErrNotComparable)
	}
	return c, nil
}

// Less returns true if a < b.
// See also method [Amount.Cmp].
func (a Amount) Less(b any) (bool, error) {
	c, err := a.Cmp(b)
	return err == nil && c < 0, err
}

// LessEq returns true if a <= b.
// See also method [Amount.Cmp].
func (a Amount) LessEq(b any) (bool, error) {
	c, err := a.Cmp(b)
	return err == nil && c <= 0, err
}

// Greater returns true if a > b.
// See also method [Amount.Cmp].
func (a Amount) Greater(b any) (bool, error) {
	c, err := a.Cmp(b)
	return err == nil && c > 0, err
}

// GreaterEq returns true if a >= b.
// See also method [Amount.Cmp].
func (a Amount) GreaterEq(b any) (bool, error) {
	c, err := a.Cmp(b)
	return err == nil && c >= 0, err
}

// Int returns the amount rounded to an integer using rounding half away
// from zero, so ¥1,234.5 becomes 1235 and ¥-1,234.5 becomes -1235.
// See also method [Amount.Round].
//
// Int returns false for infinities and NaN.
func (a Amount) Int() (*big.Int, bool) {
	r := round(a.mag, 0)
	if r.kind != Integer {
		return nil, false
	}
	return new(big.Int).Set(r.int()), true
}

// Int64 is like [Amount.Int] but returns false if the result cannot be
// represented as an int64.
func (a Amount) Int64() (int64, bool) {
	i, ok := a.Int()
	if !ok || !i.IsInt64() {
		return 0, false
	}
	return i.Int64(), true
}

// Float64 returns the nearest binary floating-point number.
// This conversion may lose data.
func (a Amount) Float64() float64 {
	return a.mag.float()
}

// Rat returns the exact value of the amount as a fraction.
// A [Float] is converted to its exact binary fraction,
// so ¥0.1 becomes 3602879701896397/36028797018963968.
//
// Rat returns false for infinities and NaN.
func (a Amount) Rat() (*big.Rat, bool) {
	r, ok := a.mag.exactRat()
	if !ok {
		return nil, false
	}
	return new(big.Rat).Set(r), true
}

// Decimal returns the (possibly rounded) amount as a [decimal.Decimal].
// Fractions are rounded to the precision of [decimal.Decimal].
//
// Decimal returns an error if:
//   - the amount is an infinity or NaN;
//   - the integer part of the amount has more than [decimal.MaxPrec] digits.
func (a Amount) Decimal() (decimal.Decimal, error) {
	d, err := a.decimal()
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v to %T: %w", a, decimal.Decimal{}, err)
	}
	return d, nil
}

func (a Amount) decimal() (decimal.Decimal, error) {
	switch a.mag.kind {
	case Integer:
		return decimal.Parse(a.mag.int().String())
	case Float:
		return decimal.NewFromFloat64(a.mag.f)
	}
	r := a.mag.rat()
	whole := new(big.Int).Quo(r.Num(), r.Denom())
	intdigs := 0
	if whole.Sign() != 0 {
		intdigs = len(new(big.Int).Abs(whole).Text(10))
	}
	scale := min(decimal.MaxScale, decimal.MaxPrec-intdigs)
	if scale < 0 {
		return decimal.Decimal{}, fmt.Errorf("integer part has %v digits", intdigs)
	}
	d, err := decimal.Parse(r.FloatString(scale))
	if err != nil {
		return decimal.Decimal{}, err
	}
	return d.Trim(0), nil
}

// Round returns an amount rounded to the specified number of digits after
// the decimal point using rounding half away from zero.
// A negative precision rounds to tens, hundreds, and so on.
//
// Kinds change as follows:
//   - Float and Rational amounts become Integers if prec <= 0;
//   - otherwise Float and Rational amounts keep their kind;
//   - Integer amounts are unchanged if prec >= 0.
//
// Floats are rounded on their shortest decimal representation.
// Infinities and NaN are returned unchanged.
// See also method [Amount.RoundInPlace].
func (a Amount) Round(prec int) Amount {
	return Amount{mag: round(a.mag, prec)}
}

// RoundInPlace is like [Amount.Round] but replaces the magnitude of a.
// Copies of a made earlier are not affected.
func (a *Amount) RoundInPlace(prec int) {
	a.mag = round(a.mag, prec)
}

// Decimalize returns the amount converted to kind [Float].
// See also method [Amount.DecimalizeInPlace].
func (a Amount) Decimalize() Amount {
	return Amount{mag: floatMag(a.mag.float())}
}

// DecimalizeInPlace is like [Amount.Decimalize] but replaces the magnitude of a.
func (a *Amount) DecimalizeInPlace() {
	a.mag = floatMag(a.mag.float())
}

// Rationalize returns the amount converted to kind [Rational].
// See also methods [Amount.Rat] and [Amount.RationalizeInPlace].
//
// Rationalize returns an error if the amount is an infinity or NaN.
func (a Amount) Rationalize() (Amount, error) {
	r, ok := a.mag.exactRat()
	if !ok {
		return Amount{}, fmt.Errorf("rationalizing %v: %w", a, ErrInvalidMagnitude)
	}
	return Amount{mag: ratMag(r)}, nil
}

// RationalizeInPlace is like [Amount.Rationalize] but replaces the magnitude of a.
// On error a is left unchanged.
func (a *Amount) RationalizeInPlace() error {
	b, err := a.Rationalize()
	if err != nil {
		return err
	}
	a.mag = b.mag
	return nil
}
