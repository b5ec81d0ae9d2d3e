package jpy

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
)

// Kind identifies the numeric representation of an amount.
// See also method [Amount.Kind].
type Kind uint8

const (
	Integer  Kind = iota // arbitrary-precision integer
	Float                // IEEE 754 binary64 floating-point number
	Rational             // arbitrary-precision fraction
)

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (k Kind) String() string {
	switch k {
	case Integer:
		return "Integer"
	case Float:
		return "Float"
	case Rational:
		return "Rational"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// maxExactExp is the largest exponent magnitude computed exactly by [pow].
// Larger exponents fall back to floating-point.
const maxExactExp = 1 << 20

var (
	bigZero = new(big.Int)
	bigOne  = big.NewInt(1)
	bigTen  = big.NewInt(10)
	ratZero = new(big.Rat)
)

// magnitude is a tagged union over the three numeric kinds.
// The values referenced by i and r are never modified once a magnitude
// holds them, so magnitudes can be copied freely.
type magnitude struct {
	kind Kind
	i    *big.Int // Integer, nil means 0
	f    float64  // Float
	r    *big.Rat // Rational, nil means 0
}

func intMag(i *big.Int) magnitude {
	return magnitude{kind: Integer, i: i}
}

func floatMag(f float64) magnitude {
	return magnitude{kind: Float, f: f}
}

func ratMag(r *big.Rat) magnitude {
	return magnitude{kind: Rational, r: r}
}

// int returns the integer value of an Integer magnitude.
func (m magnitude) int() *big.Int {
	if m.i == nil {
		return bigZero
	}
	return m.i
}

// rat returns the exact value of an Integer or Rational magnitude.
func (m magnitude) rat() *big.Rat {
	switch m.kind {
	case Integer:
		return new(big.Rat).SetInt(m.int())
	case Rational:
		if m.r == nil {
			return ratZero
		}
		return m.r
	}
	panic(fmt.Sprintf("rat() called on %v magnitude", m.kind))
}

// exactRat returns the exact value of a magnitude.
// A float is represented by its exact binary fraction.
// It returns false for NaN and infinities.
func (m magnitude) exactRat() (*big.Rat, bool) {
	if m.kind != Float {
		return m.rat(), true
	}
	if math.IsNaN(m.f) || math.IsInf(m.f, 0) {
		return nil, false
	}
	return new(big.Rat).SetFloat64(m.f), true
}

// float returns the nearest float64.
func (m magnitude) float() float64 {
	switch m.kind {
	case Integer:
		f, _ := new(big.Rat).SetInt(m.int()).Float64()
		return f
	case Rational:
		f, _ := m.rat().Float64()
		return f
	}
	return m.f
}

func (m magnitude) sign() int {
	switch m.kind {
	case Integer:
		return m.int().Sign()
	case Rational:
		return m.rat().Sign()
	}
	switch {
	case m.f > 0:
		return 1
	case m.f < 0:
		return -1
	}
	return 0
}

func (m magnitude) isFinite() bool {
	return m.kind != Float || !(math.IsNaN(m.f) || math.IsInf(m.f, 0))
}

// widen returns the kind of the result of combining x and y:
// Float wins over everything, Rational wins over Integer.
func widen(x, y magnitude) Kind {
	switch {
	case x.kind == Float || y.kind == Float:
		return Float
	case x.kind == Rational || y.kind == Rational:
		return Rational
	}
	return Integer
}

func add(x, y magnitude) magnitude {
	switch widen(x, y) {
	case Integer:
		return intMag(new(big.Int).Add(x.int(), y.int()))
	case Rational:
		return ratMag(new(big.Rat).Add(x.rat(), y.rat()))
	}
	return floatMag(x.float() + y.float())
}

func sub(x, y magnitude) magnitude {
	switch widen(x, y) {
	case Integer:
		return intMag(new(big.Int).Sub(x.int(), y.int()))
	case Rational:
		return ratMag(new(big.Rat).Sub(x.rat(), y.rat()))
	}
	return floatMag(x.float() - y.float())
}

func mul(x, y magnitude) magnitude {
	switch widen(x, y) {
	case Integer:
		return intMag(new(big.Int).Mul(x.int(), y.int()))
	case Rational:
		return ratMag(new(big.Rat).Mul(x.rat(), y.rat()))
	}
	return floatMag(x.float() * y.float())
}

// quo divides x by y.
// Integers use floor division, floats follow IEEE 754 and never fail.
func quo(x, y magnitude) (magnitude, error) {
	switch widen(x, y) {
	case Integer:
		if y.sign() == 0 {
			return magnitude{}, ErrDivisionByZero
		}
		q, _ := floorQuoRem(x.int(), y.int())
		return intMag(q), nil
	case Rational:
		if y.sign() == 0 {
			return magnitude{}, ErrDivisionByZero
		}
		return ratMag(new(big.Rat).Quo(x.rat(), y.rat())), nil
	}
	return floatMag(x.float() / y.float()), nil
}

// mod returns the floored remainder of x and y.
// The sign of a non-zero remainder is the same as the sign of the divisor.
func mod(x, y magnitude) (magnitude, error) {
	switch widen(x, y) {
	case Integer:
		if y.sign() == 0 {
			return magnitude{}, ErrDivisionByZero
		}
		_, r := floorQuoRem(x.int(), y.int())
		return intMag(r), nil
	case Rational:
		if y.sign() == 0 {
			return magnitude{}, ErrDivisionByZero
		}
		_, r := floorQuoRemRat(x.rat(), y.rat())
		return ratMag(r), nil
	}
	a, b := x.float(), y.float()
	if b == 0 {
		return floatMag(math.NaN()), nil
	}
	_, r := floorQuoRemFloat(a, b)
	return floatMag(r), nil
}

// divMod returns the quotient q and remainder r such that x = y * q + r,
// where q = floor(x / y) is always an Integer.
func divMod(x, y magnitude) (q, r magnitude, err error) {
	switch widen(x, y) {
	case Integer:
		if y.sign() == 0 {
			return magnitude{}, magnitude{}, ErrDivisionByZero
		}
		qi, ri := floorQuoRem(x.int(), y.int())
		return intMag(qi), intMag(ri), nil
	case Rational:
		if y.sign() == 0 {
			return magnitude{}, magnitude{}, ErrDivisionByZero
		}
		qi, rr := floorQuoRemRat(x.rat(), y.rat())
		return intMag(qi), ratMag(rr), nil
	}
	a, b := x.float(), y.float()
	if b == 0 {
		return magnitude{}, magnitude{}, ErrDivisionByZero
	}
	qf, rf := floorQuoRemFloat(a, b)
	if math.IsNaN(qf) || math.IsInf(qf, 0) {
		return magnitude{}, magnitude{}, fmt.Errorf("%w: quotient %v is not finite", ErrInvalidMagnitude, qf)
	}
	qi, _ := new(big.Float).SetFloat64(qf).Int(nil)
	return intMag(qi), floatMag(rf), nil
}

// pow raises x to the power of y.
// The result is an Integer only when both operands are Integers and y is
// not negative. Other exact operands with an integral exponent produce a
// Rational. Everything else is computed in floating-point, as are exponents
// beyond maxExactExp unless the base is 0, 1 or -1.
func pow(x, y magnitude) (magnitude, error) {
	e, ok := y.integral()
	if x.kind == Float || !ok || (e.CmpAbs(big.NewInt(maxExactExp)) > 0 && !x.isUnit()) {
		return floatMag(math.Pow(x.float(), y.float())), nil
	}
	if x.kind == Integer && y.kind == Integer && e.Sign() >= 0 {
		return intMag(new(big.Int).Exp(x.int(), e, nil)), nil
	}
	base := x.rat()
	if e.Sign() < 0 {
		if base.Sign() == 0 {
			return magnitude{}, ErrDivisionByZero
		}
		base = new(big.Rat).Inv(base)
		e = new(big.Int).Neg(e)
	}
	num := new(big.Int).Exp(base.Num(), e, nil)
	den := new(big.Int).Exp(base.Denom(), e, nil)
	return ratMag(new(big.Rat).SetFrac(num, den)), nil
}

// isUnit reports whether x is an exact 0, 1 or -1.
// Any power of these stays small.
func (m magnitude) isUnit() bool {
	switch m.kind {
	case Integer:
		return m.int().CmpAbs(bigOne) <= 0
	case Rational:
		r := m.rat()
		return r.IsInt() && r.Num().CmpAbs(bigOne) <= 0
	}
	return false
}

// integral returns the value of an exact magnitude with no fractional part.
func (m magnitude) integral() (*big.Int, bool) {
	switch m.kind {
	case Integer:
		return m.int(), true
	case Rational:
		if r := m.rat(); r.IsInt() {
			return r.Num(), true
		}
	}
	return nil, false
}

// compare compares x and y.
// A Rational and a Float are compared as floats, like any other operation
// mixing those kinds. All other pairs are compared exactly.
// It returns false if either of them is NaN.
func compare(x, y magnitude) (int, bool) {
	if x.kind == Integer && y.kind == Integer {
		return x.int().Cmp(y.int()), true
	}
	if (x.kind == Float && math.IsNaN(x.f)) || (y.kind == Float && math.IsNaN(y.f)) {
		return 0, false
	}
	xinf, yinf := x.infSign(), y.infSign()
	if xinf != 0 || yinf != 0 {
		switch {
		case xinf < yinf:
			return -1, true
		case xinf > yinf:
			return 1, true
		}
		return 0, true
	}
	if (x.kind == Float && y.kind == Rational) || (x.kind == Rational && y.kind == Float) {
		xf, yf := x.float(), y.float()
		switch {
		case xf < yf:
			return -1, true
		case xf > yf:
			return 1, true
		}
		return 0, true
	}
	xr, _ := x.exactRat()
	yr, _ := y.exactRat()
	return xr.Cmp(yr), true
}

// infSign returns +1 or -1 for infinities and 0 otherwise.
func (m magnitude) infSign() int {
	switch {
	case m.kind != Float:
		return 0
	case math.IsInf(m.f, 1):
		return 1
	case math.IsInf(m.f, -1):
		return -1
	}
	return 0
}

func neg(x magnitude) magnitude {
	switch x.kind {
	case Integer:
		return intMag(new(big.Int).Neg(x.int()))
	case Rational:
		return ratMag(new(big.Rat).Neg(x.rat()))
	}
	return floatMag(-x.f)
}

// round rounds x to prec digits after the decimal point using rounding
// half away from zero.
// Floats are rounded on their shortest decimal representation, so 2.675
// rounds to 2.68 even though its binary value is slightly smaller.
// With prec <= 0 Float and Rational magnitudes become Integers.
// Integers are left unchanged unless prec is negative.
// Non-finite floats are returned unchanged.
func round(x magnitude, prec int) magnitude {
	switch x.kind {
	case Integer:
		if prec >= 0 {
			return x
		}
		return intMag(roundRat(new(big.Rat).SetInt(x.int()), prec).Num())
	case Rational:
		r := roundRat(x.rat(), prec)
		if prec <= 0 {
			return intMag(r.Num())
		}
		return ratMag(r)
	}
	if !x.isFinite() {
		return x
	}
	// Shortest representation never needs more digits than this.
	if prec > 340 {
		return x
	}
	r, _ := new(big.Rat).SetString(strconv.FormatFloat(x.f, 'g', -1, 64))
	r = roundRat(r, prec)
	if prec <= 0 {
		return intMag(r.Num())
	}
	f, _ := r.Float64()
	return floatMag(f)
}

// roundRat rounds r to prec digits after the decimal point using rounding
// half away from zero.
func roundRat(r *big.Rat, prec int) *big.Rat {
	num, den := r.Num(), r.Denom()
	if prec >= 0 {
		unit := new(big.Int).Exp(bigTen, big.NewInt(int64(prec)), nil)
		q := roundQuo(new(big.Int).Mul(num, unit), den)
		return new(big.Rat).SetFrac(q, unit)
	}
	// The result is 0 once the rounding unit exceeds twice the value.
	whole := new(big.Int).Quo(num, den)
	if prec < -len(whole.Text(10)) {
		return new(big.Rat)
	}
	unit := new(big.Int).Exp(bigTen, big.NewInt(int64(-prec)), nil)
	q := roundQuo(num, new(big.Int).Mul(den, unit))
	return new(big.Rat).SetInt(q.Mul(q, unit))
}

// roundQuo returns num / den rounded half away from zero.
// The denominator must be positive.
func roundQuo(num, den *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(num, den, new(big.Int))
	r.Abs(r).Lsh(r, 1)
	if r.Cmp(den) >= 0 {
		if num.Sign() < 0 {
			q.Sub(q, bigOne)
		} else {
			q.Add(q, bigOne)
		}
	}
	return q
}

// floorQuoRem returns q = floor(x / y) and r = x - y * q.
func floorQuoRem(x, y *big.Int) (q, r *big.Int) {
	q, r = new(big.Int).QuoRem(x, y, new(big.Int))
	if r.Sign() != 0 && r.Sign() != y.Sign() {
		q.Sub(q, bigOne)
		r.Add(r, y)
	}
	return q, r
}

// floorQuoRemRat returns q = floor(x / y) and r = x - y * q.
func floorQuoRemRat(x, y *big.Rat) (*big.Int, *big.Rat) {
	z := new(big.Rat).Quo(x, y)
	q, _ := floorQuoRem(z.Num(), z.Denom())
	r := new(big.Rat).Mul(y, new(big.Rat).SetInt(q))
	return q, r.Sub(x, r)
}

// floorQuoRemFloat returns q = floor(x / y) and r = x - y * q computed
// the way C's fmod-based floored division does it.
func floorQuoRemFloat(x, y float64) (q, r float64) {
	if math.IsNaN(y) {
		return y, y
	}
	if x == 0 || (math.IsInf(y, 0) && !math.IsInf(x, 0)) {
		r = x
	} else {
		r = math.Mod(x, y)
	}
	if math.IsInf(x, 0) && !math.IsInf(y, 0) {
		q = x
	} else {
		q = math.Round((x - r) / y)
	}
	if y*r < 0 {
		r += y
		q -= 1
	}
	return q, r
}
