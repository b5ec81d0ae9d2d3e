package jpy

import "fmt"

// TypeMismatchError is returned when a value cannot be implicitly converted
// into the type required by an operation.
// It wraps [ErrTypeMismatch].
type TypeMismatchError struct {
	From string // type of the value being converted
	Into string // type it was expected to become
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("no implicit conversion of %v into %v", e.From, e.Into)
}

func (e *TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}

// Coerce returns operand b converted to an amount, followed by amount a,
// so that both operands of a binary operation are amounts.
// Every arithmetic and comparison method calls Coerce before touching the
// magnitudes:
//   - an amount is returned as is;
//   - a numeric value accepted by [New] is converted to an amount of its own kind;
//   - anything else fails with a [*TypeMismatchError], such as
//     "no implicit conversion of string into jpy.Amount".
func (a Amount) Coerce(b any) (Amount, Amount, error) {
	switch b := b.(type) {
	case Amount:
		return b, a, nil
	case *Amount:
		if b != nil {
			return *b, a, nil
		}
	}
	m, err := magnitudeOf(b)
	if err != nil {
		return Amount{}, Amount{}, &TypeMismatchError{From: typeName(b), Into: typeName(a)}
	}
	return Amount{mag: m}, a, nil
}

// leftOperand converts the left operand of a package-level operation.
// When x is not numeric, the failure is reported the way x's own operator
// would report it: y cannot be converted into the type of x.
func leftOperand(x, y any) (Amount, error) {
	m, err := magnitudeOf(x)
	if err != nil {
		return Amount{}, &TypeMismatchError{From: typeName(y), Into: typeName(x)}
	}
	return Amount{mag: m}, nil
}

// Add returns the sum of x and y, where either operand may be an amount or
// a raw numeric value: Add(1000, yen) and Add(yen, 1000) are both amounts.
// See also method [Amount.Add].
//
// If x is not numeric, Add fails the way x's own addition would, for example
// Add("text", yen) returns "no implicit conversion of jpy.Amount into string".
func Add(x, y any) (Amount, error) {
	a, err := leftOperand(x, y)
	if err != nil {
		return Amount{}, err
	}
	return a.Add(y)
}

// Sub returns the difference between x and y.
// See also functions [Add] and method [Amount.Sub].
func Sub(x, y any) (Amount, error) {
	a, err := leftOperand(x, y)
	if err != nil {
		return Amount{}, err
	}
	return a.Sub(y)
}

// Mul returns the product of x and y.
// See also functions [Add] and method [Amount.Mul].
func Mul(x, y any) (Amount, error) {
	a, err := leftOperand(x, y)
	if err != nil {
		return Amount{}, err
	}
	return a.Mul(y)
}

// Quo returns the quotient of x and y.
// See also functions [Add] and method [Amount.Quo].
func Quo(x, y any) (Amount, error) {
	a, err := leftOperand(x, y)
	if err != nil {
		return Amount{}, err
	}
	return a.Quo(y)
}

// Mod returns the floored remainder of x and y.
// See also functions [Add] and method [Amount.Mod].
func Mod(x, y any) (Amount, error) {
	a, err := leftOperand(x, y)
	if err != nil {
		return Amount{}, err
	}
	return a.Mod(y)
}

// DivMod returns the floored quotient and remainder of x and y.
// See also functions [Add] and method [Amount.DivMod].
func DivMod(x, y any) (q, r Amount, err error) {
	a, err := leftOperand(x, y)
	if err != nil {
		return Amount{}, Amount{}, err
	}
	return a.DivMod(y)
}

// Pow returns x raised to the power of y.
// See also functions [Add] and method [Amount.Pow].
func Pow(x, y any) (Amount, error) {
	a, err := leftOperand(x, y)
	if err != nil {
		return Amount{}, err
	}
	return a.Pow(y)
}

// Cmp compares x and y, where either operand may be an amount or a raw
// numeric value.
// See also method [Amount.Cmp].
func Cmp(x, y any) (int, error) {
	a, err := leftOperand(x, y)
	if err != nil {
		return 0, fmt.Errorf("comparison of %v with %v failed: %w: %w", typeName(x), typeName(y), ErrNotComparable, err)
	}
	return a.Cmp(y)
}

// Equal returns true if x and y have the same numeric value.
// It returns false if either operand is not numeric.
// See also method [Amount.Equal].
func Equal(x, y any) bool {
	a, err := leftOperand(x, y)
	if err != nil {
		return false
	}
	return a.Equal(y)
}
