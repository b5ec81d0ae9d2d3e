/*
Package jpy implements amounts of Japanese Yen that behave like numbers.
An [Amount] wraps a single magnitude and supports arithmetic, comparison,
rounding, conversion, and formatted display with the yen sign and thousands
separators.
Vectors and matrices of amounts are provided by the [dense] package.

# Features

  - Amounts of any numeric kind: arbitrary-precision integers, floats, and fractions
  - Arithmetic and comparison between amounts and raw numbers, in either order
  - Rounding half away from zero, with pure and in-place variants
  - Conversion to and from [math/big] types, float64, and [decimal.Decimal]
  - Bulk operations over vectors and matrices of amounts

# Representation

The magnitude of an amount has one of three kinds, see [Kind]:

  - [Integer] holds a [big.Int];
  - [Float] holds a float64;
  - [Rational] holds a [big.Rat].

The kind travels with the value supplied to [New] and changes only as the
result of an operation.
When two magnitudes of different kinds are combined, the result is widened:

	| Operands            | Result   |
	| ------------------- | -------- |
	| Integer, Integer    | Integer  |
	| Integer, Rational   | Rational |
	| Rational, Rational  | Rational |
	| any, Float          | Float    |

# Coercion

Every binary operation of an amount takes its other operand as any and
passes it to [Amount.Coerce] first.
An amount is used as is, a raw number accepted by [New] becomes an amount,
and anything else fails with a [*TypeMismatchError].
The package-level functions [Add], [Sub], [Mul], [Quo], [Mod], [DivMod],
[Pow], [Cmp], and [Equal] accept an amount on either side, so
Add(1000, yen) and Add(yen, 1000) give the same amount.

# Division

Dividing two integers uses floor division: ¥-7 / 2 is ¥-4 and ¥-7 % 2 is ¥1.
This keeps a = b * q + r exact for [Amount.DivMod].
Dividing an exact magnitude by an exact 0 returns [ErrDivisionByZero],
while a float divisor of 0 produces an infinity or NaN.

# Rounding

[Amount.Round], [Amount.Int], and the %d verb use rounding half away
from zero: ¥1,234.5 rounds to ¥1,235 and ¥-0.5 rounds to ¥-1.
Floats are rounded on their shortest decimal representation.

# Vectors and Matrices

[NewVector], [NewMatrix], and [Of] lift raw values into a [Vector] or
[Matrix] of amounts.
Their algebra (element-wise addition, scaling, matrix-vector products,
transposition, slicing, and sums) is delegated to [dense], and stays within
amounts because every element operation goes through [Amount.Coerce].

# Errors

The package reports failures with errors wrapping one of [ErrInvalidMagnitude],
[ErrTypeMismatch], [ErrNotComparable], [ErrDivisionByZero], and
[ErrIrregularShape].
[Amount.Equal] never fails: comparing with a value that is not numeric
returns false.
*/
package jpy
