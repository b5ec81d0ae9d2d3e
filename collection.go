package jpy

import (
	"fmt"
	"math/big"
	"reflect"

	"github.com/govalues/jpy/dense"
	"go.uber.org/multierr"
	"golang.org/x/exp/constraints"
)

// Vector is an ordered sequence of amounts.
// Its arithmetic is provided by [dense.Vector]; every element operation goes
// through [Amount.Coerce], so scaling by a raw number keeps the elements amounts.
type Vector = dense.Vector[Amount]

// Matrix is a rectangular grid of amounts.
// Its arithmetic is provided by [dense.Matrix].
type Matrix = dense.Matrix[Amount]

// ErrIrregularShape is returned when a matrix is built from rows of unequal length.
var ErrIrregularShape = dense.ErrIrregularShape

// Number is the constraint satisfied by built-in integer and floating-point types.
type Number interface {
	constraints.Integer | constraints.Float
}

// NewVector returns a vector of amounts created from the given values by [New].
//
// NewVector returns an error wrapping [ErrInvalidMagnitude] if any of the
// values is not numeric; the error lists every such value.
func NewVector(values ...any) (Vector, error) {
	elems, err := lift(values)
	if err != nil {
		return Vector{}, fmt.Errorf("lifting vector: %w", err)
	}
	return dense.NewVector(elems...), nil
}

// NewMatrix returns a matrix of amounts whose rows are created from the given
// rows of values, each row the way [NewVector] does it.
//
// NewMatrix returns an error if:
//   - the rows have different lengths ([ErrIrregularShape]);
//   - any of the values is not numeric ([ErrInvalidMagnitude]).
func NewMatrix(rows ...[]any) (Matrix, error) {
	for i, row := range rows {
		if len(row) != len(rows[0]) {
			return Matrix{}, fmt.Errorf("lifting matrix: row %d has %d elements, want %d: %w", i, len(row), len(rows[0]), ErrIrregularShape)
		}
	}
	lifted := make([][]Amount, len(rows))
	var err error
	for i, row := range rows {
		elems, e := lift(row)
		if e != nil {
			err = multierr.Append(err, fmt.Errorf("row %d: %w", i, e))
			continue
		}
		lifted[i] = elems
	}
	if err != nil {
		return Matrix{}, fmt.Errorf("lifting matrix: %w", err)
	}
	return dense.NewMatrix(lifted...)
}

func lift(values []any) ([]Amount, error) {
	elems := make([]Amount, len(values))
	var err error
	for i, v := range values {
		a, e := New(v)
		if e != nil {
			err = multierr.Append(err, fmt.Errorf("element %d: %w", i, e))
			continue
		}
		elems[i] = a
	}
	if err != nil {
		return nil, err
	}
	return elems, nil
}

// VectorOf is like [NewVector] but takes values of a single built-in numeric
// type, so it cannot fail.
func VectorOf[N Number](values ...N) Vector {
	elems := make([]Amount, len(values))
	for i, v := range values {
		elems[i] = Amount{mag: numberMag(v)}
	}
	return dense.NewVector(elems...)
}

// MatrixOf is like [NewMatrix] but takes rows of a single built-in numeric type.
//
// MatrixOf returns [ErrIrregularShape] if the rows have different lengths.
func MatrixOf[N Number](rows ...[]N) (Matrix, error) {
	lifted := make([][]Amount, len(rows))
	for i, row := range rows {
		lifted[i] = VectorOf(row...).Elements()
	}
	m, err := dense.NewMatrix(lifted...)
	if err != nil {
		return Matrix{}, fmt.Errorf("lifting matrix: %w", err)
	}
	return m, nil
}

// numberMag converts a value of any type whose underlying type is a built-in
// number, including named types such as "type Price int".
func numberMag[N Number](v N) magnitude {
	half := N(1)
	half /= 2
	switch {
	case half != 0:
		return floatMag(float64(v))
	case v < 0:
		return intMag(big.NewInt(int64(v)))
	}
	return intMag(new(big.Int).SetUint64(uint64(v)))
}

// Of creates amounts from raw values and picks the shape of the result from
// its arguments:
//   - a single value becomes an [Amount];
//   - several values become a [Vector] of amounts;
//   - if the first value is itself a slice, array, or [Vector], every value is
//     a row and the result is a [Matrix] of amounts.
//
// Of with no values returns an empty [Vector].
//
// Of returns an error if any value is not numeric, or if the values form
// rows of unequal length or mix rows with single values ([ErrIrregularShape]).
func Of(values ...any) (any, error) {
	if len(values) > 0 {
		if _, ok := rowOf(values[0]); ok {
			rows := make([][]any, len(values))
			for i, v := range values {
				row, ok := rowOf(v)
				if !ok {
					return nil, fmt.Errorf("lifting matrix: row %d is %T, not a sequence: %w", i, v, ErrIrregularShape)
				}
				rows[i] = row
			}
			m, err := NewMatrix(rows...)
			if err != nil {
				return nil, err
			}
			return m, nil
		}
	}
	if len(values) == 1 {
		a, err := New(values[0])
		if err != nil {
			return nil, err
		}
		return a, nil
	}
	v, err := NewVector(values...)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// rowOf returns the elements of v if v is an ordered sequence.
func rowOf(v any) ([]any, bool) {
	switch v := v.(type) {
	case []any:
		return v, true
	case Vector:
		return anySlice(v.Elements()), true
	case []Amount:
		return anySlice(v), true
	case nil:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	row := make([]any, rv.Len())
	for i := range row {
		row[i] = rv.Index(i).Interface()
	}
	return row, true
}

func anySlice[T any](s []T) []any {
	res := make([]any, len(s))
	for i, e := range s {
		res[i] = e
	}
	return res
}

// Ones returns a vector of n amounts equal to ¥1.
// Multiplying a matrix by it sums each row, see [SumRows].
func Ones(n int) Vector {
	elems := make([]Amount, n)
	for i := range elems {
		elems[i] = Amount{mag: intMag(big.NewInt(1))}
	}
	return dense.NewVector(elems...)
}

// SumRows returns the vector of row totals of matrix m, computed as the
// matrix-vector product of m and [Ones].
func SumRows(m Matrix) (Vector, error) {
	v, err := m.MulVec(Ones(m.Cols()))
	if err != nil {
		return Vector{}, fmt.Errorf("summing rows: %w", err)
	}
	return v, nil
}

// SumCols returns the vector of column totals of matrix m, computed as the
// matrix-vector product of the transpose of m and [Ones].
func SumCols(m Matrix) (Vector, error) {
	v, err := m.Transpose().MulVec(Ones(m.Rows()))
	if err != nil {
		return Vector{}, fmt.Errorf("summing columns: %w", err)
	}
	return v, nil
}
