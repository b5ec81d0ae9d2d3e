package dense

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrDimensionMismatch is returned when the sizes of operands are incompatible.
	ErrDimensionMismatch = errors.New("dimension mismatch")
	// ErrIrregularShape is returned when matrix rows have different lengths.
	ErrIrregularShape = errors.New("irregular shape")
)

// Scalar is the constraint satisfied by vector and matrix elements.
// The zero value of T must be the additive identity: it is returned by
// reductions over empty containers.
type Scalar[T any] interface {
	Add(any) (T, error)
	Sub(any) (T, error)
	Mul(any) (T, error)
}

// Vector is an ordered, fixed-size sequence of elements.
// The zero value is an empty vector.
type Vector[T Scalar[T]] struct {
	elems []T
}

// NewVector returns a vector holding a copy of the given elements.
func NewVector[T Scalar[T]](elems ...T) Vector[T] {
	return Vector[T]{elems: slices.Clone(elems)}
}

// Len returns the number of elements.
func (v Vector[T]) Len() int {
	return len(v.elems)
}

// At returns the i-th element.
// At panics if i is out of range.
func (v Vector[T]) At(i int) T {
	return v.elems[i]
}

// Elements returns a copy of the elements.
func (v Vector[T]) Elements() []T {
	return slices.Clone(v.elems)
}

// Slice returns a vector of the elements from i up to, but not including, j.
// Slice panics if the range is invalid.
func (v Vector[T]) Slice(i, j int) Vector[T] {
	return NewVector(v.elems[i:j]...)
}

// Map returns a vector of f applied to every element.
func (v Vector[T]) Map(f func(T) T) Vector[T] {
	res := make([]T, len(v.elems))
	for i, e := range v.elems {
		res[i] = f(e)
	}
	return Vector[T]{elems: res}
}

// Add returns the element-wise sum of vectors v and u.
func (v Vector[T]) Add(u Vector[T]) (Vector[T], error) {
	res, err := zip(v.elems, u.elems, func(x, y T) (T, error) { return x.Add(y) })
	if err != nil {
		return Vector[T]{}, fmt.Errorf("computing [%v + %v]: %w", v, u, err)
	}
	return Vector[T]{elems: res}, nil
}

// Sub returns the element-wise difference between vectors v and u.
func (v Vector[T]) Sub(u Vector[T]) (Vector[T], error) {
	res, err := zip(v.elems, u.elems, func(x, y T) (T, error) { return x.Sub(y) })
	if err != nil {
		return Vector[T]{}, fmt.Errorf("computing [%v - %v]: %w", v, u, err)
	}
	return Vector[T]{elems: res}, nil
}

// MulElem returns the element-wise product of vectors v and u.
func (v Vector[T]) MulElem(u Vector[T]) (Vector[T], error) {
	res, err := zip(v.elems, u.elems, func(x, y T) (T, error) { return x.Mul(y) })
	if err != nil {
		return Vector[T]{}, fmt.Errorf("computing [%v .* %v]: %w", v, u, err)
	}
	return Vector[T]{elems: res}, nil
}

// Scale returns the vector with every element multiplied by k.
// The factor is passed to the elements as is, so it can be of any type
// that T accepts as a multiplier.
func (v Vector[T]) Scale(k any) (Vector[T], error) {
	res := make([]T, len(v.elems))
	for i, e := range v.elems {
		p, err := e.Mul(k)
		if err != nil {
			return Vector[T]{}, fmt.Errorf("computing [%v * %v]: element %d: %w", v, k, i, err)
		}
		res[i] = p
	}
	return Vector[T]{elems: res}, nil
}

// Dot returns the dot product of vectors v and u.
// The dot product of empty vectors is the zero value of T.
func (v Vector[T]) Dot(u Vector[T]) (T, error) {
	p, err := dot(v.elems, u.elems)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("computing [%v . %v]: %w", v, u, err)
	}
	return p, nil
}

// Sum returns the sum of all elements.
// The sum of an empty vector is the zero value of T.
func (v Vector[T]) Sum() (T, error) {
	s, err := sum(v.elems)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("computing sum of %v: %w", v, err)
	}
	return s, nil
}

// CumSum returns the vector of running totals, where the i-th element is
// the sum of the first i+1 elements of v.
func (v Vector[T]) CumSum() (Vector[T], error) {
	res := make([]T, len(v.elems))
	for i, e := range v.elems {
		if i == 0 {
			res[i] = e
			continue
		}
		s, err := res[i-1].Add(e)
		if err != nil {
			return Vector[T]{}, fmt.Errorf("computing cumulative sum of %v: element %d: %w", v, i, err)
		}
		res[i] = s
	}
	return Vector[T]{elems: res}, nil
}

// String implements the [fmt.Stringer] interface and returns a string
// such as "Vector[1, 2, 3]".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (v Vector[T]) String() string {
	var b strings.Builder
	b.WriteString("Vector")
	writeElems(&b, v.elems)
	return b.String()
}

func writeElems[T any](b *strings.Builder, elems []T) {
	b.WriteByte('[')
	for i, e := range elems {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(b, e)
	}
	b.WriteByte(']')
}

func zip[T Scalar[T]](x, y []T, op func(T, T) (T, error)) ([]T, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d and %d elements", ErrDimensionMismatch, len(x), len(y))
	}
	res := make([]T, len(x))
	for i := range x {
		e, err := op(x[i], y[i])
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		res[i] = e
	}
	return res, nil
}

// sum folds the elements starting from the first one.
func sum[T Scalar[T]](elems []T) (T, error) {
	var s T
	for i, e := range elems {
		if i == 0 {
			s = e
			continue
		}
		var err error
		s, err = s.Add(e)
		if err != nil {
			var zero T
			return zero, fmt.Errorf("element %d: %w", i, err)
		}
	}
	return s, nil
}

func dot[T Scalar[T]](x, y []T) (T, error) {
	prods, err := zip(x, y, func(a, b T) (T, error) { return a.Mul(b) })
	if err != nil {
		var zero T
		return zero, err
	}
	return sum(prods)
}
