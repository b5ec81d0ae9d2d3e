package dense

import (
	"fmt"
	"strings"
)

// Matrix is a rectangular grid of elements stored in row-major order.
// The zero value is an empty 0x0 matrix.
type Matrix[T Scalar[T]] struct {
	rows, cols int
	data       []T
}

// NewMatrix returns a matrix holding a copy of the given rows.
//
// NewMatrix returns [ErrIrregularShape] if the rows have different lengths.
func NewMatrix[T Scalar[T]](rows ...[]T) (Matrix[T], error) {
	if len(rows) == 0 {
		return Matrix[T]{}, nil
	}
	cols := len(rows[0])
	data := make([]T, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return Matrix[T]{}, fmt.Errorf("row %d has %d elements, want %d: %w", i, len(row), cols, ErrIrregularShape)
		}
		data = append(data, row...)
	}
	return Matrix[T]{rows: len(rows), cols: cols, data: data}, nil
}

// NewMatrixFromVectors returns a matrix with the given vectors as rows.
//
// NewMatrixFromVectors returns [ErrIrregularShape] if the vectors have
// different lengths.
func NewMatrixFromVectors[T Scalar[T]](rows ...Vector[T]) (Matrix[T], error) {
	elems := make([][]T, len(rows))
	for i, row := range rows {
		elems[i] = row.elems
	}
	return NewMatrix(elems...)
}

// Rows returns the number of rows.
func (m Matrix[T]) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m Matrix[T]) Cols() int {
	return m.cols
}

func (m Matrix[T]) checkIndex(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("dense: index [%d, %d] out of range for %dx%d matrix", i, j, m.rows, m.cols))
	}
}

// At returns the element in row i and column j.
// At panics if the indices are out of range.
func (m Matrix[T]) At(i, j int) T {
	m.checkIndex(i, j)
	return m.data[i*m.cols+j]
}

// Row returns the i-th row as a vector.
// Row panics if i is out of range.
func (m Matrix[T]) Row(i int) Vector[T] {
	if i < 0 || i >= m.rows {
		panic(fmt.Sprintf("dense: row %d out of range for %dx%d matrix", i, m.rows, m.cols))
	}
	return NewVector(m.data[i*m.cols : (i+1)*m.cols]...)
}

// Col returns the j-th column as a vector.
// Col panics if j is out of range.
func (m Matrix[T]) Col(j int) Vector[T] {
	if j < 0 || j >= m.cols {
		panic(fmt.Sprintf("dense: column %d out of range for %dx%d matrix", j, m.rows, m.cols))
	}
	elems := make([]T, m.rows)
	for i := range elems {
		elems[i] = m.data[i*m.cols+j]
	}
	return Vector[T]{elems: elems}
}

// RowVectors returns all rows as vectors.
func (m Matrix[T]) RowVectors() []Vector[T] {
	res := make([]Vector[T], m.rows)
	for i := range res {
		res[i] = m.Row(i)
	}
	return res
}

// ColVectors returns all columns as vectors.
func (m Matrix[T]) ColVectors() []Vector[T] {
	res := make([]Vector[T], m.cols)
	for j := range res {
		res[j] = m.Col(j)
	}
	return res
}

// Transpose returns the matrix with rows and columns swapped.
func (m Matrix[T]) Transpose() Matrix[T] {
	data := make([]T, len(m.data))
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			data[j*m.rows+i] = m.data[i*m.cols+j]
		}
	}
	return Matrix[T]{rows: m.cols, cols: m.rows, data: data}
}

// Minor returns the submatrix of nrows rows starting at row i and
// ncols columns starting at column j.
// Minor panics if the submatrix does not fit into m.
func (m Matrix[T]) Minor(i, nrows, j, ncols int) Matrix[T] {
	if i < 0 || nrows < 0 || i+nrows > m.rows || j < 0 || ncols < 0 || j+ncols > m.cols {
		panic(fmt.Sprintf("dense: minor [%d:%d, %d:%d] out of range for %dx%d matrix", i, i+nrows, j, j+ncols, m.rows, m.cols))
	}
	data := make([]T, 0, nrows*ncols)
	for r := i; r < i+nrows; r++ {
		data = append(data, m.data[r*m.cols+j:r*m.cols+j+ncols]...)
	}
	return Matrix[T]{rows: nrows, cols: ncols, data: data}
}

// Map returns a matrix of f applied to every element.
func (m Matrix[T]) Map(f func(T) T) Matrix[T] {
	data := make([]T, len(m.data))
	for k, e := range m.data {
		data[k] = f(e)
	}
	return Matrix[T]{rows: m.rows, cols: m.cols, data: data}
}

func (m Matrix[T]) sameShape(n Matrix[T]) error {
	if m.rows != n.rows || m.cols != n.cols {
		return fmt.Errorf("%w: %dx%d and %dx%d", ErrDimensionMismatch, m.rows, m.cols, n.rows, n.cols)
	}
	return nil
}

// Add returns the element-wise sum of matrices m and n.
func (m Matrix[T]) Add(n Matrix[T]) (Matrix[T], error) {
	if err := m.sameShape(n); err != nil {
		return Matrix[T]{}, fmt.Errorf("computing [%v + %v]: %w", m, n, err)
	}
	data, err := zip(m.data, n.data, func(x, y T) (T, error) { return x.Add(y) })
	if err != nil {
		return Matrix[T]{}, fmt.Errorf("computing [%v + %v]: %w", m, n, err)
	}
	return Matrix[T]{rows: m.rows, cols: m.cols, data: data}, nil
}

// Sub returns the element-wise difference between matrices m and n.
func (m Matrix[T]) Sub(n Matrix[T]) (Matrix[T], error) {
	if err := m.sameShape(n); err != nil {
		return Matrix[T]{}, fmt.Errorf("computing [%v - %v]: %w", m, n, err)
	}
	data, err := zip(m.data, n.data, func(x, y T) (T, error) { return x.Sub(y) })
	if err != nil {
		return Matrix[T]{}, fmt.Errorf("computing [%v - %v]: %w", m, n, err)
	}
	return Matrix[T]{rows: m.rows, cols: m.cols, data: data}, nil
}

// Scale returns the matrix with every element multiplied by k.
// See also method [Vector.Scale].
func (m Matrix[T]) Scale(k any) (Matrix[T], error) {
	data := make([]T, len(m.data))
	for p, e := range m.data {
		x, err := e.Mul(k)
		if err != nil {
			return Matrix[T]{}, fmt.Errorf("computing [%v * %v]: element [%d, %d]: %w", m, k, p/m.cols, p%m.cols, err)
		}
		data[p] = x
	}
	return Matrix[T]{rows: m.rows, cols: m.cols, data: data}, nil
}

// MulVec returns the matrix-vector product m × v, whose i-th element is the
// dot product of the i-th row of m and v.
//
// MulVec returns [ErrDimensionMismatch] if the number of columns of m differs
// from the length of v.
func (m Matrix[T]) MulVec(v Vector[T]) (Vector[T], error) {
	if m.cols != v.Len() {
		return Vector[T]{}, fmt.Errorf("computing [%v * %v]: %w: %dx%d matrix and %d elements", m, v, ErrDimensionMismatch, m.rows, m.cols, v.Len())
	}
	res := make([]T, m.rows)
	for i := range res {
		p, err := dot(m.data[i*m.cols:(i+1)*m.cols], v.elems)
		if err != nil {
			return Vector[T]{}, fmt.Errorf("computing [%v * %v]: row %d: %w", m, v, i, err)
		}
		res[i] = p
	}
	return Vector[T]{elems: res}, nil
}

// Mul returns the matrix product m × n.
//
// Mul returns [ErrDimensionMismatch] if the number of columns of m differs
// from the number of rows of n.
func (m Matrix[T]) Mul(n Matrix[T]) (Matrix[T], error) {
	if m.cols != n.rows {
		return Matrix[T]{}, fmt.Errorf("computing [%v * %v]: %w: %dx%d and %dx%d", m, n, ErrDimensionMismatch, m.rows, m.cols, n.rows, n.cols)
	}
	nt := n.Transpose()
	data := make([]T, 0, m.rows*n.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < n.cols; j++ {
			p, err := dot(m.data[i*m.cols:(i+1)*m.cols], nt.data[j*nt.cols:(j+1)*nt.cols])
			if err != nil {
				return Matrix[T]{}, fmt.Errorf("computing [%v * %v]: element [%d, %d]: %w", m, n, i, j, err)
			}
			data = append(data, p)
		}
	}
	return Matrix[T]{rows: m.rows, cols: n.cols, data: data}, nil
}

// String implements the [fmt.Stringer] interface and returns a string
// such as "Matrix[[1, 2], [3, 4]]".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m Matrix[T]) String() string {
	var b strings.Builder
	b.WriteString("Matrix[")
	for i := 0; i < m.rows; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		writeElems(&b, m.data[i*m.cols:(i+1)*m.cols])
	}
	b.WriteByte(']')
	return b.String()
}
