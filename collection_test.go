package jpy

import (
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func amounts(values ...any) []Amount {
	res := make([]Amount, len(values))
	for i, v := range values {
		res[i] = MustNew(v)
	}
	return res
}

// sameKind compares amounts by value and by kind.
var sameKind = cmp.Comparer(func(x, y Amount) bool {
	return x.Kind() == y.Kind() && x.Equal(y)
})

func mustOf(t *testing.T, values ...any) any {
	t.Helper()
	got, err := Of(values...)
	if err != nil {
		t.Fatalf("Of(%v) failed: %v", values, err)
	}
	return got
}

func roundAll(a Amount) Amount {
	return a.Round(0)
}

func TestNewVector(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		got, err := NewVector(128, 256.0, big.NewRat(1, 2), MustNew(-100))
		if err != nil {
			t.Fatalf("NewVector() failed: %v", err)
		}
		want := "Vector[¥128, ¥256.0, ¥1/2, ¥-100]"
		if s := got.String(); s != want {
			t.Errorf("NewVector() = %q, want %q", s, want)
		}
		if got.Len() != 4 {
			t.Errorf("NewVector().Len() = %v, want 4", got.Len())
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := NewVector(1, "x", 3, "y")
		if err == nil {
			t.Fatalf("NewVector(1, \"x\", 3, \"y\") did not fail")
		}
		if !errors.Is(err, ErrInvalidMagnitude) {
			t.Errorf("NewVector(1, \"x\", 3, \"y\") failed with %v, want %v", err, ErrInvalidMagnitude)
		}
		for _, want := range []string{"element 1", "element 3"} {
			if !strings.Contains(err.Error(), want) {
				t.Errorf("NewVector(1, \"x\", 3, \"y\") failed with %q, want it to mention %q", err, want)
			}
		}
	})
}

func TestNewMatrix(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		got, err := NewMatrix([]any{1, 2.5}, []any{big.NewRat(1, 3), 4})
		if err != nil {
			t.Fatalf("NewMatrix() failed: %v", err)
		}
		want := "Matrix[[¥1, ¥2.5], [¥1/3, ¥4]]"
		if s := got.String(); s != want {
			t.Errorf("NewMatrix() = %q, want %q", s, want)
		}
		if got.Rows() != 2 || got.Cols() != 2 {
			t.Errorf("NewMatrix() is %vx%v, want 2x2", got.Rows(), got.Cols())
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := NewMatrix([]any{1, 2}, []any{3, 4, 5})
		if !errors.Is(err, ErrIrregularShape) {
			t.Errorf("NewMatrix() failed with %v, want %v", err, ErrIrregularShape)
		}
		_, err = NewMatrix([]any{1, "x"}, []any{true, 4})
		if !errors.Is(err, ErrInvalidMagnitude) {
			t.Errorf("NewMatrix() failed with %v, want %v", err, ErrInvalidMagnitude)
		}
		for _, want := range []string{"row 0", "row 1"} {
			if err == nil || !strings.Contains(err.Error(), want) {
				t.Errorf("NewMatrix() failed with %v, want it to mention %q", err, want)
			}
		}
	})
}

type price int

func TestVectorOf(t *testing.T) {
	got := VectorOf[price](100, -200, 300)
	if diff := cmp.Diff(amounts(100, -200, 300), got.Elements(), sameKind); diff != "" {
		t.Errorf("VectorOf() mismatch (-want +got):\n%s", diff)
	}
	for _, e := range got.Elements() {
		if e.Kind() != Integer {
			t.Errorf("VectorOf[price]() element %v has kind %v, want %v", e, e.Kind(), Integer)
		}
	}

	f := VectorOf(1.5, 2)
	if s := f.String(); s != "Vector[¥1.5, ¥2.0]" {
		t.Errorf("VectorOf(1.5, 2) = %q, want %q", s, "Vector[¥1.5, ¥2.0]")
	}

	u := VectorOf[uint64](18446744073709551615)
	if s := u.String(); s != "Vector[¥18,446,744,073,709,551,615]" {
		t.Errorf("VectorOf[uint64]() = %q", s)
	}
}

func TestMatrixOf(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		got, err := MatrixOf([]float64{1, 2}, []float64{3, 4})
		if err != nil {
			t.Fatalf("MatrixOf() failed: %v", err)
		}
		if s := got.String(); s != "Matrix[[¥1.0, ¥2.0], [¥3.0, ¥4.0]]" {
			t.Errorf("MatrixOf() = %q", s)
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := MatrixOf([]int{1}, []int{2, 3})
		if !errors.Is(err, ErrIrregularShape) {
			t.Errorf("MatrixOf() failed with %v, want %v", err, ErrIrregularShape)
		}
	})
}

func TestOf(t *testing.T) {
	t.Run("amount", func(t *testing.T) {
		got, ok := mustOf(t, 100).(Amount)
		if !ok || got.String() != "¥100" {
			t.Errorf("Of(100) = %v, want ¥100", got)
		}
	})

	t.Run("vector", func(t *testing.T) {
		got, ok := mustOf(t, 100, 200, 300).(Vector)
		if !ok || got.String() != "Vector[¥100, ¥200, ¥300]" {
			t.Errorf("Of(100, 200, 300) = %v, want Vector[¥100, ¥200, ¥300]", got)
		}
		empty, ok := mustOf(t).(Vector)
		if !ok || empty.Len() != 0 {
			t.Errorf("Of() = %v, want Vector[]", empty)
		}
	})

	t.Run("matrix", func(t *testing.T) {
		tests := [][]any{
			{[]int{100, 200}, []int{300, 400}},
			{[]any{100, 200}, []any{300, 400}},
			{[2]int{100, 200}, [2]int{300, 400}},
			{VectorOf(100, 200), VectorOf(300, 400)},
			{amounts(100, 200), amounts(300, 400)},
		}
		for _, rows := range tests {
			got, ok := mustOf(t, rows...).(Matrix)
			if !ok {
				t.Errorf("Of(%v) is not a matrix", rows)
				continue
			}
			if s := got.String(); s != "Matrix[[¥100, ¥200], [¥300, ¥400]]" {
				t.Errorf("Of(%v) = %q, want %q", rows, s, "Matrix[[¥100, ¥200], [¥300, ¥400]]")
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			values []any
			want   error
		}{
			"mixed rows":   {[]any{[]int{1}, 2}, ErrIrregularShape},
			"ragged rows":  {[]any{[]int{1}, []int{2, 3}}, ErrIrregularShape},
			"string":       {[]any{"x"}, ErrInvalidMagnitude},
			"vector":       {[]any{1, "x"}, ErrInvalidMagnitude},
			"matrix value": {[]any{[]any{1, "x"}}, ErrInvalidMagnitude},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := Of(tt.values...)
				if !errors.Is(err, tt.want) {
					t.Errorf("Of(%v) failed with %v, want %v", tt.values, err, tt.want)
				}
			})
		}
	})
}

func TestVector_Arithmetic(t *testing.T) {
	prices := VectorOf(324, 1234, 456, 340, 120, 345)

	t.Run("sum", func(t *testing.T) {
		v2 := VectorOf(128, 256, 512, 1024, 2048, 5096)
		v3 := VectorOf(-100, 200, -10, 210, 30, 416)
		got, err := prices.Add(v2)
		if err != nil {
			t.Fatalf("Add() failed: %v", err)
		}
		got, err = got.Add(v3)
		if err != nil {
			t.Fatalf("Add() failed: %v", err)
		}
		want := amounts(352, 1690, 958, 1574, 2198, 5857)
		if diff := cmp.Diff(want, got.Elements(), sameKind); diff != "" {
			t.Errorf("Add() mismatch (-want +got):\n%s", diff)
		}
		if cmp.Equal(amounts(352.0), got.Slice(0, 1).Elements(), sameKind) {
			t.Errorf("sameKind reports ¥352.0 equal to ¥352")
		}
	})

	t.Run("tax", func(t *testing.T) {
		got, err := prices.Scale(1.1)
		if err != nil {
			t.Fatalf("Scale(1.1) failed: %v", err)
		}
		got = got.Map(roundAll)
		want := "Vector[¥356, ¥1,357, ¥502, ¥374, ¥132, ¥380]"
		if s := got.String(); s != want {
			t.Errorf("Scale(1.1).Map(Round) = %q, want %q", s, want)
		}
	})

	t.Run("totals", func(t *testing.T) {
		total, err := prices.Sum()
		if err != nil {
			t.Fatalf("Sum() failed: %v", err)
		}
		if total.String() != "¥2,819" {
			t.Errorf("Sum() = %v, want ¥2,819", total)
		}
		running, err := prices.CumSum()
		if err != nil {
			t.Fatalf("CumSum() failed: %v", err)
		}
		want := amounts(324, 1558, 2014, 2354, 2474, 2819)
		if diff := cmp.Diff(want, running.Elements(), sameKind); diff != "" {
			t.Errorf("CumSum() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("scale by amount", func(t *testing.T) {
		got, err := prices.Slice(0, 2).Scale(MustNew(big.NewRat(1, 2)))
		if err != nil {
			t.Fatalf("Scale() failed: %v", err)
		}
		if s := got.String(); s != "Vector[¥162/1, ¥617/1]" {
			t.Errorf("Scale(1/2) = %q, want %q", s, "Vector[¥162/1, ¥617/1]")
		}
	})

	t.Run("error", func(t *testing.T) {
		if _, err := prices.Scale("1.1"); !errors.Is(err, ErrTypeMismatch) {
			t.Errorf("Scale(\"1.1\") failed with %v, want %v", err, ErrTypeMismatch)
		}
	})
}

// salesMatrix returns a 5x5 matrix of ¥100 to ¥2,500 in steps of ¥100.
func salesMatrix(t *testing.T) Matrix {
	t.Helper()
	rows := make([][]int, 5)
	for i := range rows {
		rows[i] = make([]int, 5)
		for j := range rows[i] {
			rows[i][j] = (i*5 + j + 1) * 100
		}
	}
	m, err := MatrixOf(rows...)
	if err != nil {
		t.Fatalf("MatrixOf() failed: %v", err)
	}
	return m
}

func TestMatrix_Arithmetic(t *testing.T) {
	sales := salesMatrix(t)

	t.Run("add", func(t *testing.T) {
		other, err := MatrixOf(
			[]int{-500, 100, 1200, 568, 3498},
			[]int{1001, 2012, 1349, 2345, 6734},
			[]int{300, -987, 1872, 321, 45},
			[]int{213, 3492, 234, 212, 1032},
			[]int{8234, 123, 100, 1298, 345},
		)
		if err != nil {
			t.Fatalf("MatrixOf() failed: %v", err)
		}
		got, err := sales.Add(other)
		if err != nil {
			t.Fatalf("Add() failed: %v", err)
		}
		want := "Matrix[" +
			"[¥-400, ¥300, ¥1,500, ¥968, ¥3,998], " +
			"[¥1,601, ¥2,712, ¥2,149, ¥3,245, ¥7,734], " +
			"[¥1,400, ¥213, ¥3,172, ¥1,721, ¥1,545], " +
			"[¥1,813, ¥5,192, ¥2,034, ¥2,112, ¥3,032], " +
			"[¥10,334, ¥2,323, ¥2,400, ¥3,698, ¥2,845]]"
		if s := got.String(); s != want {
			t.Errorf("Add() = %q, want %q", s, want)
		}
	})

	t.Run("tax", func(t *testing.T) {
		got, err := sales.Scale(1.1)
		if err != nil {
			t.Fatalf("Scale(1.1) failed: %v", err)
		}
		got = got.Map(roundAll)
		for i := 0; i < got.Rows(); i++ {
			for j := 0; j < got.Cols(); j++ {
				want := (i*5 + j + 1) * 110
				if e := got.At(i, j); !e.Equal(want) || e.Kind() != Integer {
					t.Errorf("Scale(1.1).Map(Round).At(%v, %v) = %v, want ¥%v", i, j, e, want)
				}
			}
		}
	})

	t.Run("row sums", func(t *testing.T) {
		got, err := SumRows(sales)
		if err != nil {
			t.Fatalf("SumRows() failed: %v", err)
		}
		want := amounts(1500, 4000, 6500, 9000, 11500)
		if diff := cmp.Diff(want, got.Elements(), sameKind); diff != "" {
			t.Errorf("SumRows() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("column sums", func(t *testing.T) {
		got, err := SumCols(sales)
		if err != nil {
			t.Fatalf("SumCols() failed: %v", err)
		}
		want := amounts(5500, 6000, 6500, 7000, 7500)
		if diff := cmp.Diff(want, got.Elements(), sameKind); diff != "" {
			t.Errorf("SumCols() mismatch (-want +got):\n%s", diff)
		}
		for j, col := range sales.ColVectors() {
			s, err := col.Sum()
			if err != nil {
				t.Fatalf("Sum() failed: %v", err)
			}
			if !s.Equal(got.At(j)) {
				t.Errorf("column %v sums to %v, want %v", j, s, got.At(j))
			}
		}
	})

	t.Run("minor", func(t *testing.T) {
		got := sales.Minor(1, 2, 3, 2)
		want := "Matrix[[¥900, ¥1,000], [¥1,400, ¥1,500]]"
		if s := got.String(); s != want {
			t.Errorf("Minor(1, 2, 3, 2) = %q, want %q", s, want)
		}
	})
}

func TestOnes(t *testing.T) {
	got := Ones(3)
	if s := got.String(); s != "Vector[¥1, ¥1, ¥1]" {
		t.Errorf("Ones(3) = %q, want %q", s, "Vector[¥1, ¥1, ¥1]")
	}
	if Ones(0).Len() != 0 {
		t.Errorf("Ones(0).Len() = %v, want 0", Ones(0).Len())
	}
}
