package dense

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var errNotNum = errors.New("not a num")

// num is a minimal scalar accepting nums and ints as operands.
type num int

func toNum(v any) (num, error) {
	switch v := v.(type) {
	case num:
		return v, nil
	case int:
		return num(v), nil
	}
	return 0, fmt.Errorf("%T: %w", v, errNotNum)
}

func (n num) Add(v any) (num, error) {
	m, err := toNum(v)
	if err != nil {
		return 0, err
	}
	return n + m, nil
}

func (n num) Sub(v any) (num, error) {
	m, err := toNum(v)
	if err != nil {
		return 0, err
	}
	return n - m, nil
}

func (n num) Mul(v any) (num, error) {
	m, err := toNum(v)
	if err != nil {
		return 0, err
	}
	return n * m, nil
}

func TestNewVector(t *testing.T) {
	elems := []num{1, 2, 3}
	v := NewVector(elems...)
	elems[0] = 100
	if got := v.At(0); got != 1 {
		t.Errorf("NewVector() did not copy its elements, At(0) = %v", got)
	}
	got := v.Elements()
	got[1] = 200
	if v.At(1) != 2 {
		t.Errorf("Elements() exposed the internal slice")
	}
	if v.Len() != 3 {
		t.Errorf("Len() = %v, want 3", v.Len())
	}

	var zero Vector[num]
	if zero.Len() != 0 || zero.String() != "Vector[]" {
		t.Errorf("Vector{} = %v, want Vector[]", zero)
	}
}

func TestVector_Slice(t *testing.T) {
	v := NewVector[num](1, 2, 3, 4)
	if diff := cmp.Diff([]num{2, 3}, v.Slice(1, 3).Elements()); diff != "" {
		t.Errorf("Slice(1, 3) mismatch (-want +got):\n%s", diff)
	}
	if got := v.Slice(2, 2).Len(); got != 0 {
		t.Errorf("Slice(2, 2).Len() = %v, want 0", got)
	}
}

func TestVector_Map(t *testing.T) {
	v := NewVector[num](1, 2, 3)
	got := v.Map(func(n num) num { return n * n })
	if diff := cmp.Diff([]num{1, 4, 9}, got.Elements()); diff != "" {
		t.Errorf("Map() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]num{1, 2, 3}, v.Elements()); diff != "" {
		t.Errorf("Map() modified its receiver (-want +got):\n%s", diff)
	}
}

func TestVector_ElementWise(t *testing.T) {
	v := NewVector[num](128, 256, 512)
	u := NewVector[num](-100, 200, -10)

	t.Run("success", func(t *testing.T) {
		tests := []struct {
			name string
			op   func(Vector[num]) (Vector[num], error)
			want []num
		}{
			{"Add", v.Add, []num{28, 456, 502}},
			{"Sub", v.Sub, []num{228, 56, 522}},
			{"MulElem", v.MulElem, []num{-12800, 51200, -5120}},
		}
		for _, tt := range tests {
			got, err := tt.op(u)
			if err != nil {
				t.Errorf("%v(%v) failed: %v", tt.name, u, err)
				continue
			}
			if diff := cmp.Diff(tt.want, got.Elements()); diff != "" {
				t.Errorf("%v(%v) mismatch (-want +got):\n%s", tt.name, u, diff)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		short := NewVector[num](1, 2)
		ops := map[string]func(Vector[num]) (Vector[num], error){
			"Add":     v.Add,
			"Sub":     v.Sub,
			"MulElem": v.MulElem,
		}
		for name, op := range ops {
			_, err := op(short)
			if !errors.Is(err, ErrDimensionMismatch) {
				t.Errorf("%v(%v) failed with %v, want %v", name, short, err, ErrDimensionMismatch)
			}
		}
	})
}

func TestVector_Scale(t *testing.T) {
	v := NewVector[num](1, 2, 3)

	t.Run("success", func(t *testing.T) {
		for _, k := range []any{10, num(10)} {
			got, err := v.Scale(k)
			if err != nil {
				t.Errorf("Scale(%v) failed: %v", k, err)
				continue
			}
			if diff := cmp.Diff([]num{10, 20, 30}, got.Elements()); diff != "" {
				t.Errorf("Scale(%v) mismatch (-want +got):\n%s", k, diff)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := v.Scale("10")
		if !errors.Is(err, errNotNum) {
			t.Errorf("Scale(\"10\") failed with %v, want %v", err, errNotNum)
		}
	})
}

func TestVector_Dot(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			v, u []num
			want num
		}{
			{[]num{1, 2, 3}, []num{4, 5, 6}, 32},
			{[]num{7}, []num{-2}, -14},
			{nil, nil, 0},
		}
		for _, tt := range tests {
			v, u := NewVector(tt.v...), NewVector(tt.u...)
			got, err := v.Dot(u)
			if err != nil {
				t.Errorf("%v.Dot(%v) failed: %v", v, u, err)
				continue
			}
			if got != tt.want {
				t.Errorf("%v.Dot(%v) = %v, want %v", v, u, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := NewVector[num](1, 2).Dot(NewVector[num](1))
		if !errors.Is(err, ErrDimensionMismatch) {
			t.Errorf("Dot() failed with %v, want %v", err, ErrDimensionMismatch)
		}
	})
}

func TestVector_Sum(t *testing.T) {
	tests := []struct {
		elems []num
		sum   num
		cum   []num
	}{
		{[]num{324, 1234, 456, 340, 120, 345}, 2819, []num{324, 1558, 2014, 2354, 2474, 2819}},
		{[]num{5}, 5, []num{5}},
		{[]num{}, 0, []num{}},
	}
	for _, tt := range tests {
		v := NewVector(tt.elems...)
		got, err := v.Sum()
		if err != nil {
			t.Errorf("%v.Sum() failed: %v", v, err)
			continue
		}
		if got != tt.sum {
			t.Errorf("%v.Sum() = %v, want %v", v, got, tt.sum)
		}
		cum, err := v.CumSum()
		if err != nil {
			t.Errorf("%v.CumSum() failed: %v", v, err)
			continue
		}
		if diff := cmp.Diff(tt.cum, cum.Elements(), cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("%v.CumSum() mismatch (-want +got):\n%s", v, diff)
		}
	}
}

func TestVector_String(t *testing.T) {
	tests := []struct {
		v    Vector[num]
		want string
	}{
		{NewVector[num](), "Vector[]"},
		{NewVector[num](1), "Vector[1]"},
		{NewVector[num](1, -2, 3), "Vector[1, -2, 3]"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
