package jpy

import (
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"
)

// Symbol is the currency sign that prefixes every formatted amount.
const Symbol = "¥"

// String implements the [fmt.Stringer] interface and returns the currency
// sign followed by the magnitude in its natural form, with commas grouping
// the integer digits by thousands:
//
//	| Kind     | Example           |
//	| -------- | ----------------- |
//	| Integer  | ¥1,000,000        |
//	| Integer  | ¥-400             |
//	| Float    | ¥1,234.5          |
//	| Float    | ¥100,000.0        |
//	| Float    | ¥1.0e+16          |
//	| Rational | ¥1,000/3          |
//
// Only the integer digits are grouped: fractional digits, exponents and
// denominators are written as is.
// See also methods [Amount.GoString], [Amount.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	return string(a.appendText(make([]byte, 0, 24)))
}

// GoString implements the [fmt.GoStringer] interface and returns
// a debug representation such as "jpy.Amount[¥38,000]".
//
// [fmt.GoStringer]: https://pkg.go.dev/fmt#GoStringer
func (a Amount) GoString() string {
	buf := make([]byte, 0, 36)
	buf = append(buf, "jpy.Amount["...)
	buf = a.appendText(buf)
	buf = append(buf, ']')
	return string(buf)
}

func (a Amount) appendText(buf []byte) []byte {
	buf = append(buf, Symbol...)
	switch a.mag.kind {
	case Integer:
		return appendGrouped(buf, a.mag.int().String())
	case Rational:
		r := a.mag.rat()
		buf = appendGrouped(buf, r.Num().String())
		buf = append(buf, '/')
		return r.Denom().Append(buf, 10)
	}
	return appendGrouped(buf, floatText(a.mag.f))
}

// appendGrouped appends the number s with commas inserted between
// every three digits of its leading run of digits.
// An optional leading minus sign and any text after the digits are kept.
func appendGrouped(buf []byte, s string) []byte {
	if len(s) > 0 && s[0] == '-' {
		buf = append(buf, '-')
		s = s[1:]
	}
	n := 0
	for n < len(s) && '0' <= s[n] && s[n] <= '9' {
		n++
	}
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, s[i])
	}
	return append(buf, s[n:]...)
}

// floatText returns the shortest text that identifies f uniquely.
// Fixed notation with at least one fractional digit is used when the
// decimal point falls within 4 places to the left or 16 places to the
// right of the first digit, otherwise the exponent form "1.0e+16" is used.
func floatText(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}

	// Digits and exponent
	e := strconv.AppendFloat(make([]byte, 0, 24), f, 'e', -1, 64)
	buf := make([]byte, 0, 32)
	if e[0] == '-' {
		buf = append(buf, '-')
		e = e[1:]
	}
	epos := 0
	for e[epos] != 'e' {
		epos++
	}
	exp, _ := strconv.Atoi(string(e[epos+1:]))
	digs := make([]byte, 0, epos)
	for _, c := range e[:epos] {
		if c != '.' {
			digs = append(digs, c)
		}
	}
	dpoint := exp + 1

	// Exponent form
	if dpoint < -3 || dpoint > 16 {
		buf = append(buf, digs[0], '.')
		if len(digs) > 1 {
			buf = append(buf, digs[1:]...)
		} else {
			buf = append(buf, '0')
		}
		buf = append(buf, 'e')
		if exp < 0 {
			buf = append(buf, '-')
			exp = -exp
		} else {
			buf = append(buf, '+')
		}
		if exp < 10 {
			buf = append(buf, '0')
		}
		return string(strconv.AppendInt(buf, int64(exp), 10))
	}

	// Fixed form
	switch {
	case dpoint <= 0:
		buf = append(buf, '0', '.')
		for i := dpoint; i < 0; i++ {
			buf = append(buf, '0')
		}
		buf = append(buf, digs...)
	case dpoint >= len(digs):
		buf = append(buf, digs...)
		for i := len(digs); i < dpoint; i++ {
			buf = append(buf, '0')
		}
		buf = append(buf, '.', '0')
	default:
		buf = append(buf, digs[:dpoint]...)
		buf = append(buf, '.')
		buf = append(buf, digs[dpoint:]...)
	}
	return string(buf)
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example              | Description                  |
//	| ------ | -------------------- | ---------------------------- |
//	| %s, %v | ¥1,234.5             | Amount                       |
//	| %q     | "¥1,234.5"           | Quoted amount                |
//	| %d     | ¥1,235               | Amount rounded to an integer |
//	| %#v    | jpy.Amount[¥1,234.5] | Debug representation         |
//
// The '-' format flag can be used with all verbs.
// Width is measured in runes.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (a Amount) Format(state fmt.State, verb rune) {
	var text []byte
	switch verb {
	case 'v', 'V':
		if state.Flag('#') {
			text = []byte(a.GoString())
		} else {
			text = a.appendText(nil)
		}
	case 's', 'S':
		text = a.appendText(nil)
	case 'q', 'Q':
		text = append(a.appendText([]byte{'"'}), '"')
	case 'd', 'D':
		text = a.Round(0).appendText(nil)
	default:
		text = append(text, "%!"...)
		text = utf8.AppendRune(text, verb)
		text = append(text, "(jpy.Amount="...)
		text = a.appendText(text)
		text = append(text, ')')
	}

	// Calculating padding
	lspaces, tspaces := 0, 0
	if w, ok := state.Width(); ok {
		if n := utf8.RuneCount(text); w > n {
			if state.Flag('-') {
				tspaces = w - n
			} else {
				lspaces = w - n
			}
		}
	}

	buf := make([]byte, 0, lspaces+len(text)+tspaces)
	for range lspaces {
		buf = append(buf, ' ')
	}
	buf = append(buf, text...)
	for range tspaces {
		buf = append(buf, ' ')
	}

	// Writing result
	//nolint:errcheck
	state.Write(buf)
}
