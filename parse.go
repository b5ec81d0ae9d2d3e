package jpy

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Parse converts a string to an amount.
// It accepts the output of [Amount.String], with or without the currency sign
// and grouping commas, and picks the kind from the notation:
//
//	| Input              | Kind     |
//	| ------------------ | -------- |
//	| ¥1,000  1000  -400 | Integer  |
//	| ¥1,234.5  1.0e+16  | Float    |
//	| NaN  -Infinity     | Float    |
//	| ¥1,000/3  -7/2     | Rational |
//
// Parse is the only way to create an amount from text; operations never
// convert strings implicitly.
//
// Parse returns an error wrapping [ErrInvalidMagnitude] if the string does
// not represent a number, or if a fraction has a zero denominator.
func Parse(s string) (Amount, error) {
	m, err := parseMagnitude(s)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	return Amount{mag: m}, nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding amounts.
func MustParse(s string) Amount {
	a, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q) failed: %v", s, err))
	}
	return a
}

func parseMagnitude(s string) (magnitude, error) {
	s = strings.TrimPrefix(s, Symbol)

	// Sign
	neg := false
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}

	// Special values
	switch s {
	case "NaN":
		return floatMag(math.NaN()), nil
	case "Infinity":
		if neg {
			return floatMag(math.Inf(-1)), nil
		}
		return floatMag(math.Inf(1)), nil
	}

	// Integer digits
	n := 0
	for n < len(s) && (s[n] == ',' || ('0' <= s[n] && s[n] <= '9')) {
		n++
	}
	whole, err := ungroup(s[:n])
	if err != nil {
		return magnitude{}, err
	}
	if neg {
		whole = "-" + whole
	}

	switch rest := s[n:]; {
	case rest == "":
		i, ok := new(big.Int).SetString(whole, 10)
		if !ok {
			return magnitude{}, ErrInvalidMagnitude
		}
		return intMag(i), nil
	case rest[0] == '/':
		den := rest[1:]
		if !isDigits(den) {
			return magnitude{}, fmt.Errorf("%w: invalid denominator %q", ErrInvalidMagnitude, den)
		}
		d, _ := new(big.Int).SetString(den, 10)
		if d.Sign() == 0 {
			return magnitude{}, fmt.Errorf("%w: zero denominator", ErrInvalidMagnitude)
		}
		i, _ := new(big.Int).SetString(whole, 10)
		return ratMag(new(big.Rat).SetFrac(i, d)), nil
	case rest[0] == '.' || rest[0] == 'e' || rest[0] == 'E':
		f, err := strconv.ParseFloat(whole+rest, 64)
		if err != nil {
			return magnitude{}, fmt.Errorf("%w: %w", ErrInvalidMagnitude, errors.Unwrap(err))
		}
		return floatMag(f), nil
	}
	return magnitude{}, fmt.Errorf("%w: unexpected %q", ErrInvalidMagnitude, s[n:])
}

// ungroup removes grouping commas from a run of digits.
// Commas are optional, but when present they must separate every three digits.
func ungroup(s string) (string, error) {
	if s == "" {
		return "", fmt.Errorf("%w: missing digits", ErrInvalidMagnitude)
	}
	if !strings.Contains(s, ",") {
		return s, nil
	}
	groups := strings.Split(s, ",")
	for i, g := range groups {
		if (i == 0 && (len(g) < 1 || len(g) > 3)) || (i > 0 && len(g) != 3) {
			return "", fmt.Errorf("%w: misplaced grouping in %q", ErrInvalidMagnitude, s)
		}
	}
	return strings.Join(groups, ""), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (a *Amount) UnmarshalText(text []byte) error {
	b, err := Parse(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	*a = b
	return nil
}

// AppendText implements the [encoding.TextAppender] interface.
// See also method [Amount.String].
//
// [encoding.TextAppender]: https://pkg.go.dev/encoding#TextAppender
func (a Amount) AppendText(text []byte) ([]byte, error) {
	return a.appendText(text), nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// See also method [Amount.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (a Amount) MarshalText() ([]byte, error) {
	return a.appendText(nil), nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// It accepts a JSON string in any form recognized by [Parse], or a JSON number:
// integer literals become Integers and all other numbers become Floats.
// A JSON null leaves the amount unchanged.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (a *Amount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	text := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &text); err != nil {
			return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
		}
	} else if strings.HasPrefix(text, Symbol) {
		return fmt.Errorf("unmarshaling %T: %w: unquoted %q", Amount{}, ErrInvalidMagnitude, text)
	}
	b, err := Parse(text)
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	*a = b
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns a JSON string, such as "¥1,000/3", so that the
// kind of the amount survives a round trip.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (a Amount) MarshalJSON() ([]byte, error) {
	text := make([]byte, 0, 26)
	text = append(text, '"')
	text = a.appendText(text)
	text = append(text, '"')
	return text, nil
}
