// Package validation normalizes leaf values pulled out of a template
// document into strict primitive types. Consumers use it when interpreting
// node template properties and input defaults.
//
// The validators never coerce across kinds except where noted:
// ValidateInteger rejects "5", while CoerceStringToNumber turns "5" into 5.
package validation

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// TypeError reports a value of the wrong kind.
type TypeError struct {
	Value any
	Msg   string
}

func (e *TypeError) Error() string { return e.Msg }

// ValueError reports a value of the right kind that cannot be accepted.
type ValueError struct {
	Value any
	Msg   string
}

func (e *ValueError) Error() string { return e.Msg }

// ValidateInteger accepts only values that are already Go integers; numeric
// strings are rejected. The integer is then passed through ValidateNumber.
func ValidateInteger(value any) (int, error) {
	if !isInteger(value) {
		return 0, &TypeError{Value: value, Msg: fmt.Sprintf("value is not an integer for %v", value)}
	}

	n, err := ValidateNumber(value)
	if err != nil {
		return 0, err
	}
	return toInt(n)
}

// ValidateNumber returns value as a number. Numbers pass through unchanged;
// strings go through CoerceStringToNumber.
func ValidateNumber(value any) (any, error) {
	return CoerceStringToNumber(value)
}

// ValidateString returns value if it is a string.
func ValidateString(value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", &ValueError{Value: value, Msg: "Value must be a string"}
	}
	return s, nil
}

// ValidateList accepts any value. There are no list rules yet.
func ValidateList(value any) {}

// CoerceStringToNumber converts a numeric string to int, falling back to
// float64. Values that are already numbers are returned unchanged.
//
// Strings are decimal: "1_000" is the integer 1000, base prefixes such as
// "0x1p4" are rejected, and a float too large for float64 becomes ±Inf.
// Integers beyond the range of int come back as float64.
//
// A failed integer parse is recovered by trying a float parse; a failed
// float parse is not, and its *strconv.NumError (Func "ParseFloat") is
// returned as is.
func CoerceStringToNumber(value any) (any, error) {
	switch v := value.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return v, nil

	case string:
		s := strings.TrimSpace(v)
		if i, ok := parseDecimalInt(s); ok {
			return i, nil
		}
		if hasBasePrefix(s) {
			return nil, &strconv.NumError{Func: "ParseFloat", Num: s, Err: strconv.ErrSyntax}
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, err
		}
		return f, nil

	default:
		return nil, &TypeError{Value: value, Msg: fmt.Sprintf("value is not a number for %v", value)}
	}
}

// parseDecimalInt parses a base-10 integer whose digits may be separated by
// single underscores.
func parseDecimalInt(s string) (int, bool) {
	if i, err := strconv.Atoi(s); err == nil {
		return i, true
	}
	if !strings.Contains(s, "_") {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			continue
		}
		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return 0, false
		}
	}
	i, err := strconv.Atoi(strings.ReplaceAll(s, "_", ""))
	return i, err == nil
}

// hasBasePrefix reports whether s, after an optional sign, starts with 0x,
// 0o or 0b.
func hasBasePrefix(s string) bool {
	s = strings.TrimLeft(s, "+-")
	if len(s) < 2 || s[0] != '0' {
		return false
	}
	switch s[1] {
	case 'x', 'X', 'o', 'O', 'b', 'B':
		return true
	}
	return false
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// isInteger reports whether value has a Go integer type. bool is not an
// integer.
func isInteger(value any) bool {
	switch value.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return true
	default:
		return false
	}
}

func toInt(value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		if v < math.MinInt || v > math.MaxInt {
			break
		}
		return int(v), nil
	case uint:
		if v > math.MaxInt {
			break
		}
		return int(v), nil
	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint32:
		return int(v), nil
	case uint64:
		if v > math.MaxInt {
			break
		}
		return int(v), nil
	}
	return 0, &ValueError{Value: value, Msg: fmt.Sprintf("integer value out of range for %v", value)}
}
