// Package money handles amount parsing and display formatting.
// Every displayed amount has exactly two decimal places, and user input
// accepts a comma as the decimal separator.
package money

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidAmount is returned for input that does not parse to a
// positive, finite number.
var ErrInvalidAmount = errors.New("amount must be a positive number")

// Parse converts a user-entered amount into a float. A comma decimal
// separator is treated as a point before parsing ("12,5" -> 12.5).
// Non-numeric, NaN, infinite, zero, and negative values are rejected.
func Parse(s string) (float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return 0, ErrInvalidAmount
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, ErrInvalidAmount
	}
	return v, nil
}

// Format renders an amount with exactly two decimal digits.
func Format(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatString formats an already-textual amount. Absent or unparseable
// input renders as zero, so FormatString is idempotent on its own output:
// FormatString(FormatString(x)) == FormatString(x).
func FormatString(s string) string {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return Format(0)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Format(0)
	}
	return Format(v)
}
