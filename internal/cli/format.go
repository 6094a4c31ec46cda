// Package cli provides formatting and rendering utilities for the
// headless terminal commands.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/byanarant-ctrl/tgmoney/internal/money"
)

// FormatMoney renders an amount with two decimals and comma separators.
// e.g., 1234567.5 -> "1,234,567.50"
func FormatMoney(v float64) string {
	s := money.Format(v)
	dot := strings.IndexByte(s, '.')
	whole, frac := s[:dot], s[dot:]

	neg := strings.HasPrefix(whole, "-")
	if neg {
		whole = whole[1:]
	}
	if len(whole) > 3 {
		var b strings.Builder
		remainder := len(whole) % 3
		if remainder > 0 {
			b.WriteString(whole[:remainder])
		}
		for i := remainder; i < len(whole); i += 3 {
			if b.Len() > 0 {
				b.WriteByte(',')
			}
			b.WriteString(whole[i : i+3])
		}
		whole = b.String()
	}
	if neg {
		whole = "-" + whole
	}
	return whole + frac
}

// FormatNumber adds comma separators to an integer.
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}
