// Package money holds monetary amounts as integer stotinki of the base
// currency (BGN). Floating point is used only at the presentation boundary.
package money

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
)

var ErrInvalidAmount = errors.New("invalid amount")

// FromLev converts a lev value from a DTO into stotinki with half-up rounding.
func FromLev(lev float64) int64 {
	return int64(math.Round(lev * 100))
}

// ToLev returns the lev value for display and DTO encoding.
func ToLev(stotinki int64) float64 {
	return float64(stotinki) / 100.0
}

// ParseDecimal converts a decimal string to stotinki. Both dot and comma
// decimal separators are accepted; the third decimal digit rounds half-up.
// Only positive amounts are valid.
func ParseDecimal(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, ErrInvalidAmount
	}
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, ErrInvalidAmount
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart + fracPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	const maxSafe = (1<<63 - 1) / 100
	if iv > maxSafe {
		return 0, ErrInvalidAmount
	}
	var frac int64
	if len(fracPart) > 0 {
		frac = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			frac += int64(fracPart[1] - '0')
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				frac++
			}
		}
	}
	total := iv*100 + frac
	if total <= 0 {
		return 0, ErrInvalidAmount
	}
	return total, nil
}

// Format renders stotinki as a plain two-decimal lev string without a symbol.
func Format(stotinki int64) string {
	return strconv.FormatFloat(ToLev(stotinki), 'f', 2, 64)
}
