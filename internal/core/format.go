// Package core holds the profile model and the pure aggregation functions
// that turn a profile into per-domain summaries.
//
// This file contains amount formatting helpers shared by the summary
// builders. Amounts are kept as float64 pesos end to end; formatting adds
// thousands separators and trims the fraction for whole amounts.
package core

import (
	"math"
	"strconv"
	"strings"
)

// FormatAmount renders a peso amount with thousands separators:
// 50000 -> "50,000", 1234.5 -> "1,234.50".
func FormatAmount(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	var s string
	if v == math.Trunc(v) {
		s = strconv.FormatFloat(v, 'f', 0, 64)
	} else {
		s = strconv.FormatFloat(v, 'f', 2, 64)
	}

	intPart := s
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}

	out := groupThousands(intPart)
	if neg {
		return "-" + out + frac
	}
	return out + frac
}

// Peso formats an amount with the currency sign used across the dashboard.
func Peso(v float64) string {
	return "₱" + FormatAmount(v)
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	b.Grow(n + n/3)
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
