package numfmt

import (
	"math"
	"strconv"
	"strings"
)

// PrecisionType selects whether Precision in FormatReal counts
// significant digits or post-decimal digits.
type PrecisionType uint8

const (
	Significant PrecisionType = iota
	Decimal
)

// FormatInt renders a signed integer payload as plain decimal.
func FormatInt(i int64) string { return strconv.FormatInt(i, 10) }

// FormatUInt renders an unsigned integer payload as plain decimal.
func FormatUInt(u uint64) string { return strconv.FormatUint(u, 10) }

func classify(f float64) (isNaN, isInf bool, sign int) {
	if f != f {
		return true, false, 0
	}
	if math.IsInf(f, 1) {
		return false, true, 1
	}
	if math.IsInf(f, -1) {
		return false, true, -1
	}
	return false, false, 0
}

// FormatReal renders a Real payload.
//
// If useSpecialFloats and f is NaN or ±Infinity, it emits the literal
// tokens "NaN", "Infinity", "-Infinity". Otherwise f must be finite; a
// non-finite f with useSpecialFloats off degrades to "0" rather than
// emitting invalid JSON. Finite values render with precision digits of
// either
// significant or post-decimal precision, trailing zeros stripped beyond
// the minimum needed to disambiguate, and a trailing ".0" appended when
// the result would otherwise read back as an integer literal so that
// round-tripping through the parser preserves the Real kind.
func FormatReal(f float64, precision int, kind PrecisionType, useSpecialFloats bool) string {
	isNaN, isInf, sign := classify(f)
	if isNaN || isInf {
		if !useSpecialFloats {
			return "0"
		}
		switch {
		case isNaN:
			return "NaN"
		case sign > 0:
			return "Infinity"
		default:
			return "-Infinity"
		}
	}

	var s string
	switch {
	case precision <= 0:
		// No precision configured: shortest round-trip decimal.
		s = strconv.FormatFloat(f, 'g', -1, 64)
		s = normalizeExponent(s)
	case kind == Decimal:
		s = strconv.FormatFloat(f, 'f', precision, 64)
		s = trimTrailingZeros(s)
	default:
		s = strconv.FormatFloat(f, 'g', precision, 64)
		s = normalizeExponent(s)
	}
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// trimTrailingZeros strips trailing zeros after a decimal point, and the
// point itself if nothing remains after it.
func trimTrailingZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

// normalizeExponent removes leading zeros from an exponent's digit run,
// keeping a literal "0" exponent as-is.
func normalizeExponent(s string) string {
	i := strings.IndexAny(s, "eE")
	if i < 0 {
		return s
	}
	mantissa, exp := s[:i], s[i+1:]
	sign := ""
	if len(exp) > 0 && (exp[0] == '+' || exp[0] == '-') {
		sign, exp = string(exp[0]), exp[1:]
	}
	exp = strings.TrimLeft(exp, "0")
	if exp == "" {
		exp = "0"
	}
	return mantissa + "e" + sign + exp
}
