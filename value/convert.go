package value

import (
	"math"
	"strconv"
	"strings"
)

func (v Value) isEmptyLike() bool {
	switch v.kind {
	case NullKind:
		return true
	case BoolKind:
		return !v.b
	case IntKind:
		return v.i == 0
	case UIntKind:
		return v.u == 0
	case RealKind:
		return v.f == 0
	case StringKind:
		return v.s == ""
	case ArrayKind:
		return len(v.arr) == 0
	case ObjectKind:
		return v.obj.size() == 0
	default:
		return false
	}
}

// IsConvertibleTo reports whether v can be coerced to target:
//
//   - any Value converts to Null iff it is empty-like (Null, false, zero,
//     empty string/array/object);
//   - Null converts to every kind (default-value semantics);
//   - Bool converts to any numeric kind, and any numeric kind that fits
//     converts to another numeric kind;
//   - Array and Object convert only to themselves;
//   - String converts only to itself (besides Null, when empty).
func (v Value) IsConvertibleTo(target Kind) bool {
	if target == NullKind {
		return v.isEmptyLike()
	}
	if v.kind == NullKind {
		return true
	}
	switch v.kind {
	case BoolKind:
		switch target {
		case BoolKind, IntKind, UIntKind, RealKind:
			return true
		default:
			return false
		}
	case IntKind, UIntKind, RealKind:
		switch target {
		case IntKind:
			return v.fitsInt32Range()
		case UIntKind:
			return v.fitsUint32Range()
		case RealKind:
			return true
		default:
			return false
		}
	case StringKind:
		return target == StringKind
	case ArrayKind, ObjectKind:
		return target == v.kind
	default:
		return false
	}
}

// fitsInt32Range reports whether v's numeric payload falls within the
// signed 32-bit range by value alone: a Real need not be integral, only
// in range (e.g. 2147483646.5 fits, while 2147483647.5 does not).
func (v Value) fitsInt32Range() bool {
	switch v.kind {
	case IntKind:
		return v.i >= math.MinInt32 && v.i <= math.MaxInt32
	case UIntKind:
		return v.u <= math.MaxInt32
	case RealKind:
		return v.f >= math.MinInt32 && v.f <= math.MaxInt32
	default:
		return false
	}
}

// fitsUint32Range is fitsInt32Range's unsigned counterpart.
func (v Value) fitsUint32Range() bool {
	switch v.kind {
	case IntKind:
		return v.i >= 0 && uint64(v.i) <= math.MaxUint32
	case UIntKind:
		return v.u <= math.MaxUint32
	case RealKind:
		return v.f >= 0 && v.f <= math.MaxUint32
	default:
		return false
	}
}

// AsBool coerces v to bool: Null yields false (default-value semantics),
// Bool returns its payload directly. Any other kind is a type error.
func (v Value) AsBool() (bool, error) {
	switch v.kind {
	case NullKind:
		return false, nil
	case BoolKind:
		return v.b, nil
	default:
		return false, typeErrorf("AsBool", v.kind)
	}
}

// AsInt coerces v to a signed 32-bit integer. Null yields 0, Bool yields
// 0/1, and numeric kinds convert if representable; out-of-range numeric
// values are a range error.
func (v Value) AsInt() (int32, error) {
	switch v.kind {
	case NullKind:
		return 0, nil
	case BoolKind:
		return boolToInt32(v.b), nil
	case IntKind:
		if v.i < math.MinInt32 || v.i > math.MaxInt32 {
			return 0, rangeErrorf("AsInt", v.kind)
		}
		return int32(v.i), nil
	case UIntKind:
		if v.u > math.MaxInt32 {
			return 0, rangeErrorf("AsInt", v.kind)
		}
		return int32(v.u), nil
	case RealKind:
		if !isIntegralFloat(v.f) || v.f < math.MinInt32 || v.f > math.MaxInt32 {
			return 0, rangeErrorf("AsInt", v.kind)
		}
		return int32(v.f), nil
	default:
		return 0, typeErrorf("AsInt", v.kind)
	}
}

// AsUInt coerces v to an unsigned 32-bit integer, with the same rules as
// AsInt but requiring non-negative values.
func (v Value) AsUInt() (uint32, error) {
	switch v.kind {
	case NullKind:
		return 0, nil
	case BoolKind:
		if v.b {
			return 1, nil
		}
		return 0, nil
	case IntKind:
		if v.i < 0 || uint64(v.i) > math.MaxUint32 {
			return 0, rangeErrorf("AsUInt", v.kind)
		}
		return uint32(v.i), nil
	case UIntKind:
		if v.u > math.MaxUint32 {
			return 0, rangeErrorf("AsUInt", v.kind)
		}
		return uint32(v.u), nil
	case RealKind:
		if !isIntegralFloat(v.f) || v.f < 0 || v.f > math.MaxUint32 {
			return 0, rangeErrorf("AsUInt", v.kind)
		}
		return uint32(v.f), nil
	default:
		return 0, typeErrorf("AsUInt", v.kind)
	}
}

// AsInt64 coerces v to a signed 64-bit integer.
func (v Value) AsInt64() (int64, error) {
	switch v.kind {
	case NullKind:
		return 0, nil
	case BoolKind:
		return int64(boolToInt32(v.b)), nil
	case IntKind:
		return v.i, nil
	case UIntKind:
		if v.u > math.MaxInt64 {
			return 0, rangeErrorf("AsInt64", v.kind)
		}
		return int64(v.u), nil
	case RealKind:
		if !isIntegralFloat(v.f) || v.f < math.MinInt64 || v.f >= math.MaxInt64 {
			return 0, rangeErrorf("AsInt64", v.kind)
		}
		return int64(v.f), nil
	default:
		return 0, typeErrorf("AsInt64", v.kind)
	}
}

// AsUInt64 coerces v to an unsigned 64-bit integer.
func (v Value) AsUInt64() (uint64, error) {
	switch v.kind {
	case NullKind:
		return 0, nil
	case BoolKind:
		if v.b {
			return 1, nil
		}
		return 0, nil
	case IntKind:
		if v.i < 0 {
			return 0, rangeErrorf("AsUInt64", v.kind)
		}
		return uint64(v.i), nil
	case UIntKind:
		return v.u, nil
	case RealKind:
		if !isIntegralFloat(v.f) || v.f < 0 || v.f >= math.MaxUint64 {
			return 0, rangeErrorf("AsUInt64", v.kind)
		}
		return uint64(v.f), nil
	default:
		return 0, typeErrorf("AsUInt64", v.kind)
	}
}

// AsDouble coerces v to a float64.
func (v Value) AsDouble() (float64, error) {
	switch v.kind {
	case NullKind:
		return 0, nil
	case BoolKind:
		return float64(boolToInt32(v.b)), nil
	case IntKind:
		return float64(v.i), nil
	case UIntKind:
		return float64(v.u), nil
	case RealKind:
		return v.f, nil
	default:
		return 0, typeErrorf("AsDouble", v.kind)
	}
}

// AsFloat coerces v to a float32, narrowing a wider double as needed.
func (v Value) AsFloat() (float32, error) {
	d, err := v.AsDouble()
	if err != nil {
		return 0, err
	}
	return float32(d), nil
}

// AsString coerces v to its string form. String returns its payload
// verbatim; Null returns ""; Bool formats as "true"/"false"; Int/UInt
// format as shortest decimal; Real formats via formatRealShortest, so an
// integral Real gets a trailing ".0" (or is in exponent form) and still
// reads back as Real. Array and Object are a type error.
func (v Value) AsString() (string, error) {
	switch v.kind {
	case NullKind:
		return "", nil
	case StringKind:
		return v.s, nil
	case BoolKind:
		if v.b {
			return "true", nil
		}
		return "false", nil
	case IntKind:
		return strconv.FormatInt(v.i, 10), nil
	case UIntKind:
		return strconv.FormatUint(v.u, 10), nil
	case RealKind:
		return formatRealShortest(v.f), nil
	default:
		return "", typeErrorf("AsString", v.kind)
	}
}

// AsCString behaves like AsString but fails with a type error if the
// result would contain an embedded NUL byte, since a C string cannot
// represent one.
func (v Value) AsCString() (string, error) {
	s, err := v.AsString()
	if err != nil {
		return "", err
	}
	if strings.IndexByte(s, 0) >= 0 {
		return "", typeErrorf("AsCString", v.kind)
	}
	return s, nil
}

func boolToInt32(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// formatRealShortest renders f as the shortest round-trip decimal, in
// plain notation for magnitudes in [1e-4, 1e17) and exponent form
// otherwise, adding a trailing ".0" when the result would otherwise read
// back as an integer literal (no '.' or exponent marker), so 1048576
// formats as "1048576.0".
func formatRealShortest(f float64) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	if math.IsInf(f, 1) {
		return "Infinity"
	}
	if math.IsInf(f, -1) {
		return "-Infinity"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if a := math.Abs(f); a >= 1e-4 && a < 1e17 {
		s = strconv.FormatFloat(f, 'f', -1, 64)
	}
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
