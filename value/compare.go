package value

import (
	"bytes"
	"sort"
)

// Int64Compare returns a three-valued comparison between two signed
// 64-bit integers.
func Int64Compare(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Uint64Compare is the unsigned counterpart of Int64Compare.
func Uint64Compare(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Float64Compare is the floating-point counterpart of Int64Compare. NaN
// compares greater than every other value, including itself equal to
// another NaN, so that Compare remains a total order usable as a sort
// key.
func Float64Compare(a, b float64) int {
	aNaN, bNaN := a != a, b != b
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Compare returns a three-valued comparison between v and other: negative
// if v < other, zero if equal, positive if v > other.
//
// Differing kinds compare by kind rank (Null < Int < UInt < Real < String
// < Bool < Array < Object). Within a kind, values compare naturally:
// numerically for Int/UInt/Real, lexicographically by unsigned byte for
// String, false < true for Bool,
// by length then elementwise for Array, and by size then sorted key/value
// pairs for Object.
func (v Value) Compare(other Value) int {
	if v.kind != other.kind {
		return rank[v.kind] - rank[other.kind]
	}
	switch v.kind {
	case NullKind:
		return 0
	case BoolKind:
		return boolCompare(v.b, other.b)
	case IntKind:
		return Int64Compare(v.i, other.i)
	case UIntKind:
		return Uint64Compare(v.u, other.u)
	case RealKind:
		return Float64Compare(v.f, other.f)
	case StringKind:
		return bytes.Compare([]byte(v.s), []byte(other.s))
	case ArrayKind:
		return compareArrays(v.arr, other.arr)
	case ObjectKind:
		return compareObjects(v.obj, other.obj)
	default:
		return 0
	}
}

func boolCompare(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a && b:
		return -1
	default:
		return 1
	}
}

func compareArrays(a, b []Value) int {
	if d := Int64Compare(int64(len(a)), int64(len(b))); d != 0 {
		return d
	}
	for i := range a {
		if d := a[i].Compare(b[i]); d != 0 {
			return d
		}
	}
	return 0
}

// compareObjects orders by member count first, then by key/value pairs in
// sorted-key order, so that two Objects holding the same members compare
// equal regardless of insertion order.
func compareObjects(a, b *object) int {
	if d := Int64Compare(int64(a.size()), int64(b.size())); d != 0 {
		return d
	}
	ak, bk := sortedKeys(a), sortedKeys(b)
	for i := range ak {
		if d := bytes.Compare([]byte(ak[i]), []byte(bk[i])); d != 0 {
			return d
		}
		av, _ := a.find(ak[i])
		bv, _ := b.find(bk[i])
		if d := av.Compare(*bv); d != 0 {
			return d
		}
	}
	return 0
}

func sortedKeys(o *object) []string {
	keys := o.names()
	sort.Strings(keys)
	return keys
}

// Equal reports whether v and other compare equal.
func (v Value) Equal(other Value) bool { return v.Compare(other) == 0 }

// Less reports whether v orders before other.
func (v Value) Less(other Value) bool { return v.Compare(other) < 0 }
