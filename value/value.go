package value

import (
	"github.com/lentz-dev/jsonv/location"
)

// Value is a tagged union over {Null, Bool, Int, UInt, Real, String, Array,
// Object}, plus up to three attached comments and a source-offset span.
//
// The zero Value is Null. Composite Values (Array, Object) own their
// children: assigning a Value shares the underlying slice/member storage
// the way a plain Go slice or map assignment would. Call Clone to obtain
// an isolated deep copy, including comments and offsets.
type Value struct {
	kind Kind

	b bool
	i int64
	u uint64
	f float64

	s        string
	isStatic bool

	arr []Value
	obj *object

	start, limit int
	source       location.SourceID

	com comments
}

var nullValue = Value{kind: NullKind}

// Null returns the canonical shared Null Value. It must never be mutated;
// it is safe to read concurrently for the lifetime of the process.
func Null() Value { return nullValue }

// NewBool constructs a Bool Value.
func NewBool(b bool) Value { return Value{kind: BoolKind, b: b} }

// NewInt constructs an Int Value from a signed integer.
func NewInt(i int64) Value { return Value{kind: IntKind, i: i} }

// NewUInt constructs a UInt Value from an unsigned integer.
func NewUInt(u uint64) Value { return Value{kind: UIntKind, u: u} }

// NewReal constructs a Real Value from an IEEE-754 double.
func NewReal(f float64) Value { return Value{kind: RealKind, f: f} }

// NewFloat constructs a Real Value from a float32, widened to double.
func NewFloat(f float32) Value { return Value{kind: RealKind, f: float64(f)} }

// NewString constructs a String Value from an explicit byte range,
// binary-safe (may contain embedded NUL).
func NewString(s string) Value { return Value{kind: StringKind, s: s} }

// NewStaticString constructs a String Value marked "static-borrowed": a
// hint that s is a caller-owned literal expected to outlive the Value, so
// copies may share it until mutated. Go strings are already immutable and
// cheap to share, so storage does not actually change; the marker is kept
// only so round-tripping callers can inspect it with IsStatic.
func NewStaticString(s string) Value { return Value{kind: StringKind, s: s, isStatic: true} }

// NewArray returns an empty Array Value.
func NewArray() Value { return Value{kind: ArrayKind} }

// NewObject returns an empty Object Value.
func NewObject() Value { return Value{kind: ObjectKind, obj: newObject()} }

// OfKind returns the zero Value of the given kind (an empty container for
// Array/Object, the zero scalar otherwise).
func OfKind(k Kind) Value {
	if k == ObjectKind {
		return NewObject()
	}
	return Value{kind: k}
}

// Kind reports v's active kind.
func (v Value) Kind() Kind { return v.kind }

// Span returns v's source-offset span: [Start, Limit) bytes in the
// document that produced it, zero when v was not produced by parsing.
func (v Value) Span() location.Span {
	return location.Span{Source: v.source, Start: v.start, Limit: v.limit}
}

// SetSpan records the byte offsets a parser assigns to a parsed Value.
func (v *Value) SetSpan(s location.Span) {
	v.source = s.Source
	v.start = s.Start
	v.limit = s.Limit
}

// IsStatic reports whether a String Value is marked static-borrowed.
func (v Value) IsStatic() bool { return v.kind == StringKind && v.isStatic }

// Comment returns the comment text attached at the given placement, or ""
// if none was set.
func (v Value) Comment(p CommentPlacement) string { return v.com[p] }

// SetComment attaches text as a comment at the given placement, overwriting
// any comment already there. Assigning a new comment does not clear the
// other placements.
func (v *Value) SetComment(text string, p CommentPlacement) { v.com[p] = text }

// Clone returns a deep copy of v, including comments, offsets, and all
// descendants, so that mutating the clone never affects v.
func (v Value) Clone() Value {
	out := v
	out.com = v.com
	switch v.kind {
	case ArrayKind:
		if v.arr != nil {
			out.arr = make([]Value, len(v.arr))
			for i, c := range v.arr {
				out.arr[i] = c.Clone()
			}
		}
	case ObjectKind:
		out.obj = v.obj.clone()
	}
	return out
}

// SwapPayload exchanges v's and other's kind/payload, leaving each side's
// comments untouched.
func (v *Value) SwapPayload(other *Value) {
	vc, oc := v.com, other.com
	*v, *other = *other, *v
	v.com, other.com = vc, oc
}

// Swap exchanges v and other entirely, including comments and offsets.
func (v *Value) Swap(other *Value) {
	*v, *other = *other, *v
}

// Clear resets a composite Value (Array or Object) to empty. It is a no-op
// on scalar kinds.
func (v *Value) Clear() {
	switch v.kind {
	case ArrayKind:
		v.arr = nil
	case ObjectKind:
		v.obj = newObject()
	}
}
