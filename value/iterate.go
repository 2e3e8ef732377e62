package value

import "iter"

// Elements returns a read-only sequence over an Array's children in
// order. Ranging over a non-Array Value yields nothing.
func (v Value) Elements() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		if v.kind != ArrayKind {
			return
		}
		for _, c := range v.arr {
			if !yield(c) {
				return
			}
		}
	}
}

// Members returns a read-only sequence over an Object's key/value pairs in
// insertion order. Ranging over a non-Object Value yields nothing.
func (v Value) Members() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if v.kind != ObjectKind || v.obj == nil {
			return
		}
		for _, m := range v.obj.members {
			if !yield(m.key, m.val) {
				return
			}
		}
	}
}

// Iterator is a cursor over a composite Value's children, exposing the
// key()/index()/name()/distance() operations that a range-over-func
// sequence alone cannot (there is no stable cursor to call Distance
// against). Iterators invalidate if the underlying composite is
// structurally mutated (resized, appended to, or had members
// inserted/removed) after construction.
type Iterator struct {
	kind Kind
	arr  []Value
	obj  *object
	keys []string
	pos  int

	mutable *Value
}

// Begin returns a read-only iterator positioned at v's first child.
// Iterating a non-composite Value is well-defined and yields an iterator
// that already equals End.
func (v Value) Begin() Iterator {
	switch v.kind {
	case ArrayKind:
		return Iterator{kind: ArrayKind, arr: v.arr}
	case ObjectKind:
		return Iterator{kind: ObjectKind, obj: v.obj, keys: v.obj.names()}
	default:
		return Iterator{}
	}
}

// End returns an iterator positioned just past v's last child.
func (v Value) End() Iterator {
	it := v.Begin()
	switch it.kind {
	case ArrayKind:
		it.pos = len(it.arr)
	case ObjectKind:
		it.pos = len(it.keys)
	}
	return it
}

// MutableBegin is Begin, but the returned Iterator's Set method may write
// back into v. Requiring a *Value receiver makes obtaining a mutable
// iterator from a read-only Value a type error: callers only have a
// *Value for Values they own (a local variable, an array element, an
// object member obtained via Find/Demand), never for a temporary returned
// by value.
func (v *Value) MutableBegin() (Iterator, error) {
	if v.kind != ArrayKind && v.kind != ObjectKind && v.kind != NullKind {
		return Iterator{}, typeErrorf("MutableBegin", v.kind)
	}
	it := v.Begin()
	it.mutable = v
	return it, nil
}

// Done reports whether it has advanced past the last child.
func (it Iterator) Done() bool {
	switch it.kind {
	case ArrayKind:
		return it.pos >= len(it.arr)
	case ObjectKind:
		return it.pos >= len(it.keys)
	default:
		return true
	}
}

// Next advances it by one position.
func (it *Iterator) Next() { it.pos++ }

// Key returns the current child's key: the numeric index as a Value for
// an Array, the string key as a Value for an Object.
func (it Iterator) Key() Value {
	switch it.kind {
	case ArrayKind:
		return NewInt(int64(it.pos))
	case ObjectKind:
		if it.pos < len(it.keys) {
			return NewString(it.keys[it.pos])
		}
	}
	return Null()
}

// Index returns the current child's integer index for an Array, or -1 for
// an Object.
func (it Iterator) Index() int {
	if it.kind == ArrayKind {
		return it.pos
	}
	return -1
}

// Name returns the current child's key for an Object, or "" for an Array.
func (it Iterator) Name() string {
	if it.kind == ObjectKind && it.pos < len(it.keys) {
		return it.keys[it.pos]
	}
	return ""
}

// Value returns the current child.
func (it Iterator) Value() Value {
	switch it.kind {
	case ArrayKind:
		if it.pos < len(it.arr) {
			return it.arr[it.pos]
		}
	case ObjectKind:
		if it.pos < len(it.keys) {
			if val, ok := it.obj.find(it.keys[it.pos]); ok {
				return *val
			}
		}
	}
	return Null()
}

// Set overwrites the current child's value. It requires an iterator
// obtained via MutableBegin; calling it on a read-only iterator is a type
// error.
func (it *Iterator) Set(val Value) error {
	if it.mutable == nil {
		return typeErrorf("Iterator.Set", it.kind)
	}
	switch it.kind {
	case ArrayKind:
		if it.pos >= len(it.arr) {
			return typeErrorf("Iterator.Set", it.kind)
		}
		it.arr[it.pos] = val
		it.mutable.arr[it.pos] = val
		return nil
	case ObjectKind:
		if it.pos >= len(it.keys) {
			return typeErrorf("Iterator.Set", it.kind)
		}
		it.obj.set(it.keys[it.pos], val)
		return nil
	default:
		return typeErrorf("Iterator.Set", it.kind)
	}
}

// Distance returns it's zero-based position relative to begin.
func Distance(begin, it Iterator) int {
	return it.pos - begin.pos
}
