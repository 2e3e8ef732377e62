package value

// Size returns the number of elements/members for a composite Value, or 0
// for a scalar.
func (v Value) Size() int {
	switch v.kind {
	case ArrayKind:
		return len(v.arr)
	case ObjectKind:
		return v.obj.size()
	default:
		return 0
	}
}

// Resize grows or shrinks an Array Value to n elements. New positions
// become Null; truncation discards the dropped elements. Resize is a
// type error on a non-Array, non-Null Value; calling it on Null turns v
// into an Array.
func (v *Value) Resize(n int) error {
	if v.kind == NullKind {
		v.kind = ArrayKind
	}
	if v.kind != ArrayKind {
		return typeErrorf("Resize", v.kind)
	}
	switch {
	case n <= len(v.arr):
		v.arr = v.arr[:n]
	default:
		grown := make([]Value, n)
		copy(grown, v.arr)
		v.arr = grown
	}
	return nil
}

// Index returns the element at i, or the canonical Null if i is out of
// range. It is a type error to call Index on a non-Array, non-Null Value.
func (v Value) Index(i int) (Value, error) {
	if v.kind == NullKind {
		return Null(), nil
	}
	if v.kind != ArrayKind {
		return Value{}, typeErrorf("Index", v.kind)
	}
	if i < 0 || i >= len(v.arr) {
		return Null(), nil
	}
	return v.arr[i], nil
}

// SetIndex assigns val at position i, growing the array with Null holes if
// i is beyond the current length. Calling SetIndex on Null turns v into an
// Array.
func (v *Value) SetIndex(i int, val Value) error {
	if v.kind == NullKind {
		v.kind = ArrayKind
	}
	if v.kind != ArrayKind {
		return typeErrorf("SetIndex", v.kind)
	}
	if i >= len(v.arr) {
		grown := make([]Value, i+1)
		copy(grown, v.arr)
		v.arr = grown
	}
	v.arr[i] = val
	return nil
}

// Append adds val as the new last element of an Array Value. Calling
// Append on Null turns v into a single-element Array.
func (v *Value) Append(val Value) error {
	if v.kind == NullKind {
		v.kind = ArrayKind
	}
	if v.kind != ArrayKind {
		return typeErrorf("Append", v.kind)
	}
	v.arr = append(v.arr, val)
	return nil
}

// Insert places val at index, shifting later elements up by one. It
// returns false (and leaves v unchanged) iff index is greater than the
// current size; elements before the insertion point keep their storage
// identity.
func (v *Value) Insert(index int, val Value) (bool, error) {
	if v.kind == NullKind {
		v.kind = ArrayKind
	}
	if v.kind != ArrayKind {
		return false, typeErrorf("Insert", v.kind)
	}
	if index > len(v.arr) {
		return false, nil
	}
	v.arr = append(v.arr, Value{})
	copy(v.arr[index+1:], v.arr[index:])
	v.arr[index] = val
	return true, nil
}

// RemoveIndex deletes the element at i, returning its value and true on
// success. It returns false, leaving out untouched, iff i is out of range.
func (v *Value) RemoveIndex(i int, out *Value) (bool, error) {
	if v.kind != ArrayKind {
		return false, typeErrorf("RemoveIndex", v.kind)
	}
	if i < 0 || i >= len(v.arr) {
		return false, nil
	}
	if out != nil {
		*out = v.arr[i]
	}
	v.arr = append(v.arr[:i], v.arr[i+1:]...)
	return true, nil
}

// Items returns the Array's children in order as a plain slice. It is nil
// for any non-Array Value. See Elements for the iter.Seq form.
func (v Value) Items() []Value {
	if v.kind != ArrayKind {
		return nil
	}
	return v.arr
}
