package value

// Get returns the member named key for read-only access: a reference to
// the canonical Null on miss, and when v itself is Null. It is a type
// error only if v is a non-Null, non-Object Value.
func (v Value) Get(key string) (Value, error) {
	if v.kind == NullKind {
		return Null(), nil
	}
	if v.kind != ObjectKind {
		return Value{}, typeErrorf("Get", v.kind)
	}
	if val, ok := v.obj.find(key); ok {
		return *val, nil
	}
	return Null(), nil
}

// Set assigns key to val for mutable access, inserting a new member at the
// end of iteration order if key is absent, or updating in place (keeping
// its position) if present. Calling Set on Null turns v into an Object.
func (v *Value) Set(key string, val Value) error {
	if v.kind == NullKind {
		v.kind = ObjectKind
		v.obj = newObject()
	}
	if v.kind != ObjectKind {
		return typeErrorf("Set", v.kind)
	}
	v.obj.set(key, val)
	return nil
}

// Find returns a pointer to key's stored value, or nil if absent or v is
// not an Object.
func (v *Value) Find(key string) *Value {
	if v.kind != ObjectKind {
		return nil
	}
	val, ok := v.obj.find(key)
	if !ok {
		return nil
	}
	return val
}

// Demand returns a pointer to key's value, creating a Null member if
// absent. Calling Demand on Null turns v into an Object.
func (v *Value) Demand(key string) *Value {
	if v.kind == NullKind {
		v.kind = ObjectKind
		v.obj = newObject()
	}
	if v.kind != ObjectKind {
		panic("value: Demand called on " + v.kind.String())
	}
	return v.obj.demand(key)
}

// RemoveMember deletes key, returning its value and true on success. It
// returns false, leaving out untouched, iff key is absent.
func (v *Value) RemoveMember(key string, out *Value) (bool, error) {
	if v.kind != ObjectKind {
		return false, typeErrorf("RemoveMember", v.kind)
	}
	removed, ok := v.obj.remove(key)
	if !ok {
		return false, nil
	}
	if out != nil {
		*out = removed
	}
	return true, nil
}

// GetMemberNames returns an Object's keys in insertion order, or nil for
// any non-Object Value.
func (v Value) GetMemberNames() []string {
	if v.kind != ObjectKind {
		return nil
	}
	return v.obj.names()
}

// IsMember reports whether key is present in an Object Value.
func (v Value) IsMember(key string) bool {
	if v.kind != ObjectKind {
		return false
	}
	_, ok := v.obj.find(key)
	return ok
}
