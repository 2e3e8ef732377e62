// Package value implements the tagged-union JSON value type at the center
// of this library: Value holds exactly one of Null, Bool, Int, UInt, Real,
// String, Array, or Object, plus attached comments and a source-offset
// span.
//
// Object members are stored as an ordered slice of key/value pairs, not a
// Go map, so insertion order survives. The numeric three-way comparison in
// compare.go dispatches directly on the Value's kind tag, avoiding the
// signed/unsigned/float straddling bugs a naive comparison would hit.
//
// # Thread safety
//
// A Value tree is safe for concurrent *reads* as long as no writer is
// active on it or any descendant. The canonical Null returned by Null()
// is a single package-level instance; it is never mutated and is safe to
// read concurrently forever.
package value
