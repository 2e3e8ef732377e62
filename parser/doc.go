// Package parser turns a byte range of (optionally lenient) JSON text
// into a value.Value tree, tracking byte offsets and collecting
// structured errors instead of failing fast.
//
// It is a straight-line recursive descent over the byte slice: small
// stepping functions each read one lexeme, with a depth counter bounding
// nested arrays/objects. The dialect has many independent per-feature
// toggles (single quotes, numeric keys, dropped-null placeholders,
// special floats, duplicate-key rejection, a stack limit), which are
// plain conditionals inside the descent functions rather than states in
// a lexer table.
//
// # Dependencies
//
// This package optionally logs through github.com/tliron/commonlog when a
// Builder's Logger field is set; a nil Logger (the zero value) means no
// logging, matching commonlog's own "no-op if unset" convention. It does
// not otherwise depend on anything outside value, perror, location, and
// config.
//
// # Thread safety
//
// A *Parser built by Builder.Build is safe to reuse sequentially but not
// concurrently against overlapping Parse calls that might share a
// Collector.
package parser
