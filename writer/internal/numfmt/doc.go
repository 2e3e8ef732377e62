// Package numfmt renders the numeric payloads of a value.Value as the
// writer's layout policies require: plain decimal for Int/UInt, and a
// configurable-precision decimal (or the special-float tokens NaN,
// Infinity, -Infinity) for Real.
//
// Finite values and NaN/Infinity are classified separately up front,
// since only finite values go through precision formatting.
package numfmt
