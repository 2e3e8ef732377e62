// Package config implements the ordered option map that drives the
// parser and writer builders.
//
// Config is deliberately not a Go map: it is an ordered slice of
// name/value entries, so that unknown-key validation can report
// unrecognized names in the order the caller set them rather than Go's
// randomized map iteration order.
package config
