// Package perror collects structured parse errors produced while reading a
// JSON document and renders them in the library's canonical text format.
//
// Parse errors are never returned as Go errors mid-parse; they are appended
// to a [Collector] in the order they are discovered instead of failing
// fast, so a single parse can report every problem it found, not just the
// first. Each collected error carries a message, the offending span, and
// an optional detail offset.
//
// # Thread safety
//
// Collector is not safe for concurrent use; a parse operates on a single
// goroutine and collects errors as it goes.
package perror
