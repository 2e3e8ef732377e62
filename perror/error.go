package perror

import (
	"fmt"

	"github.com/lentz-dev/jsonv/location"
	"github.com/lentz-dev/jsonv/value"
)

// Error is a single structured parse or semantic error. It carries byte
// offsets rather than a rendered message so that formatting can be deferred
// until the caller supplies the document the offsets are relative to.
type Error struct {
	Message string

	// Start and Limit bound the offending span within the document.
	Start int
	Limit int

	// HasExtra and Extra describe an optional secondary offset, used for
	// errors like a bad escape sequence where the "detail" location differs
	// from the error's primary span.
	HasExtra bool
	Extra    int
}

// Format renders e in the library's canonical text form:
//
//	* Line L, Column C
//	  <message>
//
// with an optional "See Line L, Column C for detail." trailer when e has an
// extra offset. data is the document e's offsets are relative to; line and
// column are computed from it via [location.FromOffset].
func (e Error) Format(data []byte) string {
	pos := location.FromOffset(data, e.Start)
	out := fmt.Sprintf("* Line %d, Column %d\n  %s\n", pos.Line, pos.Column, e.Message)
	if e.HasExtra {
		extra := location.FromOffset(data, e.Extra)
		out += fmt.Sprintf("See Line %d, Column %d for detail.\n", extra.Line, extra.Column)
	}
	return out
}

// Collector accumulates Error values in the order they are discovered. A
// parser never returns a parse error directly; it collects into one of
// these and the caller decides how to surface the result.
type Collector struct {
	errors []Error
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Add appends an error with the given offending span.
func (c *Collector) Add(message string, start, limit int) {
	c.errors = append(c.errors, Error{Message: message, Start: start, Limit: limit})
}

// AddDetail appends an error with the given offending span and a secondary
// "detail" offset, rendered as a "See Line L, Column C for detail." trailer.
func (c *Collector) AddDetail(message string, start, limit, extra int) {
	c.errors = append(c.errors, Error{
		Message:  message,
		Start:    start,
		Limit:    limit,
		HasExtra: true,
		Extra:    extra,
	})
}

// Push attaches a semantic error anchored at v's offsets, optionally noting
// a related Value whose offset becomes the error's detail location. This is
// the collector-side half of the pushError operation: callers run it after
// a successful parse to report tree-level validation failures using the
// same formatted/structured error machinery as syntax errors.
func (c *Collector) Push(v value.Value, message string, related *value.Value) {
	span := v.Span()
	if related == nil {
		c.Add(message, span.Start, span.Limit)
		return
	}
	c.AddDetail(message, span.Start, span.Limit, related.Span().Start)
}

// Errors returns the collected errors in discovery order.
func (c *Collector) Errors() []Error {
	return c.errors
}

// OK reports whether no errors have been collected.
func (c *Collector) OK() bool {
	return len(c.errors) == 0
}

// Format renders all collected errors, concatenated in order, against data.
func (c *Collector) Format(data []byte) string {
	var out string
	for _, e := range c.errors {
		out += e.Format(data)
	}
	return out
}
