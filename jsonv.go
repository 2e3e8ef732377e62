package jsonv

import (
	"io"

	"github.com/tidwall/jsonc"

	"github.com/lentz-dev/jsonv/location"
	"github.com/lentz-dev/jsonv/parser"
	"github.com/lentz-dev/jsonv/perror"
	"github.com/lentz-dev/jsonv/value"
	"github.com/lentz-dev/jsonv/writer"
)

// Value is the document model this package parses into and writes out
// of. It is re-exported here so callers need only import this package
// for the common case.
type Value = value.Value

// ParseBytes parses data with the default (strict JSON) dialect. The
// returned Collector is never nil; check its OK method before trusting
// the returned Value.
func ParseBytes(data []byte) (Value, *perror.Collector) {
	p := parser.NewBuilder().Build()
	var out Value
	errs := perror.NewCollector()
	p.Parse(data, &out, errs)
	return out, errs
}

// ParseBytesNamed is ParseBytes, but the spans of the returned Value are
// recorded against the given source name. perror.Error carries no source
// name, and perror.Error.Format does not print one.
func ParseBytesNamed(data []byte, sourceName string) (Value, *perror.Collector) {
	p := parser.NewBuilder().Build()
	var out Value
	errs := perror.NewCollector()
	p.ParseNamed(data, location.NewSource(sourceName), &out, errs)
	return out, errs
}

// ParseStream buffers r and parses it with the default dialect.
func ParseStream(r io.Reader) (Value, *perror.Collector, error) {
	p := parser.NewBuilder().Build()
	var out Value
	errs := perror.NewCollector()
	_, err := p.ParseStream(r, &out, errs)
	return out, errs, err
}

// WriteString renders v using the builder-default Styled layout: a
// three-space indent, inline short arrays, and re-emitted comments. Go
// has no way to retrofit a String method onto value.Value from this
// package, so this is offered as a free function instead.
func WriteString(v Value) string {
	return writer.StyledString{EmitUTF8: true}.Write(v)
}

// Strip rewrites data into strict, encoding/json-compatible JSON by
// removing comments and trailing commas, without tracking their source
// positions or content. It is a convenience fast-path for callers who
// want to feed lenient JSON into a stricter downstream consumer; the
// parser in this module never calls it; its own lexer already collects
// comments and enforces every dialect toggle Strip knows nothing about.
func Strip(data []byte) []byte {
	return jsonc.ToJSON(data)
}
