// Package jsonv provides a polymorphic JSON document model: a tagged
// union Value type, a lenient recursive-descent Parser with a dozen
// independent dialect toggles, and a family of Writers (Fast, Styled,
// Builder-driven) that round-trip comments and source spans.
//
// # Architecture Overview
//
// The module is organized into layers with strict dependency ordering:
//
//	Foundation tier (no internal dependencies):
//	  - location: byte offsets, spans, and source identity
//
//	Core library tier:
//	  - value: the tagged-union Value type, comparison, conversion, iteration
//	  - perror: collected parse/validation diagnostics
//	  - config: ordered option maps shared by the parser and writer builders
//
//	Surface tier:
//	  - parser: recursive-descent Parser and its Builder
//	  - writer: Fast/StyledString/StyledStream writers and the writer Builder
//
// # Entry Points
//
// Parsing:
//
//	import "github.com/lentz-dev/jsonv"
//
//	v, errs := jsonv.ParseBytes(data)
//	if !errs.OK() {
//	    fmt.Print(errs.Format(data))
//	}
//
// Writing:
//
//	out := jsonv.WriteString(v)
//
// # Subpackages
//
//   - [github.com/lentz-dev/jsonv/location]: source positions and spans
//   - [github.com/lentz-dev/jsonv/value]: the Value type
//   - [github.com/lentz-dev/jsonv/perror]: collected diagnostics
//   - [github.com/lentz-dev/jsonv/config]: ordered option maps
//   - [github.com/lentz-dev/jsonv/parser]: the Parser
//   - [github.com/lentz-dev/jsonv/writer]: the Writer family
package jsonv
