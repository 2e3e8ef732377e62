// Package location identifies byte offsets within a parsed JSON document and
// converts them to human-readable line/column positions.
//
// This package sits at the foundation tier: it has no dependency on [value],
// [perror], [config], [parser], or [writer], so it can be imported by all of
// them without cycles.
//
// # Byte columns, not rune columns
//
// [Position.Column] counts UTF-8 bytes since the start of the line, not
// decoded code points. A multi-byte UTF-8 character therefore advances the
// column by more than one; this keeps parser diagnostics reproducible
// without decoding the input twice. Callers that want code-point columns
// must decode the line themselves.
//
// # Thread safety
//
// Position and Span are value types; SourceID is an immutable handle safe
// for concurrent use once constructed.
package location
