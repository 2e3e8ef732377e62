// Package writer renders a value.Value tree as UTF-8 JSON text under one
// of several layout policies: Fast (no insignificant whitespace),
// StyledString/StyledStream (fixed three-space or configurable
// indentation, inline arrays under a threshold), and a Builder-driven
// writer whose every option comes from a config.Config.
//
// The shared recursive-descent rendering core walks the Value tree once,
// dispatching kind by kind; every layout variant shares it and differs
// only in its Options. Number formatting is delegated to the internal
// numfmt package.
package writer
