package writer

import "github.com/lentz-dev/jsonv/value"

// Fast writes the most compact valid JSON for a Value: no indentation, no
// inter-token spacing beyond what YAMLCompat asks for, and never comments.
type Fast struct {
	// SuppressTrailingNewline omits the newline normally appended after
	// the top-level value.
	SuppressTrailingNewline bool
	// DropNullPlaceholders omits object members and array elements whose
	// value is Null instead of emitting them as "key":null.
	DropNullPlaceholders bool
	// YAMLCompat adds a space after each ':' separator, matching the
	// subset of JSON that YAML 1.1 parsers expect.
	YAMLCompat bool
}

// Write renders v as compact JSON text.
func (w Fast) Write(v value.Value) string {
	opt := Options{
		Mode:                    FastMode,
		SuppressTrailingNewline: w.SuppressTrailingNewline,
		DropNullPlaceholders:    w.DropNullPlaceholders,
		YAMLCompat:              w.YAMLCompat,
		CommentStyle:            CommentStyleNone,
		EmitUTF8:                true,
	}
	s := Render(v, opt)
	if !w.SuppressTrailingNewline {
		s += "\n"
	}
	return s
}
