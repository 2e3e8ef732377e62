package writer

import "github.com/lentz-dev/jsonv/value"

// StyledString renders human-readable JSON with a fixed three-space
// indent, inline short arrays, re-emitted comments, and a terminating
// newline that is always present.
type StyledString struct {
	EmitUTF8 bool
}

func (w StyledString) Write(v value.Value) string {
	opt := Options{
		Mode:         StyledMode,
		Indent:       "   ",
		CommentStyle: CommentStyleAll,
		EmitUTF8:     w.EmitUTF8,
	}
	return Render(v, opt) + "\n"
}

// StyledStream renders the same layout as StyledString but with a
// caller-chosen indent (a tab by default) and no guaranteed trailing
// newline, matching a writer meant to sit in the middle of a larger
// output stream rather than own the whole of it.
type StyledStream struct {
	// Indent defaults to a single tab when empty.
	Indent   string
	EmitUTF8 bool
}

func (w StyledStream) Write(v value.Value) string {
	indent := w.Indent
	if indent == "" {
		indent = "\t"
	}
	opt := Options{
		Mode:         StyledMode,
		Indent:       indent,
		CommentStyle: CommentStyleAll,
		EmitUTF8:     w.EmitUTF8,
	}
	return Render(v, opt)
}
