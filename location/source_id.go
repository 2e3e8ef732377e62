package location

import "github.com/google/uuid"

// SourceID identifies a document a Span's offsets are relative to. It is
// an opaque, comparable handle: two SourceID values are equal only if they
// were derived from the same name (or the same synthetic generation).
type SourceID struct {
	name string
}

// NewSource returns a SourceID identifying the given name, typically a file
// path or other caller-supplied label.
func NewSource(name string) SourceID {
	return SourceID{name: name}
}

// NewSyntheticSource returns a SourceID for input with no natural name, such
// as an io.Reader passed to parser.ParseStream. Each call returns a distinct
// ID so spans from concurrently parsed anonymous streams never collide.
func NewSyntheticSource() SourceID {
	return SourceID{name: "stream:" + uuid.NewString()}
}

// IsZero reports whether s is the zero SourceID.
func (s SourceID) IsZero() bool {
	return s.name == ""
}

// String returns the source's name.
func (s SourceID) String() string {
	return s.name
}
