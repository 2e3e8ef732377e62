package writer

import "github.com/lentz-dev/jsonv/writer/internal/numfmt"

// Mode selects a writer's base layout policy.
type Mode uint8

const (
	// FastMode emits no insignificant whitespace.
	FastMode Mode = iota
	// StyledMode indents nested structures and inlines short arrays.
	StyledMode
)

// CommentStyle selects whether a Styled writer re-emits a Value's
// attached comments.
type CommentStyle uint8

const (
	CommentStyleNone CommentStyle = iota
	CommentStyleAll
)

// arrayInlineWidth bounds how long an inlined array's rendered elements
// may be before the Styled writers fall back to one-element-per-line.
const arrayInlineWidth = 74

// arrayInlineMaxElements is the other half of the Styled inline-array
// rule: more than this many elements always breaks to one per line, even
// if they would otherwise fit the width budget.
const arrayInlineMaxElements = 20

// Options configures the shared rendering core every writer variant in
// this package is built from.
type Options struct {
	Mode Mode

	// Indent is the per-level indentation string used in StyledMode.
	// Ignored in FastMode, which never indents.
	Indent string

	SuppressTrailingNewline bool
	DropNullPlaceholders    bool
	YAMLCompat              bool
	CommentStyle            CommentStyle
	UseSpecialFloats        bool
	EmitUTF8                bool
	Precision               int
	PrecisionType           numfmt.PrecisionType
}

// colonSeparator returns the text written between an object member's key
// and value. Styled writers always use "key : value"; Fast (and the
// Builder-driven writer in compact form) only adds the space after the
// colon when YAMLCompat is set.
func (o Options) colonSeparator() string {
	if o.Mode == StyledMode {
		return " : "
	}
	if o.YAMLCompat {
		return ": "
	}
	return ":"
}
