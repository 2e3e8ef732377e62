package writer

import (
	"strings"

	"github.com/lentz-dev/jsonv/value"
	"github.com/lentz-dev/jsonv/writer/internal/numfmt"
)

// Render walks v and returns its JSON text under opt, with no trailing
// newline — every public writer constructor in this package decides for
// itself whether and when to append one.
func Render(v value.Value, opt Options) string {
	var buf strings.Builder
	render(&buf, v, opt, 0)
	return buf.String()
}

func render(buf *strings.Builder, v value.Value, opt Options, depth int) {
	writeComment(buf, v, opt, depth, value.CommentBefore)
	switch v.Kind() {
	case value.NullKind:
		if !opt.DropNullPlaceholders {
			buf.WriteString("null")
		}
	case value.BoolKind:
		b, _ := v.AsBool()
		if b {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case value.IntKind:
		i, _ := v.AsInt64()
		buf.WriteString(numfmt.FormatInt(i))
	case value.UIntKind:
		u, _ := v.AsUInt64()
		buf.WriteString(numfmt.FormatUInt(u))
	case value.RealKind:
		f, _ := v.AsDouble()
		buf.WriteString(numfmt.FormatReal(f, opt.Precision, opt.PrecisionType, opt.UseSpecialFloats))
	case value.StringKind:
		s, _ := v.AsString()
		writeQuotedString(buf, s, opt.EmitUTF8)
	case value.ArrayKind:
		renderArray(buf, v, opt, depth)
	case value.ObjectKind:
		renderObject(buf, v, opt, depth)
	}
	writeComment(buf, v, opt, depth, value.CommentAfterOnSameLine)
}

func writeComment(buf *strings.Builder, v value.Value, opt Options, depth int, p value.CommentPlacement) {
	if opt.CommentStyle != CommentStyleAll {
		return
	}
	text := v.Comment(p)
	if text == "" {
		return
	}
	switch p {
	case value.CommentBefore:
		buf.WriteString(text)
		buf.WriteByte('\n')
		writeIndent(buf, opt, depth)
	case value.CommentAfterOnSameLine:
		buf.WriteByte(' ')
		buf.WriteString(text)
	case value.CommentAfter:
		buf.WriteByte('\n')
		writeIndent(buf, opt, depth)
		buf.WriteString(text)
	}
}

func writeIndent(buf *strings.Builder, opt Options, depth int) {
	if opt.Mode != StyledMode {
		return
	}
	for i := 0; i < depth; i++ {
		buf.WriteString(opt.Indent)
	}
}

func renderArray(buf *strings.Builder, v value.Value, opt Options, depth int) {
	items := v.Items()
	if opt.DropNullPlaceholders {
		items = filterNull(items)
	}
	if len(items) == 0 {
		buf.WriteString("[]")
		return
	}
	if opt.Mode == FastMode {
		buf.WriteByte('[')
		for i, e := range items {
			if i > 0 {
				buf.WriteByte(',')
			}
			render(buf, e, opt, depth+1)
		}
		buf.WriteByte(']')
		return
	}
	if canInlineArray(items, opt) {
		buf.WriteString("[ ")
		for i, e := range items {
			if i > 0 {
				buf.WriteString(", ")
			}
			render(buf, e, opt, depth+1)
		}
		buf.WriteString(" ]")
		return
	}
	buf.WriteString("[\n")
	for i, e := range items {
		writeIndent(buf, opt, depth+1)
		render(buf, e, opt, depth+1)
		if i < len(items)-1 {
			buf.WriteByte(',')
		}
		writeComment(buf, e, opt, depth+1, value.CommentAfter)
		buf.WriteByte('\n')
	}
	writeIndent(buf, opt, depth)
	buf.WriteByte(']')
}

func renderObject(buf *strings.Builder, v value.Value, opt Options, depth int) {
	names := v.GetMemberNames()
	if opt.DropNullPlaceholders {
		names = filterNullMembers(v, names)
	}
	if len(names) == 0 {
		buf.WriteString("{}")
		return
	}
	if opt.Mode == FastMode {
		buf.WriteByte('{')
		i := 0
		for _, k := range names {
			mv := v.Find(k)
			if mv == nil {
				continue
			}
			if i > 0 {
				buf.WriteByte(',')
			}
			writeQuotedString(buf, k, opt.EmitUTF8)
			buf.WriteString(opt.colonSeparator())
			render(buf, *mv, opt, depth+1)
			i++
		}
		buf.WriteByte('}')
		return
	}
	buf.WriteString("{\n")
	for i, k := range names {
		mv := v.Find(k)
		if mv == nil {
			continue
		}
		writeIndent(buf, opt, depth+1)
		writeQuotedString(buf, k, opt.EmitUTF8)
		buf.WriteString(opt.colonSeparator())
		render(buf, *mv, opt, depth+1)
		if i < len(names)-1 {
			buf.WriteByte(',')
		}
		writeComment(buf, *mv, opt, depth+1, value.CommentAfter)
		buf.WriteByte('\n')
	}
	writeIndent(buf, opt, depth)
	buf.WriteByte('}')
}

func filterNull(items []value.Value) []value.Value {
	out := items[:0:0]
	for _, e := range items {
		if e.Kind() != value.NullKind {
			out = append(out, e)
		}
	}
	return out
}

func filterNullMembers(v value.Value, names []string) []string {
	out := names[:0:0]
	for _, k := range names {
		mv := v.Find(k)
		if mv != nil && mv.Kind() == value.NullKind {
			continue
		}
		out = append(out, k)
	}
	return out
}

// canInlineArray decides whether a Styled writer renders items as
// "[ a, b, c ]" on one line instead of one element per line: no element
// may itself be a container or carry comments, the element count must fit
// arrayInlineMaxElements, and the compact rendering must fit
// arrayInlineWidth.
func canInlineArray(items []value.Value, opt Options) bool {
	if len(items) > arrayInlineMaxElements {
		return false
	}
	compactOpt := opt
	compactOpt.Mode = FastMode
	compactOpt.CommentStyle = CommentStyleNone
	var width int
	for _, e := range items {
		if e.Kind() == value.ArrayKind || e.Kind() == value.ObjectKind {
			return false
		}
		if opt.CommentStyle == CommentStyleAll &&
			(e.Comment(value.CommentBefore) != "" ||
				e.Comment(value.CommentAfterOnSameLine) != "" ||
				e.Comment(value.CommentAfter) != "") {
			return false
		}
		width += len(Render(e, compactOpt)) + 2
	}
	return width <= arrayInlineWidth
}
