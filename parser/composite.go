package parser

import "github.com/lentz-dev/jsonv/value"

func (st *parseState) parseArray() (value.Value, bool) {
	start := st.pos
	st.pos++ // '['
	if !st.enterNesting() {
		v := value.NewArray()
		v.SetSpan(st.span(start))
		return v, false
	}
	defer st.exitNesting()

	out := value.NewArray()
	sawComma := false
	for {
		before := st.collectComments()
		if st.eof() {
			st.errs.Add("Missing ',' or ']' in array declaration", start, st.pos)
			out.SetSpan(st.span(start))
			return out, false
		}
		if st.peek() == ']' {
			if sawComma && !st.opt.allowTrailingCommas {
				st.errs.Add("Syntax error: value, object or array expected.", st.pos, st.pos+1)
				st.pos++
				out.SetSpan(st.span(start))
				return out, false
			}
			st.pos++
			out.SetSpan(st.span(start))
			return out, true
		}
		if st.peek() == ',' && st.opt.allowDroppedNullPlaceholders {
			elem := value.Null()
			elem.SetSpan(st.span(st.pos))
			if before != "" {
				elem.SetComment(before, value.CommentBefore)
			}
			_ = out.Append(elem)
			st.pos++
			sawComma = true
			continue
		}

		elem, elemOK := st.parseValue()
		if before != "" {
			elem.SetComment(before, value.CommentBefore)
		}
		if sameLine, found := st.scanSameLineComment(); found {
			elem.SetComment(sameLine, value.CommentAfterOnSameLine)
		}
		if after := st.collectComments(); after != "" {
			elem.SetComment(after, value.CommentAfter)
		}
		_ = out.Append(elem)
		if !elemOK || st.fatal {
			out.SetSpan(st.span(start))
			return out, false
		}

		switch {
		case st.peek() == ',':
			st.pos++
			sawComma = true
		case st.peek() == ']':
			sawComma = false
		default:
			st.errs.Add("Missing ',' or ']' in array declaration", st.pos, st.pos+1)
			out.SetSpan(st.span(start))
			return out, false
		}
	}
}

func (st *parseState) parseObject() (value.Value, bool) {
	start := st.pos
	st.pos++ // '{'
	if !st.enterNesting() {
		v := value.NewObject()
		v.SetSpan(st.span(start))
		return v, false
	}
	defer st.exitNesting()

	out := value.NewObject()
	sawComma := false
	for {
		keyBefore := st.collectComments()
		if st.eof() {
			st.errs.Add("Missing ',' or '}' in object declaration", start, st.pos)
			out.SetSpan(st.span(start))
			return out, false
		}
		if st.peek() == '}' {
			if sawComma && !st.opt.allowTrailingCommas {
				st.errs.Add("Syntax error: value, object or array expected.", st.pos, st.pos+1)
				st.pos++
				out.SetSpan(st.span(start))
				return out, false
			}
			st.pos++
			out.SetSpan(st.span(start))
			return out, true
		}

		key, keyOK := st.parseObjectKey()
		if !keyOK {
			out.SetSpan(st.span(start))
			return out, false
		}

		st.skipWhitespace()
		if st.peek() != ':' {
			st.errs.Add("Missing ':' after object member name", st.pos, st.pos+1)
			out.SetSpan(st.span(start))
			return out, false
		}
		st.pos++

		valBefore := st.collectComments()
		var elem value.Value
		var elemOK bool
		if st.peek() == ',' && st.opt.allowDroppedNullPlaceholders {
			elem, elemOK = value.Null(), true
			elem.SetSpan(st.span(st.pos))
		} else {
			elem, elemOK = st.parseValue()
		}
		if keyBefore != "" && valBefore == "" {
			elem.SetComment(keyBefore, value.CommentBefore)
		} else if valBefore != "" {
			elem.SetComment(valBefore, value.CommentBefore)
		}
		if sameLine, found := st.scanSameLineComment(); found {
			elem.SetComment(sameLine, value.CommentAfterOnSameLine)
		}
		if after := st.collectComments(); after != "" {
			elem.SetComment(after, value.CommentAfter)
		}

		switch {
		case st.opt.rejectDupKeys && out.IsMember(key):
			// First occurrence's value and comments are retained: a later
			// duplicate is reported but never overwrites the stored member.
			st.errs.Add("Duplicate key: '"+key+"'", start, st.pos)
		default:
			// Without rejectDupKeys a repeated key behaves like a plain
			// map assignment: the last occurrence wins.
			_ = out.Set(key, elem)
		}

		if !elemOK || st.fatal {
			out.SetSpan(st.span(start))
			return out, false
		}

		switch {
		case st.peek() == ',':
			st.pos++
			sawComma = true
		case st.peek() == '}':
			sawComma = false
		default:
			st.errs.Add("Missing ',' or '}' in object declaration", st.pos, st.pos+1)
			out.SetSpan(st.span(start))
			return out, false
		}
	}
}

// parseObjectKey parses a string key, or an unquoted numeric token kept as
// its textual form when allowNumericKeys is set.
func (st *parseState) parseObjectKey() (string, bool) {
	st.skipWhitespace()
	switch {
	case st.peek() == '"':
		v, ok := st.parseQuotedString('"')
		s, _ := v.AsString()
		return s, ok
	case st.peek() == '\'' && st.opt.allowSingleQuotes:
		v, ok := st.parseQuotedString('\'')
		s, _ := v.AsString()
		return s, ok
	case st.opt.allowNumericKeys && (isDigit(st.peek()) || st.peek() == '-'):
		start := st.pos
		if st.peek() == '-' {
			st.pos++
		}
		for !st.eof() && isDigit(st.peek()) {
			st.pos++
		}
		return string(st.data[start:st.pos]), true
	default:
		st.errs.Add("Missing '\"' or key expected", st.pos, st.pos+1)
		return "", false
	}
}
