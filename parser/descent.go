package parser

import (
	"math"

	"github.com/lentz-dev/jsonv/location"
	"github.com/lentz-dev/jsonv/value"
)

// parseValue parses one JSON value starting at st.pos, dispatching on the
// lookahead byte. The returned Value's comments are not yet set; callers
// attach "before"/"after" comments once they know the surrounding
// context (array element, object member, or document root).
func (st *parseState) parseValue() (value.Value, bool) {
	if st.fatal {
		return value.Null(), false
	}
	start := st.pos
	if st.eof() {
		st.errs.Add("Syntax error: value, object or array expected.", start, start)
		return value.Null(), false
	}
	switch c := st.peek(); {
	case c == '{':
		return st.parseObject()
	case c == '[':
		return st.parseArray()
	case c == '"':
		return st.parseQuotedString('"')
	case c == '\'' && st.opt.allowSingleQuotes:
		return st.parseQuotedString('\'')
	case c == 't' || c == 'f':
		return st.parseBoolLiteral()
	case c == 'n':
		return st.parseNullLiteral()
	case st.opt.allowSpecialFloats && (c == 'N' || c == 'I' || c == '+' || c == '-') && st.peekSpecialFloat():
		return st.tryParseSpecialFloat()
	case c == '-' || (c >= '0' && c <= '9'):
		return st.parseNumber()
	default:
		st.errs.Add("Syntax error: value, object or array expected.", start, start+1)
		return value.Null(), false
	}
}

func (st *parseState) enterNesting() bool {
	st.depth++
	if st.depth > st.opt.stackLimit {
		st.errs.Add("Recursion is too deep; exceeded stack limit.", st.pos, st.pos)
		st.fatal = true
		return false
	}
	return true
}

func (st *parseState) exitNesting() { st.depth-- }

func (st *parseState) parseBoolLiteral() (value.Value, bool) {
	start := st.pos
	if matchLiteral(st.data, st.pos, "true") {
		st.pos += 4
		v := value.NewBool(true)
		v.SetSpan(st.span(start))
		return v, true
	}
	if matchLiteral(st.data, st.pos, "false") {
		st.pos += 5
		v := value.NewBool(false)
		v.SetSpan(st.span(start))
		return v, true
	}
	st.errs.Add("Syntax error: value, object or array expected.", start, start+1)
	return value.Null(), false
}

func (st *parseState) parseNullLiteral() (value.Value, bool) {
	start := st.pos
	if matchLiteral(st.data, st.pos, "null") {
		st.pos += 4
		v := value.Null()
		v.SetSpan(st.span(start))
		return v, true
	}
	st.errs.Add("Syntax error: value, object or array expected.", start, start+1)
	return value.Null(), false
}

// peekSpecialFloat reports whether one of the four special-float tokens
// starts at st.pos, without consuming it. It is checked before the '-'
// lookahead is handed to parseNumber, since "-Infinity" would otherwise
// be misread as a malformed negative number literal.
func (st *parseState) peekSpecialFloat() bool {
	return matchLiteral(st.data, st.pos, "NaN") ||
		matchLiteral(st.data, st.pos, "Infinity") ||
		matchLiteral(st.data, st.pos, "+Infinity") ||
		matchLiteral(st.data, st.pos, "-Infinity")
}

// tryParseSpecialFloat recognizes the full tokens NaN, Infinity, and
// -Infinity/+Infinity by exact literal match. parseValue calls it only
// after peekSpecialFloat has matched; its default branch returns false
// without recording an error. Bytes following the token are left to the
// caller, as after any other value.
func (st *parseState) tryParseSpecialFloat() (value.Value, bool) {
	start := st.pos
	switch {
	case matchLiteral(st.data, st.pos, "NaN"):
		st.pos += 3
		v := value.NewReal(math.NaN())
		v.SetSpan(st.span(start))
		return v, true
	case matchLiteral(st.data, st.pos, "Infinity"):
		st.pos += 8
		v := value.NewReal(math.Inf(1))
		v.SetSpan(st.span(start))
		return v, true
	case matchLiteral(st.data, st.pos, "+Infinity"):
		st.pos += 9
		v := value.NewReal(math.Inf(1))
		v.SetSpan(st.span(start))
		return v, true
	case matchLiteral(st.data, st.pos, "-Infinity"):
		st.pos += 9
		v := value.NewReal(math.Inf(-1))
		v.SetSpan(st.span(start))
		return v, true
	default:
		return value.Null(), false
	}
}

func matchLiteral(data []byte, pos int, lit string) bool {
	if pos+len(lit) > len(data) {
		return false
	}
	return string(data[pos:pos+len(lit)]) == lit
}

func (st *parseState) span(start int) location.Span {
	return location.Span{Source: st.source, Start: start, Limit: st.pos}
}
