package parser

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/lentz-dev/jsonv/value"
)

// parseQuotedString parses a "..." string, or a '...' string when quote is
// '\'' and allowSingleQuotes permits it. The returned Value's span covers
// both delimiters.
func (st *parseState) parseQuotedString(quote byte) (value.Value, bool) {
	start := st.pos
	st.pos++ // opening quote
	var buf []byte
	for {
		if st.eof() {
			st.errs.Add("Unterminated string", start, st.pos)
			v := value.NewString(string(buf))
			v.SetSpan(st.span(start))
			return v, false
		}
		c := st.data[st.pos]
		switch {
		case c == quote:
			st.pos++
			v := value.NewString(string(buf))
			v.SetSpan(st.span(start))
			return v, true
		case c == '\\':
			decoded, ok := st.decodeEscape()
			if !ok {
				detail := st.pos
				st.skipToClosingQuote(quote)
				st.errs.AddDetail("Bad escape sequence in string", start, st.pos, detail)
				v := value.NewString(string(buf))
				v.SetSpan(st.span(start))
				return v, false
			}
			buf = append(buf, decoded...)
		case c == '\n':
			st.errs.Add("Bad control character in string.", st.pos, st.pos+1)
			v := value.NewString(string(buf))
			v.SetSpan(st.span(start))
			return v, false
		default:
			buf = append(buf, c)
			st.pos++
		}
	}
}

// decodeEscape consumes a backslash escape sequence (the caller has
// already confirmed data[pos] == '\\') and returns its decoded UTF-8
// bytes. ok is false on an unrecognized escape or a malformed \u sequence.
func (st *parseState) decodeEscape() ([]byte, bool) {
	st.pos++ // backslash
	if st.eof() {
		return nil, false
	}
	c := st.data[st.pos]
	st.pos++
	switch c {
	case '"':
		return []byte{'"'}, true
	case '\\':
		return []byte{'\\'}, true
	case '/':
		return []byte{'/'}, true
	case 'b':
		return []byte{'\b'}, true
	case 'f':
		return []byte{'\f'}, true
	case 'n':
		return []byte{'\n'}, true
	case 'r':
		return []byte{'\r'}, true
	case 't':
		return []byte{'\t'}, true
	case 'u':
		r, ok := st.readHex4()
		if !ok {
			return nil, false
		}
		if utf16.IsSurrogate(rune(r)) {
			if !matchLiteral(st.data, st.pos, `\u`) {
				// A lone high surrogate with no following \u escape: emit
				// the Unicode replacement character rather than fail the
				// whole string.
				return encodeRune(utf8.RuneError), true
			}
			st.pos += 2
			r2, ok := st.readHex4()
			if !ok {
				return nil, false
			}
			combined := utf16.DecodeRune(rune(r), rune(r2))
			if combined == utf8.RuneError {
				return nil, false
			}
			return encodeRune(combined), true
		}
		return encodeRune(rune(r)), true
	default:
		return nil, false
	}
}

// skipToClosingQuote advances past the remainder of a string literal after
// a decode failure, so the surrounding error span covers the whole
// malformed lexeme instead of stopping mid-escape. It does not interpret
// further escapes beyond skipping the character immediately after a
// backslash, just enough to avoid mistaking an escaped quote for the
// closing delimiter.
func (st *parseState) skipToClosingQuote(quote byte) {
	for !st.eof() {
		c := st.data[st.pos]
		switch {
		case c == quote:
			st.pos++
			return
		case c == '\\':
			st.pos += 2
		case c == '\n':
			return
		default:
			st.pos++
		}
	}
}

func encodeRune(r rune) []byte {
	b := make([]byte, utf8.RuneLen(r))
	utf8.EncodeRune(b, r)
	return b
}

func (st *parseState) readHex4() (uint16, bool) {
	if st.pos+4 > len(st.data) {
		st.pos = len(st.data)
		return 0, false
	}
	var v uint16
	for i := 0; i < 4; i++ {
		d, ok := hexDigit(st.data[st.pos])
		if !ok {
			return 0, false
		}
		v = v<<4 | uint16(d)
		st.pos++
	}
	return v, true
}

func hexDigit(c byte) (uint16, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint16(c - '0'), true
	case c >= 'a' && c <= 'f':
		return uint16(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return uint16(c-'A') + 10, true
	default:
		return 0, false
	}
}
