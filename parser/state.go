package parser

import (
	"github.com/lentz-dev/jsonv/location"
	"github.com/lentz-dev/jsonv/perror"
)

// parseState is the mutable cursor a single Parse call threads through
// its descent functions: current byte position, nesting depth, resolved
// options, and the error collector errors are pushed into.
type parseState struct {
	data   []byte
	pos    int
	depth  int
	opt    options
	errs   *perror.Collector
	source location.SourceID
	fatal  bool // stackLimit exceeded: stop descending further
}

func (st *parseState) eof() bool { return st.pos >= len(st.data) }

func (st *parseState) peek() byte {
	if st.eof() {
		return 0
	}
	return st.data[st.pos]
}

func (st *parseState) peekAt(off int) byte {
	if st.pos+off >= len(st.data) {
		return 0
	}
	return st.data[st.pos+off]
}

func (st *parseState) advance() byte {
	b := st.data[st.pos]
	st.pos++
	return b
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\r' }

// skipBOMIfPresent advances past a leading UTF-8 BOM (EF BB BF) if present.
func (st *parseState) skipBOMIfPresent() {
	if len(st.data) >= 3 && st.data[0] == 0xEF && st.data[1] == 0xBB && st.data[2] == 0xBF {
		st.pos = 3
	}
}

// skipWhitespace advances past spaces, tabs, CR, and LF, but not comments.
func (st *parseState) skipWhitespace() {
	for !st.eof() {
		switch st.data[st.pos] {
		case ' ', '\t', '\r', '\n':
			st.pos++
		default:
			return
		}
	}
}

func (st *parseState) isLineComment() bool {
	return st.peek() == '/' && st.peekAt(1) == '/'
}

func (st *parseState) isBlockComment() bool {
	return st.peek() == '/' && st.peekAt(1) == '*'
}

// readLineComment consumes a "// ... " comment up to (not including) the
// terminating newline or EOF, returning its full text including the
// leading "//" so the writer can re-emit it verbatim.
func (st *parseState) readLineComment() string {
	start := st.pos
	st.pos += 2
	for !st.eof() && st.data[st.pos] != '\n' {
		st.pos++
	}
	return string(st.data[start:st.pos])
}

// readBlockComment consumes a "/* ... */" comment, returning its full text
// including the delimiters so the writer can re-emit it verbatim. ok is
// false if EOF was reached before the closing "*/".
func (st *parseState) readBlockComment() (text string, ok bool) {
	start := st.pos
	st.pos += 2
	for {
		if st.pos+1 >= len(st.data) {
			st.pos = len(st.data)
			return string(st.data[start:]), false
		}
		if st.data[st.pos] == '*' && st.data[st.pos+1] == '/' {
			st.pos += 2
			return string(st.data[start:st.pos]), true
		}
		st.pos++
	}
}

// collectComments repeatedly skips whitespace and, when allowComments is
// set, comments, joining every comment's text with "\n". It is used both
// to gather a value's "before" comment and to look for an "after" comment
// block following a value.
func (st *parseState) collectComments() string {
	var texts []string
	for {
		st.skipWhitespace()
		if !st.opt.allowComments {
			break
		}
		switch {
		case st.isLineComment():
			texts = append(texts, st.readLineComment())
		case st.isBlockComment():
			text, ok := st.readBlockComment()
			texts = append(texts, text)
			if !ok {
				st.errs.Add("Unterminated block comment", st.pos, st.pos)
				return join(texts)
			}
		default:
			return join(texts)
		}
	}
	return join(texts)
}

// scanSameLineComment consumes a single trailing comment that starts
// before the next newline, if allowComments is set and one is present.
// It reports whether it found one.
func (st *parseState) scanSameLineComment() (string, bool) {
	save := st.pos
	for !st.eof() && isSpace(st.data[st.pos]) {
		st.pos++
	}
	if !st.opt.allowComments {
		st.pos = save
		return "", false
	}
	switch {
	case st.isLineComment():
		return st.readLineComment(), true
	case st.isBlockComment():
		text, ok := st.readBlockComment()
		if !ok {
			st.errs.Add("Unterminated block comment", st.pos, st.pos)
		}
		return text, true
	default:
		st.pos = save
		return "", false
	}
}

func join(parts []string) string {
	if len(parts) == 0 {
		return ""
	}
	out := parts[0]
	for _, p := range parts[1:] {
		out += "\n" + p
	}
	return out
}
