package parser

import (
	"strconv"

	"github.com/lentz-dev/jsonv/value"
)

// parseNumber scans a JSON number literal and classifies it as Int if it
// fits signed 64-bit with no fractional/exponent part, else UInt if
// non-negative and it fits unsigned 64-bit with no fractional/exponent
// part, else Real.
func (st *parseState) parseNumber() (value.Value, bool) {
	start := st.pos
	negative := false
	if st.peek() == '-' {
		negative = true
		st.pos++
	}
	digitsStart := st.pos
	for !st.eof() && isDigit(st.peek()) {
		st.pos++
	}
	if st.pos == digitsStart {
		st.errs.Add("Syntax error: value, object or array expected.", start, st.pos+1)
		return value.Null(), false
	}
	isFloat := false
	if st.peek() == '.' {
		isFloat = true
		st.pos++
		fracStart := st.pos
		for !st.eof() && isDigit(st.peek()) {
			st.pos++
		}
		if st.pos == fracStart {
			st.errs.Add("Syntax error: digits expected after decimal point.", start, st.pos+1)
			return value.Null(), false
		}
	}
	if c := st.peek(); c == 'e' || c == 'E' {
		isFloat = true
		st.pos++
		if c := st.peek(); c == '+' || c == '-' {
			st.pos++
		}
		expStart := st.pos
		for !st.eof() && isDigit(st.peek()) {
			st.pos++
		}
		if st.pos == expStart {
			st.errs.Add("Syntax error: digits expected in exponent.", start, st.pos+1)
			return value.Null(), false
		}
	}

	lexeme := string(st.data[start:st.pos])
	v, ok := classifyNumber(lexeme, isFloat, negative)
	if !ok {
		st.errs.Add("Syntax error: invalid number.", start, st.pos)
		return value.Null(), false
	}
	v.SetSpan(st.span(start))
	return v, true
}

// classifyNumber picks the payload kind for a scanned number lexeme: Int
// if it fits signed 64-bit with no fractional/exponent part, else UInt if
// non-negative and it fits unsigned 64-bit with no fractional/exponent
// part, else Real.
func classifyNumber(lexeme string, isFloat, negative bool) (value.Value, bool) {
	if !isFloat {
		if !negative {
			if u, err := strconv.ParseUint(lexeme, 10, 64); err == nil {
				if u <= maxInt64AsUint {
					return value.NewInt(int64(u)), true
				}
				return value.NewUInt(u), true
			}
		} else if i, err := strconv.ParseInt(lexeme, 10, 64); err == nil {
			return value.NewInt(i), true
		}
	}
	f, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		return value.Null(), false
	}
	return value.NewReal(f), true
}

const maxInt64AsUint = 1<<63 - 1

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
