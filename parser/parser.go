package parser

import (
	"github.com/tliron/commonlog"

	"github.com/lentz-dev/jsonv/location"
	"github.com/lentz-dev/jsonv/perror"
	"github.com/lentz-dev/jsonv/value"
)

// Parser is a resolved, reusable parser built from a Builder.
type Parser struct {
	opt    options
	logger commonlog.Logger
}

// Parse consumes data as a JSON document, writing the resulting tree into
// out and every collected error into errs, in the order they were
// discovered. It returns true iff no errors were collected; on false, out
// still holds whatever partial tree was built at the point of failure.
func (p *Parser) Parse(data []byte, out *value.Value, errs *perror.Collector) bool {
	return p.ParseNamed(data, location.SourceID{}, out, errs)
}

// ParseNamed is Parse, but spans in out and errs are recorded against the
// given source identity.
func (p *Parser) ParseNamed(data []byte, source location.SourceID, out *value.Value, errs *perror.Collector) bool {
	st := &parseState{data: data, opt: p.opt, errs: errs, source: source}
	if st.opt.skipBom {
		st.skipBOMIfPresent()
	}

	before := st.collectComments()
	if st.eof() {
		errs.Add("A valid input must contain at least one value/array/object.", st.pos, st.pos)
		*out = value.Null()
		return false
	}

	root, ok := st.parseValue()
	if !ok {
		*out = root
		return false
	}
	if before != "" {
		root.SetComment(before, value.CommentBefore)
	}

	if st.opt.strictRoot {
		switch root.Kind() {
		case value.ArrayKind, value.ObjectKind:
			// fine, continue below
		default:
			errs.Add("A valid input must be either an array or an object value.", 0, st.pos)
			*out = root
			return false
		}
	}

	if after, ok := st.scanSameLineComment(); ok {
		root.SetComment(after, value.CommentAfterOnSameLine)
	}
	if trailing := st.collectComments(); trailing != "" {
		root.SetComment(trailing, value.CommentAfter)
	}

	if st.opt.failIfExtra && !st.eof() {
		errs.Add("Extra non-whitespace after JSON value.", st.pos, st.pos+1)
		*out = root
		return false
	}

	*out = root
	if p.logger != nil && !errs.OK() {
		p.logger.Debugf("parse completed with %d error(s)", len(errs.Errors()))
	}
	return errs.OK()
}
