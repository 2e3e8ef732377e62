package parser

import (
	"io"

	"github.com/lentz-dev/jsonv/location"
	"github.com/lentz-dev/jsonv/perror"
	"github.com/lentz-dev/jsonv/value"
)

// ParseStream buffers r fully into memory, then parses it exactly as
// Parse would. The core parser has no notion of partial input; this is
// the thin stream-to-byte-range adapter the library's concurrency model
// calls for. Spans are recorded against a freshly minted synthetic
// location.SourceID, since r carries no name of its own.
func (p *Parser) ParseStream(r io.Reader, out *value.Value, errs *perror.Collector) (bool, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return false, err
	}
	return p.ParseNamed(data, location.NewSyntheticSource(), out, errs), nil
}
