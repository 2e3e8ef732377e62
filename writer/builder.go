package writer

import (
	"github.com/lentz-dev/jsonv/config"
	"github.com/lentz-dev/jsonv/value"
	"github.com/lentz-dev/jsonv/writer/internal/numfmt"
)

// Builder resolves a config.Config into a ready-to-use writer, mirroring
// the parser package's Builder on the opposite side of the pipeline: one
// ordered Config drives every writer knob instead of a struct literal.
type Builder struct {
	cfg *config.Config
}

// NewBuilder returns a Builder with no Config attached; Build resolves
// every option to its default.
func NewBuilder() *Builder { return &Builder{} }

// Configure attaches cfg to the Builder.
func (b *Builder) Configure(cfg *config.Config) *Builder {
	b.cfg = cfg
	return b
}

// Validate returns the names in the Builder's Config that the writer does
// not recognize.
func (b *Builder) Validate() []string {
	if b.cfg == nil {
		return nil
	}
	return b.cfg.ValidateWriter()
}

// Built is the writer Build returns: a fixed Options snapshot with a
// Write method, so callers do not need to know about Options at all.
type Built struct {
	opt Options
}

func (w Built) Write(v value.Value) string {
	s := Render(v, w.opt)
	if w.opt.Mode == StyledMode || !w.opt.SuppressTrailingNewline {
		s += "\n"
	}
	return s
}

// Build resolves the attached Config (or defaults, if none was attached)
// into a Built writer.
//
//	indentation              string, default "" (FastMode, no indent)
//	commentStyle             string, "None" (default) or "All"
//	enableYAMLCompatibility  bool,   default false
//	dropNullPlaceholders     bool,   default false
//	useSpecialFloats         bool,   default false
//	emitUTF8                 bool,   default true
//	precision                int,    default 0 (shortest round-trip)
//	precisionType            string, "significant" (default) or "decimal"
func (b *Builder) Build() Built {
	cfg := b.cfg
	if cfg == nil {
		cfg = config.New()
	}
	indent := cfg.String("indentation", "")
	mode := FastMode
	if indent != "" {
		mode = StyledMode
	}
	commentStyle := CommentStyleNone
	if cfg.String("commentStyle", "None") == "All" {
		commentStyle = CommentStyleAll
	}
	precisionType := numfmt.Significant
	if cfg.String("precisionType", "significant") == "decimal" {
		precisionType = numfmt.Decimal
	}
	return Built{opt: Options{
		Mode:                 mode,
		Indent:               indent,
		DropNullPlaceholders: cfg.Bool("dropNullPlaceholders", false),
		YAMLCompat:           cfg.Bool("enableYAMLCompatibility", false),
		CommentStyle:         commentStyle,
		UseSpecialFloats:     cfg.Bool("useSpecialFloats", false),
		EmitUTF8:             cfg.Bool("emitUTF8", true),
		Precision:            int(cfg.Int("precision", 0)),
		PrecisionType:        precisionType,
	}}
}
