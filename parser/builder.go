package parser

import (
	"github.com/tliron/commonlog"

	"github.com/lentz-dev/jsonv/config"
)

// defaultStackLimit bounds array/object nesting depth when the
// stackLimit option is unset.
const defaultStackLimit = 1024

// options is the resolved, typed form of a config.Config's parser keys.
type options struct {
	collectComments              bool
	allowComments                bool
	allowTrailingCommas          bool
	strictRoot                   bool
	allowDroppedNullPlaceholders bool
	allowNumericKeys             bool
	allowSingleQuotes            bool
	stackLimit                   int
	failIfExtra                  bool
	rejectDupKeys                bool
	allowSpecialFloats           bool
	skipBom                      bool
}

// Builder configures and produces a *Parser from a config.Config.
type Builder struct {
	cfg    *config.Config
	Logger commonlog.Logger
}

// NewBuilder returns a Builder with an empty Config; every option takes
// its default until Configure is called.
func NewBuilder() *Builder {
	return &Builder{cfg: config.New()}
}

// Configure replaces the Builder's Config.
func (b *Builder) Configure(cfg *config.Config) *Builder {
	b.cfg = cfg
	return b
}

// Validate returns the names in the Builder's Config that the parser does
// not recognize.
func (b *Builder) Validate() []string {
	return b.cfg.ValidateParser()
}

// Build resolves the Builder's Config into a ready-to-use *Parser.
// collectComments defaults to true (comments are collected whenever
// allowComments also permits them); every other option defaults to the
// strict, standard-JSON behavior.
func (b *Builder) Build() *Parser {
	cfg := b.cfg
	if cfg == nil {
		cfg = config.New()
	}
	opt := options{
		collectComments:              cfg.Bool("collectComments", true),
		allowComments:                cfg.Bool("allowComments", false),
		allowTrailingCommas:          cfg.Bool("allowTrailingCommas", false),
		strictRoot:                   cfg.Bool("strictRoot", false),
		allowDroppedNullPlaceholders: cfg.Bool("allowDroppedNullPlaceholders", false),
		allowNumericKeys:             cfg.Bool("allowNumericKeys", false),
		allowSingleQuotes:            cfg.Bool("allowSingleQuotes", false),
		stackLimit:                   int(cfg.Int("stackLimit", defaultStackLimit)),
		failIfExtra:                  cfg.Bool("failIfExtra", false),
		rejectDupKeys:                cfg.Bool("rejectDupKeys", false),
		allowSpecialFloats:           cfg.Bool("allowSpecialFloats", false),
		skipBom:                      cfg.Bool("skipBom", true),
	}
	if opt.stackLimit <= 0 {
		opt.stackLimit = defaultStackLimit
	}
	return &Parser{opt: opt, logger: b.Logger}
}
