package config

import "github.com/lentz-dev/jsonv/value"

type entry struct {
	name string
	val  value.Value
}

// Config is an ordered mapping from option name to a scalar Value.
type Config struct {
	entries []entry
	index   map[string]int
}

// New returns an empty Config.
func New() *Config {
	return &Config{index: make(map[string]int)}
}

// Set assigns name to val, overwriting it in place if name was already
// set (preserving its position) or appending a new entry otherwise.
func (c *Config) Set(name string, val value.Value) *Config {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	if i, ok := c.index[name]; ok {
		c.entries[i].val = val
		return c
	}
	c.entries = append(c.entries, entry{name: name, val: val})
	c.index[name] = len(c.entries) - 1
	return c
}

// SetBool is a convenience wrapper around Set for a Bool option.
func (c *Config) SetBool(name string, v bool) *Config { return c.Set(name, value.NewBool(v)) }

// SetInt is a convenience wrapper around Set for an Int option.
func (c *Config) SetInt(name string, v int64) *Config { return c.Set(name, value.NewInt(v)) }

// SetString is a convenience wrapper around Set for a String option.
func (c *Config) SetString(name, v string) *Config { return c.Set(name, value.NewString(v)) }

// Get returns name's value and whether it was set.
func (c *Config) Get(name string) (value.Value, bool) {
	if c == nil || c.index == nil {
		return value.Null(), false
	}
	i, ok := c.index[name]
	if !ok {
		return value.Null(), false
	}
	return c.entries[i].val, true
}

// Bool returns name's value coerced to bool, or def if unset.
func (c *Config) Bool(name string, def bool) bool {
	v, ok := c.Get(name)
	if !ok {
		return def
	}
	b, err := v.AsBool()
	if err != nil {
		return def
	}
	return b
}

// Int returns name's value coerced to int64, or def if unset.
func (c *Config) Int(name string, def int64) int64 {
	v, ok := c.Get(name)
	if !ok {
		return def
	}
	i, err := v.AsInt64()
	if err != nil {
		return def
	}
	return i
}

// String returns name's value coerced to string, or def if unset.
func (c *Config) String(name, def string) string {
	v, ok := c.Get(name)
	if !ok {
		return def
	}
	s, err := v.AsString()
	if err != nil {
		return def
	}
	return s
}

// Names returns the set option names in the order they were first set.
func (c *Config) Names() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.name
	}
	return out
}

// parserKeys and writerKeys list the option names a builder recognizes.
var parserKeys = map[string]bool{
	"collectComments":              true,
	"allowComments":                true,
	"allowTrailingCommas":          true,
	"strictRoot":                   true,
	"allowDroppedNullPlaceholders": true,
	"allowNumericKeys":             true,
	"allowSingleQuotes":            true,
	"stackLimit":                   true,
	"failIfExtra":                  true,
	"rejectDupKeys":                true,
	"allowSpecialFloats":           true,
	"skipBom":                      true,
}

var writerKeys = map[string]bool{
	"indentation":             true,
	"commentStyle":            true,
	"enableYAMLCompatibility": true,
	"dropNullPlaceholders":    true,
	"useSpecialFloats":        true,
	"emitUTF8":                true,
	"precision":               true,
	"precisionType":           true,
}

// ValidateParser returns the names set on c that the parser builder does
// not recognize, in the order they were set.
func (c *Config) ValidateParser() []string {
	return unknown(c, parserKeys)
}

// ValidateWriter returns the names set on c that the writer builder does
// not recognize, in the order they were set.
func (c *Config) ValidateWriter() []string {
	return unknown(c, writerKeys)
}

func unknown(c *Config, known map[string]bool) []string {
	var bad []string
	for _, e := range c.entries {
		if !known[e.name] {
			bad = append(bad, e.name)
		}
	}
	return bad
}

// StrictMode mutates cfg in place to the strict preset: allowComments,
// allowTrailingCommas, allowDroppedNullPlaceholders, allowNumericKeys, and
// allowSingleQuotes off; strictRoot, failIfExtra, rejectDupKeys, and
// allowSpecialFloats on.
func StrictMode(cfg *Config) {
	cfg.SetBool("allowComments", false)
	cfg.SetBool("allowTrailingCommas", false)
	cfg.SetBool("strictRoot", true)
	cfg.SetBool("allowDroppedNullPlaceholders", false)
	cfg.SetBool("allowNumericKeys", false)
	cfg.SetBool("allowSingleQuotes", false)
	cfg.SetBool("failIfExtra", true)
	cfg.SetBool("rejectDupKeys", true)
	cfg.SetBool("allowSpecialFloats", true)
}
