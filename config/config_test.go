package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lentz-dev/jsonv/config"
)

func TestConfig_SetGetDefaults(t *testing.T) {
	c := config.New()
	assert.False(t, c.Bool("allowComments", false))
	c.SetBool("allowComments", true)
	assert.True(t, c.Bool("allowComments", false))

	assert.Equal(t, int64(7), c.Int("stackLimit", 7))
	c.SetInt("stackLimit", 64)
	assert.Equal(t, int64(64), c.Int("stackLimit", 7))

	assert.Equal(t, "tab", c.String("indentation", "tab"))
	c.SetString("indentation", "\t")
	assert.Equal(t, "\t", c.String("indentation", "tab"))
}

func TestConfig_SetPreservesInsertionOrder(t *testing.T) {
	c := config.New()
	c.SetBool("b", true)
	c.SetBool("a", true)
	c.SetBool("b", false) // re-set: position does not move
	assert.Equal(t, []string{"b", "a"}, c.Names())
}

func TestConfig_ValidateParserReportsUnknownKeys(t *testing.T) {
	c := config.New()
	c.SetBool("allowComments", true)
	c.SetBool("bogusOption", true)
	assert.Equal(t, []string{"bogusOption"}, c.ValidateParser())
}

func TestConfig_ValidateWriterReportsUnknownKeys(t *testing.T) {
	c := config.New()
	c.SetString("indentation", "  ")
	c.SetBool("notARealKey", true)
	assert.Equal(t, []string{"notARealKey"}, c.ValidateWriter())
}

func TestStrictMode_AppliesPreset(t *testing.T) {
	c := config.New()
	config.StrictMode(c)

	assert.False(t, c.Bool("allowComments", true))
	assert.False(t, c.Bool("allowTrailingCommas", true))
	assert.True(t, c.Bool("strictRoot", false))
	assert.False(t, c.Bool("allowDroppedNullPlaceholders", true))
	assert.False(t, c.Bool("allowNumericKeys", true))
	assert.False(t, c.Bool("allowSingleQuotes", true))
	assert.True(t, c.Bool("failIfExtra", false))
	assert.True(t, c.Bool("rejectDupKeys", false))
	assert.True(t, c.Bool("allowSpecialFloats", false))
}
