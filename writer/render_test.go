package writer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lentz-dev/jsonv/config"
	"github.com/lentz-dev/jsonv/value"
	"github.com/lentz-dev/jsonv/writer"
)

func obj(pairs ...any) value.Value {
	v := value.NewObject()
	for i := 0; i < len(pairs); i += 2 {
		_ = v.Set(pairs[i].(string), pairs[i+1].(value.Value))
	}
	return v
}

func arr(items ...value.Value) value.Value {
	v := value.NewArray()
	for _, it := range items {
		_ = v.Append(it)
	}
	return v
}

func TestFast_CompactNoWhitespace(t *testing.T) {
	v := obj("a", value.NewInt(1), "b", arr(value.NewInt(1), value.NewInt(2)))
	got := writer.Fast{SuppressTrailingNewline: true}.Write(v)
	assert.Equal(t, `{"a":1,"b":[1,2]}`, got)
}

func TestFast_YAMLCompat_AddsSpaceAfterColon(t *testing.T) {
	v := obj("a", value.NewInt(1))
	got := writer.Fast{SuppressTrailingNewline: true, YAMLCompat: true}.Write(v)
	assert.Equal(t, `{"a": 1}`, got)
}

func TestFast_DropNullPlaceholders(t *testing.T) {
	v := obj("a", value.Null(), "b", value.NewInt(2))
	got := writer.Fast{SuppressTrailingNewline: true, DropNullPlaceholders: true}.Write(v)
	assert.Equal(t, `{"b":2}`, got)
}

func TestFast_DropNullPlaceholders_NullRootRendersEmpty(t *testing.T) {
	got := writer.Fast{SuppressTrailingNewline: true, DropNullPlaceholders: true}.Write(value.Null())
	assert.Equal(t, "", got)
}

func TestFast_TrailingNewlineByDefault(t *testing.T) {
	got := writer.Fast{}.Write(value.NewInt(1))
	assert.Equal(t, "1\n", got)
}

func TestStyledString_ThreeSpaceIndentAndTrailingNewline(t *testing.T) {
	v := obj("a", value.NewInt(1))
	got := writer.StyledString{}.Write(v)
	assert.Equal(t, "{\n   \"a\" : 1\n}\n", got)
}

func TestStyledStream_DefaultsToTabIndentNoTrailingNewline(t *testing.T) {
	v := obj("a", value.NewInt(1))
	got := writer.StyledStream{}.Write(v)
	assert.Equal(t, "{\n\t\"a\" : 1\n}", got)
}

func TestStyledStream_CustomIndent(t *testing.T) {
	v := obj("a", value.NewInt(1))
	got := writer.StyledStream{Indent: "  "}.Write(v)
	assert.Equal(t, "{\n  \"a\" : 1\n}", got)
}

func TestStyledArray_InlinesWhenShort(t *testing.T) {
	items := make([]value.Value, 5)
	for i := range items {
		items[i] = value.NewInt(int64(i))
	}
	got := writer.StyledString{}.Write(arr(items...))
	assert.Equal(t, "[ 0, 1, 2, 3, 4 ]\n", got)
}

func TestStyledArray_BreaksWhenOverMaxElements(t *testing.T) {
	items := make([]value.Value, 21)
	for i := range items {
		items[i] = value.NewInt(int64(i))
	}
	got := writer.StyledString{}.Write(arr(items...))
	assert.True(t, strings.Contains(got, "[\n"), "expected multiline array, got %q", got)
	assert.Equal(t, 21, strings.Count(got, ",")+1)
}

func TestStyledArray_BreaksWhenContainerElement(t *testing.T) {
	got := writer.StyledString{}.Write(arr(value.NewInt(1), obj("x", value.NewInt(1))))
	assert.True(t, strings.Contains(got, "[\n"))
}

func TestSpecialFloats_DefaultRendersZero(t *testing.T) {
	cfg := config.New()
	built := writer.NewBuilder().Configure(cfg).Build()
	got := built.Write(value.NewReal(mustNaN()))
	assert.Equal(t, "0\n", got)
}

func TestSpecialFloats_EnabledRendersTokens(t *testing.T) {
	cfg := config.New()
	cfg.SetBool("useSpecialFloats", true)
	built := writer.NewBuilder().Configure(cfg).Build()
	assert.Equal(t, "NaN\n", built.Write(value.NewReal(mustNaN())))
}

func mustNaN() float64 {
	var zero float64
	return zero / zero
}

func TestBuilder_PrecisionDecimalMode(t *testing.T) {
	cfg := config.New()
	cfg.SetInt("precision", 2)
	cfg.SetString("precisionType", "decimal")
	built := writer.NewBuilder().Configure(cfg).Build()
	got := built.Write(value.NewReal(1.0 / 3.0))
	assert.Equal(t, "0.33\n", got)
}

func TestBuilder_IndentationSelectsStyledMode(t *testing.T) {
	cfg := config.New()
	cfg.SetString("indentation", "  ")
	built := writer.NewBuilder().Configure(cfg).Build()
	got := built.Write(obj("a", value.NewInt(1)))
	assert.Equal(t, "{\n  \"a\" : 1\n}\n", got)
}

func TestBuilder_NoIndentationStaysFastMode(t *testing.T) {
	built := writer.NewBuilder().Configure(config.New()).Build()
	got := built.Write(obj("a", value.NewInt(1)))
	assert.Equal(t, "{\"a\":1}\n", got)
}

func TestBuilder_Validate_ReportsUnknownKeys(t *testing.T) {
	cfg := config.New()
	cfg.SetBool("bogus", true)
	b := writer.NewBuilder().Configure(cfg)
	assert.Equal(t, []string{"bogus"}, b.Validate())
}

func TestBuilder_CommentStyleAllEmitsComments(t *testing.T) {
	cfg := config.New()
	cfg.SetString("commentStyle", "All")
	cfg.SetString("indentation", "  ")
	built := writer.NewBuilder().Configure(cfg).Build()
	v := value.NewInt(1)
	v.SetComment("// note", value.CommentBefore)
	assert.Equal(t, "// note\n1\n", built.Write(v))
}

func TestBuilder_CommentStyleNoneByDefault(t *testing.T) {
	built := writer.NewBuilder().Configure(config.New()).Build()
	v := value.NewInt(1)
	v.SetComment("// note", value.CommentBefore)
	assert.Equal(t, "1\n", built.Write(v))
}

func TestCommentRoundTrip_PreservesDelimiters(t *testing.T) {
	v := value.Null()
	v.SetComment("// before", value.CommentBefore)
	got := writer.StyledString{}.Write(v)
	require.Contains(t, got, "// before")
	assert.Equal(t, "// before\nnull\n", got)
}
