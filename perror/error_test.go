package perror_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lentz-dev/jsonv/location"
	"github.com/lentz-dev/jsonv/perror"
	"github.com/lentz-dev/jsonv/value"
)

func spanAt(start, limit int) location.Span {
	return location.Span{Start: start, Limit: limit}
}

func TestCollector_OKWhenEmpty(t *testing.T) {
	c := perror.NewCollector()
	assert.True(t, c.OK())
	assert.Empty(t, c.Errors())
}

func TestCollector_AddAccumulatesInOrder(t *testing.T) {
	c := perror.NewCollector()
	c.Add("first", 0, 1)
	c.Add("second", 2, 3)

	require.False(t, c.OK())
	require.Len(t, c.Errors(), 2)
	assert.Equal(t, "first", c.Errors()[0].Message)
	assert.Equal(t, "second", c.Errors()[1].Message)
}

func TestError_Format(t *testing.T) {
	data := []byte("{ \"property\" : \"v\\alue\" }")
	e := perror.Error{Message: "Bad escape sequence in string", Start: 15, Limit: 23}
	got := e.Format(data)
	assert.Equal(t, "* Line 1, Column 16\n  Bad escape sequence in string\n", got)
}

func TestError_FormatWithDetail(t *testing.T) {
	data := []byte("{ \"property\" : \"v\\alue\" }")
	e := perror.Error{
		Message:  "Bad escape sequence in string",
		Start:    15,
		Limit:    23,
		HasExtra: true,
		Extra:    19,
	}
	got := e.Format(data)
	assert.Contains(t, got, "* Line 1, Column 16\n")
	assert.Contains(t, got, "See Line 1, Column 20 for detail.\n")
}

func TestCollector_Push_WithAndWithoutRelated(t *testing.T) {
	c := perror.NewCollector()
	var v value.Value
	v.SetSpan(spanAt(5, 9))
	c.Push(v, "duplicate member", nil)

	require.Len(t, c.Errors(), 1)
	assert.Equal(t, 5, c.Errors()[0].Start)
	assert.False(t, c.Errors()[0].HasExtra)

	var related value.Value
	related.SetSpan(spanAt(1, 2))
	c.Push(v, "duplicate member", &related)
	require.Len(t, c.Errors(), 2)
	assert.True(t, c.Errors()[1].HasExtra)
	assert.Equal(t, 1, c.Errors()[1].Extra)
}
