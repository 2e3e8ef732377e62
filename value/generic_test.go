package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lentz-dev/jsonv/value"
)

func TestAs_DispatchesToExactWidth(t *testing.T) {
	i64, err := value.As[int64](value.NewInt(42))
	require.NoError(t, err)
	assert.Equal(t, int64(42), i64)

	u64, err := value.As[uint64](value.NewUInt(42))
	require.NoError(t, err)
	assert.Equal(t, uint64(42), u64)

	s, err := value.As[string](value.NewString("hi"))
	require.NoError(t, err)
	assert.Equal(t, "hi", s)
}

func TestAs_Int64AndUint64NeverAlias(t *testing.T) {
	// A UInt payload that does not fit int64 must fail As[int64], and an
	// Int payload that is negative must fail As[uint64] -- proof the two
	// accessors are never silently interchanged.
	huge := value.NewUInt(1 << 63)
	_, err := value.As[int64](huge)
	assert.ErrorIs(t, err, value.ErrRange)

	neg := value.NewInt(-1)
	_, err = value.As[uint64](neg)
	assert.ErrorIs(t, err, value.ErrRange)
}

func TestIs_MatchesKind(t *testing.T) {
	assert.True(t, value.Is[int64](value.NewInt(1)))
	assert.False(t, value.Is[uint64](value.NewInt(-1)))
	assert.True(t, value.Is[string](value.NewString("x")))
	assert.False(t, value.Is[bool](value.NewInt(1)))
}
