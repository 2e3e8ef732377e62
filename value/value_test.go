package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lentz-dev/jsonv/value"
)

func TestNull_IsZeroValue(t *testing.T) {
	var v value.Value
	assert.Equal(t, value.NullKind, v.Kind())
	assert.Equal(t, value.Null(), v)
}

func TestConstructorsSetKind(t *testing.T) {
	assert.Equal(t, value.BoolKind, value.NewBool(true).Kind())
	assert.Equal(t, value.IntKind, value.NewInt(-4).Kind())
	assert.Equal(t, value.UIntKind, value.NewUInt(4).Kind())
	assert.Equal(t, value.RealKind, value.NewReal(1.5).Kind())
	assert.Equal(t, value.StringKind, value.NewString("x").Kind())
	assert.Equal(t, value.ArrayKind, value.NewArray().Kind())
	assert.Equal(t, value.ObjectKind, value.NewObject().Kind())
}

func TestStaticString(t *testing.T) {
	s := value.NewStaticString("literal")
	assert.True(t, s.IsStatic())
	assert.False(t, value.NewString("literal").IsStatic())
}

func TestComment_PlacementsIndependent(t *testing.T) {
	v := value.NewInt(1)
	v.SetComment("// before", value.CommentBefore)
	v.SetComment("// after same line", value.CommentAfterOnSameLine)
	assert.Equal(t, "// before", v.Comment(value.CommentBefore))
	assert.Equal(t, "// after same line", v.Comment(value.CommentAfterOnSameLine))
	assert.Equal(t, "", v.Comment(value.CommentAfter))
}

func TestClone_DeepCopiesArrayAndComments(t *testing.T) {
	orig := value.NewArray()
	require.NoError(t, orig.Append(value.NewInt(1)))
	child := orig.Items()[0]
	child.SetComment("// hi", value.CommentBefore)
	require.NoError(t, orig.SetIndex(0, child))

	clone := orig.Clone()
	require.NoError(t, clone.SetIndex(0, value.NewInt(99)))

	origFirst, err := orig.Index(0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), must(origFirst.AsInt64()))

	cloneFirst, err := clone.Index(0)
	require.NoError(t, err)
	assert.Equal(t, int64(99), must(cloneFirst.AsInt64()))
}

func must(i int64, err error) int64 {
	if err != nil {
		panic(err)
	}
	return i
}

func TestArray_AppendResizeIndex(t *testing.T) {
	v := value.NewArray()
	require.NoError(t, v.Append(value.NewInt(1)))
	require.NoError(t, v.Append(value.NewInt(2)))
	assert.Equal(t, 2, v.Size())

	got, err := v.Index(5)
	require.NoError(t, err)
	assert.Equal(t, value.Null(), got)

	require.NoError(t, v.Resize(1))
	assert.Equal(t, 1, v.Size())

	require.NoError(t, v.Resize(3))
	assert.Equal(t, 3, v.Size())
	third, err := v.Index(2)
	require.NoError(t, err)
	assert.Equal(t, value.NullKind, third.Kind())
}

func TestArray_InsertAndRemove(t *testing.T) {
	v := value.NewArray()
	require.NoError(t, v.Append(value.NewInt(1)))
	require.NoError(t, v.Append(value.NewInt(3)))

	ok, err := v.Insert(1, value.NewInt(2))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []int64{1, 2, 3}, intItems(t, v))

	var removed value.Value
	ok, err = v.RemoveIndex(1, &removed)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(2), must(removed.AsInt64()))
	assert.Equal(t, []int64{1, 3}, intItems(t, v))
}

func intItems(t *testing.T, v value.Value) []int64 {
	t.Helper()
	var out []int64
	for _, e := range v.Items() {
		i, err := e.AsInt64()
		require.NoError(t, err)
		out = append(out, i)
	}
	return out
}

func TestObject_SetGetFindRemove(t *testing.T) {
	v := value.NewObject()
	require.NoError(t, v.Set("a", value.NewInt(1)))
	require.NoError(t, v.Set("b", value.NewInt(2)))

	got, err := v.Get("a")
	require.NoError(t, err)
	assert.Equal(t, int64(1), must(got.AsInt64()))

	assert.True(t, v.IsMember("a"))
	assert.False(t, v.IsMember("z"))
	assert.Equal(t, []string{"a", "b"}, v.GetMemberNames())

	var removed value.Value
	ok, err := v.RemoveMember("a", &removed)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"b"}, v.GetMemberNames())
}

func TestObject_SetOnNullBecomesObject(t *testing.T) {
	var v value.Value
	require.NoError(t, v.Set("k", value.NewBool(true)))
	assert.Equal(t, value.ObjectKind, v.Kind())
}

func TestDemand_CreatesMemberOnMiss(t *testing.T) {
	v := value.NewObject()
	p := v.Demand("x")
	assert.Equal(t, value.NullKind, p.Kind())
	assert.True(t, v.IsMember("x"))
}

func TestQuery_Predicates(t *testing.T) {
	assert.True(t, value.Null().IsNull())
	assert.True(t, value.NewBool(true).IsBool())
	assert.True(t, value.NewString("s").IsString())
	assert.True(t, value.NewArray().IsArray())
	assert.True(t, value.NewObject().IsObject())
	assert.True(t, value.NewInt(1).IsNumeric())
	assert.True(t, value.NewReal(1.5).IsDouble())
}

func TestQuery_IntegralRanges(t *testing.T) {
	assert.True(t, value.NewReal(3.0).IsIntegral())
	assert.False(t, value.NewReal(3.5).IsIntegral())
	assert.True(t, value.NewInt(42).IsInt())
	assert.True(t, value.NewUInt(42).IsInt())
	assert.False(t, value.NewUInt(1<<40).IsInt())
}

func TestConvert_AsBool(t *testing.T) {
	b, err := value.Null().AsBool()
	require.NoError(t, err)
	assert.False(t, b)

	b, err = value.NewBool(true).AsBool()
	require.NoError(t, err)
	assert.True(t, b)

	_, err = value.NewInt(1).AsBool()
	assert.ErrorIs(t, err, value.ErrType)
}

func TestConvert_AsIntRangeError(t *testing.T) {
	_, err := value.NewInt(1 << 40).AsInt()
	assert.ErrorIs(t, err, value.ErrRange)
}

func TestConvert_AsStringFormatsNumbers(t *testing.T) {
	s, err := value.NewInt(42).AsString()
	require.NoError(t, err)
	assert.Equal(t, "42", s)

	s, err = value.NewReal(2.0).AsString()
	require.NoError(t, err)
	assert.Equal(t, "2.0", s)
}

func TestIsConvertibleTo(t *testing.T) {
	assert.True(t, value.Null().IsConvertibleTo(value.StringKind))
	assert.True(t, value.NewInt(1).IsConvertibleTo(value.RealKind))
	assert.False(t, value.NewArray().IsConvertibleTo(value.StringKind))
}

func TestIsConvertibleTo_RealBoundaryIsRangeOnly(t *testing.T) {
	// A fraction above int32 max: fits UInt's 32-bit range by value alone,
	// even though it is not integral, but not Int's.
	v := value.NewReal(2147483647.5)
	assert.True(t, v.IsConvertibleTo(value.UIntKind))
	assert.False(t, v.IsConvertibleTo(value.IntKind))

	// A fraction below int32 min: out of range for both.
	v = value.NewReal(-2147483648.5)
	assert.False(t, v.IsConvertibleTo(value.IntKind))
	assert.False(t, v.IsConvertibleTo(value.UIntKind))
}
