package errctx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorIfFalse(t *testing.T) {
	t.Parallel()

	r := ErrorIfFalse(false, "Expected file to exist!")
	require.True(t, r.IsFailure())
	assert.Equal(t, "Expected file to exist!", r.Err().Error())

	ok := ErrorIfFalse(true, "unused")
	require.True(t, ok.IsSuccess())
	assert.True(t, ok.Result())
}

func TestErrorIfTrue(t *testing.T) {
	t.Parallel()

	r := ErrorIfTrue(true, "Expected file to exist!")
	require.True(t, r.IsFailure())
	assert.Equal(t, "Expected file to exist!", r.Err().Error())

	ok := ErrorIfTrue(false, "unused")
	require.True(t, ok.IsSuccess())
	assert.False(t, ok.Result())
}

func TestErrorDyn_OnlyCalledOnFailure(t *testing.T) {
	t.Parallel()

	calls := 0
	msg := func() string {
		calls++
		return "Expected file 'test.file' to exist!"
	}

	assert.True(t, ErrorDynIfFalse(true, msg).IsSuccess())
	assert.True(t, ErrorDynIfTrue(false, msg).IsSuccess())
	assert.Equal(t, 0, calls)

	assert.Equal(t, "Expected file 'test.file' to exist!", ErrorDynIfFalse(false, msg).Err().Error())
	assert.Equal(t, "Expected file 'test.file' to exist!", ErrorDynIfTrue(true, msg).Err().Error())
	assert.Equal(t, 2, calls)
}
