package util

import (
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewULID(t *testing.T) {
	a := NewULID()
	b := NewULID()

	assert.Len(t, a, 26)
	assert.NotEqual(t, a, b)
	assert.Less(t, a, b, "ids from one process sort by creation")

	_, err := ulid.ParseStrict(a)
	require.NoError(t, err)
}

func TestNullInt64Helpers(t *testing.T) {
	assert.False(t, Int64PtrToNullInt64(nil).Valid)

	n := Int64PtrToNullInt64(Int64Ptr(7))
	assert.True(t, n.Valid)
	assert.Equal(t, int64(7), n.Int64)

	assert.Nil(t, NullInt64ToInt64Ptr(Int64PtrToNullInt64(nil)))
	assert.Equal(t, int64(7), *NullInt64ToInt64Ptr(n))
}
