package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGetSetRemove(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, ok, err := m.Get(ctx, "users")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, m.Set(ctx, "users", `[{"id":1}]`))

	v, ok, err := m.Get(ctx, "users")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `[{"id":1}]`, v)

	require.NoError(t, m.Remove(ctx, "users"))

	_, ok, err = m.Get(ctx, "users")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestKeysAreVersionPrefixed(t *testing.T) {
	assert.Equal(t, "gallery:v1:users", Prefix("users"))
}

func TestGetJSONMissingKeyIsEmptyCollection(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	out, err := GetJSON[[]int](ctx, m, "user_cart")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestGetJSONMalformedDegradesToEmpty(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, m.Set(ctx, "user_cart", "{not json"))

	out, err := GetJSON[[]int](ctx, m, "user_cart")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSetJSONRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	type entry struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}

	in := []entry{{ID: 1, Name: "one"}, {ID: 2, Name: "two"}}
	require.NoError(t, SetJSON(ctx, m, "entries", in))

	out, err := GetJSON[[]entry](ctx, m, "entries")
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
