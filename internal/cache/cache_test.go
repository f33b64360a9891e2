package cache_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mdsl-lang/mdslc/internal/cache"
)

func TestPutGetRoundTrip(t *testing.T) {
	store, err := cache.Open("")
	require.NoError(t, err)
	defer store.Close()

	_, ok, err := store.Get("complexity", "missing")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, store.Put("complexity", "abc", "O(N^3)", 1700000000))
	value, ok, err := store.Get("complexity", "abc")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "O(N^3)", value)

	require.NoError(t, store.Put("complexity", "abc", "O(N^2)", 1700000001))
	value, ok, err = store.Get("complexity", "abc")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "O(N^2)", value)
}

func TestKeyIsDeterministicAndDistinguishesQualifiers(t *testing.T) {
	k1 := cache.Key("name x\nq = 1.0", "native")
	k2 := cache.Key("name x\nq = 1.0", "native")
	k3 := cache.Key("name x\nq = 1.0", "tex")
	require.Equal(t, k1, k2)
	require.NotEqual(t, k1, k3)
}
