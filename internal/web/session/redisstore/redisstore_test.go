package redisstore

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/designspec/designspec-web/internal/config"
)

func setup(t *testing.T) (*Storage, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	s, err := New(config.Redis{Addr: mr.Addr(), KeyPrefix: "sess:"})
	require.NoError(t, err)

	t.Cleanup(func() { _ = s.Close() })

	return s, mr
}

func TestSetGetDelete(t *testing.T) {
	s, mr := setup(t)

	require.NoError(t, s.Set("abc", []byte(`{"x":1}`), time.Minute))
	assert.True(t, mr.Exists("sess:abc"))

	got, err := s.Get("abc")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"x":1}`), got)

	require.NoError(t, s.Delete("abc"))

	got, err = s.Get("abc")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestExpiry(t *testing.T) {
	s, mr := setup(t)

	require.NoError(t, s.Set("short", []byte("v"), time.Second))
	mr.FastForward(2 * time.Second)

	got, err := s.Get("short")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestIgnoredInput(t *testing.T) {
	s, mr := setup(t)

	require.NoError(t, s.Set("", []byte("v"), 0))
	require.NoError(t, s.Set("k", nil, 0))
	assert.Empty(t, mr.Keys())

	got, err := s.Get("")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestReset(t *testing.T) {
	s, mr := setup(t)

	require.NoError(t, s.Set("a", []byte("1"), 0))
	require.NoError(t, s.Set("b", []byte("2"), 0))
	require.NoError(t, mr.Set("other", "keep"))

	require.NoError(t, s.Reset())
	assert.Equal(t, []string{"other"}, mr.Keys())
}

func TestNewUnreachable(t *testing.T) {
	_, err := New(config.Redis{Addr: "127.0.0.1:1"})
	assert.Error(t, err)
}
