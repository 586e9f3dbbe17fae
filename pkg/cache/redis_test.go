package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	r, err := NewRedis(mr.Addr(), "", 0, time.Minute)
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, r.Close()) })
	return r, mr
}

func TestNewRedis_BadAddress(t *testing.T) {
	_, err := NewRedis("127.0.0.1:1", "", 0, time.Minute)
	require.Error(t, err)
}

func TestRedis_PutGet(t *testing.T) {
	r, _ := setupRedis(t)
	ctx := context.Background()

	_, ok := r.Get(ctx, "fp1")
	assert.False(t, ok)

	r.Put(ctx, "fp1", "cached reply")
	got, ok := r.Get(ctx, "fp1")
	require.True(t, ok)
	assert.Equal(t, "cached reply", got)
}

func TestRedis_TTLExpiry(t *testing.T) {
	r, mr := setupRedis(t)
	ctx := context.Background()

	r.Put(ctx, "fp1", "reply")
	mr.FastForward(time.Minute + time.Second)

	_, ok := r.Get(ctx, "fp1")
	assert.False(t, ok)
}

func TestRedis_Clear(t *testing.T) {
	r, mr := setupRedis(t)
	ctx := context.Background()

	r.Put(ctx, "fp1", "r1")
	r.Put(ctx, "fp2", "r2")
	require.NoError(t, mr.Set("unrelated", "keep"))

	r.Clear(ctx)

	_, ok := r.Get(ctx, "fp1")
	assert.False(t, ok)
	_, ok = r.Get(ctx, "fp2")
	assert.False(t, ok)
	assert.True(t, mr.Exists("unrelated"), "clear must not touch unrelated keys")
}
