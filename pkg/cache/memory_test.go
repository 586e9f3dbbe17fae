package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprint_NormalizesWhitespace(t *testing.T) {
	a := Fingerprint("hello   world")
	b := Fingerprint(" hello\nworld ")
	c := Fingerprint("Hello World")
	d := Fingerprint("hello there")

	assert.Equal(t, a, b, "whitespace differences must collide")
	assert.Equal(t, a, c, "case differences must collide")
	assert.NotEqual(t, a, d)
}

func TestMemory_PutGet(t *testing.T) {
	m := NewMemory(time.Minute, 10)
	ctx := context.Background()

	_, ok := m.Get(ctx, "fp1")
	assert.False(t, ok)

	m.Put(ctx, "fp1", "cached reply")
	got, ok := m.Get(ctx, "fp1")
	require.True(t, ok)
	assert.Equal(t, "cached reply", got)
}

func TestMemory_TTLExpiry(t *testing.T) {
	m := NewMemory(time.Minute, 10)
	ctx := context.Background()

	current := time.Now()
	m.now = func() time.Time { return current }

	m.Put(ctx, "fp1", "reply")
	_, ok := m.Get(ctx, "fp1")
	require.True(t, ok)

	// expired entries are absent even without eviction pressure
	current = current.Add(time.Minute + time.Second)
	_, ok = m.Get(ctx, "fp1")
	assert.False(t, ok)
	assert.Zero(t, m.Len(), "expired entry dropped on read")
}

func TestMemory_LRUEviction(t *testing.T) {
	m := NewMemory(time.Hour, 3)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		m.Put(ctx, fmt.Sprintf("fp%d", i), fmt.Sprintf("r%d", i))
	}

	// touch fp1 so fp2 becomes the least recently used
	_, ok := m.Get(ctx, "fp1")
	require.True(t, ok)

	m.Put(ctx, "fp4", "r4")

	_, ok = m.Get(ctx, "fp2")
	assert.False(t, ok, "least recently used entry evicted")
	for _, fp := range []string{"fp1", "fp3", "fp4"} {
		_, ok = m.Get(ctx, fp)
		assert.True(t, ok, "%s should survive", fp)
	}
	assert.Equal(t, 3, m.Len())
}

func TestMemory_PutOverwrites(t *testing.T) {
	m := NewMemory(time.Hour, 2)
	ctx := context.Background()

	m.Put(ctx, "fp1", "first")
	m.Put(ctx, "fp1", "second")
	got, ok := m.Get(ctx, "fp1")
	require.True(t, ok)
	assert.Equal(t, "second", got)
	assert.Equal(t, 1, m.Len())
}

func TestMemory_Clear(t *testing.T) {
	m := NewMemory(time.Hour, 10)
	ctx := context.Background()

	m.Put(ctx, "fp1", "r1")
	m.Put(ctx, "fp2", "r2")
	m.Clear(ctx)

	assert.Zero(t, m.Len())
	_, ok := m.Get(ctx, "fp1")
	assert.False(t, ok)
}

func TestMemory_Concurrent(t *testing.T) {
	m := NewMemory(time.Hour, 100)
	ctx := context.Background()

	done := make(chan struct{})
	for i := 0; i < 10; i++ {
		go func(n int) {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				fp := fmt.Sprintf("fp-%d-%d", n, j%10)
				m.Put(ctx, fp, "r")
				m.Get(ctx, fp)
			}
		}(i)
	}
	for i := 0; i < 10; i++ {
		<-done
	}
}
