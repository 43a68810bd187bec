package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryKVRoundTrip(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	type doc struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, kv.Save(ctx, "app_doc", doc{Name: "x", Count: 3}))

	var got doc
	found, err := kv.Load(ctx, "app_doc", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, doc{Name: "x", Count: 3}, got)
}

func TestMemoryKVMissDegradesToDefault(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	var got []string
	found, err := kv.Load(ctx, "absent", &got)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, got)
}

func TestMemoryKVDecodeFailureReportsMiss(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	require.NoError(t, kv.Save(ctx, "key", "not a number"))

	var got int
	found, err := kv.Load(ctx, "key", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryKVRemove(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	require.NoError(t, kv.Save(ctx, "key", 1))
	require.NoError(t, kv.Remove(ctx, "key"))

	var got int
	found, err := kv.Load(ctx, "key", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryKVClearRespectsPrefix(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	require.NoError(t, kv.Save(ctx, "app_one", 1))
	require.NoError(t, kv.Save(ctx, "app_two", 2))
	require.NoError(t, kv.Save(ctx, "other", 3))

	require.NoError(t, kv.Clear(ctx, "app_"))

	var got int
	found, _ := kv.Load(ctx, "app_one", &got)
	assert.False(t, found)
	found, _ = kv.Load(ctx, "app_two", &got)
	assert.False(t, found)

	found, err := kv.Load(ctx, "other", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 3, got)
}
