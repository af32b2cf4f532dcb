package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCache(t *testing.T) {
	cache, err := New[string](func(value string) int64 {
		return int64(len(value))
	}, "Test Cache")

	require.NoError(t, err)
	assert.NotNil(t, cache)

	testValue := "test string"
	cache.Set("test-key", testValue, int64(len(testValue)))

	// Wait a bit for the cache to process the set
	cache.Wait()
	time.Sleep(10 * time.Millisecond)

	if value, found := cache.Get("test-key"); found {
		assert.Equal(t, testValue, value)
	} else {
		t.Error("Expected to find cached value")
	}
}

func TestCacheWithBytes(t *testing.T) {
	cache, err := New[[]byte](func(value []byte) int64 {
		return int64(len(value))
	}, "Test Tile Cache")

	require.NoError(t, err)

	tile := []byte{0x89, 0x50, 0x4e, 0x47}
	cache.SetWithTTL("15/16384/10896", tile, int64(len(tile)), time.Minute)

	cache.Wait()
	time.Sleep(10 * time.Millisecond)

	if value, found := cache.Get("15/16384/10896"); found {
		assert.Equal(t, tile, value)
	} else {
		t.Error("Expected to find cached tile")
	}
}

func TestCacheDelete(t *testing.T) {
	cache, err := New[string](func(value string) int64 {
		return int64(len(value))
	}, "Test Cache")
	require.NoError(t, err)

	cache.Set("key", "value", 5)
	cache.Wait()
	time.Sleep(10 * time.Millisecond)

	cache.Delete("key")
	cache.Wait()

	_, found := cache.Get("key")
	assert.False(t, found)
}

func TestCacheStats(t *testing.T) {
	cache, err := New[string](func(value string) int64 {
		return int64(len(value))
	}, "Test Cache")
	require.NoError(t, err)

	testValue := "test string"
	cache.Set("key1", testValue, int64(len(testValue)))
	cache.Set("key2", testValue, int64(len(testValue)))

	cache.Wait()
	time.Sleep(10 * time.Millisecond)

	cache.Get("key1") // Hit
	cache.Get("key2") // Hit
	cache.Get("key3") // Miss

	stats := cache.Stats()

	expectedKeys := []string{
		"cache_type", "hits", "misses", "sets", "total_requests",
		"hit_rate", "cost_added", "cost_evicted", "memory_used",
		"memory_used_kb", "current_items",
	}

	for _, key := range expectedKeys {
		assert.Contains(t, stats, key, "Expected key %s in stats", key)
	}

	assert.Equal(t, "Test Cache", stats["cache_type"])
	assert.GreaterOrEqual(t, stats["sets"], uint64(0))
}
