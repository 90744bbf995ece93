package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNilCacheIsSafe(t *testing.T) {
	var cache *CacheService

	assert.False(t, cache.Enabled())
	assert.NoError(t, cache.Set(context.Background(), "k", 1, 0))
	assert.Error(t, cache.Get(context.Background(), "k", new(int)), "disabled cache always misses")
	assert.NoError(t, cache.Delete(context.Background(), "k"))

	empty := NewCacheService(nil)
	assert.False(t, empty.Enabled())
}

func TestCompareCacheKey(t *testing.T) {
	key := CompareCacheKey("Premier League", "Saka", "Salah", "FW", 5.0)
	assert.Equal(t, "compare:Premier League:FW:5.00:Saka:Salah", key)

	// order of the pair is part of the key
	assert.NotEqual(t, key, CompareCacheKey("Premier League", "Salah", "Saka", "FW", 5.0))
}
