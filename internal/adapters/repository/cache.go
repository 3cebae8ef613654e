package repository

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Default cache configuration constants.
const (
	defaultCacheSize = 64
)

// AnalysisCache memoizes scenario analyses. The sweep is pure, so a
// result keyed by (roster version, target id) stays valid until the
// roster is replaced; version-qualified keys make stale entries
// unreachable and the LRU evicts them naturally.
type AnalysisCache[V any] struct {
	c *lru.Cache[string, V]
}

// NewAnalysisCache creates a bounded cache. Sizes below one fall back
// to the default.
func NewAnalysisCache[V any](size int) (*AnalysisCache[V], error) {
	if size < 1 {
		size = defaultCacheSize
	}
	c, err := lru.New[string, V](size)
	if err != nil {
		return nil, fmt.Errorf("create analysis cache: %w", err)
	}
	return &AnalysisCache[V]{c: c}, nil
}

// Key builds the cache key for a roster version and target contender.
func (a *AnalysisCache[V]) Key(version uint64, targetID string) string {
	return fmt.Sprintf("%d:%s", version, targetID)
}

// Get returns the cached value for key, if present.
func (a *AnalysisCache[V]) Get(key string) (V, bool) {
	return a.c.Get(key)
}

// Add stores a value under key.
func (a *AnalysisCache[V]) Add(key string, value V) {
	a.c.Add(key, value)
}

// Len returns the number of cached entries.
func (a *AnalysisCache[V]) Len() int {
	return a.c.Len()
}

// Purge drops every cached entry.
func (a *AnalysisCache[V]) Purge() {
	a.c.Purge()
}
