package services

import (
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

// ContentCache memoizes public read queries. Admin writes invalidate the
// affected prefix so the public API never serves stale content for long.
type ContentCache struct {
	c *cache.Cache
}

func NewContentCache(ttl, cleanupInterval time.Duration) *ContentCache {
	return &ContentCache{c: cache.New(ttl, cleanupInterval)}
}

// Fetch returns the cached value for key, or runs fetchFunc and caches its
// result with the default expiration.
func (cc *ContentCache) Fetch(key string, fetchFunc func() (interface{}, error)) (interface{}, error) {
	if cc == nil {
		return fetchFunc()
	}
	if data, found := cc.c.Get(key); found {
		return data, nil
	}

	data, err := fetchFunc()
	if err != nil {
		return nil, err
	}

	cc.c.Set(key, data, cache.DefaultExpiration)
	return data, nil
}

// Invalidate drops all entries whose key starts with prefix.
func (cc *ContentCache) Invalidate(prefix string) {
	if cc == nil {
		return
	}
	for key := range cc.c.Items() {
		if strings.HasPrefix(key, prefix) {
			cc.c.Delete(key)
		}
	}
}

// Flush drops everything.
func (cc *ContentCache) Flush() {
	if cc == nil {
		return
	}
	cc.c.Flush()
}
