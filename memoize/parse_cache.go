/*
Package memoize provides opt-in caches for the parse-heavy paths of the module.

None of the core packages consult these caches. Callers that resolve the same
references or settings documents over and over, such as a chart that re-renders
on every settings change, can route their parses through a [ParseCache] or a
[DocumentCache] instead of calling the parse functions directly.
*/
package memoize

import (
	"context"
	"log"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/eko/gocache/v3/cache"
	"github.com/eko/gocache/v3/store"
	"github.com/hgupta2363/metabase/mbql"
)

type CacheStats struct {
	// keep count of hits and misses
	Hits   int
	Misses int
}

// ParseCache memoizes [mbql.ParseMBQL] results, keyed by the canonical JSON of
// the raw reference so structurally equal references share an entry no matter
// how their numbers were decoded.
//
// Cached dimensions are shared between callers. Dimension mutators return
// copies, so sharing is safe as long as callers stick to the Dimension API.
type ParseCache struct {
	Stats *CacheStats

	cache     *cache.Cache[*mbql.Dimension]
	ristretto *ristretto.Cache
	ttl       time.Duration
}

func NewParseCache(opts ...Option) *ParseCache {
	config := newConfiguration()
	for _, o := range opts {
		o(config)
	}
	parseCache := &ParseCache{
		Stats: &CacheStats{},
		ttl:   config.Ttl,
	}
	parseCache.createCache()
	log.Printf("[INFO] parse cache created")
	return parseCache
}

func (c *ParseCache) createCache() {
	ristrettoCache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e7,     // number of keys to track frequency of (10M).
		MaxCost:     1 << 30, // maximum cost of cache (1GB).
		BufferItems: 64,      // number of keys per Get buffer.
	})
	if err != nil {
		panic(err)
	}
	c.ristretto = ristrettoCache
	c.cache = cache.New[*mbql.Dimension](store.NewRistretto(ristrettoCache))
}

// Parse behaves like [mbql.ParseMBQL], consulting the cache first. Parse
// failures are never cached.
func (c *ParseCache) Parse(ctx context.Context, raw any) (*mbql.Dimension, error) {
	key := mbql.CanonicalJSON(raw)
	if key == "" {
		// not serializable, so not cacheable
		return mbql.ParseMBQL(raw)
	}

	cached, err := c.cache.Get(ctx, key)
	if err == nil && cached != nil {
		c.Stats.Hits++
		return cached, nil
	}
	if err != nil && !IsCacheMiss(err) {
		log.Printf("[WARN] parse cache Get returned error %s", err.Error())
	}
	c.Stats.Misses++

	parsed, err := mbql.ParseMBQL(raw)
	if err != nil {
		return nil, err
	}
	if err := c.cache.Set(ctx, key, parsed, store.WithExpiration(c.ttl)); err != nil {
		log.Printf("[WARN] parse cache Set failed: %v", err)
	}
	return parsed, nil
}
