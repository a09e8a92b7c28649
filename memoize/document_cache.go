package memoize

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/allegro/bigcache/v3"
	"github.com/eko/gocache/v3/cache"
	"github.com/eko/gocache/v3/store"
	"go.opentelemetry.io/otel/attribute"

	"github.com/hgupta2363/metabase/settings"
	"github.com/hgupta2363/metabase/telemetry"
)

// DocumentCache memoizes parsed settings documents, keyed by a digest of the
// document source. Parsed settings are stored as JSON, so a cached HCL or YAML
// document is re-read with a single json.Unmarshal instead of a full parse.
//
// Values always come back in their JSON-decoded shape. In particular,
// reference numbers are float64 no matter which syntax produced them.
type DocumentCache struct {
	Stats *CacheStats

	cache *cache.Cache[[]byte]
	ttl   time.Duration
}

type parseDocumentFunc func(src []byte) ([]*settings.ColumnSetting, error)

func NewDocumentCache(opts ...Option) (*DocumentCache, error) {
	config := newConfiguration()
	for _, o := range opts {
		o(config)
	}
	documentCache := &DocumentCache{
		Stats: &CacheStats{},
		ttl:   config.Ttl,
	}
	if err := documentCache.createCache(config.MaxSizeMb); err != nil {
		return nil, err
	}
	log.Printf("[INFO] document cache created")
	return documentCache, nil
}

func (c *DocumentCache) createCache(maxSizeMb int) error {
	config := bigcache.DefaultConfig(c.ttl)
	// ensure each shard is at least 5Mb
	config.Shards = 1024
	for maxSizeMb/config.Shards < 5 {
		config.Shards = config.Shards / 2
		if config.Shards == 2 {
			break
		}
	}
	config.HardMaxCacheSize = maxSizeMb

	bigcacheClient, err := bigcache.NewBigCache(config)
	if err != nil {
		return err
	}
	c.cache = cache.New[[]byte](store.NewBigcache(bigcacheClient))
	return nil
}

// ParseJSON behaves like [settings.ParseJSON], consulting the cache first.
func (c *DocumentCache) ParseJSON(ctx context.Context, src []byte) ([]*settings.ColumnSetting, error) {
	return c.parse(ctx, buildDocumentKey("json", src), src, settings.ParseJSON)
}

// ParseYAML behaves like [settings.ParseYAML], consulting the cache first.
func (c *DocumentCache) ParseYAML(ctx context.Context, src []byte) ([]*settings.ColumnSetting, error) {
	return c.parse(ctx, buildDocumentKey("yaml", src), src, settings.ParseYAML)
}

// ParseHCL behaves like [settings.ParseHCL], consulting the cache first. The
// filename only feeds diagnostics, so it is left out of the cache key.
func (c *DocumentCache) ParseHCL(ctx context.Context, filename string, src []byte) ([]*settings.ColumnSetting, error) {
	return c.parse(ctx, buildDocumentKey("hcl", src), src, func(src []byte) ([]*settings.ColumnSetting, error) {
		return settings.ParseHCL(filename, src)
	})
}

func (c *DocumentCache) parse(ctx context.Context, key string, src []byte, parseFunc parseDocumentFunc) ([]*settings.ColumnSetting, error) {
	cacheHit := false
	ctx, span := telemetry.StartSpan(ctx, "metabase", "DocumentCache.parse")
	defer func() {
		span.SetAttributes(attribute.Bool("cache-hit", cacheHit))
		span.End()
	}()

	cached, err := c.doGet(ctx, key)
	if err == nil {
		c.Stats.Hits++
		cacheHit = true
		return cached, nil
	}
	if !IsCacheMiss(err) {
		log.Printf("[WARN] document cache Get returned error %s", err.Error())
	}
	c.Stats.Misses++

	parsed, err := parseFunc(src)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(parsed)
	if err != nil {
		log.Printf("[WARN] document cache marshal failed: %v", err)
		return parsed, nil
	}
	if err := c.cache.Set(ctx, key, data, store.WithExpiration(c.ttl)); err != nil {
		log.Printf("[WARN] document cache Set failed: %v", err)
		return parsed, nil
	}

	// hand back the decoded form of what was just stored, so the first read
	// and every repeat read see the same value shapes
	var columnSettings []*settings.ColumnSetting
	if err := json.Unmarshal(data, &columnSettings); err != nil {
		return parsed, nil
	}
	return columnSettings, nil
}

// get the bytes from the cache and unmarshal them
func (c *DocumentCache) doGet(ctx context.Context, key string) ([]*settings.ColumnSetting, error) {
	data, err := c.cache.Get(ctx, key)
	if err != nil {
		if IsCacheMiss(err) {
			log.Printf("[TRACE] document cache miss for key %s", key)
		}
		return nil, err
	}

	var columnSettings []*settings.ColumnSetting
	if err := json.Unmarshal(data, &columnSettings); err != nil {
		log.Printf("[WARN] error unmarshalling cached document: %s", err.Error())
		return nil, err
	}
	return columnSettings, nil
}

func buildDocumentKey(format string, src []byte) string {
	sum := sha256.Sum256(src)
	return fmt.Sprintf("%s__%s", format, hex.EncodeToString(sum[:]))
}
