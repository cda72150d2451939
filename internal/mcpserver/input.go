package mcpserver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/namabar/namabar-go/parser"
)

// specInput represents the three ways a specification can be provided to a tool.
// Exactly one of File, URL, or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an OpenAPI file on disk"`
	URL     string `json:"url,omitempty"     jsonschema:"URL to fetch the OpenAPI document from, e.g. https://api.namabar.krd/openapi/v1.json"`
	Content string `json:"content,omitempty" jsonschema:"Inline OpenAPI document content (JSON or YAML)"`
}

// cacheEntry holds a cached parse result with LRU ordering and TTL expiry.
type cacheEntry struct {
	result    *parser.ParseResult
	usedAt    time.Time
	expiresAt time.Time
}

// specCacheStore is a session-scoped cache of parsed specifications.
// File inputs are keyed by (absolutePath, modTime), content inputs by a
// SHA-256 hash and URL inputs by the URL string.
type specCacheStore struct {
	mu             sync.Mutex
	entries        map[string]*cacheEntry
	maxSize        int
	sweeperStarted atomic.Bool
}

var specCache = &specCacheStore{
	entries: make(map[string]*cacheEntry),
	maxSize: cfg.CacheMaxSize,
}

// get returns a cached result or nil. Expired entries are lazily removed.
func (c *specCacheStore) get(key string) *parser.ParseResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil
	}
	if time.Now().After(e.expiresAt) {
		delete(c.entries, key)
		return nil
	}
	e.usedAt = time.Now()
	return e.result
}

// put stores a result with a TTL, evicting the least recently used entry if at capacity.
func (c *specCacheStore) put(key string, result *parser.ParseResult, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	if _, ok := c.entries[key]; !ok && len(c.entries) >= c.maxSize {
		var oldestKey string
		var oldest time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.usedAt.Before(oldest) {
				oldestKey, oldest = k, e.usedAt
			}
		}
		delete(c.entries, oldestKey)
	}
	c.entries[key] = &cacheEntry{result: result, usedAt: now, expiresAt: now.Add(ttl)}
}

// sweep removes all expired entries from the cache.
func (c *specCacheStore) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
}

// startSweeper launches a goroutine that periodically removes expired entries
// until ctx is cancelled. Only the first concurrent call spawns a sweeper.
func (c *specCacheStore) startSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 || !c.sweeperStarted.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer c.sweeperStarted.Store(false)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.sweep()
			}
		}
	}()
}

// reset clears all cached entries. Used in tests.
func (c *specCacheStore) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

// size returns the number of cached entries.
func (c *specCacheStore) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// cacheKey returns the cache key and TTL for s. An empty key means the input
// must not be cached.
func (s specInput) cacheKey() (string, time.Duration) {
	switch {
	case s.File != "":
		absPath, err := filepath.Abs(s.File)
		if err != nil {
			return "", 0
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return "", 0
		}
		return fmt.Sprintf("file:%s:%d", absPath, info.ModTime().UnixNano()), cfg.CacheFileTTL
	case s.URL != "":
		return "url:" + s.URL, cfg.CacheURLTTL
	case s.Content != "":
		h := sha256.Sum256([]byte(s.Content))
		return "content:" + hex.EncodeToString(h[:]), cfg.CacheContentTTL
	default:
		return "", 0
	}
}

// validate checks that exactly one source is set and inline content fits the limit.
func (s specInput) validate() error {
	count := 0
	for _, v := range []string{s.File, s.URL, s.Content} {
		if v != "" {
			count++
		}
	}
	if count != 1 {
		return fmt.Errorf("exactly one of file, url, or content must be provided (got %d)", count)
	}
	if int64(len(s.Content)) > cfg.MaxInlineSize {
		return fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set NAMABAR_MCP_MAX_INLINE_SIZE to increase",
			len(s.Content), cfg.MaxInlineSize)
	}
	return nil
}

// resolve parses the specification from whichever input was provided, using
// the cache when it is enabled.
func (s specInput) resolve(ctx context.Context) (*parser.ParseResult, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	var key string
	var ttl time.Duration
	if cfg.CacheEnabled {
		key, ttl = s.cacheKey()
		if key != "" {
			if cached := specCache.get(key); cached != nil {
				logger.Debug("spec cache hit", "key", key)
				return cached, nil
			}
		}
	}

	p := parser.New()
	p.Logger = logger
	var (
		result *parser.ParseResult
		err    error
	)
	switch {
	case s.File != "":
		if parser.IsURL(s.File) {
			return nil, fmt.Errorf("file input %q looks like a URL; use the url field", s.File)
		}
		result, err = p.ParseContext(ctx, s.File)
	case s.URL != "":
		if !parser.IsURL(s.URL) {
			return nil, fmt.Errorf("url input %q must start with http:// or https://", s.URL)
		}
		p.HTTPClient = fetchClient()
		result, err = p.ParseContext(ctx, s.URL)
	default:
		result, err = p.ParseReader(strings.NewReader(s.Content))
	}
	if err != nil {
		return nil, err
	}

	if key != "" {
		specCache.put(key, result, ttl)
	}
	return result, nil
}
