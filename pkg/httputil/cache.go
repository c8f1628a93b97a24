package httputil

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"time"
)

// ErrExpired is returned by [Cache.Get] when a cached entry exists but has
// exceeded its time-to-live (TTL).
//
// The cached bytes still exist on disk but are considered stale; callers
// should fetch fresh data and update the cache with [Cache.Set].
//
// Use errors.Is to check for this error:
//
//	data, ok, err := cache.Get("key")
//	if errors.Is(err, httputil.ErrExpired) {
//	    // Fetch fresh data and update cache
//	}
var ErrExpired = errors.New("cache entry expired")

// Cache provides file-based caching of raw response bodies.
//
// Each entry is stored as a file in the cache directory, with the filename
// derived from a SHA-256 hash of the cache key. Hashed names are filesystem
// safe regardless of what goes into the key (URLs with query strings, case
// names with spaces).
//
// Cache operations are not goroutine-safe on the same key. Distinct keys can
// be written concurrently, which is what the parallel icon fetcher does.
//
// Entries expire based on file modification time. A TTL of 0 means entries
// never expire.
//
// Use [Cache.Namespace] to create scoped views that automatically prefix
// keys, keeping differently-parameterised renders apart:
//
//	svg := cache.Namespace("svg:")
//	svg.Set("pll/Aa", data) // key becomes "svg:pll/Aa"
type Cache struct {
	dir    string
	ttl    time.Duration
	prefix string
}

// NewCache creates a Cache that stores entries in dir with the given TTL.
//
// If dir is empty, NewCache uses the default directory ~/.cache/cubedeck/.
// The directory is created with mode 0755 if it doesn't exist; directory
// creation errors are the only possible source of failure.
func NewCache(dir string, ttl time.Duration) (*Cache, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(home, ".cache", "cubedeck")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir, ttl: ttl, prefix: ""}, nil
}

// Dir returns the absolute path to the cache directory.
func (c *Cache) Dir() string { return c.dir }

// TTL returns the time-to-live duration for cache entries.
// A TTL of 0 means cache entries never expire.
func (c *Cache) TTL() time.Duration { return c.ttl }

// Get retrieves cached bytes by key.
//
// Return values indicate three distinct outcomes:
//   - (data, true, nil): cache hit, entry is fresh
//   - (nil, false, nil): cache miss, no entry for this key
//   - (nil, false, ErrExpired): entry exists but exceeded its TTL
//   - (nil, false, other error): I/O failure
//
// Get does not modify the cache or update modification times.
func (c *Cache) Get(key string) ([]byte, bool, error) {
	path := c.keyPath(c.prefix + key)
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if c.ttl > 0 && time.Since(info.ModTime()) > c.ttl {
		return nil, false, ErrExpired
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set stores data in the cache under the given key.
//
// Set overwrites any existing entry for key, resetting its modification
// time to the current time. This effectively refreshes the TTL.
func (c *Cache) Set(key string, data []byte) error {
	return os.WriteFile(c.keyPath(c.prefix+key), data, 0o644)
}

// Namespace returns a new Cache that automatically prefixes all keys with
// prefix. The returned Cache shares the same underlying directory and TTL
// as the parent; an empty prefix is valid and results in no transformation.
// Namespace calls can be chained to create hierarchical key spaces.
func (c *Cache) Namespace(prefix string) *Cache {
	return &Cache{
		dir:    c.dir,
		ttl:    c.ttl,
		prefix: c.prefix + prefix,
	}
}

func (c *Cache) keyPath(key string) string {
	h := sha256.Sum256([]byte(key))
	return filepath.Join(c.dir, hex.EncodeToString(h[:]))
}
