package store

import (
	"crypto/md5"
	"encoding/hex"
	"errors"

	"github.com/peterbourgon/diskv/v3"
)

// ErrMiss is returned when the cache has no copy for a source.
var ErrMiss = errors.New("cache miss")

// Cache keeps local copies of datasets fetched from remote sources so the
// explorer works offline and repeat launches skip the download. Entries are
// keyed by the digest of the source URL.
type Cache struct {
	d *diskv.Diskv
}

// OpenCache opens (creating if needed) the dataset cache rooted at basePath.
func OpenCache(basePath string) *Cache {
	return &Cache{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 8 * 1024 * 1024, // 8MB
	})}
}

// Get returns the cached copy for the source URL, or ErrMiss.
func (c *Cache) Get(url string) ([]byte, error) {
	key := cacheKey(url)
	if !c.d.Has(key) {
		return nil, ErrMiss
	}
	raw, err := c.d.Read(key)
	if err != nil {
		return nil, ErrMiss
	}
	return raw, nil
}

// Put stores a fetched dataset for the source URL.
func (c *Cache) Put(url string, raw []byte) error {
	return c.d.Write(cacheKey(url), raw)
}

// Drop removes the cached copy for the source URL, if any.
func (c *Cache) Drop(url string) error {
	key := cacheKey(url)
	if !c.d.Has(key) {
		return nil
	}
	return c.d.Erase(key)
}

func cacheKey(url string) string {
	sum := md5.Sum([]byte(url))
	return hex.EncodeToString(sum[:]) + ".json"
}
