// internal/service/cache.go
package service

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	ddl "github.com/dangerclosesec/schemagen/ddl/model"
	lru "github.com/hashicorp/golang-lru/v2"
)

// SchemaCache holds parsed schemas keyed by a digest of their source text.
// Stored schemas are never handed out directly.
type SchemaCache struct {
	cache *lru.Cache[string, *ddl.Schema]
}

// NewSchemaCache creates a cache holding up to size schemas
func NewSchemaCache(size int) (*SchemaCache, error) {
	cache, err := lru.New[string, *ddl.Schema](size)
	if err != nil {
		return nil, fmt.Errorf("creating schema cache: %w", err)
	}

	return &SchemaCache{
		cache: cache,
	}, nil
}

// MustSchemaCache is like NewSchemaCache but panics if size is not positive
func MustSchemaCache(size int) *SchemaCache {
	cache, err := NewSchemaCache(size)
	if err != nil {
		panic(err)
	}
	return cache
}

// Get returns a copy of the cached schema for key
func (c *SchemaCache) Get(key string) (*ddl.Schema, bool) {
	schema, ok := c.cache.Get(key)
	if !ok {
		return nil, false
	}
	return schema.Clone(), true
}

func (c *SchemaCache) Set(key string, schema *ddl.Schema) {
	c.cache.Add(key, schema.Clone())
}

func (c *SchemaCache) Len() int {
	return c.cache.Len()
}

func (c *SchemaCache) Purge() {
	c.cache.Purge()
}

// SourceKey derives the cache key for a DDL source text.
func SourceKey(source string) string {
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])
}
