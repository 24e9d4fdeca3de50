package cache

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/pslkit/suffixd/internal/psl"
)

const defaultSize = 10000

// Cache keeps recent domain decompositions. Lookups are pure functions
// of the list, so entries never expire; they get evicted by size or
// abandoned when the list generation embedded in the key moves on.
type Cache struct {
	lru *lru.Cache[string, psl.Domain]
}

func New(size int) (*Cache, error) {
	if size <= 0 {
		size = defaultSize
	}
	c, err := lru.New[string, psl.Domain](size)
	if err != nil {
		return nil, fmt.Errorf("init lru: %w", err)
	}
	return &Cache{lru: c}, nil
}

// Key builds a cache key bound to one list generation.
func Key(generation uint64, name string) string {
	return fmt.Sprintf("%d|%s", generation, name)
}

func (c *Cache) Get(key string) (psl.Domain, bool) {
	if c == nil {
		return psl.Domain{}, false
	}
	return c.lru.Get(key)
}

func (c *Cache) Set(key string, d psl.Domain) {
	if c == nil {
		return
	}
	c.lru.Add(key, d)
}

func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	return c.lru.Len()
}
