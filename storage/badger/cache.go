package badger

import (
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru"

	"github.com/onrelay/relay-go/model/relay"
	"github.com/onrelay/relay-go/module"
	"github.com/onrelay/relay-go/module/metrics"
	"github.com/onrelay/relay-go/storage"
)

func withLimit(limit uint) func(*Cache) {
	return func(c *Cache) {
		c.limit = limit
	}
}

type retrieveFunc func(para relay.ParaID) (interface{}, error)

func withRetrieve(retrieve retrieveFunc) func(*Cache) {
	return func(c *Cache) {
		c.retrieve = retrieve
	}
}

func noRetrieve(relay.ParaID) (interface{}, error) {
	return nil, fmt.Errorf("no retrieve function for cache get available")
}

func withResource(resource string) func(*Cache) {
	return func(c *Cache) {
		c.resource = resource
	}
}

// Cache is a read-through cache of per-para resources in front of the
// database. Writers refresh it with Insert after a successful database
// update and evict with Remove when the resource is deleted.
type Cache struct {
	metrics  module.CacheMetrics
	limit    uint
	retrieve retrieveFunc
	resource string
	cache    *lru.Cache
}

func newCache(collector module.CacheMetrics, options ...func(*Cache)) *Cache {
	c := Cache{
		metrics:  collector,
		limit:    1000,
		retrieve: noRetrieve,
		resource: metrics.ResourceUndefined,
	}
	for _, option := range options {
		option(&c)
	}
	c.cache, _ = lru.New(int(c.limit))
	c.metrics.CacheEntries(c.resource, uint(c.cache.Len()))
	return &c
}

// Get will try to retrieve the resource from cache first, and then from the
// injected retrieve function.
func (c *Cache) Get(para relay.ParaID) (interface{}, error) {

	// check if we have it in the cache
	resource, cached := c.cache.Get(para)
	if cached {
		c.metrics.CacheHit(c.resource)
		return resource, nil
	}

	// get it from the database
	c.metrics.CacheMiss(c.resource)
	resource, err := c.retrieve(para)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.metrics.CacheNotFound(c.resource)
		}
		return nil, err
	}

	// cache the resource and eject least recently used one if we reached limit
	evicted := c.cache.Add(para, resource)
	if !evicted {
		c.metrics.CacheEntries(c.resource, uint(c.cache.Len()))
	}

	return resource, nil
}

// Insert adds a resource to the cache under the given para.
func (c *Cache) Insert(para relay.ParaID, resource interface{}) {
	evicted := c.cache.Add(para, resource)
	if !evicted {
		c.metrics.CacheEntries(c.resource, uint(c.cache.Len()))
	}
}

// Remove evicts the resource cached under the given para, if any.
func (c *Cache) Remove(para relay.ParaID) {
	c.cache.Remove(para)
	c.metrics.CacheEntries(c.resource, uint(c.cache.Len()))
}
