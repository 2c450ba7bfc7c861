// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync/atomic"
	"time"

	cache "github.com/patrickmn/go-cache"
)

const (
	cacheExpiration = 2 * time.Minute
	cacheCleanup    = 1 * time.Minute
)

// CacheStatistics - read cache counters since Initialise
type CacheStatistics struct {
	Items  int
	Hits   uint64
	Misses uint64
}

// records of cached pools keyed by prefixed key, entries expire
// unless read again
type dbCache struct {
	records *cache.Cache
	hits    uint64
	misses  uint64
}

func newCache() *dbCache {
	return &dbCache{
		records: cache.New(cacheExpiration, cacheCleanup),
	}
}

// the returned slice is shared with the cache and must not be modified
func (c *dbCache) Get(key string) ([]byte, bool) {
	obj, found := c.records.Get(key)
	if !found {
		atomic.AddUint64(&c.misses, 1)
		return nil, false
	}
	atomic.AddUint64(&c.hits, 1)
	return obj.([]byte), true
}

func (c *dbCache) Set(key string, value []byte) {
	c.records.SetDefault(key, append([]byte{}, value...))
}

func (c *dbCache) Clear() {
	c.records.Flush()
}

func (c *dbCache) statistics() CacheStatistics {
	return CacheStatistics{
		Items:  c.records.ItemCount(),
		Hits:   atomic.LoadUint64(&c.hits),
		Misses: atomic.LoadUint64(&c.misses),
	}
}

// Cache - counters of the read cache, zero when not initialised
func Cache() CacheStatistics {
	poolData.RLock()
	defer poolData.RUnlock()

	if nil == poolData.cache {
		return CacheStatistics{}
	}
	return poolData.cache.statistics()
}
