// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blob

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache - keeps recently read files in memory
type Cache struct {
	next  Store
	cache *lru.Cache[string, []byte]
}

// NewCache - wrap a store with an LRU cache of the given number of entries
func NewCache(next Store, size int) (*Cache, error) {
	c, err := lru.New[string, []byte](size)
	if nil != err {
		return nil, err
	}
	return &Cache{
		next:  next,
		cache: c,
	}, nil
}

// Put - store if absent, a rejected put leaves the cache alone
func (c *Cache) Put(hash string, data []byte) (string, error) {
	h, err := c.next.Put(hash, data)
	if nil != err {
		return "", err
	}
	c.cache.Add(hash, clone(data))
	return h, nil
}

// Replace - overwrite and refresh the cached copy
func (c *Cache) Replace(hash string, data []byte) error {
	err := c.next.Replace(hash, data)
	if nil != err {
		c.cache.Remove(hash)
		return err
	}
	c.cache.Add(hash, clone(data))
	return nil
}

// Get - read from cache first
func (c *Cache) Get(hash string) ([]byte, error) {
	if data, ok := c.cache.Get(hash); ok {
		return clone(data), nil
	}
	data, err := c.next.Get(hash)
	if nil != err {
		return nil, err
	}
	c.cache.Add(hash, clone(data))
	return data, nil
}

// Has - cached entries are always present
func (c *Cache) Has(hash string) (bool, error) {
	if c.cache.Contains(hash) {
		return true, nil
	}
	return c.next.Has(hash)
}

func clone(data []byte) []byte {
	result := make([]byte, len(data))
	copy(result, data)
	return result
}
