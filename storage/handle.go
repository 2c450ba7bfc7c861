// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/logger"
)

// Handle - the functions a pool provides to the higher layers
type Handle interface {
	Get([]byte) []byte
	GetN([]byte) (uint64, bool)
	Has([]byte) bool
	Put([]byte, []byte) []byte
	PutN([]byte, uint64)
	Map(func([]byte, []byte) error) error
	Count() int
	LastElement() (Element, bool)
	NewFetchCursor() *FetchCursor
}

// PoolHandle - handle for a storage pool
type PoolHandle struct {
	prefix   byte
	limit    []byte
	database string
	cached   bool
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// the whole range of the pool
func (p *PoolHandle) fullRange() *ldb_util.Range {
	return &ldb_util.Range{
		Start: []byte{p.prefix}, // Start of key range, included in the range
		Limit: p.limit,          // Limit of key range, excluded from the range
	}
}

// must be called with poolData read locked
func (p *PoolHandle) db() *leveldb.DB {
	if nil == poolData.databases {
		return nil
	}
	return poolData.databases[p.database]
}

// Put - store a key/value bytes pair to the database
//
// returns the previous value or nil if the key was not present
func (p *PoolHandle) Put(key []byte, value []byte) []byte {
	poolData.RLock()
	defer poolData.RUnlock()

	db := p.db()
	if nil == db {
		logger.Panic("pool.Put nil database")
		return nil
	}

	prefixedKey := p.prefixKey(key)
	previous := p.get(db, prefixedKey)

	err := db.Put(prefixedKey, value, nil)
	logger.PanicIfError("pool.Put", err)

	if p.cached {
		poolData.cache.Set(string(prefixedKey), value)
	}
	return previous
}

// PutN - store a uint64 as an 8 byte big endian value
func (p *PoolHandle) PutN(key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	p.Put(key, buffer)
}

// Get - read a value for a given key
//
// this returns a copy of the element or nil if the key is not present
func (p *PoolHandle) Get(key []byte) []byte {
	poolData.RLock()
	defer poolData.RUnlock()

	db := p.db()
	if nil == db {
		return nil
	}
	return p.get(db, p.prefixKey(key))
}

// must be called with poolData read locked
func (p *PoolHandle) get(db *leveldb.DB, prefixedKey []byte) []byte {
	if p.cached {
		if value, found := poolData.cache.Get(string(prefixedKey)); found {
			result := make([]byte, len(value))
			copy(result, value)
			return result
		}
	}

	value, err := db.Get(prefixedKey, nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("pool.Get", err)

	if p.cached {
		poolData.cache.Set(string(prefixedKey), value)
	}
	result := make([]byte, len(value))
	copy(result, value)
	return result
}

// GetN - read a record and decode first 8 bytes as big endian uint64
//
// second parameter is false if record was not found
// panics if not 8 (or more) bytes in the record
func (p *PoolHandle) GetN(key []byte) (uint64, bool) {
	buffer := p.Get(key)
	if nil == buffer {
		return 0, false
	}
	if len(buffer) < 8 {
		logger.Panicf("pool.GetN truncated record for: %x: %s", key, buffer)
	}
	n := binary.BigEndian.Uint64(buffer[:8])
	return n, true
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) bool {
	poolData.RLock()
	defer poolData.RUnlock()

	db := p.db()
	if nil == db {
		return false
	}

	prefixedKey := p.prefixKey(key)
	if p.cached {
		if _, found := poolData.cache.Get(string(prefixedKey)); found {
			return true
		}
	}

	value, err := db.Has(prefixedKey, nil)
	logger.PanicIfError("pool.Has", err)
	return value
}

// Count - number of elements in the pool
func (p *PoolHandle) Count() int {
	poolData.RLock()
	defer poolData.RUnlock()

	db := p.db()
	if nil == db {
		return 0
	}

	iter := db.NewIterator(p.fullRange(), nil)
	n := 0
	for iter.Next() {
		n += 1
	}
	iter.Release()
	err := iter.Error()
	logger.PanicIfError("pool.Count", err)
	return n
}

// Map - run a function on all elements of the pool in ascending key order
func (p *PoolHandle) Map(f func(key []byte, value []byte) error) error {
	return p.NewFetchCursor().Map(f)
}

// LastElement - get the last element in a pool
func (p *PoolHandle) LastElement() (Element, bool) {
	poolData.RLock()
	defer poolData.RUnlock()

	db := p.db()
	if nil == db {
		return Element{}, false
	}

	iter := db.NewIterator(p.fullRange(), nil)

	found := false
	result := Element{}
	if iter.Last() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])              // ...

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		result.Key = dataKey
		result.Value = dataValue
		found = true
	}
	iter.Release()
	err := iter.Error()
	logger.PanicIfError("pool.LastElement", err)
	return result, found
}
