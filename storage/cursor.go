// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/assetd/fault"
)

// FetchCursor - position within the key range of one pool
//
// keys are returned without the pool prefix in ascending order
type FetchCursor struct {
	pool     *PoolHandle
	keyRange util.Range
}

// NewFetchCursor - a cursor positioned at the first key of the pool
func (p *PoolHandle) NewFetchCursor() *FetchCursor {
	return &FetchCursor{
		pool:     p,
		keyRange: *p.fullRange(),
	}
}

// Seek - position at the first key not less than key
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	cursor.keyRange.Start = cursor.pool.prefixKey(key)
	return cursor
}

// Fetch - the next batch of at most count elements
//
// an empty result means the cursor is exhausted
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if nil == cursor {
		return nil, fault.InvalidCursor
	}
	if count <= 0 {
		return nil, fault.InvalidCount
	}

	results := make([]Element, 0, count)
	err := cursor.iterate(count, func(e Element) error {
		results = append(results, e)
		return nil
	})

	// resume after the last key: smallest greater key is key+0x00
	if n := len(results); n > 0 {
		next := cursor.pool.prefixKey(results[n-1].Key)
		cursor.keyRange.Start = append(next, 0x00)
	}
	return results, err
}

// Map - call f for every remaining element, stopping at its first error
//
// the cursor position is not changed
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) error) error {
	if nil == cursor {
		return fault.InvalidCursor
	}
	return cursor.iterate(0, func(e Element) error {
		return f(e.Key, e.Value)
	})
}

// visit up to limit elements (0 = no limit) with copies of the
// iterator's key and value
func (cursor *FetchCursor) iterate(limit int, f func(Element) error) error {
	poolData.RLock()
	defer poolData.RUnlock()

	db := cursor.pool.db()
	if nil == db {
		return nil
	}

	iter := db.NewIterator(&cursor.keyRange, nil)
	defer iter.Release()

	n := 0
	for iter.Next() {
		key := iter.Key()
		value := iter.Value()

		e := Element{
			Key:   append([]byte{}, key[1:]...),
			Value: append([]byte{}, value...),
		}
		if err := f(e); nil != err {
			return err
		}

		n += 1
		if limit > 0 && n >= limit {
			break
		}
	}
	return iter.Error()
}
