// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blob

import (
	"github.com/bitmark-inc/assetd/fault"
	"github.com/bitmark-inc/assetd/storage"
)

// PoolStore - files held in a storage pool
type PoolStore struct {
	pool storage.Handle
}

// NewPoolStore - create a store over a storage pool
func NewPoolStore(pool storage.Handle) *PoolStore {
	return &PoolStore{
		pool: pool,
	}
}

// Put - store a file only if the hash is not already present
func (s *PoolStore) Put(hash string, data []byte) (string, error) {
	key := []byte(hash)
	if s.pool.Has(key) {
		return "", fault.FileAlreadyExists
	}
	s.pool.Put(key, data)
	return hash, nil
}

// Replace - store a file overwriting any previous content
func (s *PoolStore) Replace(hash string, data []byte) error {
	s.pool.Put([]byte(hash), data)
	return nil
}

// Get - fetch file content
func (s *PoolStore) Get(hash string) ([]byte, error) {
	data := s.pool.Get([]byte(hash))
	if nil == data {
		return nil, fault.FileNotFound
	}
	return data, nil
}

// Has - check if a file is present
func (s *PoolStore) Has(hash string) (bool, error) {
	return s.pool.Has([]byte(hash)), nil
}
