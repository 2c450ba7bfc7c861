// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"strings"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/assetd/blob"
	"github.com/bitmark-inc/assetd/fault"
	"github.com/bitmark-inc/assetd/identifier"
	"github.com/bitmark-inc/assetd/identity"
	"github.com/bitmark-inc/assetd/storage"
)

// Registry - asset records with their identifier allocator and files
type Registry struct {
	sync.RWMutex

	log    *logger.L
	assets storage.Handle
	ids    *identifier.Allocator
	files  blob.Store
	clock  func() time.Time
}

// New - create a registry
//
// a nil clock uses the system time
func New(log *logger.L, assets storage.Handle, ids *identifier.Allocator, files blob.Store, clock func() time.Time) *Registry {
	if nil == clock {
		clock = time.Now
	}
	return &Registry{
		log:    log,
		assets: assets,
		ids:    ids,
		files:  files,
		clock:  clock,
	}
}

// current time in the stored resolution
func (r *Registry) now() time.Time {
	return time.Unix(0, r.clock().UnixNano()).UTC()
}

// read a record, must be called with a lock held
func (r *Registry) read(id uint64) (*Asset, []byte) {
	packed := r.assets.Get(Key(id))
	if nil == packed {
		return nil, nil
	}
	a, unknown, err := unpack(packed)
	logger.PanicIfError("asset: unpack", err)
	return a, unknown
}

// write a record, must be called with the write lock held
func (r *Registry) write(a *Asset, unknown []byte) {
	packed, err := pack(a, unknown)
	logger.PanicIfError("asset: pack", err)
	r.assets.Put(Key(a.Id), packed)
}

// scan all records in identifier order selecting with a filter
func (r *Registry) scan(filter func(*Asset) bool) []*Asset {
	r.RLock()
	defer r.RUnlock()

	result := make([]*Asset, 0)
	err := r.assets.Map(func(key []byte, value []byte) error {
		a, _, err := unpack(value)
		if nil != err {
			return err
		}
		if filter(a) {
			result = append(result, a)
		}
		return nil
	})
	logger.PanicIfError("asset: scan", err)
	return result
}

// Get - fetch a single asset
func (r *Registry) Get(id uint64) (*Asset, bool) {
	r.RLock()
	defer r.RUnlock()

	a, _ := r.read(id)
	if nil == a {
		return nil, false
	}
	return a, true
}

// Owned - all assets of an owner
func (r *Registry) Owned(owner identity.Principal) []*Asset {
	return r.scan(func(a *Asset) bool {
		return owner == a.Owner
	})
}

// All - every asset
func (r *Registry) All() []*Asset {
	return r.scan(func(a *Asset) bool {
		return true
	})
}

// ForSale - assets currently offered for sale
func (r *Registry) ForSale() []*Asset {
	return r.scan(func(a *Asset) bool {
		return a.IsForSale
	})
}

// ByCategory - case insensitive exact category match
func (r *Registry) ByCategory(category string) []*Asset {
	category = strings.ToLower(category)
	return r.scan(func(a *Asset) bool {
		return category == strings.ToLower(a.Category)
	})
}

// Search - case insensitive substring match on name, description,
// category or any tag
func (r *Registry) Search(query string) []*Asset {
	query = strings.ToLower(query)
	return r.scan(func(a *Asset) bool {
		if strings.Contains(strings.ToLower(a.Name), query) ||
			strings.Contains(strings.ToLower(a.Description), query) ||
			strings.Contains(strings.ToLower(a.Category), query) {
			return true
		}
		for _, tag := range a.Tags {
			if strings.Contains(strings.ToLower(tag), query) {
				return true
			}
		}
		return false
	})
}

// Total - number of assets
func (r *Registry) Total() uint64 {
	r.RLock()
	defer r.RUnlock()

	return uint64(r.assets.Count())
}

// GetFile - fetch file content
func (r *Registry) GetFile(hash string) ([]byte, bool) {
	r.RLock()
	defer r.RUnlock()

	data, err := r.files.Get(hash)
	if fault.FileNotFound == err {
		return nil, false
	}
	if nil != err {
		r.log.Errorf("get file: %q  error: %s", hash, err)
		return nil, false
	}
	return data, true
}
