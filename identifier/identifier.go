// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identifier

import (
	"sync"

	"github.com/bitmark-inc/assetd/storage"
)

// the single counter record
var counterKey = []byte{0x00}

// Allocator - hands out strictly increasing asset identifiers
type Allocator struct {
	sync.Mutex
	pool storage.Handle
}

// New - create an allocator over a counter pool
func New(pool storage.Handle) *Allocator {
	return &Allocator{
		pool: pool,
	}
}

// Next - persist and return the next identifier
//
// the first identifier is 1
func (a *Allocator) Next() uint64 {
	a.Lock()
	defer a.Unlock()

	current, _ := a.pool.GetN(counterKey)
	next := current + 1
	a.pool.PutN(counterKey, next)
	return next
}

// Reseed - raise the counter to at least minimum
//
// returns true if the counter was behind
func (a *Allocator) Reseed(minimum uint64) bool {
	a.Lock()
	defer a.Unlock()

	current, _ := a.pool.GetN(counterKey)
	if current >= minimum {
		return false
	}
	a.pool.PutN(counterKey, minimum)
	return true
}

// Current - the last allocated identifier, zero if none
func (a *Allocator) Current() uint64 {
	a.Lock()
	defer a.Unlock()

	current, _ := a.pool.GetN(counterKey)
	return current
}
