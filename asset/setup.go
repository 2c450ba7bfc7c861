// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/assetd/blob"
	"github.com/bitmark-inc/assetd/fault"
	"github.com/bitmark-inc/assetd/identifier"
	"github.com/bitmark-inc/assetd/storage"
)

// Handles - storage pools used by the registry
type Handles struct {
	Assets  storage.Handle
	Counter storage.Handle
}

// globals
type globalDataType struct {
	sync.RWMutex
	log      *logger.L
	registry *Registry
}

// global storage
var globalData globalDataType

// Initialise - create the process wide registry
func Initialise(handles Handles, files blob.Store) error {
	globalData.Lock()
	defer globalData.Unlock()

	if nil != globalData.registry {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("asset")
	globalData.log.Info("starting…")

	ids := identifier.New(handles.Counter)

	// the counter must never hand out a stored identifier again
	if last, found := handles.Assets.LastElement(); found {
		if id, ok := keyId(last.Key); ok && ids.Reseed(id) {
			globalData.log.Warnf("identifier counter behind stored assets, reseeded to: %d", id)
		}
	}
	globalData.registry = New(globalData.log, handles.Assets, ids, files, nil)

	globalData.log.Infof("assets: %d  last identifier: %d", handles.Assets.Count(), ids.Current())

	return nil
}

// Get - the process wide registry, nil before Initialise
func Get() Interface {
	globalData.RLock()
	defer globalData.RUnlock()

	if nil == globalData.registry {
		return nil
	}
	return globalData.registry
}

// Finalise - release the process wide registry
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if nil == globalData.registry {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")

	// wait for any operation in progress
	r := globalData.registry
	r.Lock()
	globalData.registry = nil
	r.Unlock()

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
