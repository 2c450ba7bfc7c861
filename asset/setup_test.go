// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset_test

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/assetd/asset"
	"github.com/bitmark-inc/assetd/blob"
	"github.com/bitmark-inc/assetd/fault"
	"github.com/bitmark-inc/assetd/identifier"
	"github.com/bitmark-inc/assetd/rpc/fixtures"
	"github.com/bitmark-inc/assetd/storage"
)

const databaseName = "test-asset"

// a clock that advances one second on every reading
type testClock struct {
	t time.Time
}

func (c *testClock) now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

func removeDatabases() {
	matches, _ := filepath.Glob(databaseName + "-*.leveldb")
	for _, m := range matches {
		os.RemoveAll(m)
	}
}

func setupTest(t *testing.T) (*asset.Registry, *testClock) {
	fixtures.SetupTestLogger()
	removeDatabases()
	err := storage.Initialise(databaseName, storage.ReadWrite)
	assert.Nil(t, err, "storage initialise")

	return newRegistry(), &testClock{}
}

func newRegistry() *asset.Registry {
	clock := &testClock{t: time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)}
	return asset.New(
		logger.New(fixtures.LogCategory),
		storage.Pool.Assets,
		identifier.New(storage.Pool.Counter),
		blob.NewPoolStore(storage.Pool.Files),
		clock.now,
	)
}

func teardownTest() {
	storage.Finalise()
	removeDatabases()
	fixtures.TeardownTestLogger()
}

// stored bytes of a record
func packedRecord(id uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, id)
	return storage.Pool.Assets.Get(key)
}

func TestInitialiseFinalise(t *testing.T) {
	setupTest(t)
	defer teardownTest()

	assert.Nil(t, asset.Get(), "registry before initialise")

	handles := asset.Handles{
		Assets:  storage.Pool.Assets,
		Counter: storage.Pool.Counter,
	}
	files := blob.NewPoolStore(storage.Pool.Files)

	err := asset.Initialise(handles, files)
	assert.Nil(t, err, "first initialise")

	err = asset.Initialise(handles, files)
	assert.Equal(t, fault.AlreadyInitialised, err, "second initialise")

	r := asset.Get()
	assert.NotNil(t, r, "registry not available")

	a, err := r.Upload(&asset.Input{Name: "global"}, fixtures.Owner1)
	assert.Nil(t, err, "upload error")
	assert.Equal(t, uint64(1), a.Id, "wrong id")

	err = asset.Finalise()
	assert.Nil(t, err, "finalise")
	assert.Nil(t, asset.Get(), "registry after finalise")

	err = asset.Finalise()
	assert.Equal(t, fault.NotInitialised, err, "second finalise")
}

func TestInitialiseReseedsIdentifier(t *testing.T) {
	setupTest(t)
	defer teardownTest()

	handles := asset.Handles{
		Assets:  storage.Pool.Assets,
		Counter: storage.Pool.Counter,
	}
	files := blob.NewPoolStore(storage.Pool.Files)

	err := asset.Initialise(handles, files)
	assert.Nil(t, err, "initialise")
	for i := 0; i < 3; i += 1 {
		_, err = asset.Get().Upload(&asset.Input{Name: "stored"}, fixtures.Owner1)
		assert.Nil(t, err, "upload error")
	}
	asset.Finalise()

	// lose the counter record
	storage.Pool.Counter.PutN([]byte{0x00}, 0)

	err = asset.Initialise(handles, files)
	assert.Nil(t, err, "second initialise")
	defer asset.Finalise()

	a, err := asset.Get().Upload(&asset.Input{Name: "fresh"}, fixtures.Owner2)
	assert.Nil(t, err, "upload error")
	assert.Equal(t, uint64(4), a.Id, "stored identifier reused")

	first, found := asset.Get().Get(1)
	assert.True(t, found, "first asset missing")
	assert.Equal(t, fixtures.Owner1, first.Owner, "first asset overwritten")
}
