// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blob_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/assetd/blob"
	"github.com/bitmark-inc/assetd/fault"
	"github.com/bitmark-inc/assetd/rpc/fixtures"
	"github.com/bitmark-inc/assetd/storage"
)

const databaseName = "test-blob"

func removeDatabases() {
	matches, _ := filepath.Glob(databaseName + "-*.leveldb")
	for _, m := range matches {
		os.RemoveAll(m)
	}
}

func setupTest(t *testing.T) {
	fixtures.SetupTestLogger()
	removeDatabases()
	err := storage.Initialise(databaseName, storage.ReadWrite)
	assert.Nil(t, err, "storage initialise")
}

func teardownTest() {
	storage.Finalise()
	removeDatabases()
	fixtures.TeardownTestLogger()
}

// behaviour shared by all backends
func checkStore(t *testing.T, s blob.Store) {
	found, err := s.Has("h1")
	assert.Nil(t, err, "has error")
	assert.False(t, found, "empty store has file")

	_, err = s.Get("h1")
	assert.Equal(t, fault.FileNotFound, err, "missing file")

	hash, err := s.Put("h1", []byte("first"))
	assert.Nil(t, err, "first put")
	assert.Equal(t, "h1", hash, "wrong hash returned")

	_, err = s.Put("h1", []byte("second"))
	assert.Equal(t, fault.FileAlreadyExists, err, "duplicate put")

	data, err := s.Get("h1")
	assert.Nil(t, err, "get error")
	assert.Equal(t, []byte("first"), data, "put overwrote file")

	err = s.Replace("h1", []byte("third"))
	assert.Nil(t, err, "replace error")

	data, err = s.Get("h1")
	assert.Nil(t, err, "get error")
	assert.Equal(t, []byte("third"), data, "replace did not overwrite")

	found, err = s.Has("h1")
	assert.Nil(t, err, "has error")
	assert.True(t, found, "file not found")
}

func TestPoolStore(t *testing.T) {
	setupTest(t)
	defer teardownTest()

	checkStore(t, blob.NewPoolStore(storage.Pool.Files))
	assert.Equal(t, 1, storage.Pool.Files.Count(), "wrong file count")
}

func TestPoolStorePersistence(t *testing.T) {
	setupTest(t)
	defer teardownTest()

	s := blob.NewPoolStore(storage.Pool.Files)
	_, err := s.Put("persist", []byte("content"))
	assert.Nil(t, err, "put error")

	storage.Finalise()
	err = storage.Initialise(databaseName, storage.ReadWrite)
	assert.Nil(t, err, "storage re-initialise")

	data, err := blob.NewPoolStore(storage.Pool.Files).Get("persist")
	assert.Nil(t, err, "get error")
	assert.Equal(t, []byte("content"), data, "file lost on reopen")
}

func TestCachedPoolStore(t *testing.T) {
	setupTest(t)
	defer teardownTest()

	c, err := blob.NewCache(blob.NewPoolStore(storage.Pool.Files), 4)
	assert.Nil(t, err, "cache error")

	checkStore(t, c)
}

func TestNew(t *testing.T) {
	setupTest(t)
	defer teardownTest()

	s, err := blob.New(&blob.Configuration{}, storage.Pool.Files)
	assert.Nil(t, err, "default store")
	assert.IsType(t, &blob.PoolStore{}, s, "default is not leveldb")

	s, err = blob.New(&blob.Configuration{Type: "LevelDB", CacheSize: 10}, storage.Pool.Files)
	assert.Nil(t, err, "cached store")
	assert.IsType(t, &blob.Cache{}, s, "cache not applied")

	_, err = blob.New(&blob.Configuration{Type: "tape"}, storage.Pool.Files)
	assert.Equal(t, fault.UnsupportedFileStore, err, "unknown store type")

	_, err = blob.New(&blob.Configuration{Type: "s3"}, storage.Pool.Files)
	assert.NotNil(t, err, "s3 without bucket")
}
