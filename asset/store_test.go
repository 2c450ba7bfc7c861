// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/assetd/asset"
	"github.com/bitmark-inc/assetd/fault"
	"github.com/bitmark-inc/assetd/identifier"
	"github.com/bitmark-inc/assetd/rpc/fixtures"
	"github.com/bitmark-inc/assetd/rpc/mocks"
	"github.com/bitmark-inc/assetd/storage"
)

// registry over a mocked file store
func newMockedRegistry(files *mocks.MockStore) *asset.Registry {
	return asset.New(
		logger.New(fixtures.LogCategory),
		storage.Pool.Assets,
		identifier.New(storage.Pool.Counter),
		files,
		time.Now,
	)
}

func TestUploadWithFileStoreFailure(t *testing.T) {
	setupTest(t)
	defer teardownTest()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	files := mocks.NewMockStore(ctl)
	gomock.InOrder(
		files.EXPECT().Has("hash-ship").Return(false, nil).Times(1),
		files.EXPECT().Replace("hash-ship", []byte("data")).Return(fault.FileTooLarge).Times(1),
	)

	r := newMockedRegistry(files)

	_, err := r.UploadWithFile(sampleInput("ship", "Vehicles"), []byte("data"), fixtures.Owner1)
	assert.Equal(t, fault.FileTooLarge, err, "wrong error")
	assert.Equal(t, uint64(0), r.Total(), "asset created after store failure")
	assert.Equal(t, 0, len(r.All()), "asset listed after store failure")
}

func TestUploadWithFileReplacesExisting(t *testing.T) {
	setupTest(t)
	defer teardownTest()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	files := mocks.NewMockStore(ctl)
	gomock.InOrder(
		files.EXPECT().Has("hash-ship").Return(true, nil).Times(1),
		files.EXPECT().Replace("hash-ship", []byte("new")).Return(nil).Times(1),
	)

	r := newMockedRegistry(files)

	a, err := r.UploadWithFile(sampleInput("ship", "Vehicles"), []byte("new"), fixtures.Owner1)
	assert.Nil(t, err, "upload error")
	assert.Equal(t, asset.InternalURL("hash-ship"), a.FileUrl, "wrong url")
}

func TestFileStoreErrors(t *testing.T) {
	setupTest(t)
	defer teardownTest()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	files := mocks.NewMockStore(ctl)
	files.EXPECT().Put("hash", []byte("x")).Return("", fault.FileAlreadyExists).Times(1)
	files.EXPECT().Get("hash").Return(nil, fault.FileNotFound).Times(1)
	files.EXPECT().Get("broken").Return(nil, fault.InvalidCursor).Times(1)

	r := newMockedRegistry(files)

	_, err := r.UploadFile("hash", []byte("x"), fixtures.Owner1)
	assert.Equal(t, fault.FileAlreadyExists, err, "wrong put error")

	_, found := r.GetFile("hash")
	assert.False(t, found, "missing file found")

	_, found = r.GetFile("broken")
	assert.False(t, found, "failed read reported as found")

	// anonymous callers never reach the store
	_, err = r.UploadFile("other", []byte("x"), "")
	assert.Equal(t, fault.Unauthorised, err, "anonymous upload accepted")
}
