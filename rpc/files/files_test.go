// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package files_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/assetd/fault"
	"github.com/bitmark-inc/assetd/identity"
	"github.com/bitmark-inc/assetd/rpc/files"
	"github.com/bitmark-inc/assetd/rpc/fixtures"
	"github.com/bitmark-inc/assetd/rpc/mocks"
)

func TestFilesUpload(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockRegistry(ctl)
	f := files.New(logger.New(fixtures.LogCategory), files.NewLimiter(), r, fixtures.Owner1)

	data := []byte("file content")
	r.EXPECT().UploadFile("hash-1", data, fixtures.Owner1).Return("hash-1", nil).Times(1)
	r.EXPECT().UploadFile("hash-1", data, fixtures.Owner1).Return("", fault.FileAlreadyExists).Times(1)

	arg := files.UploadArguments{FileHash: "hash-1", Data: data}
	var reply files.UploadReply
	err := f.Upload(&arg, &reply)
	assert.Nil(t, err, "wrong upload")
	assert.Equal(t, "hash-1", reply.FileHash, "wrong file hash")

	err = f.Upload(&arg, &reply)
	assert.Equal(t, fault.FileAlreadyExists, err, "wrong error")
}

func TestFilesUploadInvalid(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockRegistry(ctl)
	f := files.New(logger.New(fixtures.LogCategory), files.NewLimiter(), r, identity.Anonymous)

	var reply files.UploadReply
	err := f.Upload(&files.UploadArguments{Data: []byte("x")}, &reply)
	assert.Equal(t, fault.MissingParameters, err, "missing hash")

	err = f.Upload(&files.UploadArguments{FileHash: "big", Data: make([]byte, files.MaximumFileSize+1)}, &reply)
	assert.Equal(t, fault.FileTooLarge, err, "too large")
}

func TestFilesGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockRegistry(ctl)
	f := files.New(logger.New(fixtures.LogCategory), files.NewLimiter(), r, identity.Anonymous)

	r.EXPECT().GetFile("hash-1").Return([]byte("content"), true).Times(1)
	r.EXPECT().GetFile("hash-2").Return(nil, false).Times(1)

	var reply files.GetReply
	err := f.Get(&files.GetArguments{FileHash: "hash-1"}, &reply)
	assert.Nil(t, err, "wrong get")
	assert.True(t, reply.Found, "wrong found")
	assert.Equal(t, []byte("content"), reply.Data, "wrong data")

	reply = files.GetReply{}
	err = f.Get(&files.GetArguments{FileHash: "hash-2"}, &reply)
	assert.Nil(t, err, "missing file is not an error")
	assert.False(t, reply.Found, "wrong found")
	assert.Nil(t, reply.Data, "wrong data")

	err = f.Get(&files.GetArguments{}, &reply)
	assert.Equal(t, fault.MissingParameters, err, "missing hash")
}
