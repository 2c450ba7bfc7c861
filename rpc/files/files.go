// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package files

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/assetd/asset"
	"github.com/bitmark-inc/assetd/fault"
	"github.com/bitmark-inc/assetd/identity"
	"github.com/bitmark-inc/assetd/rpc/ratelimit"
)

const (
	rateLimitFiles = 50
	rateBurstFiles = 400

	// MaximumFileSize - largest blob accepted in one request
	MaximumFileSize = 64 * 1024 * 1024
)

// Files - type for the RPC
type Files struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Registry asset.Interface
	Caller   identity.Principal
}

// NewLimiter - the limiter shared by all connections
//
// tokens are charged per started block of file data
func NewLimiter() *rate.Limiter {
	return rate.NewLimiter(rateLimitFiles, rateBurstFiles)
}

// New - create the file service for a caller
func New(log *logger.L, limiter *rate.Limiter, registry asset.Interface, caller identity.Principal) *Files {
	return &Files{
		Log:      log,
		Limiter:  limiter,
		Registry: registry,
		Caller:   caller,
	}
}

// ---

// UploadArguments - arguments for RPC request
type UploadArguments struct {
	FileHash string `json:"fileHash"`
	Data     []byte `json:"data"`
}

// UploadReply - results from upload RPC request
type UploadReply struct {
	FileHash string `json:"fileHash"`
}

// Upload - store a blob that is not yet held
func (files *Files) Upload(arguments *UploadArguments, reply *UploadReply) error {
	if err := ratelimit.LimitSize(files.Limiter, len(arguments.Data), MaximumFileSize); nil != err {
		return err
	}

	if "" == arguments.FileHash {
		return fault.MissingParameters
	}

	files.Log.Infof("Files.Upload: hash: %q  size: %d  caller: %s", arguments.FileHash, len(arguments.Data), files.Caller)

	hash, err := files.Registry.UploadFile(arguments.FileHash, arguments.Data, files.Caller)
	if nil != err {
		return err
	}
	reply.FileHash = hash
	return nil
}

// ---

// GetArguments - arguments for RPC request
type GetArguments struct {
	FileHash string `json:"fileHash"`
}

// GetReply - results from get RPC request
type GetReply struct {
	Found bool   `json:"found"`
	Data  []byte `json:"data"`
}

// Get - fetch a blob, an unknown hash is not an error
func (files *Files) Get(arguments *GetArguments, reply *GetReply) error {
	if err := ratelimit.Limit(files.Limiter); nil != err {
		return err
	}

	if "" == arguments.FileHash {
		return fault.MissingParameters
	}

	data, found := files.Registry.GetFile(arguments.FileHash)
	if found {
		if err := ratelimit.LimitSize(files.Limiter, len(data), MaximumFileSize); nil != err {
			return err
		}
	}
	reply.Found = found
	reply.Data = data
	return nil
}
