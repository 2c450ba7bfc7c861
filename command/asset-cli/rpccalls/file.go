// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/assetd/rpc/files"
)

// UploadFile - store content under its hash and return the stored hash
func (client *Client) UploadFile(fileHash string, data []byte) (string, error) {
	args := files.UploadArguments{
		FileHash: fileHash,
		Data:     data,
	}

	var reply files.UploadReply
	if err := client.call("Files.Upload", args, &reply); err != nil {
		return "", err
	}

	client.printJson("Upload Reply", reply)
	return reply.FileHash, nil
}

// GetFile - fetch stored content by its hash
func (client *Client) GetFile(fileHash string) ([]byte, bool, error) {
	args := files.GetArguments{
		FileHash: fileHash,
	}

	var reply files.GetReply
	if err := client.call("Files.Get", args, &reply); err != nil {
		return nil, false, err
	}
	return reply.Data, reply.Found, nil
}
