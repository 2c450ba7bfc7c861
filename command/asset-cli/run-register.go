// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/assetd/asset"
)

func runRegister(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name := strings.TrimSpace(c.String("name"))
	if "" == name {
		return fmt.Errorf("asset name is required")
	}

	fileName := c.String("file")
	url := c.String("url")
	if "" == fileName && "" == url {
		return ErrMissingContent
	}
	if "" != fileName && "" != url {
		return ErrTooManyContents
	}

	input := &asset.Input{
		Name:        name,
		Description: c.String("description"),
		Category:    c.String("category"),
		Tags:        c.StringSlice("tag"),
		Price:       c.Uint64("price"),
		FileHash:    c.String("hash"),
		FileUrl:     url,
		FileType:    c.String("type"),
		FileSize:    c.Uint64("size"),
	}
	if preview := c.String("preview"); "" != preview {
		input.PreviewImageUrl = &preview
	}

	var data []byte
	if "" != fileName {
		content, hash, mimeType, err := readContent(fileName)
		if nil != err {
			return err
		}
		data = content
		if "" == input.FileHash {
			input.FileHash = hash
		}
		if "" == input.FileType {
			input.FileType = mimeType
		}
		input.FileSize = uint64(len(data))
	}

	if m.verbose {
		fmt.Fprintf(m.e, "name: %q\n", input.Name)
		fmt.Fprintf(m.e, "hash: %s\n", input.FileHash)
		fmt.Fprintf(m.e, "type: %s\n", input.FileType)
		fmt.Fprintf(m.e, "size: %d\n", input.FileSize)
	}

	client, _, err := newClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Register(input, data)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
