// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/assetd/asset"
)

func runUpload(c *cli.Context) error {

	fileName := c.String("file")
	if "" == fileName {
		return fmt.Errorf("file name is required")
	}

	data, hash, _, err := readContent(fileName)
	if nil != err {
		return err
	}
	if h := c.String("hash"); "" != h {
		hash = h
	}

	client, m, err := newClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	if m.verbose {
		fmt.Fprintf(m.e, "hash: %s\n", hash)
		fmt.Fprintf(m.e, "size: %d\n", len(data))
	}

	stored, err := client.UploadFile(hash, data)
	if nil != err {
		return err
	}

	printJson(m.w, map[string]string{
		"fileHash": stored,
		"fileUrl":  asset.InternalURL(stored),
	})

	return nil
}

func runDownload(c *cli.Context) error {

	hash := c.String("hash")
	if "" == hash {
		return fmt.Errorf("hash is required")
	}

	client, m, err := newClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	data, found, err := client.GetFile(hash)
	if nil != err {
		return err
	}
	if !found {
		return ErrFileNotFound
	}

	if output := c.String("output"); "" != output {
		return ioutil.WriteFile(output, data, 0600)
	}

	_, err = m.w.Write(data)
	return err
}
