// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"io/ioutil"
	"net/http"
	"strings"

	"github.com/urfave/cli"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/assetd/command/asset-cli/rpccalls"
	"github.com/bitmark-inc/assetd/fault"
	"github.com/bitmark-inc/assetd/identity"
)

// connect using the global flags
func newClient(c *cli.Context) (*rpccalls.Client, *metadata, error) {
	m := c.App.Metadata["config"].(*metadata)

	client, err := rpccalls.NewClient(m.connect, m.certificate, m.key, m.verbose, m.e)
	if nil != err {
		return nil, nil, err
	}
	return client, m, nil
}

// principal of the client certificate
func selfPrincipal(m *metadata) (identity.Principal, error) {
	if "" == m.certificate {
		return "", ErrNoCertificate
	}
	return identity.FromCertificateFile(m.certificate)
}

func checkId(c *cli.Context) (uint64, error) {
	id := c.Uint64("id")
	if 0 == id {
		return 0, ErrMissingId
	}
	return id, nil
}

func checkPrincipal(name string, s string) (string, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return "", fault.InvalidError(name + " is required")
	}
	if _, err := identity.Parse(s); nil != err {
		return "", err
	}
	return s, nil
}

// content digest used as the file hash
func contentHash(data []byte) string {
	digest := sha3.Sum256(data)
	return hex.EncodeToString(digest[:])
}

// read a content file and derive its hash and MIME type
func readContent(fileName string) ([]byte, string, string, error) {
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, "", "", err
	}
	return data, contentHash(data), http.DetectContentType(data), nil
}
