// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/assetd/identity"
)

func runApp(arguments ...string) (string, error) {
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"asset-cli"}, arguments...))
	return out.String(), err
}

func TestIdentity(t *testing.T) {
	dir, err := ioutil.TempDir("", "asset-cli")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	cert, key, err := certgen.NewTLSCertPair("asset-cli test", time.Now().Add(time.Hour), false, nil)
	if nil != err {
		t.Fatalf("certificate error: %s", err)
	}
	certificateFile := filepath.Join(dir, "client.crt")
	keyFile := filepath.Join(dir, "client.key")
	_ = ioutil.WriteFile(certificateFile, cert, 0600)
	_ = ioutil.WriteFile(keyFile, key, 0600)

	expected, err := identity.FromCertificateFile(certificateFile)
	assert.Nil(t, err, "wrong certificate")

	out, err := runApp("--certificate", certificateFile, "--key", keyFile, "identity")
	assert.Nil(t, err, "identity error")
	assert.Equal(t, expected.String(), strings.TrimSpace(out), "wrong principal")

	_, err = runApp("--certificate", certificateFile, "identity")
	assert.NotNil(t, err, "accepted certificate without key")

	_, err = runApp("identity")
	assert.Equal(t, ErrNoCertificate, err, "identity without certificate")
}

func TestArgumentChecks(t *testing.T) {
	_, err := runApp("register", "--name", "x")
	assert.Equal(t, ErrMissingContent, err, "register without content")

	_, err = runApp("register", "--name", "x", "--url", "https://example.com/x", "--file", "x.bin")
	assert.Equal(t, ErrTooManyContents, err, "register with both contents")

	_, err = runApp("get")
	assert.Equal(t, ErrMissingId, err, "get without id")

	_, err = runApp("transfer", "--id", "1", "--receiver", "not a principal")
	assert.NotNil(t, err, "transfer to invalid principal")
}

func TestContentHash(t *testing.T) {
	assert.Equal(t, "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a", contentHash(nil), "wrong empty hash")
}

func TestVersion(t *testing.T) {
	out, err := runApp("version")
	assert.Nil(t, err, "version error")
	assert.Equal(t, version+"\n", out, "wrong version")
}
