// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"crypto/tls"
	"fmt"
	"os"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/assetd/identity"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// principals for tests that do not need a real certificate
var (
	Owner1 = identity.FromCertificate([]byte("owner one"))
	Owner2 = identity.FromCertificate([]byte("owner two"))
	Owner3 = identity.FromCertificate([]byte("owner three"))
)

func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

// KeyPair - PEM encoded certificate and private key of a fresh
// self-signed key pair
func KeyPair(organisation string, hosts ...string) (string, string, error) {
	cert, key, err := certgen.NewTLSCertPair(organisation, time.Now().Add(time.Hour), false, hosts)
	if nil != err {
		return "", "", err
	}
	return string(cert), string(key), nil
}

// Certificate - a fresh self-signed key pair and the principal it represents
func Certificate(organisation string, hosts ...string) (tls.Certificate, identity.Principal, error) {
	cert, key, err := KeyPair(organisation, hosts...)
	if nil != err {
		return tls.Certificate{}, "", err
	}

	keyPair, err := tls.X509KeyPair([]byte(cert), []byte(key))
	if nil != err {
		return tls.Certificate{}, "", err
	}

	return keyPair, identity.FromCertificate(keyPair.Certificate[0]), nil
}
