// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/pem"
	"io/ioutil"
	"os"
	"time"

	"github.com/bitmark-inc/certgen"

	"github.com/bitmark-inc/assetd/fault"
	"github.com/bitmark-inc/assetd/identity"
	"github.com/bitmark-inc/assetd/util"
)

const (
	serverValidity = 10 * 365 * 24 * time.Hour
	clientValidity = 5 * 365 * 24 * time.Hour
)

// create a self-signed certificate
func makeSelfSignedCertificate(name string, certificateFileName string, privateKeyFileName string, validity time.Duration, override bool, extraHosts []string) error {

	if util.EnsureFileExists(certificateFileName) {
		return fault.CertificateFileAlreadyExists
	}

	if util.EnsureFileExists(privateKeyFileName) {
		return fault.KeyFileAlreadyExists
	}

	org := "assetd self signed cert for: " + name
	validUntil := time.Now().Add(validity)
	cert, key, err := certgen.NewTLSCertPair(org, validUntil, override, extraHosts)
	if err != nil {
		return err
	}

	if err = ioutil.WriteFile(certificateFileName, cert, 0666); err != nil {
		return err
	}

	if err = ioutil.WriteFile(privateKeyFileName, key, 0600); err != nil {
		_ = os.Remove(certificateFileName)
		return err
	}

	return nil
}

// principal of the first certificate in PEM text
func certificatePrincipal(certificate string) (identity.Principal, error) {
	block, _ := pem.Decode([]byte(certificate))
	if nil == block || "CERTIFICATE" != block.Type {
		return "", fault.InvalidPrincipal
	}
	return identity.FromCertificate(block.Bytes), nil
}
