// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package identity - caller principals
//
// A principal is the base58 text of the SHA3-256 digest of the DER
// bytes of the certificate presented by a client during the TLS
// handshake.  A connection that presents no certificate is the
// anonymous principal.
package identity

import (
	"crypto/tls"
	"encoding/pem"
	"io/ioutil"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/assetd/fault"
)

// digest size of a principal
const principalLength = 32

// Principal - text form of a caller identity
type Principal string

// Anonymous - the sentinel for callers without a certificate
const Anonymous Principal = "anonymous"

// FromCertificate - derive the principal for a DER encoded certificate
func FromCertificate(certificate []byte) Principal {
	digest := sha3.Sum256(certificate)
	return Principal(base58.Encode(digest[:]))
}

// FromConnectionState - principal of the remote end of a completed
// TLS handshake
func FromConnectionState(state *tls.ConnectionState) Principal {
	if nil == state || 0 == len(state.PeerCertificates) {
		return Anonymous
	}
	return FromCertificate(state.PeerCertificates[0].Raw)
}

// FromCertificateFile - principal for the first certificate in a PEM file
func FromCertificateFile(fileName string) (Principal, error) {
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return "", err
	}
	block, _ := pem.Decode(data)
	if nil == block || "CERTIFICATE" != block.Type {
		return "", fault.InvalidPrincipal
	}
	return FromCertificate(block.Bytes), nil
}

// Parse - validate the text form of a principal
func Parse(s string) (Principal, error) {
	if string(Anonymous) == s {
		return Anonymous, nil
	}
	digest, err := base58.Decode(s)
	if nil != err || principalLength != len(digest) {
		return "", fault.InvalidPrincipal
	}
	return Principal(s), nil
}

// IsAnonymous - true for the anonymous sentinel and the zero value
func (p Principal) IsAnonymous() bool {
	return Anonymous == p || "" == p
}

// String - text form
func (p Principal) String() string {
	return string(p)
}
