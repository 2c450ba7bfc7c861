// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate

import (
	"crypto/tls"
	"crypto/x509"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/assetd/fault"
	"github.com/bitmark-inc/assetd/identity"
)

// warn when a server certificate is this close to expiry
const expiryWarning = 30 * 24 * time.Hour

// Get - verify a PEM certificate and key pair and return a server
// configuration that asks clients for their certificate, together
// with the principal the server certificate itself represents
//
// client certificates are not verified against any authority, a
// client is identified by the digest of the certificate it presents
func Get(log *logger.L, name, certificate, key string) (*tls.Config, identity.Principal, error) {
	return get(log, name, certificate, key, time.Now())
}

func get(log *logger.L, name, certificate, key string, now time.Time) (*tls.Config, identity.Principal, error) {

	keyPair, err := tls.X509KeyPair([]byte(certificate), []byte(key))
	if err != nil {
		log.Errorf("%s failed to load keypair: %v", name, err)
		return nil, "", err
	}

	leaf, err := x509.ParseCertificate(keyPair.Certificate[0])
	if nil != err {
		log.Errorf("%s failed to parse certificate: %v", name, err)
		return nil, "", err
	}
	if now.After(leaf.NotAfter) {
		log.Errorf("%s certificate expired: %s", name, leaf.NotAfter.Format(time.RFC3339))
		return nil, "", fault.CertificateExpired
	}
	if now.Add(expiryWarning).After(leaf.NotAfter) {
		log.Warnf("%s certificate expires soon: %s", name, leaf.NotAfter.Format(time.RFC3339))
	}
	keyPair.Leaf = leaf

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
		ClientAuth: tls.RequestClientCert,
		MinVersion: tls.VersionTLS12,
	}

	return tlsConfiguration, identity.FromCertificate(keyPair.Certificate[0]), nil
}
