// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate

import (
	"crypto/tls"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/assetd/fault"
	"github.com/bitmark-inc/assetd/identity"
	"github.com/bitmark-inc/assetd/rpc/fixtures"
)

func TestGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	cer, key, err := fixtures.KeyPair("certificate test", "localhost")
	assert.Nil(t, err, "key pair")

	tlsConfig, principal, err := Get(
		logger.New(fixtures.LogCategory),
		"test",
		cer,
		key,
	)
	assert.Nil(t, err, "wrong Get")

	pair, _ := tls.X509KeyPair([]byte(cer), []byte(key))

	assert.Equal(t, identity.FromCertificate(pair.Certificate[0]), principal, "wrong principal")
	assert.Equal(t, pair.Certificate, tlsConfig.Certificates[0].Certificate, "wrong config")
	assert.NotNil(t, tlsConfig.Certificates[0].Leaf, "leaf not parsed")
	assert.Equal(t, tls.RequestClientCert, tlsConfig.ClientAuth, "client certificate not requested")
	assert.Equal(t, uint16(tls.VersionTLS12), tlsConfig.MinVersion, "wrong minimum version")
}

func TestGetWhenExpired(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	// fixture certificates are valid for one hour
	cer, key, err := fixtures.KeyPair("certificate test")
	assert.Nil(t, err, "key pair")

	log := logger.New(fixtures.LogCategory)

	_, _, err = get(log, "test", cer, key, time.Now().Add(2*time.Hour))
	assert.Equal(t, fault.CertificateExpired, err, "expired certificate accepted")

	// close to expiry is only a warning
	_, principal, err := get(log, "test", cer, key, time.Now().Add(30*time.Minute))
	assert.Nil(t, err, "nearly expired certificate rejected")
	assert.False(t, principal.IsAnonymous(), "anonymous server principal")
}

func TestGetWhenInvalidKey(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	cer, _, err := fixtures.KeyPair("certificate test")
	assert.Nil(t, err, "key pair")

	_, otherKey, err := fixtures.KeyPair("other")
	assert.Nil(t, err, "key pair")

	_, _, err = Get(logger.New(fixtures.LogCategory), "test", cer, otherKey)
	assert.NotNil(t, err, "mismatched key accepted")

	_, _, err = Get(logger.New(fixtures.LogCategory), "test", "", "")
	assert.NotNil(t, err, "empty key pair accepted")
}
