// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/assetd/fault"
	"github.com/bitmark-inc/assetd/rpc"
	"github.com/bitmark-inc/assetd/rpc/fixtures"
	"github.com/bitmark-inc/assetd/rpc/listeners"
	"github.com/bitmark-inc/assetd/rpc/mocks"
)

func TestInitialiseFinalise(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockRegistry(ctl)

	cert, key, err := fixtures.KeyPair("setup test", "127.0.0.1")
	if nil != err {
		t.Fatalf("key pair error: %s", err)
	}

	rpcConfiguration := listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{"127.0.0.1:0"},
		Certificate:        cert,
		PrivateKey:         key,
	}
	httpsConfiguration := listeners.HTTPSConfiguration{
		MaximumConnections: 5,
		Listen:             []string{"127.0.0.1:0"},
		Certificate:        cert,
		PrivateKey:         key,
	}

	assert.Equal(t, fault.NotInitialised, rpc.Finalise(), "finalise before initialise")

	err = rpc.Initialise(&rpcConfiguration, &httpsConfiguration, "1.0", r)
	assert.Nil(t, err, "wrong initialise")

	err = rpc.Initialise(&rpcConfiguration, &httpsConfiguration, "1.0", r)
	assert.Equal(t, fault.AlreadyInitialised, err, "wrong second initialise")

	assert.Nil(t, rpc.Finalise(), "wrong finalise")
	assert.Equal(t, fault.NotInitialised, rpc.Finalise(), "wrong second finalise")
}

func TestInitialiseInvalidCertificate(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	rpcConfiguration := listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{"127.0.0.1:0"},
		Certificate:        "not a certificate",
		PrivateKey:         "not a key",
	}

	err := rpc.Initialise(&rpcConfiguration, &listeners.HTTPSConfiguration{}, "1.0", mocks.NewMockRegistry(ctl))
	assert.NotNil(t, err, "invalid certificate should fail")
	assert.Equal(t, fault.NotInitialised, rpc.Finalise(), "should not be initialised")
}
