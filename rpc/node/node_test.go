// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/assetd/counter"
	"github.com/bitmark-inc/assetd/fault"
	"github.com/bitmark-inc/assetd/identity"
	"github.com/bitmark-inc/assetd/rpc/fixtures"
	"github.com/bitmark-inc/assetd/rpc/mocks"
	"github.com/bitmark-inc/assetd/rpc/node"
)

func TestNodeInfo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockRegistry(ctl)
	r.EXPECT().Total().Return(uint64(12)).Times(1)

	ctr := counter.Counter(3)
	n := node.New(
		logger.New(fixtures.LogCategory),
		node.NewLimiter(),
		time.Now().Add(-time.Minute),
		"1.2.3",
		&ctr,
		r,
		fixtures.Owner2,
	)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong info")
	assert.Equal(t, "1.2.3", reply.Version, "wrong version")
	assert.Equal(t, uint64(3), reply.RPCs, "wrong rpc count")
	assert.Equal(t, uint64(12), reply.Assets, "wrong asset count")
	assert.Equal(t, fixtures.Owner2, reply.Caller, "wrong caller")

	uptime, err := time.ParseDuration(reply.Uptime)
	assert.Nil(t, err, "wrong uptime format")
	assert.True(t, uptime >= time.Minute, "wrong uptime")
}

func TestNodeInfoWithoutRegistry(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctr := counter.Counter(0)
	n := node.New(
		logger.New(fixtures.LogCategory),
		node.NewLimiter(),
		time.Now(),
		"1",
		&ctr,
		nil,
		identity.Anonymous,
	)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Equal(t, fault.NotInitialised, err, "wrong error")
}
