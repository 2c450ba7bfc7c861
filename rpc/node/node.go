// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/assetd/asset"
	"github.com/bitmark-inc/assetd/counter"
	"github.com/bitmark-inc/assetd/fault"
	"github.com/bitmark-inc/assetd/identity"
	"github.com/bitmark-inc/assetd/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Start    time.Time
	Version  string
	Registry asset.Interface
	Caller   identity.Principal
	counter  *counter.Counter
}

// NewLimiter - the limiter shared by all connections
func NewLimiter() *rate.Limiter {
	return rate.NewLimiter(rateLimitNode, rateBurstNode)
}

// New - create the node service for a caller
func New(log *logger.L, limiter *rate.Limiter, start time.Time, version string, counter *counter.Counter, registry asset.Interface, caller identity.Principal) *Node {
	return &Node{
		Log:      log,
		Limiter:  limiter,
		Start:    start,
		Version:  version,
		Registry: registry,
		Caller:   caller,
		counter:  counter,
	}
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Version string             `json:"version"`
	Uptime  string             `json:"uptime"`
	RPCs    uint64             `json:"rpcs"`
	Assets  uint64             `json:"assets,string"`
	Caller  identity.Principal `json:"caller"`
}

// Info - return some information about this node
//
// the caller field lets a client discover its own principal
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	if nil == node.Registry {
		return fault.NotInitialised
	}

	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.RPCs = node.counter.Uint64()
	reply.Assets = node.Registry.Total()
	reply.Caller = node.Caller
	return nil
}
