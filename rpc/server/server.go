// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/assetd/asset"
	"github.com/bitmark-inc/assetd/counter"
	"github.com/bitmark-inc/assetd/identity"
	"github.com/bitmark-inc/assetd/rpc/assets"
	"github.com/bitmark-inc/assetd/rpc/files"
	"github.com/bitmark-inc/assetd/rpc/node"
)

// Connector - produce an RPC server bound to one caller
type Connector interface {
	Connection(identity.Principal) *rpc.Server
}

// Server - shared state behind every connection
//
// the limiters are common to all connections so that opening more
// connections does not raise the request rate
type Server struct {
	log      *logger.L
	start    time.Time
	version  string
	count    *counter.Counter
	registry asset.Interface

	assetsLimiter *rate.Limiter
	filesLimiter  *rate.Limiter
	nodeLimiter   *rate.Limiter
}

// Create - the shared state for all connections
func Create(log *logger.L, version string, rpcCount *counter.Counter, registry asset.Interface) *Server {
	return &Server{
		log:           log,
		start:         time.Now().UTC(),
		version:       version,
		count:         rpcCount,
		registry:      registry,
		assetsLimiter: assets.NewLimiter(),
		filesLimiter:  files.NewLimiter(),
		nodeLimiter:   node.NewLimiter(),
	}
}

// Connection - an RPC server whose services act for the caller
func (s *Server) Connection(caller identity.Principal) *rpc.Server {
	server := rpc.NewServer()

	_ = server.Register(assets.New(s.log, s.assetsLimiter, s.registry, caller))
	_ = server.Register(files.New(s.log, s.filesLimiter, s.registry, caller))
	_ = server.Register(node.New(s.log, s.nodeLimiter, s.start, s.version, s.count, s.registry, caller))

	return server
}
