// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/assetd/asset"
	"github.com/bitmark-inc/assetd/counter"
	"github.com/bitmark-inc/assetd/fault"
	"github.com/bitmark-inc/assetd/rpc/certificate"
	"github.com/bitmark-inc/assetd/rpc/handler"
	"github.com/bitmark-inc/assetd/rpc/listeners"
	"github.com/bitmark-inc/assetd/rpc/server"
)

const (
	rpcName   = "client_rpc"
	httpsName = "https_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	listeners []listeners.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// number of open client RPC connections
var connectionCountRPC counter.Counter

// Initialise - start the RPC and HTTPS listeners
func Initialise(rpcConfiguration *listeners.RPCConfiguration, httpsConfiguration *listeners.HTTPSConfiguration, version string, registry asset.Interface) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to Start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	if nil == registry {
		log.Critical("asset registry is not initialised")
		return fault.NotInitialised
	}

	tlsConfig, principal, err := certificate.Get(log, rpcName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}
	log.Infof("%s: server principal: %s", rpcName, principal)

	s := server.Create(log, version, &connectionCountRPC, registry)

	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		log,
		&connectionCountRPC,
		s,
		tlsConfig,
	)
	if nil != err {
		return err
	}
	err = rpcListener.Serve()
	if nil != err {
		rpcListener.Stop()
		return err
	}
	globalData.listeners = []listeners.Listener{rpcListener}

	httpsListener, err := initialiseHTTPS(log, httpsConfiguration, version, s, registry)
	if nil != err {
		stopAll()
		return err
	}
	if nil != httpsListener {
		globalData.listeners = append(globalData.listeners, httpsListener)
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

// the HTTPS bridge is optional
func initialiseHTTPS(log *logger.L, configuration *listeners.HTTPSConfiguration, version string, s *server.Server, registry asset.Interface) (listeners.Listener, error) {
	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", httpsName)
		return nil, nil
	}

	tlsConfig, principal, err := certificate.Get(log, httpsName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return nil, err
	}
	log.Infof("%s: server principal: %s", httpsName, principal)

	h := handler.New(log, s, time.Now(), version, configuration.MaximumConnections, registry)

	l, err := listeners.NewHTTPS(configuration, log, tlsConfig, h)
	if nil != err {
		return nil, err
	}
	err = l.Serve()
	if nil != err {
		l.Stop()
		return nil, err
	}
	return l, nil
}

// close everything started so far
func stopAll() {
	for _, l := range globalData.listeners {
		l.Stop()
	}
	globalData.listeners = nil
}

// Finalise - stop all background tasks
func Finalise() error {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	stopAll()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
