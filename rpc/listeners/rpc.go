// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"net/rpc/jsonrpc"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/assetd/counter"
	"github.com/bitmark-inc/assetd/fault"
	"github.com/bitmark-inc/assetd/identity"
	"github.com/bitmark-inc/assetd/rpc/server"
)

const (
	logName          = "client_rpc"
	handshakeTimeout = 10 * time.Second
)

// RPCConfiguration - configuration file data for RPC setup
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

type rpcListener struct {
	sync.Mutex

	log            *logger.L
	count          *counter.Counter
	connector      server.Connector
	maxConnections uint64
	tlsConfig      *tls.Config
	addresses      []listenAddress
	listeners      []net.Listener
	connections    map[net.Conn]struct{}
	active         sync.WaitGroup
	stopped        bool
}

// NewRPC - JSON-RPC over TLS, one RPC server per connection
func NewRPC(
	configuration *RPCConfiguration,
	log *logger.L,
	count *counter.Counter,
	connector server.Connector,
	tlsConfig *tls.Config,
) (Listener, error) {
	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", logName, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}

	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", logName)
		return nil, fault.MissingParameters
	}

	// validate all listen addresses
	addresses, err := parseListenAddress(configuration.Listen, log)
	if nil != err {
		return nil, err
	}

	r := &rpcListener{
		log:            log,
		count:          count,
		connector:      connector,
		maxConnections: configuration.MaximumConnections,
		tlsConfig:      tlsConfig,
		addresses:      addresses,
		connections:    make(map[net.Conn]struct{}),
	}
	return r, nil
}

// Serve - bind all addresses and start accepting
func (r *rpcListener) Serve() error {
	r.Lock()
	defer r.Unlock()

	for _, listen := range r.addresses {
		r.log.Infof("starting RPC server: %s", listen.address)
		l, err := tls.Listen(listen.network, listen.address, r.tlsConfig)
		if nil != err {
			r.log.Errorf("rpc server listen error: %s", err)
			return err
		}
		r.listeners = append(r.listeners, l)

		go r.accept(l)
	}
	return nil
}

// Addresses - the bound addresses
func (r *rpcListener) Addresses() []net.Addr {
	r.Lock()
	defer r.Unlock()

	addrs := make([]net.Addr, len(r.listeners))
	for i, l := range r.listeners {
		addrs[i] = l.Addr()
	}
	return addrs
}

// Stop - close all sockets and connections
//
// returns once every connection has finished its current call
func (r *rpcListener) Stop() {
	r.Lock()
	r.stopped = true
	for _, l := range r.listeners {
		_ = l.Close()
	}
	for conn := range r.connections {
		_ = conn.Close()
	}
	r.Unlock()

	r.active.Wait()
}

// register an accepted connection, false once stopped
func (r *rpcListener) track(conn net.Conn) bool {
	r.Lock()
	defer r.Unlock()

	if r.stopped {
		return false
	}
	r.connections[conn] = struct{}{}
	r.active.Add(1)
	return true
}

func (r *rpcListener) untrack(conn net.Conn) {
	r.Lock()
	delete(r.connections, conn)
	r.Unlock()

	r.active.Done()
}

func (r *rpcListener) isStopped() bool {
	r.Lock()
	defer r.Unlock()
	return r.stopped
}

func (r *rpcListener) accept(listen net.Listener) {
	for {
		conn, err := listen.Accept()
		if nil != err {
			if !r.isStopped() {
				r.log.Errorf("rpc.server terminated: accept error: %s", err)
			}
			break
		}
		if !r.count.Acquire(r.maxConnections) {
			r.log.Warnf("rpc connection limit reached, reject: %s", conn.RemoteAddr())
			_ = conn.Close()
			continue
		}
		if !r.track(conn) {
			r.count.Decrement()
			_ = conn.Close()
			continue
		}
		go r.serveConnection(conn)
	}
	_ = listen.Close()
	r.log.Info("RPC accept terminated")
}

// complete the handshake to learn the caller, then serve requests
// until the client disconnects
func (r *rpcListener) serveConnection(conn net.Conn) {
	defer r.untrack(conn)
	defer r.count.Decrement()
	defer conn.Close()

	caller := identity.Anonymous
	if tlsConn, ok := conn.(*tls.Conn); ok {
		_ = tlsConn.SetDeadline(time.Now().Add(handshakeTimeout))
		if err := tlsConn.Handshake(); nil != err {
			r.log.Warnf("handshake from: %s  error: %s", conn.RemoteAddr(), err)
			return
		}
		_ = tlsConn.SetDeadline(time.Time{})

		state := tlsConn.ConnectionState()
		caller = identity.FromConnectionState(&state)
	}

	r.log.Debugf("connection from: %s  caller: %s", conn.RemoteAddr(), caller)

	r.connector.Connection(caller).ServeCodec(jsonrpc.NewServerCodec(conn))
}
