// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/assetd/fault"
	"github.com/bitmark-inc/assetd/rpc/handler"
)

const (
	httpsLogName     = "https_rpc"
	readWriteTimeout = 30 * time.Second
	keepAlivePeriod  = 3 * time.Minute
	shutdownTimeout  = 5 * time.Second
)

// HTTPSConfiguration - configuration file data for HTTPS setup
type HTTPSConfiguration struct {
	MaximumConnections uint64              `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string            `gluamapper:"listen" json:"listen"`
	Certificate        string              `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string              `gluamapper:"private_key" json:"private_key"`
	Allow              map[string][]string `gluamapper:"allow" json:"allow"`
}

type httpsListener struct {
	sync.Mutex

	log       *logger.L
	addresses []listenAddress
	tlsConfig *tls.Config
	mux       *http.ServeMux
	servers   []*http.Server
	listeners []net.Listener
}

// NewHTTPS - HTTPS endpoints, nil listener when no listen address is set
func NewHTTPS(
	configuration *HTTPSConfiguration,
	log *logger.L,
	tlsConfig *tls.Config,
	hdlr handler.Handler,
) (Listener, error) {
	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", httpsLogName)
		return nil, nil
	}

	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", httpsLogName, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}

	addresses, err := parseListenAddress(configuration.Listen, log)
	if nil != err {
		return nil, err
	}

	// create access control
	local := make(map[string][]*net.IPNet)
	for path, networks := range configuration.Allow {
		set := make([]*net.IPNet, len(networks))
		local[path] = set
		for i, ip := range networks {
			_, cidr, err := net.ParseCIDR(strings.TrimSpace(ip))
			if nil != err {
				log.Errorf("invalid %s allow: %q  error: %s", path, ip, err)
				return nil, fault.InvalidIpAddress
			}
			set[i] = cidr
		}
	}

	hdlr.SetAllow(local)

	cfg := tlsConfig.Clone()
	cfg.NextProtos = []string{"http/1.1"}

	h := &httpsListener{
		log:       log,
		addresses: addresses,
		tlsConfig: cfg,
		mux:       http.NewServeMux(),
	}

	h.mux.HandleFunc("/assetd/rpc", hdlr.RPC)
	h.mux.HandleFunc("/assetd/details", hdlr.Details)
	h.mux.HandleFunc("/", hdlr.Root)

	return h, nil
}

type tcpKeepAliveListener struct {
	*net.TCPListener
}

func (ln tcpKeepAliveListener) Accept() (net.Conn, error) {
	tc, err := ln.AcceptTCP()
	if nil != err {
		return nil, err
	}
	_ = tc.SetKeepAlive(true)
	_ = tc.SetKeepAlivePeriod(keepAlivePeriod)
	return tc, nil
}

// Serve - bind all addresses and start serving
func (h *httpsListener) Serve() error {
	h.Lock()
	defer h.Unlock()

	for _, listen := range h.addresses {
		h.log.Infof("starting server: %s on: %q", httpsLogName, listen.address)

		ln, err := net.Listen(listen.network, listen.address)
		if nil != err {
			h.log.Errorf("%s listen error: %s", httpsLogName, err)
			return err
		}
		h.listeners = append(h.listeners, ln)

		s := &http.Server{
			Handler:        h.mux,
			ReadTimeout:    readWriteTimeout,
			WriteTimeout:   readWriteTimeout,
			MaxHeaderBytes: 1 << 20,
		}
		h.servers = append(h.servers, s)

		tlsListener := tls.NewListener(tcpKeepAliveListener{ln.(*net.TCPListener)}, h.tlsConfig)
		go func() {
			err := s.Serve(tlsListener)
			if nil != err && http.ErrServerClosed != err {
				h.log.Errorf("%s terminated: %s", httpsLogName, err)
			}
		}()
	}

	return nil
}

// Addresses - the bound addresses
func (h *httpsListener) Addresses() []net.Addr {
	h.Lock()
	defer h.Unlock()

	addrs := make([]net.Addr, len(h.listeners))
	for i, l := range h.listeners {
		addrs[i] = l.Addr()
	}
	return addrs
}

// Stop - graceful shutdown of all servers
func (h *httpsListener) Stop() {
	h.Lock()
	defer h.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	for _, s := range h.servers {
		if err := s.Shutdown(ctx); nil != err {
			h.log.Warnf("%s shutdown: %s", httpsLogName, err)
		}
	}
}
