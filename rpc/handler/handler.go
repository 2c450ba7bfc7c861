// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/rpc/jsonrpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/assetd/asset"
	"github.com/bitmark-inc/assetd/counter"
	"github.com/bitmark-inc/assetd/identity"
	"github.com/bitmark-inc/assetd/rpc/server"
)

// Handler - HTTPS endpoints
type Handler interface {
	RPC(http.ResponseWriter, *http.Request)
	Details(http.ResponseWriter, *http.Request)
	Root(http.ResponseWriter, *http.Request)
	SetAllow(map[string][]*net.IPNet)
}

// InternalConnection - type to allow rpc system to interface to http request
type InternalConnection struct {
	in  io.Reader
	out io.Writer
}

func (c *InternalConnection) Read(p []byte) (n int, err error) {
	return c.in.Read(p)
}

func (c *InternalConnection) Write(d []byte) (n int, err error) {
	return c.out.Write(d)
}

func (c *InternalConnection) Close() error {
	return nil
}

// the argument passed to the handlers
type handler struct {
	log                *logger.L
	connector          server.Connector
	start              time.Time
	version            string
	maximumConnections uint64
	count              counter.Counter
	registry           asset.Interface
	allow              map[string][]*net.IPNet
}

// New - create the HTTPS handler
func New(
	log *logger.L,
	connector server.Connector,
	start time.Time,
	version string,
	maximumConnections uint64,
	registry asset.Interface,
) Handler {
	return &handler{
		log:                log,
		connector:          connector,
		start:              start,
		version:            version,
		maximumConnections: maximumConnections,
		registry:           registry,
		allow:              make(map[string][]*net.IPNet),
	}
}

// SetAllow - access control for the restricted endpoints
func (h *handler) SetAllow(allow map[string][]*net.IPNet) {
	h.allow = allow
}

// Root - this matches anything not matched and returns error
func (h *handler) Root(w http.ResponseWriter, _ *http.Request) {
	sendNotFound(w)
}

// RPC - performs a call to any normal RPC
//
// the caller is the principal of the client certificate of the
// underlying TLS connection
func (h *handler) RPC(w http.ResponseWriter, r *http.Request) {
	if http.MethodPost != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !h.count.Acquire(h.maximumConnections) {
		sendTooManyRequests(w)
		return
	}
	defer h.count.Decrement()

	caller := identity.FromConnectionState(r.TLS)
	s := h.connector.Connection(caller)

	serverCodec := jsonrpc.NewServerCodec(&InternalConnection{in: r.Body, out: w})
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	err := s.ServeRequest(serverCodec)
	if nil != err {
		h.log.Warnf("rpc from: %q  caller: %s  error: %s", r.RemoteAddr, caller, err)
		sendInternalServerError(w)
		return
	}
}

// Details - GET for a summary of the node state
func (h *handler) Details(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !h.allowed("details", r.RemoteAddr) {
		h.log.Warnf("Deny access: %q", r.RemoteAddr)
		sendForbidden(w)
		return
	}

	if !h.count.Acquire(h.maximumConnections) {
		sendTooManyRequests(w)
		return
	}
	defer h.count.Decrement()

	type theReply struct {
		Version string `json:"version"`
		Uptime  string `json:"uptime"`
		RPCs    uint64 `json:"rpcs"`
		Assets  uint64 `json:"assets,string"`
	}

	reply := theReply{
		Version: h.version,
		Uptime:  time.Since(h.start).String(),
		RPCs:    h.count.Uint64(),
	}
	if nil != h.registry {
		reply.Assets = h.registry.Total()
	}

	sendReply(w, reply)
}

// check the remote address against the allowed networks of a path
func (h *handler) allowed(path string, remoteAddr string) bool {
	host, _, err := net.SplitHostPort(remoteAddr)
	if nil != err {
		return false
	}
	ip := net.ParseIP(host)
	if nil == ip {
		return false
	}
	for _, network := range h.allow[path] {
		if network.Contains(ip) {
			return true
		}
	}
	return false
}

// send an JSON encoded reply
func sendReply(w http.ResponseWriter, data interface{}) {
	text, err := json.Marshal(data)
	if nil != err {
		sendInternalServerError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(text)
}

// selected errors as required above
func sendNotFound(w http.ResponseWriter) {
	sendError(w, "not found", http.StatusNotFound)
}
func sendMethodNotAllowed(w http.ResponseWriter) {
	sendError(w, "method not allowed", http.StatusMethodNotAllowed)
}
func sendForbidden(w http.ResponseWriter) {
	sendError(w, "forbidden", http.StatusForbidden)
}
func sendTooManyRequests(w http.ResponseWriter) {
	sendError(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
}
func sendInternalServerError(w http.ResponseWriter) {
	sendError(w, "internal server error", http.StatusInternalServerError)
}

// to compose JSON error messages
type eType struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// output an error with a JSON body
func sendError(w http.ResponseWriter, message string, code int) {
	text, err := json.Marshal(eType{
		Code:  code,
		Error: message,
	})
	if nil != err {
		// manually composed error just incase JSON fails
		http.Error(w, `{"code":500,"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write(text)
}
