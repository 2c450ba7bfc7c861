// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"crypto/tls"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"

	"github.com/bitmark-inc/assetd/fault"
)

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to an assetd
//
// the certificate pair identifies the caller, without it all
// requests are anonymous
func NewClient(connect string, certificate string, key string, verbose bool, handle io.Writer) (*Client, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	if "" != certificate || "" != key {
		keyPair, err := tls.LoadX509KeyPair(certificate, key)
		if nil != err {
			return nil, err
		}
		tlsConfig.Certificates = []tls.Certificate{keyPair}
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if err != nil {
		return nil, err
	}

	return newClient(conn, verbose, handle), nil
}

func newClient(conn net.Conn, verbose bool, handle io.Writer) *Client {
	return &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		verbose: verbose,
		handle:  handle,
	}
}

// Close - shutdown the assetd connection
func (c *Client) Close() {
	c.client.Close()
	c.conn.Close()
}

// perform a call, server errors become the matching fault values
func (c *Client) call(method string, args interface{}, reply interface{}) error {
	err := c.client.Call(method, args, reply)
	if e, ok := err.(rpc.ServerError); ok {
		return fault.Lookup(string(e))
	}
	return err
}
