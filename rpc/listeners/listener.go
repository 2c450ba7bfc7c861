// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"net"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/assetd/fault"
)

const (
	minConnectionCount = 1
)

// Listener - a set of bound server sockets
type Listener interface {
	Serve() error
	Addresses() []net.Addr
	Stop()
}

// an address ready for net.Listen
type listenAddress struct {
	network string
	address string
}

// validate listen addresses of the forms:
//
//   *:PORT  IPv4:PORT  [IPv6]:PORT
func parseListenAddress(addrs []string, log *logger.L) ([]listenAddress, error) {
	parsed := make([]listenAddress, len(addrs))
	for i, listen := range addrs {
		host, port, err := net.SplitHostPort(strings.TrimSpace(listen))
		if nil != err {
			log.Errorf("listen: %q  error: %s", listen, err)
			return nil, fault.InvalidIpAddress
		}

		switch {
		case "*" == host:
			// on the assumption that this will listen on tcp4 and tcp6
			parsed[i] = listenAddress{network: "tcp", address: net.JoinHostPort("::", port)}
			continue
		case strings.Contains(host, ":"):
			parsed[i] = listenAddress{network: "tcp6", address: net.JoinHostPort(host, port)}
		default:
			parsed[i] = listenAddress{network: "tcp4", address: net.JoinHostPort(host, port)}
		}

		if ip := net.ParseIP(host); nil == ip {
			err := fault.InvalidIpAddress
			log.Errorf("listen: %q  error: %s", listen, err)
			return nil, err
		}
	}

	return parsed, nil
}
