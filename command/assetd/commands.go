// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/bitmark-inc/assetd/identity"
)

const (
	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"

	clientCertificateFilename = "client.crt"
	clientPrivateKeyFilename  = "client.key"

	redacted = "(redacted)"
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := makeSelfSignedCertificate("rpc", certificateFilename, privateKeyFilename, serverValidity, 0 != len(addresses), addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "gen-client-cert", "client":
		certificateFilename := getFilenameWithDirectory(arguments, clientCertificateFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, clientPrivateKeyFilename)

		err := makeSelfSignedCertificate("client", certificateFilename, privateKeyFilename, clientValidity, false, nil)
		if nil != err {
			fmt.Printf("generate client key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}

		principal, err := identity.FromCertificateFile(certificateFilename)
		if nil != err {
			fmt.Printf("read client certificate: %q error: %s\n", certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated client key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)
		fmt.Printf("principal: %s\n", principal)

	case "identity", "id":
		if 0 == len(arguments) {
			return false // use the certificate from the configuration
		}
		principal, err := identity.FromCertificateFile(arguments[0])
		if nil != err {
			exitwithstatus.Message("error: certificate: %q  error: %s", arguments[0], err)
		}
		fmt.Printf("%s\n", principal)

	case "start", "run":
		return false // continue processing

	case "dump-assets", "assets", "dump-files", "files", "stats":
		return false // defer processing until database is loaded

	case "config", "cfg":
		return false

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] [--memory-stats] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  gen-rpc-cert [DIR]         (rpc)    - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...]         - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-client-cert [DIR]      (client) - create private key in:  %q\n", "DIR/"+clientPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+clientCertificateFilename)
		fmt.Printf("                                        and print its principal\n")
		fmt.Printf("\n")

		fmt.Printf("  identity [FILE]            (id)     - display the principal of a certificate file\n")
		fmt.Printf("                                        or of the configured RPC certificate\n")
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config                     (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  dump-assets [FILE [ID]]    (assets) - dump assets as JSON to stdout/file\n")
		fmt.Printf("                                        starting from identifier ID, FILE \"-\" is stdout\n")
		fmt.Printf("\n")

		fmt.Printf("  dump-files                 (files)  - list stored file hashes and sizes\n")
		fmt.Printf("\n")

		fmt.Printf("  stats                               - display record counts and identifiers\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "identity", "id":
		principal, err := certificatePrincipal(options.ClientRPC.Certificate)
		if nil != err {
			exitwithstatus.Message("error: RPC certificate error: %s", err)
		}
		fmt.Printf("%s\n", principal)

	case "config", "cfg":
		// do not print secrets
		c := *options
		c.ClientRPC.PrivateKey = redacted
		c.HttpsRPC.PrivateKey = redacted

		b, err := json.Marshal(c)
		if err != nil {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		_ = json.Indent(&out, b, "", "  ")
		_, _ = out.WriteTo(os.Stdout)
		_, _ = os.Stdout.WriteString("\n")

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// get the working directory; if not set in the arguments
// it's set to the current directory
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}
