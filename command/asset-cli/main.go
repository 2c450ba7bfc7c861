// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect     string
	certificate string
	key         string
	verbose     bool
	e           io.Writer
	w           io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp()
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "asset-cli"
	app.Usage = "manage assets held by an assetd"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "127.0.0.1:2130",
			Usage:  " assetd host/IP and port, `HOST:PORT`",
			EnvVar: "ASSETD_CONNECT",
		},
		cli.StringFlag{
			Name:   "certificate, C",
			Value:  "",
			Usage:  " client certificate `FILE` that identifies the caller",
			EnvVar: "ASSETD_CERTIFICATE",
		},
		cli.StringFlag{
			Name:   "key, k",
			Value:  "",
			Usage:  " client private key `FILE`",
			EnvVar: "ASSETD_KEY",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "info",
			Usage:  "display assetd status",
			Action: runInfo,
		},
		{
			Name:   "identity",
			Usage:  "display the principal of the client certificate",
			Action: runIdentity,
		},
		{
			Name:      "register",
			Usage:     "register a new asset",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*asset name `STRING`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: " asset description `STRING`",
				},
				cli.StringFlag{
					Name:  "category, g",
					Value: "",
					Usage: " asset category `STRING`",
				},
				cli.StringSliceFlag{
					Name:  "tag, t",
					Usage: " asset tag `STRING` (repeatable)",
				},
				cli.Uint64Flag{
					Name:  "price, p",
					Value: 0,
					Usage: " asset price `NUMBER`",
				},
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "+`FILE` of content to store with the asset",
				},
				cli.StringFlag{
					Name:  "url, u",
					Value: "",
					Usage: "+external content `URL`",
				},
				cli.StringFlag{
					Name:  "hash, H",
					Value: "",
					Usage: " content `HASH` (computed for --file)",
				},
				cli.StringFlag{
					Name:  "type, T",
					Value: "",
					Usage: " content MIME `TYPE` (detected for --file)",
				},
				cli.Uint64Flag{
					Name:  "size, s",
					Value: 0,
					Usage: " content size `BYTES` (measured for --file)",
				},
				cli.StringFlag{
					Name:  "preview, P",
					Value: "",
					Usage: " preview image `URL`",
				},
			},
			Action: runRegister,
		},
		{
			Name:      "get",
			Usage:     "display a single asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				idFlag,
			},
			Action: runGet,
		},
		{
			Name:      "owned",
			Usage:     "list assets owned",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " owner `PRINCIPAL` default is the client certificate",
				},
			},
			Action: runOwned,
		},
		{
			Name:   "list",
			Usage:  "list all assets",
			Action: runList,
		},
		{
			Name:   "for-sale",
			Usage:  "list assets for sale",
			Action: runForSale,
		},
		{
			Name:      "category",
			Usage:     "list assets in a category",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "category, g",
					Value: "",
					Usage: "*category `STRING`",
				},
			},
			Action: runCategory,
		},
		{
			Name:      "search",
			Usage:     "search asset names, descriptions and tags",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "query, q",
					Value: "",
					Usage: " search `TEXT`",
				},
			},
			Action: runSearch,
		},
		{
			Name:   "total",
			Usage:  "display number of assets",
			Action: runTotal,
		},
		{
			Name:      "price",
			Usage:     "change the price of an asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				idFlag,
				cli.Uint64Flag{
					Name:  "price, p",
					Value: 0,
					Usage: "*new price `NUMBER`",
				},
			},
			Action: runPrice,
		},
		{
			Name:      "sell",
			Usage:     "list an asset for sale",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				idFlag,
				cli.BoolFlag{
					Name:  "withdraw, w",
					Usage: " remove the asset from sale",
				},
			},
			Action: runSell,
		},
		{
			Name:      "transfer",
			Usage:     "transfer an asset to another owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				idFlag,
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*new owner `PRINCIPAL`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "marketplace-transfer",
			Usage:     "move a listed asset from seller to buyer",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				idFlag,
				cli.StringFlag{
					Name:  "seller, s",
					Value: "",
					Usage: "*seller `PRINCIPAL`",
				},
				cli.StringFlag{
					Name:  "buyer, b",
					Value: "",
					Usage: "*buyer `PRINCIPAL`",
				},
			},
			Action: runMarketplaceTransfer,
		},
		{
			Name:      "upload",
			Usage:     "store file content",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "*`FILE` to upload",
				},
				cli.StringFlag{
					Name:  "hash, H",
					Value: "",
					Usage: " content `HASH` (computed when blank)",
				},
			},
			Action: runUpload,
		},
		{
			Name:      "download",
			Usage:     "fetch stored file content",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "hash, H",
					Value: "",
					Usage: "*content `HASH`",
				},
				cli.StringFlag{
					Name:  "output, o",
					Value: "",
					Usage: " write content to `FILE` instead of stdout",
				},
			},
			Action: runDownload,
		},
		{
			Name:  "version",
			Usage: "display asset-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		certificate := c.GlobalString("certificate")
		key := c.GlobalString("key")
		if ("" == certificate) != ("" == key) {
			return fmt.Errorf("certificate and key must be given together")
		}

		m := &metadata{
			connect:     c.GlobalString("connect"),
			certificate: certificate,
			key:         key,
			verbose:     c.GlobalBool("verbose"),
			e:           c.App.ErrWriter,
			w:           c.App.Writer,
		}
		if m.verbose {
			fmt.Fprintf(m.e, "connect: %s\n", m.connect)
			if "" != certificate {
				fmt.Fprintf(m.e, "certificate: %s\n", certificate)
			}
		}
		c.App.Metadata["config"] = m

		return nil
	}

	return app
}

var idFlag = cli.Uint64Flag{
	Name:  "id, i",
	Value: 0,
	Usage: "*asset `ID`",
}
