// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/assetd/asset"
	"github.com/bitmark-inc/assetd/command/asset-cli/rpccalls"
)

func runPrice(c *cli.Context) error {
	price := c.Uint64("price")
	return runUpdate(c, func(client *rpccalls.Client, id uint64) (*asset.Asset, error) {
		return client.SetPrice(id, price)
	})
}

func runSell(c *cli.Context) error {
	forSale := !c.Bool("withdraw")
	return runUpdate(c, func(client *rpccalls.Client, id uint64) (*asset.Asset, error) {
		return client.SetForSale(id, forSale)
	})
}

func runTransfer(c *cli.Context) error {
	receiver, err := checkPrincipal("receiver", c.String("receiver"))
	if nil != err {
		return err
	}
	return runUpdate(c, func(client *rpccalls.Client, id uint64) (*asset.Asset, error) {
		return client.Transfer(id, receiver)
	})
}

func runMarketplaceTransfer(c *cli.Context) error {
	seller, err := checkPrincipal("seller", c.String("seller"))
	if nil != err {
		return err
	}
	buyer, err := checkPrincipal("buyer", c.String("buyer"))
	if nil != err {
		return err
	}
	return runUpdate(c, func(client *rpccalls.Client, id uint64) (*asset.Asset, error) {
		return client.MarketplaceTransfer(id, seller, buyer)
	})
}

func runUpdate(c *cli.Context, update func(*rpccalls.Client, uint64) (*asset.Asset, error)) error {

	id, err := checkId(c)
	if nil != err {
		return err
	}

	client, m, err := newClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	if m.verbose {
		fmt.Fprintf(m.e, "id: %d\n", id)
	}

	response, err := update(client, id)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
