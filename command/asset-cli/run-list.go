// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/assetd/asset"
	"github.com/bitmark-inc/assetd/command/asset-cli/rpccalls"
)

func runGet(c *cli.Context) error {

	id, err := checkId(c)
	if nil != err {
		return err
	}

	client, m, err := newClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Get(id)
	if nil != err {
		return err
	}
	if nil == response {
		return ErrAssetNotFound
	}

	printJson(m.w, response)

	return nil
}

func runOwned(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner := strings.TrimSpace(c.String("owner"))
	if "" == owner {
		principal, err := selfPrincipal(m)
		if nil != err {
			return err
		}
		owner = principal.String()
	}

	return runListing(c, func(client *rpccalls.Client) ([]*asset.Asset, error) {
		return client.Owned(owner)
	})
}

func runList(c *cli.Context) error {
	return runListing(c, (*rpccalls.Client).All)
}

func runForSale(c *cli.Context) error {
	return runListing(c, (*rpccalls.Client).ForSale)
}

func runCategory(c *cli.Context) error {
	category := c.String("category")
	return runListing(c, func(client *rpccalls.Client) ([]*asset.Asset, error) {
		return client.Category(category)
	})
}

func runSearch(c *cli.Context) error {
	query := c.String("query")
	return runListing(c, func(client *rpccalls.Client) ([]*asset.Asset, error) {
		return client.Search(query)
	})
}

func runListing(c *cli.Context, fetch func(*rpccalls.Client) ([]*asset.Asset, error)) error {

	client, m, err := newClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := fetch(client)
	if nil != err {
		return err
	}
	if nil == response {
		response = []*asset.Asset{}
	}

	printJson(m.w, response)

	return nil
}

func runTotal(c *cli.Context) error {

	client, m, err := newClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	total, err := client.Total()
	if nil != err {
		return err
	}

	printJson(m.w, map[string]uint64{"count": total})

	return nil
}
