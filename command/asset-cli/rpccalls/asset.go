// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/assetd/asset"
	"github.com/bitmark-inc/assetd/rpc/assets"
)

// Register - create a new asset owned by the caller
//
// with data the content is stored by assetd, otherwise the input
// must carry an external file URL
func (client *Client) Register(input *asset.Input, data []byte) (*asset.Asset, error) {

	var reply asset.Asset
	if nil == data {
		args := assets.RegisterArguments{
			Asset: *input,
		}
		client.printJson("Register Request", args)
		if err := client.call("Assets.Register", args, &reply); err != nil {
			return nil, err
		}
	} else {
		args := assets.RegisterWithFileArguments{
			Asset: *input,
			Data:  data,
		}
		client.printJson("Register Request", input)
		if err := client.call("Assets.RegisterWithFile", args, &reply); err != nil {
			return nil, err
		}
	}

	client.printJson("Register Reply", reply)
	return &reply, nil
}

// Get - fetch a single asset
func (client *Client) Get(id uint64) (*asset.Asset, error) {

	args := assets.GetArguments{
		Id: id,
	}
	var reply assets.GetReply
	if err := client.call("Assets.Get", args, &reply); err != nil {
		return nil, err
	}

	return reply.Asset, nil
}

// Owned - assets of an owner
func (client *Client) Owned(owner string) ([]*asset.Asset, error) {
	args := assets.OwnedArguments{
		Owner: owner,
	}
	return client.list("Assets.Owned", args)
}

// All - every asset in identifier order
func (client *Client) All() ([]*asset.Asset, error) {
	return client.list("Assets.All", assets.EmptyArguments{})
}

// ForSale - the assets currently listed
func (client *Client) ForSale() ([]*asset.Asset, error) {
	return client.list("Assets.ForSale", assets.EmptyArguments{})
}

// Category - assets in a category
func (client *Client) Category(category string) ([]*asset.Asset, error) {
	args := assets.CategoryArguments{
		Category: category,
	}
	return client.list("Assets.Category", args)
}

// Search - assets matching a text query
func (client *Client) Search(query string) ([]*asset.Asset, error) {
	args := assets.SearchArguments{
		Query: query,
	}
	return client.list("Assets.Search", args)
}

func (client *Client) list(method string, args interface{}) ([]*asset.Asset, error) {
	client.printJson(method, args)

	var reply assets.ListReply
	if err := client.call(method, args, &reply); err != nil {
		return nil, err
	}
	return reply.Assets, nil
}

// Total - number of assets registered
func (client *Client) Total() (uint64, error) {
	var reply assets.TotalReply
	if err := client.call("Assets.Total", assets.EmptyArguments{}, &reply); err != nil {
		return 0, err
	}
	return reply.Count, nil
}
