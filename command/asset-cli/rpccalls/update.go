// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/assetd/asset"
	"github.com/bitmark-inc/assetd/rpc/assets"
)

// SetPrice - owner changes the price of an asset
func (client *Client) SetPrice(id uint64, price uint64) (*asset.Asset, error) {
	args := assets.SetPriceArguments{
		Id:    id,
		Price: price,
	}
	return client.update("Assets.SetPrice", args)
}

// SetForSale - owner lists or delists an asset
func (client *Client) SetForSale(id uint64, forSale bool) (*asset.Asset, error) {
	args := assets.SetForSaleArguments{
		Id:      id,
		ForSale: forSale,
	}
	return client.update("Assets.SetForSale", args)
}

// Transfer - owner gives an asset to a new owner
func (client *Client) Transfer(id uint64, newOwner string) (*asset.Asset, error) {
	args := assets.TransferArguments{
		Id:       id,
		NewOwner: newOwner,
	}
	return client.update("Assets.Transfer", args)
}

// MarketplaceTransfer - move a listed asset from seller to buyer
func (client *Client) MarketplaceTransfer(id uint64, seller string, buyer string) (*asset.Asset, error) {
	args := assets.MarketplaceTransferArguments{
		Id:     id,
		Seller: seller,
		Buyer:  buyer,
	}
	return client.update("Assets.MarketplaceTransfer", args)
}

func (client *Client) update(method string, args interface{}) (*asset.Asset, error) {
	client.printJson(method+" Request", args)

	var reply asset.Asset
	if err := client.call(method, args, &reply); err != nil {
		return nil, err
	}

	client.printJson(method+" Reply", reply)
	return &reply, nil
}
