// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assets

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/assetd/asset"
	"github.com/bitmark-inc/assetd/fault"
	"github.com/bitmark-inc/assetd/identity"
	"github.com/bitmark-inc/assetd/rpc/ratelimit"
)

// Assets - type for the RPC
//
// one instance per connection, bound to the caller of that connection
type Assets struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Registry asset.Interface
	Caller   identity.Principal
}

const (
	rateLimitAssets = 200
	rateBurstAssets = 100

	maximumFileSize = 64 * 1024 * 1024
)

// NewLimiter - the limiter shared by all connections
func NewLimiter() *rate.Limiter {
	return rate.NewLimiter(rateLimitAssets, rateBurstAssets)
}

// New - create the asset service for a caller
func New(log *logger.L, limiter *rate.Limiter, registry asset.Interface, caller identity.Principal) *Assets {
	return &Assets{
		Log:      log,
		Limiter:  limiter,
		Registry: registry,
		Caller:   caller,
	}
}

// ---

// EmptyArguments - for requests without parameters
type EmptyArguments struct{}

// ListReply - a set of assets in identifier order
type ListReply struct {
	Assets []*asset.Asset `json:"assets"`
}

// ---

// RegisterArguments - arguments for RPC request
type RegisterArguments struct {
	Asset asset.Input `json:"asset"`
}

// Register - create an asset owned by the caller
func (assets *Assets) Register(arguments *RegisterArguments, reply *asset.Asset) error {
	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}

	assets.Log.Infof("Assets.Register: %+v  caller: %s", arguments.Asset, assets.Caller)

	a, err := assets.Registry.Upload(&arguments.Asset, assets.Caller)
	if nil != err {
		return err
	}
	*reply = *a
	return nil
}

// ---

// RegisterWithFileArguments - arguments for RPC request
type RegisterWithFileArguments struct {
	Asset asset.Input `json:"asset"`
	Data  []byte      `json:"data"`
}

// RegisterWithFile - store the file then create an asset for it
func (assets *Assets) RegisterWithFile(arguments *RegisterWithFileArguments, reply *asset.Asset) error {
	if err := ratelimit.LimitSize(assets.Limiter, len(arguments.Data), maximumFileSize); nil != err {
		return err
	}

	if "" == arguments.Asset.FileHash {
		return fault.MissingParameters
	}

	assets.Log.Infof("Assets.RegisterWithFile: hash: %q  size: %d  caller: %s", arguments.Asset.FileHash, len(arguments.Data), assets.Caller)

	a, err := assets.Registry.UploadWithFile(&arguments.Asset, arguments.Data, assets.Caller)
	if nil != err {
		return err
	}
	*reply = *a
	return nil
}

// ---

// GetArguments - arguments for RPC request
type GetArguments struct {
	Id uint64 `json:"id,string"`
}

// GetReply - results from get RPC request
type GetReply struct {
	Asset *asset.Asset `json:"asset"`
}

// Get - fetch one asset, a missing asset is a null result
func (assets *Assets) Get(arguments *GetArguments, reply *GetReply) error {
	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}

	assets.Log.Debugf("Assets.Get: %d", arguments.Id)

	a, found := assets.Registry.Get(arguments.Id)
	if found {
		reply.Asset = a
	}
	return nil
}

// ---

// OwnedArguments - arguments for RPC request
type OwnedArguments struct {
	Owner string `json:"owner"`
}

// Owned - all assets of an owner
func (assets *Assets) Owned(arguments *OwnedArguments, reply *ListReply) error {
	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}

	owner, err := identity.Parse(arguments.Owner)
	if nil != err {
		return err
	}

	reply.Assets = assets.Registry.Owned(owner)
	return nil
}

// All - every asset
func (assets *Assets) All(_ *EmptyArguments, reply *ListReply) error {
	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}

	reply.Assets = assets.Registry.All()
	return nil
}

// ForSale - assets offered for sale
func (assets *Assets) ForSale(_ *EmptyArguments, reply *ListReply) error {
	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}

	reply.Assets = assets.Registry.ForSale()
	return nil
}

// ---

// CategoryArguments - arguments for RPC request
type CategoryArguments struct {
	Category string `json:"category"`
}

// Category - assets in a category
func (assets *Assets) Category(arguments *CategoryArguments, reply *ListReply) error {
	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}

	reply.Assets = assets.Registry.ByCategory(arguments.Category)
	return nil
}

// ---

// SearchArguments - arguments for RPC request
type SearchArguments struct {
	Query string `json:"query"`
}

// Search - assets matching a text query
func (assets *Assets) Search(arguments *SearchArguments, reply *ListReply) error {
	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}

	reply.Assets = assets.Registry.Search(arguments.Query)
	return nil
}

// ---

// TotalReply - results from total RPC request
type TotalReply struct {
	Count uint64 `json:"count,string"`
}

// Total - number of assets
func (assets *Assets) Total(_ *EmptyArguments, reply *TotalReply) error {
	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}

	reply.Count = assets.Registry.Total()
	return nil
}

// ---

// SetPriceArguments - arguments for RPC request
type SetPriceArguments struct {
	Id    uint64 `json:"id,string"`
	Price uint64 `json:"price,string"`
}

// SetPrice - owner changes the price
func (assets *Assets) SetPrice(arguments *SetPriceArguments, reply *asset.Asset) error {
	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}

	assets.Log.Infof("Assets.SetPrice: %+v  caller: %s", arguments, assets.Caller)

	a, err := assets.Registry.SetPrice(arguments.Id, arguments.Price, assets.Caller)
	if nil != err {
		return err
	}
	*reply = *a
	return nil
}

// ---

// SetForSaleArguments - arguments for RPC request
type SetForSaleArguments struct {
	Id      uint64 `json:"id,string"`
	ForSale bool   `json:"forSale"`
}

// SetForSale - owner lists or delists an asset
func (assets *Assets) SetForSale(arguments *SetForSaleArguments, reply *asset.Asset) error {
	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}

	assets.Log.Infof("Assets.SetForSale: %+v  caller: %s", arguments, assets.Caller)

	a, err := assets.Registry.SetForSale(arguments.Id, arguments.ForSale, assets.Caller)
	if nil != err {
		return err
	}
	*reply = *a
	return nil
}

// ---

// TransferArguments - arguments for RPC request
type TransferArguments struct {
	Id       uint64 `json:"id,string"`
	NewOwner string `json:"newOwner"`
}

// Transfer - owner gives an asset away
func (assets *Assets) Transfer(arguments *TransferArguments, reply *asset.Asset) error {
	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}

	newOwner, err := identity.Parse(arguments.NewOwner)
	if nil != err {
		return err
	}
	if newOwner.IsAnonymous() {
		return fault.InvalidPrincipal
	}

	assets.Log.Infof("Assets.Transfer: %+v  caller: %s", arguments, assets.Caller)

	a, err := assets.Registry.Transfer(arguments.Id, newOwner, assets.Caller)
	if nil != err {
		return err
	}
	*reply = *a
	return nil
}

// ---

// MarketplaceTransferArguments - arguments for RPC request
type MarketplaceTransferArguments struct {
	Id     uint64 `json:"id,string"`
	Seller string `json:"seller"`
	Buyer  string `json:"buyer"`
}

// MarketplaceTransfer - move a listed asset from seller to buyer
func (assets *Assets) MarketplaceTransfer(arguments *MarketplaceTransferArguments, reply *asset.Asset) error {
	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}

	seller, err := identity.Parse(arguments.Seller)
	if nil != err {
		return err
	}
	buyer, err := identity.Parse(arguments.Buyer)
	if nil != err {
		return err
	}
	if buyer.IsAnonymous() {
		return fault.InvalidPrincipal
	}

	assets.Log.Infof("Assets.MarketplaceTransfer: %+v  marketplace: %s", arguments, assets.Caller)

	a, err := assets.Registry.MarketplaceTransfer(arguments.Id, seller, buyer, assets.Caller)
	if nil != err {
		return err
	}
	*reply = *a
	return nil
}
