// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"github.com/bitmark-inc/assetd/fault"
	"github.com/bitmark-inc/assetd/identity"
)

// Upload - create a new asset owned by the caller
func (r *Registry) Upload(input *Input, caller identity.Principal) (*Asset, error) {
	if caller.IsAnonymous() {
		return nil, fault.Unauthorised
	}

	r.Lock()
	defer r.Unlock()

	a := r.create(input, input.FileUrl, caller)
	r.log.Infof("upload: id: %d  owner: %s", a.Id, caller)
	return a, nil
}

// UploadWithFile - store the file content then create an asset that
// refers to it
//
// existing content under the same hash is overwritten
func (r *Registry) UploadWithFile(input *Input, data []byte, caller identity.Principal) (*Asset, error) {
	if caller.IsAnonymous() {
		return nil, fault.Unauthorised
	}

	r.Lock()
	defer r.Unlock()

	found, err := r.files.Has(input.FileHash)
	if nil != err {
		return nil, err
	}
	if found {
		r.log.Warnf("upload with file: replacing content of: %q", input.FileHash)
	}

	err = r.files.Replace(input.FileHash, data)
	if nil != err {
		r.log.Errorf("upload with file: hash: %q  error: %s", input.FileHash, err)
		return nil, err
	}

	a := r.create(input, InternalURL(input.FileHash), caller)
	r.log.Infof("upload with file: id: %d  owner: %s  hash: %q  size: %d", a.Id, caller, input.FileHash, len(data))
	return a, nil
}

// must be called with the write lock held
func (r *Registry) create(input *Input, fileURL string, caller identity.Principal) *Asset {
	tags := make([]string, len(input.Tags))
	copy(tags, input.Tags)

	var preview *string
	if nil != input.PreviewImageUrl {
		s := *input.PreviewImageUrl
		preview = &s
	}

	now := r.now()
	a := &Asset{
		Id:              r.ids.Next(),
		Name:            input.Name,
		Description:     input.Description,
		Category:        input.Category,
		Owner:           caller,
		FileHash:        input.FileHash,
		FileUrl:         fileURL,
		FileType:        input.FileType,
		FileSize:        input.FileSize,
		Price:           input.Price,
		IsForSale:       false,
		CreatedAt:       now,
		UpdatedAt:       now,
		Tags:            tags,
		PreviewImageUrl: preview,
	}
	r.write(a, nil)
	return a.clone()
}

// apply a change to an existing record
//
// check runs against the current record and must not modify it, a nil
// result from check allows change to run and the record to be written
func (r *Registry) modify(id uint64, check func(*Asset) error, change func(*Asset)) (*Asset, error) {
	r.Lock()
	defer r.Unlock()

	a, unknown := r.read(id)
	if nil == a {
		return nil, fault.AssetNotFound
	}

	err := check(a)
	if nil != err {
		return nil, err
	}

	change(a)

	now := r.now()
	if now.Before(a.CreatedAt) {
		now = a.CreatedAt
	}
	a.UpdatedAt = now

	r.write(a, unknown)
	return a.clone(), nil
}

// only the owner may proceed
func ownedBy(caller identity.Principal) func(*Asset) error {
	return func(a *Asset) error {
		if caller.IsAnonymous() || caller != a.Owner {
			return fault.NotOwner
		}
		return nil
	}
}

// SetPrice - owner changes the price
func (r *Registry) SetPrice(id uint64, price uint64, caller identity.Principal) (*Asset, error) {
	a, err := r.modify(id, ownedBy(caller), func(a *Asset) {
		a.Price = price
	})
	if nil != err {
		r.log.Debugf("set price: id: %d  caller: %s  error: %s", id, caller, err)
		return nil, err
	}
	r.log.Infof("set price: id: %d  price: %d", id, price)
	return a, nil
}

// SetForSale - owner lists or delists the asset
func (r *Registry) SetForSale(id uint64, forSale bool, caller identity.Principal) (*Asset, error) {
	a, err := r.modify(id, ownedBy(caller), func(a *Asset) {
		a.IsForSale = forSale
	})
	if nil != err {
		r.log.Debugf("set for sale: id: %d  caller: %s  error: %s", id, caller, err)
		return nil, err
	}
	r.log.Infof("set for sale: id: %d  for sale: %t", id, forSale)
	return a, nil
}

// Transfer - owner gives the asset to a new owner
func (r *Registry) Transfer(id uint64, newOwner identity.Principal, caller identity.Principal) (*Asset, error) {
	if newOwner.IsAnonymous() {
		return nil, fault.InvalidPrincipal
	}
	a, err := r.modify(id, ownedBy(caller), func(a *Asset) {
		a.Owner = newOwner
		a.IsForSale = false
	})
	if nil != err {
		r.log.Debugf("transfer: id: %d  caller: %s  error: %s", id, caller, err)
		return nil, err
	}
	r.log.Infof("transfer: id: %d  from: %s  to: %s", id, caller, newOwner)
	return a, nil
}

// MarketplaceTransfer - move a listed asset from its seller to a buyer
//
// any caller may act as the marketplace, the buyer must be a real
// principal
func (r *Registry) MarketplaceTransfer(id uint64, seller identity.Principal, buyer identity.Principal, caller identity.Principal) (*Asset, error) {
	if buyer.IsAnonymous() {
		return nil, fault.InvalidPrincipal
	}
	check := func(a *Asset) error {
		if seller != a.Owner {
			return fault.InvalidSeller
		}
		if !a.IsForSale {
			return fault.NotForSale
		}
		return nil
	}
	a, err := r.modify(id, check, func(a *Asset) {
		a.Owner = buyer
		a.IsForSale = false
	})
	if nil != err {
		r.log.Debugf("marketplace transfer: id: %d  marketplace: %s  error: %s", id, caller, err)
		return nil, err
	}
	r.log.Infof("marketplace transfer: id: %d  from: %s  to: %s  marketplace: %s", id, seller, buyer, caller)
	return a, nil
}

// UploadFile - store file content once
func (r *Registry) UploadFile(hash string, data []byte, caller identity.Principal) (string, error) {
	if caller.IsAnonymous() {
		return "", fault.Unauthorised
	}

	r.Lock()
	defer r.Unlock()

	h, err := r.files.Put(hash, data)
	if nil != err {
		r.log.Debugf("upload file: hash: %q  error: %s", hash, err)
		return "", err
	}
	r.log.Infof("upload file: hash: %q  size: %d  by: %s", hash, len(data), caller)
	return h, nil
}
