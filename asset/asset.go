// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"time"

	"github.com/bitmark-inc/assetd/identity"
)

// prefix for files stored by this service
const internalURLScheme = "canister://"

// Asset - the public form of an asset record
type Asset struct {
	Id              uint64             `json:"id,string"`
	Name            string             `json:"name"`
	Description     string             `json:"description"`
	Category        string             `json:"category"`
	Owner           identity.Principal `json:"owner"`
	FileHash        string             `json:"fileHash"`
	FileUrl         string             `json:"fileUrl"`
	FileType        string             `json:"fileType"`
	FileSize        uint64             `json:"fileSize"`
	Price           uint64             `json:"price"`
	IsForSale       bool               `json:"isForSale"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
	Tags            []string           `json:"tags"`
	PreviewImageUrl *string            `json:"previewImageUrl,omitempty"`
}

// Input - the uploader supplied fields of a new asset
type Input struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	FileHash        string   `json:"fileHash"`
	FileUrl         string   `json:"fileUrl"`
	FileType        string   `json:"fileType"`
	FileSize        uint64   `json:"fileSize"`
	Price           uint64   `json:"price"`
	Category        string   `json:"category"`
	Tags            []string `json:"tags"`
	PreviewImageUrl *string  `json:"previewImageUrl,omitempty"`
}

// Interface - the registry operations
type Interface interface {
	Upload(*Input, identity.Principal) (*Asset, error)
	UploadWithFile(*Input, []byte, identity.Principal) (*Asset, error)
	Get(uint64) (*Asset, bool)
	Owned(identity.Principal) []*Asset
	All() []*Asset
	ForSale() []*Asset
	ByCategory(string) []*Asset
	Search(string) []*Asset
	Total() uint64
	SetPrice(uint64, uint64, identity.Principal) (*Asset, error)
	SetForSale(uint64, bool, identity.Principal) (*Asset, error)
	Transfer(uint64, identity.Principal, identity.Principal) (*Asset, error)
	MarketplaceTransfer(uint64, identity.Principal, identity.Principal, identity.Principal) (*Asset, error)
	UploadFile(string, []byte, identity.Principal) (string, error)
	GetFile(string) ([]byte, bool)
}

// InternalURL - the file URL of content held by this service
func InternalURL(hash string) string {
	return internalURLScheme + hash
}

// make an independent copy
func (a *Asset) clone() *Asset {
	c := *a
	if nil != a.Tags {
		c.Tags = make([]string, len(a.Tags))
		copy(c.Tags, a.Tags)
	}
	if nil != a.PreviewImageUrl {
		s := *a.PreviewImageUrl
		c.PreviewImageUrl = &s
	}
	return &c
}
