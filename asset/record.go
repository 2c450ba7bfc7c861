// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"encoding/binary"
	"time"

	proto "github.com/golang/protobuf/proto"

	"github.com/bitmark-inc/assetd/identity"
)

// record - the persisted form of an asset
//
// field numbers must never be reused, unknown fields from newer
// versions are kept and written back unchanged
type record struct {
	Id                   uint64   `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Name                 string   `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Description          string   `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	Owner                string   `protobuf:"bytes,4,opt,name=owner,proto3" json:"owner,omitempty"`
	FileHash             string   `protobuf:"bytes,5,opt,name=file_hash,json=fileHash,proto3" json:"file_hash,omitempty"`
	FileUrl              string   `protobuf:"bytes,6,opt,name=file_url,json=fileUrl,proto3" json:"file_url,omitempty"`
	FileType             string   `protobuf:"bytes,7,opt,name=file_type,json=fileType,proto3" json:"file_type,omitempty"`
	FileSize             uint64   `protobuf:"varint,8,opt,name=file_size,json=fileSize,proto3" json:"file_size,omitempty"`
	Price                uint64   `protobuf:"varint,9,opt,name=price,proto3" json:"price,omitempty"`
	IsForSale            bool     `protobuf:"varint,10,opt,name=is_for_sale,json=isForSale,proto3" json:"is_for_sale,omitempty"`
	CreatedAt            int64    `protobuf:"varint,11,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt            int64    `protobuf:"varint,12,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	Category             string   `protobuf:"bytes,13,opt,name=category,proto3" json:"category,omitempty"`
	Tags                 []string `protobuf:"bytes,14,rep,name=tags,proto3" json:"tags,omitempty"`
	PreviewImageUrl      *string  `protobuf:"bytes,15,opt,name=preview_image_url,json=previewImageUrl" json:"preview_image_url,omitempty"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *record) Reset()         { *m = record{} }
func (m *record) String() string { return proto.CompactTextString(m) }
func (*record) ProtoMessage()    {}

// Key - the pool key for an asset, ordered by identifier
func Key(id uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, id)
	return key
}

// identifier from a pool key
func keyId(key []byte) (uint64, bool) {
	if 8 != len(key) {
		return 0, false
	}
	return binary.BigEndian.Uint64(key), true
}

// pack - encode an asset with the unknown fields of a previous record
func pack(a *Asset, unknown []byte) ([]byte, error) {
	r := &record{
		Id:               a.Id,
		Name:             a.Name,
		Description:      a.Description,
		Owner:            a.Owner.String(),
		FileHash:         a.FileHash,
		FileUrl:          a.FileUrl,
		FileType:         a.FileType,
		FileSize:         a.FileSize,
		Price:            a.Price,
		IsForSale:        a.IsForSale,
		CreatedAt:        a.CreatedAt.UnixNano(),
		UpdatedAt:        a.UpdatedAt.UnixNano(),
		Category:         a.Category,
		Tags:             a.Tags,
		PreviewImageUrl:  a.PreviewImageUrl,
		XXX_unrecognized: unknown,
	}
	return proto.Marshal(r)
}

// unpack - decode a stored asset, also returning any unknown fields
func unpack(packed []byte) (*Asset, []byte, error) {
	r := &record{}
	err := proto.Unmarshal(packed, r)
	if nil != err {
		return nil, nil, err
	}

	a := &Asset{
		Id:              r.Id,
		Name:            r.Name,
		Description:     r.Description,
		Category:        r.Category,
		Owner:           identity.Principal(r.Owner),
		FileHash:        r.FileHash,
		FileUrl:         r.FileUrl,
		FileType:        r.FileType,
		FileSize:        r.FileSize,
		Price:           r.Price,
		IsForSale:       r.IsForSale,
		CreatedAt:       time.Unix(0, r.CreatedAt).UTC(),
		UpdatedAt:       time.Unix(0, r.UpdatedAt).UTC(),
		Tags:            r.Tags,
		PreviewImageUrl: r.PreviewImageUrl,
	}
	if nil == a.Tags {
		a.Tags = []string{}
	}
	return a, r.XXX_unrecognized, nil
}

// Unpack - decode the stored form of an asset
func Unpack(packed []byte) (*Asset, error) {
	a, _, err := unpack(packed)
	return a, err
}
