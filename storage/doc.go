// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// Each region is a separate LevelDB database so that damage to one
// cannot affect the others.  Within a database each pool has a single
// byte prefix that is obtained from the prefix tag in the struct
// defining the available pools.
//
// Notes:
// 1. ++           = concatenation of byte data
// 2. asset id     = big endian uint64 (8 bytes)
// 3. count        = big endian uint64 (8 bytes)
// 4. hash         = content hash string bytes as supplied by the caller
//
// Assets database:
//
//   A ++ asset id              - asset records
//                                data: protobuf encoded asset record
//
// Counter database:
//
//   C ++ 0x00                  - last allocated asset id
//                                data: count
//
// Files database:
//
//   F ++ hash                  - file blobs
//                                data: raw file bytes
//
// Testing:
//   Z ++ key                   - testing data (assets database)
//
// Every database also holds:
//
//   0x00 ++ "VERSION"          - database version, big endian uint32
package storage
