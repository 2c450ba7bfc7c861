// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package asset - registry of asset records
//
// each asset is a protocol buffer record in the assets pool keyed by
// its 8 byte big endian identifier, so a key ordered scan returns the
// assets in ascending identifier order
//
// all mutations hold the registry write lock for the whole
// read-validate-write sequence and every precondition is checked
// before anything is written, so a rejected call leaves the stored
// record unchanged
//
// an owner change always clears the for sale flag in the same write
package asset
