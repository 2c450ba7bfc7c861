// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blob - content addressed file storage
//
// files are raw bytes keyed by the hash string supplied by the
// uploader, the hash is not verified against the content
//
// backends:
//
//   leveldb  the files pool of the local database (default)
//   s3       objects named <prefix>/<hash> in an S3 compatible bucket
//
// a least recently used cache of file contents can be placed in front
// of either backend
package blob
