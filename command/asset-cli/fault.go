// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/assetd/fault"
)

// common errors - keep in alphabetic order
const (
	ErrAssetNotFound   = fault.NotFoundError("asset not found")
	ErrFileNotFound    = fault.NotFoundError("file not found")
	ErrMissingContent  = fault.InvalidError("one of file or url is required")
	ErrMissingId       = fault.InvalidError("asset id is required")
	ErrNoCertificate   = fault.InvalidError("client certificate is required")
	ErrTooManyContents = fault.InvalidError("only one of file or url is allowed")
)
