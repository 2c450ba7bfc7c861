// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package identifier - monotonic asset identifiers
//
// the counter is a single 8 byte big endian record in the counter
// pool, it is never decremented so identifiers are never reused
package identifier
