// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/assetd/fault"
)

// size of one token for byte based limits
const blockSize = 64 * 1024

// wait for n tokens, fails if n can never be satisfied
func reserve(limiter *rate.Limiter, n int) error {
	r := limiter.ReserveN(time.Now(), n)
	if !r.OK() {
		return fault.RateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}

// Limit - limiting for a single request
func Limit(limiter *rate.Limiter) error {
	return reserve(limiter, 1)
}

// LimitSize - limiting for a request carrying a payload
//
// one token per started 64KiB block up to the burst size, a payload
// above the maximum is charged as a single request and rejected
func LimitSize(limiter *rate.Limiter, size int, maximumSize int) error {
	if size > maximumSize {
		if err := reserve(limiter, 1); nil != err {
			return err
		}
		return fault.FileTooLarge
	}
	n := 1 + size/blockSize
	if burst := limiter.Burst(); n > burst {
		n = burst
	}
	return reserve(limiter, n)
}
