// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/assetd/asset"
	"github.com/bitmark-inc/assetd/storage"
)

const (
	statsDelay = 60 * time.Second
	mega       = 1048576
)

// periodic memory use logging
type memoryStats struct {
	log   *logger.L
	delay time.Duration
}

func newMemoryStats(delay time.Duration) *memoryStats {
	return &memoryStats{
		log:   logger.New("memory"),
		delay: delay,
	}
}

func (s *memoryStats) Run(args interface{}, shutdown <-chan struct{}) {

	ticker := time.NewTicker(s.delay)
	defer ticker.Stop()

	for {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		text, err := json.Marshal(m)
		if nil != err {
			s.log.Errorf("marshal error: %s", err)
		} else {
			s.log.Debugf("stats: %s", text)
		}
		a := m.Alloc / mega
		t := m.TotalAlloc / mega
		v := m.Sys / mega
		s.log.Infof("allocated: %d M  cumulative: %d M  OS virtual: %d M  goroutines: %d", a, t, v, runtime.NumGoroutine())

		select {
		case <-shutdown:
			return
		case <-ticker.C:
		}
	}
}

// periodic registry size logging
type registryStats struct {
	log      *logger.L
	delay    time.Duration
	registry asset.Interface
	files    storage.Handle
}

func newRegistryStats(delay time.Duration, registry asset.Interface, files storage.Handle) *registryStats {
	return &registryStats{
		log:      logger.New("registry"),
		delay:    delay,
		registry: registry,
		files:    files,
	}
}

func (s *registryStats) Run(args interface{}, shutdown <-chan struct{}) {

	ticker := time.NewTicker(s.delay)
	defer ticker.Stop()

	for {
		select {
		case <-shutdown:
			return
		case <-ticker.C:
		}
		c := storage.Cache()
		s.log.Infof("assets: %d  local files: %d", s.registry.Total(), s.files.Count())
		s.log.Debugf("cache items: %d  hits: %d  misses: %d", c.Items, c.Hits, c.Misses)
	}
}
