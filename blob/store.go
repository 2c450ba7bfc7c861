// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blob

import (
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/assetd/fault"
	"github.com/bitmark-inc/assetd/storage"
)

// file store types
const (
	TypeLevelDB = "leveldb"
	TypeS3      = "s3"
)

// Store - the operations on file contents
type Store interface {
	Put(hash string, data []byte) (string, error)
	Replace(hash string, data []byte) error
	Get(hash string) ([]byte, error)
	Has(hash string) (bool, error)
}

// Configuration - file store selection
type Configuration struct {
	Type      string          `gluamapper:"type" json:"type"`
	CacheSize int             `gluamapper:"cache_size" json:"cache_size"`
	S3        S3Configuration `gluamapper:"s3" json:"s3"`
}

// New - create the configured file store
//
// the pool is only used by the leveldb backend
func New(configuration *Configuration, pool storage.Handle) (Store, error) {
	log := logger.New("blob")

	var store Store
	switch t := strings.ToLower(strings.TrimSpace(configuration.Type)); t {
	case "", TypeLevelDB:
		store = NewPoolStore(pool)
		log.Info("file store: leveldb")

	case TypeS3:
		s, err := NewS3Store(&configuration.S3, log)
		if nil != err {
			log.Errorf("s3 file store error: %s", err)
			return nil, err
		}
		store = s
		log.Infof("file store: s3 bucket: %q  prefix: %q", configuration.S3.Bucket, configuration.S3.Prefix)

	default:
		log.Errorf("unsupported file store: %q", configuration.Type)
		return nil, fault.UnsupportedFileStore
	}

	if configuration.CacheSize > 0 {
		c, err := NewCache(store, configuration.CacheSize)
		if nil != err {
			return nil, err
		}
		log.Infof("file cache entries: %d", configuration.CacheSize)
		store = c
	}
	return store, nil
}
