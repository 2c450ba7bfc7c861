// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/assetd/fault"
	"github.com/bitmark-inc/logger"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Assets   *PoolHandle `prefix:"A" database:"assets" cache:"yes"`
	Counter  *PoolHandle `prefix:"C" database:"counter" cache:"yes"`
	Files    *PoolHandle `prefix:"F" database:"files" cache:"no"`
	TestData *PoolHandle `prefix:"Z" database:"assets" cache:"yes"`
}

// Pool - the set of exported pools
var Pool pools

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x100
)

// holds the database handles
var poolData struct {
	sync.RWMutex
	databases map[string]*leveldb.DB
	cache     *dbCache
}

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Initialise - open up the database connections
//
// this must be called before any pool is accessed
func Initialise(database string, readOnly bool) error {
	poolData.Lock()
	defer poolData.Unlock()

	ok := false

	if nil != poolData.databases {
		return fault.AlreadyInitialised
	}

	poolData.databases = make(map[string]*leveldb.DB)

	defer func() {
		if !ok {
			dbClose()
		}
	}()

	// this will be a struct type
	poolType := reflect.TypeOf(Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&Pool).Elem()

	// open each database once in a stable order
	names := make(map[string]struct{})
	for i := 0; i < poolType.NumField(); i += 1 {
		names[poolType.Field(i).Tag.Get("database")] = struct{}{}
	}
	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)

	for _, name := range sorted {
		if "" == name {
			return fmt.Errorf("pool: missing database tag")
		}
		fileName := database + "-" + name + ".leveldb"
		db, version, err := getDB(fileName, readOnly)
		if nil != err {
			return err
		}
		poolData.databases[name] = db

		// ensure no database downgrade
		if version > currentDBVersion {
			logger.Criticalf("%s database version: %d > current version: %d", name, version, currentDBVersion)
			return fault.DatabaseVersion
		}

		if 0 == version {
			if readOnly {
				logger.Criticalf("%s database is not initialised: %q", name, fileName)
				return fault.NotInitialised
			}

			// database was empty so tag as current version
			err = putVersion(db, currentDBVersion)
			if err != nil {
				return err
			}
		}
	}

	poolData.cache = newCache()

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix:   prefix,
			limit:    limit,
			database: fieldInfo.Tag.Get("database"),
			cached:   "yes" == fieldInfo.Tag.Get("cache"),
		}
		newPool := reflect.ValueOf(p)
		poolValue.Field(i).Set(newPool)
	}

	ok = true // prevent db close
	return nil
}

func dbClose() {
	for _, db := range poolData.databases {
		db.Close()
	}
	poolData.databases = nil
	if nil != poolData.cache {
		poolData.cache.Clear()
		poolData.cache = nil
	}
}

// Finalise - close the database connections
func Finalise() {
	poolData.Lock()
	dbClose()
	poolData.Unlock()
}

// return:
//   database handle
//   version number
func getDB(name string, readOnly bool) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
