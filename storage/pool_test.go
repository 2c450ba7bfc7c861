// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/assetd/fault"
	"github.com/bitmark-inc/assetd/storage"
)

// helper to add to pool
func poolPut(t *testing.T, p storage.Handle, key string, data string) {
	p.Put([]byte(key), []byte(data))
}

// main pool test
func TestPool(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	// ensure that pool was empty
	checkAgain(t, true)

	poolPut(t, p, "key-one", "data-one")
	poolPut(t, p, "key-two", "data-two")
	poolPut(t, p, "key-three", "data-three")
	poolPut(t, p, "key-one", "data-one")     // duplicate
	poolPut(t, p, "key-three", "data-three") // duplicate
	poolPut(t, p, "key-four", "data-four")
	poolPut(t, p, "key-five", "data-five")
	poolPut(t, p, "key-six", "data-six")
	poolPut(t, p, "key-seven", "data-seven")
	poolPut(t, p, "key-one", "data-one(NEW)") // duplicate

	// ensure that data is correct
	checkResults(t, p)

	// recheck
	checkAgain(t, false)

	// check that restarting database keeps data
	storage.Finalise()
	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage re-initialise error: %s", err)
	}
	checkAgain(t, false)
}

func checkResults(t *testing.T, p storage.Handle) {

	// ensure we get all of the pool
	cursor := p.NewFetchCursor()
	data, err := cursor.Fetch(20)
	if nil != err {
		t.Errorf("Error on Fetch: %v", err)
		return
	}

	// ensure lengths match
	if len(data) != len(expectedElements) {
		t.Errorf("Length mismatch, got: %d  expected: %d", len(data), len(expectedElements))
	}
	if p.Count() != len(expectedElements) {
		t.Errorf("Count mismatch, got: %d  expected: %d", p.Count(), len(expectedElements))
	}

	// compare all items from pool
	for i, a := range data {
		if i >= len(expectedElements) {
			t.Errorf("%d: Excess, got: '%s'  expected: Nothing", i, a)
		} else if !bytes.Equal(expectedElements[i].Key, a.Key) || !bytes.Equal(expectedElements[i].Value, a.Value) {
			t.Errorf("%d: Mismatch, got: '%s:%s'  expected: '%s:%s'", i,
				a.Key, a.Value,
				expectedElements[i].Key, expectedElements[i].Value)
		}
	}

	// retrieve 2 elements then next 2 - ensure no overlap
	cursor.Seek(nil)
	firstPair, err := cursor.Fetch(2)
	if nil != err {
		t.Errorf("Error on Fetch: %v", err)
		return
	}
	secondPair, err := cursor.Fetch(2)
	if nil != err {
		t.Errorf("Error on Fetch: %v", err)
		return
	}
	if bytes.Equal(firstPair[1].Key, secondPair[0].Key) {
		t.Errorf("Fetch Overlap got duplicate: '%s:%s'", firstPair[1].Key, firstPair[1].Value)
	}
	if !bytes.Equal(expectedElements[2].Key, secondPair[0].Key) {
		t.Errorf("Fetch skipped: got: '%s'  expected: '%s'", secondPair[0].Key, expectedElements[2].Key)
	}

	// check key exists
	if !p.Has(testKey) {
		t.Errorf("not found: %q", testKey)
	}

	// retrieve a key
	d2 := p.Get(testKey)
	if nil == d2 {
		t.Errorf("not found: %q", testKey)
	}
	if string(d2) != testData {
		t.Errorf("Mismatch on Get, got: '%s'  expected: '%s'", d2, testData)
	}

	// check that key does not exist
	if p.Has([]byte(nonExistantKey)) {
		t.Errorf("unexpectedly found: %q", nonExistantKey)
	}

	// retrieve a key not in the pool
	dn := p.Get(nonExistantKey)
	if nil != dn {
		t.Errorf("Unexpected data on Get, got: '%s'  expected: nil", dn)
	}
}

func checkAgain(t *testing.T, empty bool) {

	p := storage.Pool.TestData

	cursor := p.NewFetchCursor()
	data, err := cursor.Fetch(100) // all data
	if nil != err {
		t.Errorf("Error on Fetch: %v", err)
		return
	}
	if empty && 0 != len(data) {
		t.Errorf("Pool was not empty, count = %d", len(data))
	}

	for i, e := range expectedElements {

		data := p.Get([]byte(e.Key))
		if empty {
			if nil != data {
				t.Errorf("checkAgain: %d: Unexpected data on Get('%s'), got: '%s'  expected: nil", i, e.Key, data)
			}
		} else {
			if nil == data {
				t.Errorf("checkAgain: %d: Error on Get('%s') not found", i, e.Key)
			}
			if !bytes.Equal(data, e.Value) {
				t.Errorf("checkAgain: %d: Mismatch on Get('%s'), got: '%s'  expected: '%s'", i, e.Key, data, e.Value)
			}
		}
	}

	// try to retrieve some more data - should be zero
	data, err = cursor.Fetch(100)
	if nil != err {
		t.Errorf("Error on Fetch: %v", err)
		return
	}
	if 0 != len(data) {
		t.Errorf("checkAgain: extra: %d elements found", len(data))
	}

	// attempt to retrieve a key that does not exist
	dn := p.Get(nonExistantKey)
	if nil != dn {
		t.Errorf("checkAgain: Unexpected data on Get('/nonexistant'), got: '%s'  expected: nil", dn)
	}
}

// put returns the value it replaced
func TestPutPrevious(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	previous := p.Put([]byte("k"), []byte("first"))
	assert.Nil(t, previous, "previous value for new key")

	previous = p.Put([]byte("k"), []byte("second"))
	assert.Equal(t, []byte("first"), previous, "wrong previous value")
	assert.Equal(t, []byte("second"), p.Get([]byte("k")), "wrong current value")
}

// returned values must be copies
func TestGetIsCopy(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	p.Put([]byte("k"), []byte("value"))

	v := p.Get([]byte("k"))
	v[0] = 'X'
	assert.Equal(t, []byte("value"), p.Get([]byte("k")), "cached value was modified")
}

func TestPutNGetN(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.Counter

	_, found := p.GetN([]byte{0})
	assert.False(t, found, "empty counter found")

	p.PutN([]byte{0}, 0x0102030405060708)
	n, found := p.GetN([]byte{0})
	assert.True(t, found, "counter not found")
	assert.Equal(t, uint64(0x0102030405060708), n, "wrong counter value")
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, p.Get([]byte{0}), "not big endian")
}

// pools in the same database and pools in different databases
// must not see each other's keys
func TestRegionIsolation(t *testing.T) {
	setup(t)
	defer teardown(t)

	storage.Pool.Assets.Put([]byte("shared"), []byte("asset"))
	storage.Pool.Files.Put([]byte("shared"), []byte("file"))

	assert.False(t, storage.Pool.TestData.Has([]byte("shared")), "test pool sees asset key")
	assert.False(t, storage.Pool.Counter.Has([]byte("shared")), "counter pool sees file key")
	assert.Equal(t, []byte("asset"), storage.Pool.Assets.Get([]byte("shared")), "wrong asset value")
	assert.Equal(t, []byte("file"), storage.Pool.Files.Get([]byte("shared")), "wrong file value")
	assert.Equal(t, 1, storage.Pool.Assets.Count(), "wrong asset count")
	assert.Equal(t, 0, storage.Pool.TestData.Count(), "wrong test count")
}

func TestMap(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	for _, e := range expectedElements {
		p.Put(e.Key, e.Value)
	}

	keys := []string{}
	err := p.Map(func(key []byte, value []byte) error {
		keys = append(keys, string(key))
		return nil
	})
	assert.Nil(t, err, "map error")
	assert.Equal(t, len(expectedElements), len(keys), "wrong key count")
	for i, e := range expectedElements {
		assert.Equal(t, string(e.Key), keys[i], "%d: wrong order", i)
	}

	stop := errors.New("stop")
	n := 0
	err = p.Map(func(key []byte, value []byte) error {
		n += 1
		return stop
	})
	assert.Equal(t, stop, err, "map did not return callback error")
	assert.Equal(t, 1, n, "map did not stop")

	last, found := storage.Pool.TestData.LastElement()
	assert.True(t, found, "last element not found")
	assert.Equal(t, "key-two", string(last.Key), "wrong last element")
}

func TestCursorErrors(t *testing.T) {
	setup(t)
	defer teardown(t)

	var cursor *storage.FetchCursor
	_, err := cursor.Fetch(1)
	assert.Equal(t, fault.InvalidCursor, err, "nil cursor")

	_, err = storage.Pool.TestData.NewFetchCursor().Fetch(0)
	assert.Equal(t, fault.InvalidCount, err, "zero count")
}

func TestInitialiseTwice(t *testing.T) {
	setup(t)
	defer teardown(t)

	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	assert.Equal(t, fault.AlreadyInitialised, err, "second initialise")
}

func TestCacheStatistics(t *testing.T) {
	setup(t)
	defer teardown(t)

	before := storage.Cache()

	p := storage.Pool.TestData
	p.Put([]byte("cached"), []byte("value")) // misses on the previous value lookup
	assert.Equal(t, []byte("value"), p.Get([]byte("cached")), "wrong value")

	after := storage.Cache()
	assert.Equal(t, before.Hits+1, after.Hits, "wrong hits")
	assert.Equal(t, before.Misses+1, after.Misses, "wrong misses")
	assert.Equal(t, before.Items+1, after.Items, "wrong items")

	// uncached pools bypass the cache
	storage.Pool.Files.Put([]byte("file"), []byte("data"))
	storage.Pool.Files.Get([]byte("file"))
	assert.Equal(t, after, storage.Cache(), "uncached pool changed statistics")
}
