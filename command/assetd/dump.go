// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/assetd/asset"
	"github.com/bitmark-inc/assetd/storage"
)

// records fetched per cursor step
const dumpBatchSize = 100

// data command handler
// the storage pools are open read-only so these commands can
// inspect the databases while no daemon holds them
func processDataCommand(log *logger.L, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "dump-assets", "assets":
		fd := os.Stdout
		first := uint64(0)
		if len(arguments) > 1 {
			n, err := strconv.ParseUint(strings.TrimSpace(arguments[1]), 10, 64)
			if nil != err {
				exitwithstatus.Message("error: invalid first identifier: %q", arguments[1])
			}
			first = n
		}
		if len(arguments) > 0 {
			output := strings.TrimSpace(arguments[0])
			if "" != output && "-" != output {
				f, err := os.Create(output)
				if nil != err {
					exitwithstatus.Message("error: creating: %q error: %s", output, err)
				}
				defer f.Close()
				fd = f
			}
		}
		n, err := dumpAssets(fd, storage.Pool.Assets, first)
		if nil != err {
			exitwithstatus.Message("dump assets error: %s", err)
		}
		log.Infof("dumped assets: %d", n)

	case "dump-files", "files":
		n, err := dumpFiles(os.Stdout, storage.Pool.Files)
		if nil != err {
			exitwithstatus.Message("dump files error: %s", err)
		}
		log.Infof("dumped files: %d", n)

	case "stats":
		printStats(os.Stdout, storage.Pool.Assets, storage.Pool.Counter, storage.Pool.Files)

	default:
		exitwithstatus.Message("error: no such command: %s", command)

	}

	// indicate processing complete and perform normal exit from main
	return true
}

// pool sizes, the allocator counter and the highest stored identifier
func printStats(w io.Writer, assets storage.Handle, counter storage.Handle, files storage.Handle) {
	current, _ := counter.GetN([]byte{0x00})
	fmt.Fprintf(w, "assets:          %d\n", assets.Count())
	fmt.Fprintf(w, "files:           %d\n", files.Count())
	fmt.Fprintf(w, "last identifier: %d\n", current)

	highest := uint64(0)
	if last, found := assets.LastElement(); found && 8 == len(last.Key) {
		highest = binary.BigEndian.Uint64(last.Key)
	}
	fmt.Fprintf(w, "highest asset:   %d\n", highest)
	if highest > current {
		fmt.Fprintf(w, "warning: counter is behind stored assets\n")
	}
}

// write assets from identifier first onwards as a JSON array in
// identifier order
func dumpAssets(w io.Writer, pool storage.Handle, first uint64) (int, error) {
	cursor := pool.NewFetchCursor()
	if first > 0 {
		cursor.Seek(asset.Key(first))
	}

	fmt.Fprintf(w, "[\n")
	n := 0
	for {
		elements, err := cursor.Fetch(dumpBatchSize)
		if nil != err {
			return n, err
		}
		if 0 == len(elements) {
			break
		}
		for _, e := range elements {
			a, err := asset.Unpack(e.Value)
			if nil != err {
				return n, fmt.Errorf("key: %x  error: %s", e.Key, err)
			}
			s, err := json.MarshalIndent(a, "  ", "  ")
			if nil != err {
				return n, err
			}
			if n > 0 {
				fmt.Fprintf(w, ",\n")
			}
			fmt.Fprintf(w, "  %s", s)
			n += 1
		}
	}
	fmt.Fprintf(w, "\n]\n")
	return n, nil
}

// write one line per stored file: hash and size
func dumpFiles(w io.Writer, pool storage.Handle) (int, error) {
	n := 0
	err := pool.NewFetchCursor().Map(func(key []byte, value []byte) error {
		fmt.Fprintf(w, "%s  %d\n", key, len(value))
		n += 1
		return nil
	})
	return n, err
}
