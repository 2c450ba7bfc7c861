// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"time"

	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/assetd/fault"
)

// a configuration that has not returned by then is abandoned
const evaluationTimeout = 10 * time.Second

// ParseConfigurationFile - execute a Lua configuration file and
// assign the table it returns to a configuration structure
//
// fields already set in the structure are kept unless the Lua table
// overrides them, so defaults should be filled in before calling
//
// the script sees these globals:
//   arg[0]                  the configuration file name
//   config_directory        the directory holding the file
//   getenv(name, default)   environment lookup with a fallback
func ParseConfigurationFile(fileName string, config interface{}) error {

	// since interface{} is untyped, have to verify type compatibility at run-time
	rv := reflect.ValueOf(config)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fault.InvalidStructPointer
	}

	L := newState(fileName)
	defer L.Close()

	ctx, cancel := context.WithTimeout(context.Background(), evaluationTimeout)
	defer cancel()
	L.SetContext(ctx)

	if err := L.DoFile(fileName); err != nil {
		return err
	}

	table, ok := L.Get(L.GetTop()).(*lua.LTable)
	if !ok {
		return fmt.Errorf("configuration: %q did not return a table", fileName)
	}

	mapper := gluamapper.NewMapper(gluamapper.Option{
		NameFunc: func(s string) string {
			return s
		},
		TagName: "gluamapper",
	})
	return mapper.Map(table, config)
}

func newState(fileName string) *lua.LState {
	L := lua.NewState()
	L.OpenLibs()

	arg := L.NewTable()
	arg.RawSetInt(0, lua.LString(fileName))
	L.SetGlobal("arg", arg)

	directory, _ := filepath.Split(fileName)
	L.SetGlobal("config_directory", lua.LString(directory))

	L.SetGlobal("getenv", L.NewFunction(getenv))

	return L
}

// getenv(name [, default]) returns default (or nil) for unset variables
func getenv(L *lua.LState) int {
	name := L.CheckString(1)
	if value, ok := os.LookupEnv(name); ok {
		L.Push(lua.LString(value))
		return 1
	}
	if L.GetTop() >= 2 {
		L.Push(L.Get(2))
	} else {
		L.Push(lua.LNil)
	}
	return 1
}
