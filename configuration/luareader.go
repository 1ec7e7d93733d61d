// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"reflect"

	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/soteria-network/soterg/fault"
)

// keys are used as written, so Lua names must match the struct tags
var mapper = gluamapper.Mapper{
	Option: gluamapper.Option{
		NameFunc: func(s string) string { return s },
		TagName:  "gluamapper",
	},
}

// ParseConfigurationFile - run a Lua file and map the table it
// returns onto the structure config points to
//
// fields the file does not set keep their current values, so defaults
// are filled in before the call
func ParseConfigurationFile(fileName string, config interface{}) error {

	rv := reflect.ValueOf(config)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fault.ErrInvalidStructPointer
	}

	L := lua.NewState()
	defer L.Close()

	table, err := run(L, fileName)
	if nil != err {
		return err
	}
	return mapper.Map(table, config)
}

// execute the file with the standard libraries and arg[0] set to its
// name, the last value it returns must be a table
func run(L *lua.LState, fileName string) (*lua.LTable, error) {
	L.OpenLibs()

	arg := L.NewTable()
	arg.RawSetInt(0, lua.LString(fileName))
	L.SetGlobal("arg", arg)

	if err := L.DoFile(fileName); nil != err {
		return nil, err
	}

	table, ok := L.Get(-1).(*lua.LTable)
	if !ok {
		return nil, fault.ErrInvalidConfiguration
	}
	return table, nil
}
