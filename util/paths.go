// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"
)

// EnsureAbsolute - a relative path is taken from directory
func EnsureAbsolute(directory string, filePath string) string {
	if filepath.IsAbs(filePath) {
		return filepath.Clean(filePath)
	}
	return filepath.Join(directory, filePath)
}

// MakeDirectories - make each path absolute in place and create it
//
// stops at the first directory that cannot be created
func MakeDirectories(directory string, paths ...*string) error {
	for _, p := range paths {
		*p = EnsureAbsolute(directory, *p)
		if err := os.MkdirAll(*p, 0700); nil != err {
			return err
		}
	}
	return nil
}
