// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/soteria-network/soterg/fault"
)

// common errors - keep in alphabetic order
var (
	ErrMissingHeader    = fault.InvalidError("header hex is required")
	ErrMissingTimestamp = fault.InvalidError("header or timestamp is required")
)
