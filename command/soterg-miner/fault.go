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
	ErrAmbiguousMerkleRoot = fault.InvalidError("only one of merkle_root or transactions may be set")
	ErrInvalidTimestamp    = fault.InvalidError("timestamp must be \"now\" or a number of seconds")
	ErrMissingMerkleRoot   = fault.InvalidError("one of merkle_root or transactions is required")
)
