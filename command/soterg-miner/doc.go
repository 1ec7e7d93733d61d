// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// soterg-miner - search for a SoterG proof-of-work nonce
//
// the block header template, thread count and logging are read from a
// Lua configuration file:
//
//   soterg-miner --config-file=soterg-miner.conf check
//   soterg-miner --config-file=soterg-miner.conf start
//
// the search stops when a nonce is found or on SIGINT/SIGTERM
package main
