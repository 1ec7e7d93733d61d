// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// soterg-cli - hash, inspect and mine block headers
//
//   soterg-cli hash   --header=HEX
//   soterg-cli order  --timestamp=SECONDS
//   soterg-cli verify --header=HEX [--bits=1c1402c6]
//   soterg-cli mine   --header=HEX --bits=207fffff --threads=4
//   soterg-cli bench  --count=2000
package main
