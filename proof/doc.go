// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package proof - multi-threaded nonce search over a packed header
//
// the nonce range is cut into one contiguous slice per thread; each
// thread works on its own copy of the header and the first digest at
// or below the target ends the search
package proof
