// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package soterg - twelve round proof-of-work chain hash
//
// the header timestamp (word 17) is masked to a 128 second window and
// hashed with double SHA-256; the first six bytes of that digest choose
// which of twelve 512 bit primitives runs in each round.  Round 0
// hashes the 80 byte header, rounds 1..11 hash the previous 64 byte
// result, and the first 32 bytes of the last result are the digest.
//
// every call owns all of its intermediate buffers, so independent
// calls may run concurrently
package soterg
