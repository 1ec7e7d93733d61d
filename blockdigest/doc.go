// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockdigest - block header proof-of-work digest
//
// a SoterG digest of the 80 byte header, kept little endian and shown
// as a big endian number so it reads like a difficulty target
package blockdigest
