// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/soteria-network/soterg/blockrecord"
	"github.com/soteria-network/soterg/difficulty"
	"github.com/soteria-network/soterg/fault"
)

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

// decode header hex, only the first 80 bytes are kept
func headerFromHex(s string) (blockrecord.PackedHeader, error) {
	var packed blockrecord.PackedHeader

	s = strings.TrimSpace(s)
	if "" == s {
		return packed, ErrMissingHeader
	}
	b, err := hex.DecodeString(s)
	if nil != err {
		return packed, err
	}
	if len(b) < blockrecord.HeaderSize {
		return packed, fault.ErrInvalidInputLength
	}
	copy(packed[:], b)
	return packed, nil
}

// big endian hex compact bits, empty keeps the header value
func bitsFromHex(s string, packed *blockrecord.PackedHeader) (uint32, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	if "" == s {
		return packed.Bits(), nil
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if nil != err {
		return 0, fault.ErrInvalidDifficultyBits
	}
	bits := uint32(n)
	if _, err := difficulty.Target(bits); nil != err {
		return 0, err
	}
	packed.SetBits(bits)
	return bits, nil
}
