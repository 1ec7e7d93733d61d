// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/soteria-network/soterg/fault"
)

// NonceType - header nonce, text form is the four header bytes in hex
type NonceType uint32

// MarshalText - little endian hex as the nonce appears in a packed header
func (nonce NonceType) MarshalText() ([]byte, error) {
	var b [NonceSize]byte
	binary.LittleEndian.PutUint32(b[:], uint32(nonce))
	return []byte(hex.EncodeToString(b[:])), nil
}

// UnmarshalText - exactly eight hex characters, little endian
func (nonce *NonceType) UnmarshalText(s []byte) error {
	if hex.EncodedLen(NonceSize) != len(s) {
		return fault.ErrInvalidCharacter
	}
	var b [NonceSize]byte
	if _, err := hex.Decode(b[:], s); nil != err {
		return fault.ErrInvalidCharacter
	}
	*nonce = NonceType(binary.LittleEndian.Uint32(b[:]))
	return nil
}
