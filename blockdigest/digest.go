// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockdigest

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/soteria-network/soterg/fault"
	"github.com/soteria-network/soterg/soterg"
)

// Length - bytes in a block digest
const Length = soterg.OutputSize

// Digest - SoterG digest of a packed block header
//
// kept in the order the hash produces it, which read as a number is
// little endian; String and Scan use big endian hex and JSON keeps the
// produced order
type Digest [Length]byte

// NewDigest - digest of the first 80 bytes of a packed header
func NewDigest(record []byte) Digest {
	d, err := soterg.Sum(record)
	fault.PanicIfError("blockdigest.NewDigest", err)
	return Digest(d)
}

func (digest Digest) bigEndian() []byte {
	b := make([]byte, Length)
	for i, v := range digest {
		b[Length-1-i] = v
	}
	return b
}

// Cmp - compare the digest value with a target
func (digest Digest) Cmp(target *big.Int) int {
	return new(big.Int).SetBytes(digest.bigEndian()).Cmp(target)
}

// MeetsTarget - digest value is at or below the target
func (digest Digest) MeetsTarget(target *big.Int) bool {
	return digest.Cmp(target) <= 0
}

// IsZero - all bytes zero
func (digest Digest) IsZero() bool {
	return Digest{} == digest
}

// String - big endian hex for %s and %v
func (digest Digest) String() string {
	return hex.EncodeToString(digest.bigEndian())
}

// GoString - tagged big endian hex for %#v
func (digest Digest) GoString() string {
	return fmt.Sprintf("<SoterG:%s>", digest)
}

func isHex(c rune) bool {
	switch {
	case '0' <= c && c <= '9':
	case 'a' <= c && c <= 'f':
	case 'A' <= c && c <= 'F':
	default:
		return false
	}
	return true
}

// Scan - read the big endian hex produced by String
func (digest *Digest) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, isHex)
	if nil != err {
		return err
	}
	if hex.EncodedLen(Length) != len(token) {
		return fault.ErrInvalidDigestLength
	}

	var b [Length]byte
	if _, err := hex.Decode(b[:], token); nil != err {
		return err
	}
	for i, v := range b {
		digest[Length-1-i] = v
	}
	return nil
}

// MarshalText - hex in produced order
func (digest Digest) MarshalText() ([]byte, error) {
	return []byte(hex.EncodeToString(digest[:])), nil
}

// UnmarshalText - hex in produced order
func (digest *Digest) UnmarshalText(s []byte) error {
	if hex.EncodedLen(Length) != len(s) {
		return fault.ErrInvalidDigestLength
	}
	var b Digest
	if _, err := hex.Decode(b[:], s); nil != err {
		return err
	}
	*digest = b
	return nil
}

// DigestFromBytes - copy a produced order byte slice into a digest
func DigestFromBytes(digest *Digest, buffer []byte) error {
	if Length != len(buffer) {
		return fault.ErrInvalidDigestLength
	}
	copy(digest[:], buffer)
	return nil
}
