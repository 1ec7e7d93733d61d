// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle

import (
	"encoding/hex"
	"fmt"

	"github.com/minio/sha256-simd"

	"github.com/soteria-network/soterg/fault"
)

// DigestLength - bytes in a transaction id or tree node
const DigestLength = sha256.Size

// Digest - double SHA-256 as used for transaction ids and tree nodes
//
// stored in hash output order, printed and scanned as big endian hex
// like a block explorer, JSON keeps the stored order
type Digest [DigestLength]byte

// NewDigest - SHA-256 of the SHA-256 of record
func NewDigest(record []byte) Digest {
	first := sha256.Sum256(record)
	return sha256.Sum256(first[:])
}

func (digest Digest) bigEndian() []byte {
	b := make([]byte, DigestLength)
	for i, v := range digest {
		b[DigestLength-1-i] = v
	}
	return b
}

// String - big endian hex
func (digest Digest) String() string {
	return hex.EncodeToString(digest.bigEndian())
}

// GoString - tagged big endian hex
func (digest Digest) GoString() string {
	return fmt.Sprintf("<SHA256d:%s>", digest)
}

// Scan - big endian hex of exactly DigestLength bytes
func (digest *Digest) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
	})
	if nil != err {
		return err
	}
	if hex.EncodedLen(DigestLength) != len(token) {
		return fault.ErrInvalidDigestLength
	}

	b, err := hex.DecodeString(string(token))
	if nil != err {
		return err
	}
	for i, v := range b {
		digest[DigestLength-1-i] = v
	}
	return nil
}

// MarshalText - stored order hex
func (digest Digest) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(DigestLength))
	hex.Encode(buffer, digest[:])
	return buffer, nil
}

// UnmarshalText - stored order hex
func (digest *Digest) UnmarshalText(s []byte) error {
	if hex.EncodedLen(DigestLength) != len(s) {
		return fault.ErrInvalidDigestLength
	}
	b, err := hex.DecodeString(string(s))
	if nil != err {
		return err
	}
	return DigestFromBytes(digest, b)
}

// DigestFromBytes - stored order bytes to a digest
func DigestFromBytes(digest *Digest, buffer []byte) error {
	if DigestLength != len(buffer) {
		return fault.ErrInvalidDigestLength
	}
	copy(digest[:], buffer)
	return nil
}
