// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package timehash

import (
	"encoding/binary"
	"encoding/hex"

	sha256 "github.com/minio/sha256-simd"

	"github.com/soteria-network/soterg/fault"
)

// Mask - clears the low 7 bits so 128 consecutive seconds share one order
const Mask = 0xffffff80

// header layout needed to locate the timestamp
const (
	HeaderSize      = 80
	TimestampOffset = 68
)

// Length - bytes in a time hash
const Length = sha256.Size

// Digest - double SHA-256 of the masked timestamp
type Digest [Length]byte

// Masked - quantise a timestamp to its window
func Masked(timestamp uint32) uint32 {
	return timestamp & Mask
}

// New - compute the time hash for a header timestamp
func New(timestamp uint32) Digest {
	var buffer [4]byte
	binary.LittleEndian.PutUint32(buffer[:], Masked(timestamp))

	first := sha256.Sum256(buffer[:])
	return sha256.Sum256(first[:])
}

// Timestamp - extract the little endian timestamp word from a header
func Timestamp(header []byte) (uint32, error) {
	if len(header) < HeaderSize {
		return 0, fault.ErrInvalidInputLength
	}
	return binary.LittleEndian.Uint32(header[TimestampOffset:]), nil
}

// FromHeader - time hash for the timestamp stored in a header
func FromHeader(header []byte) (Digest, error) {
	timestamp, err := Timestamp(header)
	if nil != err {
		return Digest{}, err
	}
	return New(timestamp), nil
}

// String - hex in stored byte order
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}
