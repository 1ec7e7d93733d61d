// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord

import (
	"encoding/binary"

	"github.com/soteria-network/soterg/blockdigest"
	"github.com/soteria-network/soterg/difficulty"
	"github.com/soteria-network/soterg/fault"
	"github.com/soteria-network/soterg/merkle"
	"github.com/soteria-network/soterg/timehash"
)

// use fix size array to simplify validation
type PackedHeader [totalBlockSize]byte

// lowest accepted block version
const MinimumVersion = 1

// byte sizes for various fields
const (
	VersionSize       = 4                   // Block version number
	PreviousBlockSize = blockdigest.Length  // 256-bit SoterG hash of the previous block header
	MerkleRootSize    = merkle.DigestLength // 256-bit double SHA-256 hash based on all of the transactions in the block
	TimestampSize     = 4                   // Current timestamp as seconds since 1970-01-01T00:00 UTC
	DifficultySize    = 4                   // Current target difficulty in compact format
	NonceSize         = 4                   // 32-bit number (starts at 0)
)

// offsets of the fields
const (
	versionOffset       = 0
	previousBlockOffset = versionOffset + VersionSize
	merkleRootOffset    = previousBlockOffset + PreviousBlockSize
	timestampOffset     = merkleRootOffset + MerkleRootSize
	difficultyOffset    = timestampOffset + TimestampSize
	nonceOffset         = difficultyOffset + DifficultySize

	// to set size of header array
	totalBlockSize = nonceOffset + NonceSize // total bytes in the header
)

// HeaderSize - bytes in a packed header
const HeaderSize = totalBlockSize

// the unpacked header structure
// the types here must match Bitcoin header types
type Header struct {
	Version       uint32                 `json:"version"`
	PreviousBlock blockdigest.Digest     `json:"previousBlock"`
	MerkleRoot    merkle.Digest          `json:"merkleRoot"`
	Timestamp     uint32                 `json:"timestamp"`
	Difficulty    *difficulty.Difficulty `json:"difficulty"`
	Nonce         NonceType              `json:"nonce"`
}

// ExtractHeader - extract a header from the front of a []byte
//
// the header digest must meet the target given by its own bits
func ExtractHeader(block []byte) (*Header, blockdigest.Digest, []byte, error) {
	if len(block) < totalBlockSize {
		return nil, blockdigest.Digest{}, nil, fault.ErrInvalidHeaderLength
	}
	packedHeader := PackedHeader{}
	copy(packedHeader[:], block[:totalBlockSize])

	header, err := packedHeader.Unpack()
	if nil != err {
		return nil, blockdigest.Digest{}, nil, err
	}
	digest := packedHeader.Digest()

	if !digest.MeetsTarget(header.Difficulty.BigInt()) {
		return nil, blockdigest.Digest{}, nil, fault.ErrInvalidBlockHeaderDifficulty
	}

	return header, digest, block[totalBlockSize:], nil
}

// Unpack - turn a byte slice into a record
func (record PackedHeader) Unpack() (*Header, error) {

	header := &Header{}

	header.Version = binary.LittleEndian.Uint32(record[versionOffset:])
	if header.Version < MinimumVersion {
		return nil, fault.ErrInvalidBlockHeaderVersion
	}

	err := blockdigest.DigestFromBytes(&header.PreviousBlock, record[previousBlockOffset:merkleRootOffset])
	if nil != err {
		return nil, err
	}

	err = merkle.DigestFromBytes(&header.MerkleRoot, record[merkleRootOffset:timestampOffset])
	if nil != err {
		return nil, err
	}

	header.Timestamp = record.Timestamp()

	bits := record.Bits()
	if _, err := difficulty.Target(bits); nil != err {
		return nil, err
	}
	header.Difficulty = difficulty.New().SetBits(bits)
	header.Nonce = NonceType(binary.LittleEndian.Uint32(record[nonceOffset:]))

	return header, nil
}

// Digest - proof-of-work digest for a packed header
func (record PackedHeader) Digest() blockdigest.Digest {
	return blockdigest.NewDigest(record[:])
}

// Timestamp - the header time as read by the hash order
func (record PackedHeader) Timestamp() uint32 {
	ts, err := timehash.Timestamp(record[:])
	fault.PanicIfError("blockrecord.Timestamp", err)
	return ts
}

// Bits - the compact difficulty
func (record PackedHeader) Bits() uint32 {
	return binary.LittleEndian.Uint32(record[difficultyOffset:])
}

// SetBits - overwrite the compact difficulty in place
func (record *PackedHeader) SetBits(bits uint32) {
	binary.LittleEndian.PutUint32(record[difficultyOffset:], bits)
}

// SetNonce - overwrite the nonce in place
func (record *PackedHeader) SetNonce(nonce uint32) {
	binary.LittleEndian.PutUint32(record[nonceOffset:], nonce)
}

// Nonce - the current nonce
func (record PackedHeader) Nonce() uint32 {
	return binary.LittleEndian.Uint32(record[nonceOffset:])
}

// Pack - turn a record into an array of bytes
func (header *Header) Pack() PackedHeader {
	buffer := PackedHeader{}

	binary.LittleEndian.PutUint32(buffer[versionOffset:], header.Version)

	// these are in little endian order so can just copy them
	copy(buffer[previousBlockOffset:], header.PreviousBlock[:])
	copy(buffer[merkleRootOffset:], header.MerkleRoot[:])

	binary.LittleEndian.PutUint32(buffer[timestampOffset:], header.Timestamp)
	binary.LittleEndian.PutUint32(buffer[difficultyOffset:], header.Difficulty.Bits())
	binary.LittleEndian.PutUint32(buffer[nonceOffset:], uint32(header.Nonce))

	return buffer
}
