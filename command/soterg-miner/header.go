// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"fortio.org/safecast"

	"github.com/soteria-network/soterg/blockrecord"
	"github.com/soteria-network/soterg/difficulty"
	"github.com/soteria-network/soterg/fault"
	"github.com/soteria-network/soterg/merkle"
)

const timestampNow = "now"

// HeaderConfiguration - block header template
//
// digests are big endian hex as printed by the cli
type HeaderConfiguration struct {
	Version       uint32   `gluamapper:"version" json:"version"`
	PreviousBlock string   `gluamapper:"previous_block" json:"previous_block"`
	MerkleRoot    string   `gluamapper:"merkle_root" json:"merkle_root"`
	Transactions  []string `gluamapper:"transactions" json:"transactions"`
	Bits          string   `gluamapper:"bits" json:"bits"`
	Timestamp     string   `gluamapper:"timestamp" json:"timestamp"`
}

func (h *HeaderConfiguration) followsClock() bool {
	s := strings.ToLower(strings.TrimSpace(h.Timestamp))
	return "" == s || timestampNow == s
}

// build the unpacked header, now is used for a clock timestamp
func (h *HeaderConfiguration) header(now time.Time) (*blockrecord.Header, error) {

	if err := blockrecord.ValidHeaderVersion(blockrecord.MinimumVersion, h.Version); nil != err {
		return nil, err
	}

	header := &blockrecord.Header{
		Version: h.Version,
	}

	if "" != h.PreviousBlock {
		if _, err := fmt.Sscan(h.PreviousBlock, &header.PreviousBlock); nil != err {
			return nil, err
		}
	}

	root, err := h.merkleRoot()
	if nil != err {
		return nil, err
	}
	header.MerkleRoot = root

	bits, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimSpace(h.Bits), "0x"), 16, 32)
	if nil != err {
		return nil, fault.ErrInvalidDifficultyBits
	}
	if _, err := difficulty.Target(uint32(bits)); nil != err {
		return nil, err
	}
	header.Difficulty = difficulty.New().SetBits(uint32(bits))

	if h.followsClock() {
		ts, err := safecast.Conv[uint32](now.Unix())
		if nil != err {
			return nil, ErrInvalidTimestamp
		}
		header.Timestamp = ts
	} else {
		ts, err := strconv.ParseUint(strings.TrimSpace(h.Timestamp), 0, 32)
		if nil != err {
			return nil, ErrInvalidTimestamp
		}
		header.Timestamp = uint32(ts)
	}

	return header, nil
}

// either a fixed root or the root of the listed transaction ids
func (h *HeaderConfiguration) merkleRoot() (merkle.Digest, error) {
	switch {
	case "" != h.MerkleRoot && 0 != len(h.Transactions):
		return merkle.Digest{}, ErrAmbiguousMerkleRoot

	case "" != h.MerkleRoot:
		var root merkle.Digest
		if _, err := fmt.Sscan(h.MerkleRoot, &root); nil != err {
			return merkle.Digest{}, err
		}
		return root, nil

	case 0 != len(h.Transactions):
		txIds := make([]merkle.Digest, len(h.Transactions))
		for i, s := range h.Transactions {
			if _, err := fmt.Sscan(s, &txIds[i]); nil != err {
				return merkle.Digest{}, err
			}
		}
		return merkle.Root(txIds)

	default:
		return merkle.Digest{}, ErrMissingMerkleRoot
	}
}
