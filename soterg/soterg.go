// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package soterg

import (
	"encoding/hex"

	"github.com/soteria-network/soterg/algorithm"
	"github.com/soteria-network/soterg/fault"
	"github.com/soteria-network/soterg/hashorder"
	"github.com/soteria-network/soterg/timehash"
)

// sizes at the call boundary
const (
	InputSize  = timehash.HeaderSize // only this many input bytes are read
	OutputSize = 32                  // leading bytes of the final chain state
)

// Digest - the proof-of-work output in the byte order it is produced
type Digest [OutputSize]byte

// String - hex in produced byte order
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Hasher - runs the chain over a fixed primitive table
//
// a Hasher holds no per-call state and may be shared between goroutines
type Hasher struct {
	table algorithm.Table
}

// Trace - intermediate values of one hash, for diagnostics
type Trace struct {
	Timestamp uint32
	TimeHash  timehash.Digest
	Order     hashorder.Order
	Digest    Digest
}

// New - hasher using the standard primitive set
func New() *Hasher {
	return &Hasher{
		table: algorithm.Default(),
	}
}

// NewWithTable - hasher using a caller supplied primitive set
func NewWithTable(table algorithm.Table) (*Hasher, error) {
	if err := table.Validate(); nil != err {
		return nil, err
	}
	return &Hasher{
		table: table,
	}, nil
}

// Sum - proof-of-work digest of the first 80 bytes of input
func Sum(input []byte) (Digest, error) {
	return New().Sum(input)
}

// SumInto - write the proof-of-work digest into the first 32 bytes of output
func SumInto(output []byte, input []byte) error {
	return New().SumInto(output, input)
}

// Sum - proof-of-work digest of the first 80 bytes of input
func (h *Hasher) Sum(input []byte) (Digest, error) {
	if len(input) < InputSize {
		return Digest{}, fault.ErrInvalidInputLength
	}
	return h.sum(input[:InputSize]), nil
}

// SumInto - write the proof-of-work digest into the first 32 bytes of output
//
// bytes of output beyond the first 32 are left untouched
func (h *Hasher) SumInto(output []byte, input []byte) error {
	if len(input) < InputSize {
		return fault.ErrInvalidInputLength
	}
	if len(output) < OutputSize {
		return fault.ErrInvalidOutputBuffer
	}
	digest := h.sum(input[:InputSize])
	copy(output, digest[:])
	return nil
}

// Trace - compute the digest and keep the intermediate values
func (h *Hasher) Trace(input []byte) (*Trace, error) {
	timestamp, err := timehash.Timestamp(input)
	if nil != err {
		return nil, err
	}
	t := &Trace{
		Timestamp: timestamp,
		TimeHash:  timehash.New(timestamp),
	}
	t.Order = hashorder.Derive(t.TimeHash)
	state := h.Chain(input[:InputSize], t.Order)
	t.Digest = truncate(&state)
	return t, nil
}

// header is already limited to exactly InputSize bytes
func (h *Hasher) sum(header []byte) Digest {
	timestamp, err := timehash.Timestamp(header)
	fault.PanicIfError("soterg.sum", err)

	order := hashorder.Derive(timehash.New(timestamp))
	state := h.Chain(header, order)
	return truncate(&state)
}

// Chain - apply the twelve primitives in order
//
// round 0 absorbs the 80 byte header, every later round absorbs the 64
// byte state finalized by the round before it
func (h *Hasher) Chain(header []byte, order hashorder.Order) [algorithm.DigestSize]byte {
	if len(header) != InputSize {
		fault.Panicf("soterg.Chain: header length: %d  expected: %d", len(header), InputSize)
	}

	var state [algorithm.DigestSize]byte
	input := header

	for round, a := range order {
		p, err := h.table.New(a)
		if nil != err {
			fault.Panicf("soterg.Chain: round: %d  algorithm: %d  error: %s", round, a, err)
		}

		var next [algorithm.DigestSize]byte
		p.Init()
		p.Absorb(input)
		p.Finalize(&next)

		state = next
		input = state[:]
	}
	return state
}

// keep the leading 256 bits of the final state
func truncate(state *[algorithm.DigestSize]byte) Digest {
	var d Digest
	copy(d[:], state[:OutputSize])
	return d
}
