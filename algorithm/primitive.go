// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package algorithm

import (
	"github.com/soteria-network/soterg/fault"
)

// DigestSize - bytes produced by every chain primitive
const DigestSize = 64

// Primitive - a 512 bit hash as seen by the chain
//
// Init must be called before the first Absorb; Finalize writes the
// full 64 byte result and leaves the state undefined until the next Init
type Primitive interface {
	Init()
	Absorb(data []byte)
	Finalize(digest *[DigestSize]byte)
}

// Constructor - create a fresh primitive instance
type Constructor func() Primitive

// Table - slot to primitive mapping
type Table [Count]Constructor

// Default - the fixed primitive set
//
// the returned array is a copy so callers cannot alter the mapping
// used by other hashers
func Default() Table {
	return Table{
		Blake:    newBlake,
		Groestl:  newGroestl,
		JH:       newJH,
		Keccak:   newKeccak,
		Skein:    newSkein,
		Luffa:    newLuffa,
		CubeHash: newCubeHash,
		SIMD:     newSIMD,
		Echo:     newEcho,
		Hamsi:    newHamsi,
		Shabal:   newShabal,
		SHA512:   newSHA512,
	}
}

// Validate - every slot must have a constructor
func (t Table) Validate() error {
	for _, c := range t {
		if nil == c {
			return fault.ErrMissingPrimitive
		}
	}
	return nil
}

// New - construct the primitive for a slot
func (t Table) New(a Algorithm) (Primitive, error) {
	if !a.Valid() {
		return nil, fault.ErrInvalidAlgorithm
	}
	c := t[a]
	if nil == c {
		return nil, fault.ErrMissingPrimitive
	}
	return c(), nil
}
