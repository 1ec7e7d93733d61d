// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package algorithm

import (
	"github.com/soteria-network/soterg/fault"
)

// Algorithm - selector for one of the chain primitives
type Algorithm uint8

// the fixed slot assignment, values are consensus critical
const (
	Blake Algorithm = iota
	Groestl
	JH
	Keccak
	Skein
	Luffa
	CubeHash
	SIMD
	Echo
	Hamsi
	Shabal
	SHA512

	Count = 12 // number of distinct primitives
)

var names = [Count]string{
	Blake:    "blake512",
	Groestl:  "groestl512",
	JH:       "jh512",
	Keccak:   "keccak512",
	Skein:    "skein512",
	Luffa:    "luffa512",
	CubeHash: "cubehash512",
	SIMD:     "simd512",
	Echo:     "echo512",
	Hamsi:    "hamsi512",
	Shabal:   "shabal512",
	SHA512:   "sha512",
}

// Valid - true if the selector is inside the slot range
func (a Algorithm) Valid() bool {
	return a < Count
}

// String - name of the primitive for logs and the CLI
func (a Algorithm) String() string {
	if !a.Valid() {
		return "unknown"
	}
	return names[a]
}

// Character - single character form: '0'..'9' then 'A', 'B'
func (a Algorithm) Character() byte {
	if a >= 10 {
		return 'A' + byte(a-10)
	}
	return '0' + byte(a)
}

// FromCharacter - inverse of Character
func FromCharacter(c byte) (Algorithm, error) {
	switch {
	case c >= '0' && c <= '9':
		return Algorithm(c - '0'), nil
	case c >= 'A' && c < 'A'+Count-10:
		return Algorithm(c-'A') + 10, nil
	default:
		return 0, fault.ErrInvalidAlgorithmCharacter
	}
}
