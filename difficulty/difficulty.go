// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package difficulty

import (
	"fmt"
	"math"
	"math/big"
	"sync"

	"github.com/soteria-network/soterg/fault"
)

// the default uint32 value
const DefaultUint32 = 0x1d00ffff

// Difficulty - compact target with cached pool difficulty
type Difficulty struct {
	sync.RWMutex

	big   big.Int // master value 256 bit target
	pdiff float64 // cache: pool difficulty
	bits  uint32  // cache: compact form
}

// pool difficulty 1 target, the pdiff of a target is this divided by it
//
//   https://en.bitcoin.it/wiki/Difficulty
var one = new(big.Int).SetBytes([]byte{
	0x00, 0x00, 0x00, 0x00, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
})

// bits of precision for pdiff arithmetic
const precision = 256

// New - create a difficulty with the default value
func New() *Difficulty {
	d := new(Difficulty)
	return d.SetBits(DefaultUint32)
}

// Target - expand compact bits to a 256 bit target
//
// rejects negative, non-normalised and zero targets
func Target(u uint32) (*big.Int, error) {
	exponent := 8 * (int(u>>24)&0xff - 3)
	mantissa := int64(u & 0x00ffffff)

	if mantissa > 0x7fffff || mantissa < 0x008000 || exponent < 0 || exponent > 256-24 {
		return nil, fault.ErrInvalidDifficultyBits
	}
	d := big.NewInt(mantissa)
	return d.Lsh(d, uint(exponent)), nil
}

// Pdiff - Get 1/difficulty as normal floating-point value
func (difficulty *Difficulty) Pdiff() float64 {
	difficulty.RLock()
	defer difficulty.RUnlock()
	return difficulty.pdiff
}

// Bits - Get difficulty as short packed value
func (difficulty *Difficulty) Bits() uint32 {
	difficulty.RLock()
	defer difficulty.RUnlock()
	return difficulty.bits
}

// String - Get difficulty as the big endian hex encodes short packed value
func (difficulty *Difficulty) String() string {
	difficulty.RLock()
	defer difficulty.RUnlock()
	return fmt.Sprintf("%08x", difficulty.bits)
}

// GoString - for the %#v format use 256 bit value
func (difficulty *Difficulty) GoString() string {
	return fmt.Sprintf("%064x", difficulty.BigInt())
}

// BigInt - the target as a big.Int copy
func (difficulty *Difficulty) BigInt() *big.Int {
	difficulty.RLock()
	defer difficulty.RUnlock()
	d := new(big.Int)
	return d.Set(&difficulty.big)
}

// reset difficulty to 1.0
// ensure write locked before calling this
func (difficulty *Difficulty) internalSetToUnity() *Difficulty {
	d, _ := Target(DefaultUint32)
	difficulty.big.Set(d)
	difficulty.pdiff = 1.0
	difficulty.bits = DefaultUint32
	return difficulty
}

// SetBits - set from a 32 bit word (bits)
func (difficulty *Difficulty) SetBits(u uint32) *Difficulty {

	// quick setup for default
	if DefaultUint32 == u {
		difficulty.Lock()
		defer difficulty.Unlock()
		return difficulty.internalSetToUnity()
	}

	d, err := Target(u)
	if nil != err {
		fault.Criticalf("difficulty.SetBits(0x%08x) invalid value", u)
		fault.Panic("difficulty.SetBits: failed")
	}
	pdiff := quotient(one, d)

	difficulty.Lock()
	defer difficulty.Unlock()

	difficulty.big.Set(d)
	difficulty.pdiff = pdiff
	difficulty.bits = u

	return difficulty
}

// SetPdiff - set from a pool difficulty, values at or below one give unity
func (difficulty *Difficulty) SetPdiff(f float64) *Difficulty {
	difficulty.Lock()
	defer difficulty.Unlock()
	difficulty.internalSetPdiff(f)
	return difficulty
}

// ensure write locked before calling this
func (difficulty *Difficulty) internalSetPdiff(f float64) float64 {
	if math.IsNaN(f) || f <= 1.0 {
		difficulty.internalSetToUnity()
		return 1.0
	}

	t := new(big.Float).SetPrec(precision).SetInt(one)
	t.Quo(t, new(big.Float).SetPrec(precision).SetFloat64(f))
	target, _ := t.Int(nil)

	bits := compact(target)
	d, err := Target(bits)
	if nil != err {
		fault.Panicf("difficulty.SetPdiff(%g): bits: 0x%08x  error: %s", f, bits, err)
	}

	difficulty.big.Set(d)
	difficulty.pdiff = f
	difficulty.bits = bits
	return f
}

// n / d as a float64
func quotient(n *big.Int, d *big.Int) float64 {
	q := new(big.Float).SetPrec(precision).SetInt(n)
	q.Quo(q, new(big.Float).SetPrec(precision).SetInt(d))
	f, _ := q.Float64()
	return f
}

// compact form of a target, mantissa rounded to nearest
//
// a mantissa with its top bit set would read as negative so it moves
// down a byte and the exponent grows by one
func compact(target *big.Int) uint32 {
	size := (target.BitLen() + 7) / 8

	var mantissa uint64
	if size <= 3 {
		mantissa = target.Uint64() << uint(8*(3-size))
	} else {
		// keep one extra bit to round on
		t := new(big.Int).Rsh(target, uint(8*(size-3)-1))
		mantissa = (t.Uint64() + 1) >> 1
		if mantissa > 0xffffff {
			mantissa >>= 8
			size += 1
		}
	}
	if 0 != mantissa&0x800000 {
		mantissa >>= 8
		size += 1
	}
	return uint32(size)<<24 | uint32(mantissa)
}

// SetBytes - set from 4 little endian bytes as stored in a header
func (difficulty *Difficulty) SetBytes(b []byte) *Difficulty {

	if len(b) < 4 {
		fault.Panicf("difficulty.SetBytes: too few bytes: %d", len(b))
	}
	u := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24

	return difficulty.SetBits(u)
}

// MarshalText - compact bits as big endian hex
func (difficulty *Difficulty) MarshalText() ([]byte, error) {
	return []byte(difficulty.String()), nil
}

// UnmarshalText - compact bits from big endian hex
func (difficulty *Difficulty) UnmarshalText(s []byte) error {
	var u uint32
	n, err := fmt.Sscanf(string(s), "%08x", &u)
	if nil != err {
		return err
	}
	if 1 != n || 8 != len(s) {
		return fault.ErrInvalidDifficultyBits
	}
	if _, err := Target(u); nil != err {
		return err
	}
	difficulty.SetBits(u)
	return nil
}
