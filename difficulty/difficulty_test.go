// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package difficulty_test

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/soteria-network/soterg/difficulty"
	"github.com/soteria-network/soterg/fault"
)

// test difficulty one
func TestFloatOne(t *testing.T) {

	expected := 1.0

	actual := difficulty.New().Pdiff()

	if actual != expected {
		t.Errorf("actual: %f  expected: %f  diff: %g", actual, expected, actual-expected)
	}
}

// test 32 bit word
func TestUint32(t *testing.T) {
	items := []struct {
		bits  uint32
		pdiff float64
	}{
		{0x1b0404cb, 16307.669773817162},
		{0x1c2ac4af, 5.985742435503},
		{0x1c1402c6, 12.793070160054},
		{0x207fffff, 4.66e-10},
	}

	d := difficulty.New()
	for i, item := range items {
		d.SetBits(item.bits)

		assert.InDelta(t, item.pdiff, d.Pdiff(), 1e-9, "%d: wrong pdiff", i)
		assert.Equal(t, item.bits, d.Bits(), "%d: wrong bits", i)

		hexExpected := fmt.Sprintf("%08x", item.bits)
		assert.Equal(t, hexExpected, d.String(), "%d: wrong hex", i)
	}
}

// test bytes
func TestBytes(t *testing.T) {

	d := difficulty.New()

	value := []byte{0xcb, 0x04, 0x04, 0x1b} // little endian bytes
	expected := 16307.669773817162

	d.SetBytes(value)
	actual := d.Pdiff()

	if actual != expected {
		t.Errorf("actual: %f  expected: %f  diff: %g", actual, expected, actual-expected)
	}

	assert.Panics(t, func() {
		d.SetBytes(value[:3])
	}, "three bytes accepted")
}

func TestTarget(t *testing.T) {
	target, err := difficulty.Target(0x1c1402c6)
	assert.Nil(t, err, "wrong error")

	expected, _ := new(big.Int).SetString("1402c600000000000000000000000000000000000000000000000000", 16)
	assert.Equal(t, 0, expected.Cmp(target), "wrong target: %x", target)

	d := difficulty.New().SetBits(0x1c1402c6)
	assert.Equal(t, 0, expected.Cmp(d.BigInt()), "wrong big int")
	assert.Equal(t, fmt.Sprintf("%064x", expected), fmt.Sprintf("%#v", d), "wrong GoString")
}

func TestInvalidTarget(t *testing.T) {
	for _, bits := range []uint32{
		0x1c800000, // negative
		0x1c007fff, // not normalised
		0x02008000, // exponent below three
		0x22008000, // beyond 256 bits
		0x00000000,
	} {
		_, err := difficulty.Target(bits)
		assert.Equal(t, fault.ErrInvalidDifficultyBits, err, "0x%08x accepted", bits)

		assert.Panics(t, func() {
			difficulty.New().SetBits(bits)
		}, "0x%08x set", bits)
	}
}

func TestPdiff(t *testing.T) {
	items := []struct {
		pdiff float64
		bits  uint32
	}{
		{0.5, difficulty.DefaultUint32},
		{1.0, difficulty.DefaultUint32},
		{2.0, 0x1d008000},
		{256.0, 0x1c010000},
		{16307.669773817162, 0x1b0404cb},
		{5.985742435503, 0x1c2ac4af},
		{12.793070160054, 0x1c1402c6},
		{math.NaN(), difficulty.DefaultUint32},
	}
	for i, item := range items {
		d := difficulty.New().SetPdiff(item.pdiff)
		assert.Equal(t, item.bits, d.Bits(), "%d: pdiff %f: wrong bits", i, item.pdiff)

		target, err := difficulty.Target(item.bits)
		assert.Nil(t, err, "%d: wrong error", i)
		assert.Equal(t, 0, target.Cmp(d.BigInt()), "%d: target does not match bits", i)
	}
}

func TestJSON(t *testing.T) {
	s := struct {
		Bits *difficulty.Difficulty `json:"bits"`
	}{
		Bits: difficulty.New().SetBits(0x1c1402c6),
	}
	buffer, err := json.Marshal(s)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, `{"bits":"1c1402c6"}`, string(buffer), "wrong JSON")

	s.Bits = difficulty.New()
	err = json.Unmarshal(buffer, &s)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, uint32(0x1c1402c6), s.Bits.Bits(), "wrong bits")

	err = json.Unmarshal([]byte(`{"bits":"1c800000"}`), &s)
	assert.Equal(t, fault.ErrInvalidDifficultyBits, err, "negative bits accepted")
}
