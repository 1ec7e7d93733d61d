// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package hashorder - derive the chain order from a time hash
//
// only the first six bytes of the time hash are consulted: position 11
// reads byte 0 and position 0 reads byte 5, even positions take the
// high nibble, odd positions the low nibble, and each nibble is folded
// into the slot range with a plain modulo.  Nibble values 12..15 land
// on the same slots as 0..3.  Verifiers depend on this exact mapping.
package hashorder

import (
	"github.com/soteria-network/soterg/algorithm"
	"github.com/soteria-network/soterg/fault"
	"github.com/soteria-network/soterg/timehash"
)

// Length - number of chain rounds
const Length = algorithm.Count

// Order - primitive selected for each round
type Order [Length]algorithm.Algorithm

// Derive - compute the order from a time hash
func Derive(t timehash.Digest) Order {
	var order Order
	for j := 0; j < Length; j += 1 {
		b := t[(Length-1-j)/2]

		nibble := b >> 4
		if 1 == j&1 {
			nibble = b & 0x0f
		}
		order[j] = algorithm.Algorithm(nibble % algorithm.Count)
	}
	return order
}

// ForTimestamp - order for a raw header timestamp
func ForTimestamp(timestamp uint32) Order {
	return Derive(timehash.New(timestamp))
}

// String - twelve characters from "0123456789AB"
func (order Order) String() string {
	buffer := make([]byte, Length)
	for i, a := range order {
		buffer[i] = a.Character()
	}
	return string(buffer)
}

// Parse - convert the String form back to an order
func Parse(s string) (Order, error) {
	var order Order
	if Length != len(s) {
		return order, fault.ErrInvalidOrderLength
	}
	for i := 0; i < Length; i += 1 {
		a, err := algorithm.FromCharacter(s[i])
		if nil != err {
			return Order{}, err
		}
		order[i] = a
	}
	return order, nil
}

// Names - primitive names in round order, for logging
func (order Order) Names() []string {
	names := make([]string, Length)
	for i, a := range order {
		names[i] = a.String()
	}
	return names
}
