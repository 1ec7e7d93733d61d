// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle

import (
	"github.com/soteria-network/soterg/fault"
)

// MaximumTransactionIds - largest id count accepted by Root
const MaximumTransactionIds = 0x1000000

// FullMerkleTree - all levels of the tree in one slice
//
// the ids come first, then each level up to the root which is the
// last element; an odd node at any level is paired with itself
func FullMerkleTree(txIds []Digest) []Digest {
	tree := make([]Digest, 0, treeSize(len(txIds)))
	tree = append(tree, txIds...)

	for level := txIds; len(level) > 1; {
		level = parents(level)
		tree = append(tree, level...)
	}
	return tree
}

// Root - merkle root of a set of transaction ids
func Root(txIds []Digest) (Digest, error) {
	switch n := len(txIds); {
	case 0 == n:
		return Digest{}, fault.ErrNoTransactions
	case n > MaximumTransactionIds:
		return Digest{}, fault.ErrTransactionIdsExceedMerkleSize
	}

	level := txIds
	for len(level) > 1 {
		level = parents(level)
	}
	return level[0], nil
}

// number of nodes in the full tree of n ids
func treeSize(n int) int {
	size := n
	for ; n > 1; n = (n + 1) / 2 {
		size += (n + 1) / 2
	}
	return size
}

// hash adjacent pairs into the next level up
func parents(level []Digest) []Digest {
	next := make([]Digest, (len(level)+1)/2)

	var pair [2 * DigestLength]byte
	for i := range next {
		left := 2 * i
		right := left + 1
		if right == len(level) {
			right = left
		}
		copy(pair[:DigestLength], level[left][:])
		copy(pair[DigestLength:], level[right][:])
		next[i] = NewDigest(pair[:])
	}
	return next
}
