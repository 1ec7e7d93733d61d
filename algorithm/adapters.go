// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package algorithm

import (
	"crypto/sha512"
	"hash"

	"github.com/bitbandi/go-x11/blake"
	"github.com/bitbandi/go-x11/cubed"
	"github.com/bitbandi/go-x11/echo"
	"github.com/bitbandi/go-x11/groest"
	"github.com/bitbandi/go-x11/jhash"
	"github.com/bitbandi/go-x11/luffa"
	"github.com/bitbandi/go-x11/simd"
	"github.com/bitbandi/go-x11/skein"
	"github.com/deatil/go-hash/hamsi"
	"github.com/deatil/go-hash/shabal"
	"golang.org/x/crypto/sha3"

	"github.com/soteria-network/soterg/fault"
)

// the x11 family digests close into a caller buffer instead of Sum
type x11Digest interface {
	Write(data []byte) (int, error)
	Close(dst []byte, bits uint8, bcnt uint8) error
}

type x11Primitive struct {
	create func() x11Digest
	digest x11Digest
}

func (p *x11Primitive) Init() {
	p.digest = p.create()
}

func (p *x11Primitive) Absorb(data []byte) {
	p.digest.Write(data)
}

func (p *x11Primitive) Finalize(digest *[DigestSize]byte) {
	// only fails if the buffer is short, which the array type prevents
	fault.PanicIfError("algorithm: x11 close", p.digest.Close(digest[:], 0, 0))
}

// any 64 byte hash.Hash
type stdPrimitive struct {
	create func() hash.Hash
	h      hash.Hash
}

func (p *stdPrimitive) Init() {
	p.h = p.create()
}

func (p *stdPrimitive) Absorb(data []byte) {
	p.h.Write(data)
}

func (p *stdPrimitive) Finalize(digest *[DigestSize]byte) {
	p.h.Sum(digest[:0])
}

func newBlake() Primitive {
	return &x11Primitive{create: func() x11Digest { return blake.New() }}
}

func newGroestl() Primitive {
	return &x11Primitive{create: func() x11Digest { return groest.New() }}
}

func newJH() Primitive {
	return &x11Primitive{create: func() x11Digest { return jhash.New() }}
}

func newSkein() Primitive {
	return &x11Primitive{create: func() x11Digest { return skein.New() }}
}

func newLuffa() Primitive {
	return &x11Primitive{create: func() x11Digest { return luffa.New() }}
}

func newCubeHash() Primitive {
	return &x11Primitive{create: func() x11Digest { return cubed.New() }}
}

func newSIMD() Primitive {
	return &x11Primitive{create: func() x11Digest { return simd.New() }}
}

func newEcho() Primitive {
	return &x11Primitive{create: func() x11Digest { return echo.New() }}
}

// pre-standard Keccak padding, not FIPS-202 SHA3
func newKeccak() Primitive {
	return &stdPrimitive{create: sha3.NewLegacyKeccak512}
}

func newHamsi() Primitive {
	return &stdPrimitive{create: func() hash.Hash { return hamsi.New512() }}
}

func newShabal() Primitive {
	return &stdPrimitive{create: func() hash.Hash { return shabal.New512() }}
}

func newSHA512() Primitive {
	return &stdPrimitive{create: sha512.New}
}
