// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"encoding/hex"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/soteria-network/soterg/difficulty"
	"github.com/soteria-network/soterg/fault"
	"github.com/soteria-network/soterg/hashorder"
)

// block 4 of the reference chain, nonce zeroed
const (
	referencePrevious = "0000003bcfb8154b1c410f8ab98090fc26e005b9e501af99bebfa442bb8edee9"
	referenceMerkle   = "3d9116cd62b388f7f5ce0f1c311397a34fcf27f7fac3fc0ba679d92ae473ecab"
	referencePacked   = "00000032e9de8ebb42a4bfbe99af01e5b905e026fc9080b98a0f411c4b15b8cf3b000000" +
		"abec73e42ad979a60bfcc3faf727cf4fa39713311c0fcef5f788b362cd16913d29130269c602141c00000000"

	txA    = "d8f244c159278ea8cfffcbe1c463edef33d92d11d36ac3c62efd3eb7ff3a5dbf"
	txB    = "b98db090398ebc4342951f9ba89b3e0110bdc757714b80c695663c9060113639"
	rootAB = "f01b8b33d4737f715303d502cd8dda6b2ea4f9513c169d94b18b5f2fa1a367b7"
)

func referenceTemplate() HeaderConfiguration {
	return HeaderConfiguration{
		Version:       0x32000000,
		PreviousBlock: referencePrevious,
		MerkleRoot:    referenceMerkle,
		Bits:          "1c1402c6",
		Timestamp:     "1761743657",
	}
}

func TestHeaderFromTemplate(t *testing.T) {
	template := referenceTemplate()

	header, err := template.header(time.Unix(0, 0))
	if nil != err {
		t.Fatalf("header error: %s", err)
	}

	packed := header.Pack()
	assert.Equal(t, referencePacked, hex.EncodeToString(packed[:]), "wrong packed header")
	assert.Equal(t, uint32(0x69021329), header.Timestamp, "wrong timestamp")
	assert.Equal(t, uint32(0x1c1402c6), header.Difficulty.Bits(), "wrong bits")
	assert.Equal(t, "13A5B07BB279", hashorder.ForTimestamp(header.Timestamp).String(), "wrong order")
}

func TestHeaderFollowsClock(t *testing.T) {
	template := referenceTemplate()
	template.Timestamp = timestampNow

	header, err := template.header(time.Unix(1761743657, 0))
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, uint32(1761743657), header.Timestamp, "clock not used")

	template.Timestamp = ""
	header, err = template.header(time.Unix(1000, 0))
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, uint32(1000), header.Timestamp, "blank is not the clock")

	_, err = template.header(time.Unix(-1, 0))
	assert.Equal(t, ErrInvalidTimestamp, err, "negative clock accepted")
}

func TestHeaderMerkleFromTransactions(t *testing.T) {
	template := referenceTemplate()
	template.MerkleRoot = ""
	template.Transactions = []string{txA, txB}

	header, err := template.header(time.Now())
	if nil != err {
		t.Fatalf("header error: %s", err)
	}
	assert.Equal(t, rootAB, header.MerkleRoot.String(), "wrong merkle root")

	template.Transactions = []string{txA}
	header, err = template.header(time.Now())
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, txA, header.MerkleRoot.String(), "single transaction is not its own root")
}

func TestHeaderErrors(t *testing.T) {
	template := referenceTemplate()
	template.Transactions = []string{txA}
	_, err := template.header(time.Now())
	assert.Equal(t, ErrAmbiguousMerkleRoot, err, "root and transactions accepted")

	template = referenceTemplate()
	template.MerkleRoot = ""
	_, err = template.header(time.Now())
	assert.Equal(t, ErrMissingMerkleRoot, err, "missing root accepted")

	template = referenceTemplate()
	template.MerkleRoot = "abcd"
	_, err = template.header(time.Now())
	assert.Equal(t, fault.ErrInvalidDigestLength, err, "short root accepted")

	template = referenceTemplate()
	template.Version = 0
	_, err = template.header(time.Now())
	assert.Equal(t, fault.ErrInvalidBlockHeaderVersion, err, "version zero accepted")

	for _, bits := range []string{"xyz", "1c000000", "21000000"} {
		template = referenceTemplate()
		template.Bits = bits
		_, err = template.header(time.Now())
		assert.NotNil(t, err, "bits %q accepted", bits)
	}

	template = referenceTemplate()
	template.Timestamp = "yesterday"
	_, err = template.header(time.Now())
	assert.Equal(t, ErrInvalidTimestamp, err, "text timestamp accepted")
}

func TestMineEasyTarget(t *testing.T) {
	c := &Configuration{
		Threads: 2,
		Header:  referenceTemplate(),
	}
	c.Header.Bits = "207fffff"

	result, err := mine(context.Background(), logger.New("testing"), c)
	if nil != err {
		t.Fatalf("mine error: %s", err)
	}

	target, err := difficulty.Target(0x207fffff)
	assert.Nil(t, err, "wrong error")
	assert.True(t, result.Digest.MeetsTarget(target), "digest misses target")
	assert.Equal(t, referencePacked[:144], hex.EncodeToString(result.Header[:72]), "template changed")
	assert.Equal(t, uint32(0x207fffff), result.Header.Bits(), "bits not taken from configuration")
	assert.Equal(t, result.Nonce, result.Header.Nonce(), "nonce not stored in header")
}

func TestMineCancelled(t *testing.T) {
	c := &Configuration{
		Threads: 1,
		Header:  referenceTemplate(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := mine(ctx, logger.New("testing"), c)
	assert.Equal(t, context.Canceled, err, "wrong error")
}

func TestPrintTemplate(t *testing.T) {
	c := &Configuration{
		Threads: 3,
		Header:  referenceTemplate(),
	}

	var buffer bytes.Buffer
	err := printTemplate(&buffer, c, time.Now())
	assert.Nil(t, err, "wrong error")

	s := buffer.String()
	assert.Contains(t, s, `"order": "13A5B07BB279"`, "order missing")
	assert.Contains(t, s, `"packed": "`+referencePacked+`"`, "packed header missing")
	assert.Contains(t, s, `"threads": 3`, "threads missing")
}

func TestProcessCommand(t *testing.T) {
	c := &Configuration{
		Header: referenceTemplate(),
	}

	var buffer bytes.Buffer
	assert.True(t, processCommand(&buffer, "soterg-miner", nil, c), "default command does not mine")
	assert.True(t, processCommand(&buffer, "soterg-miner", []string{"run"}, c), "run does not mine")
	assert.False(t, processCommand(&buffer, "soterg-miner", []string{"version"}, c), "version mines")
	assert.Equal(t, version+"\n", buffer.String(), "wrong version output")

	buffer.Reset()
	assert.False(t, processCommand(&buffer, "soterg-miner", []string{"bogus"}, c), "unknown command mines")
	assert.Contains(t, buffer.String(), "no such command", "missing error")
}
