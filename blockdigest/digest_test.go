// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockdigest_test

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/soteria-network/soterg/blockdigest"
	"github.com/soteria-network/soterg/fault"
)

const (
	headerHex = "00000032e9de8ebb42a4bfbe99af01e5b905e026fc9080b98a0f411c4b15b8cf3b000000" +
		"abec73e42ad979a60bfcc3faf727cf4fa39713311c0fcef5f788b362cd16913d29130269c602141c024dac91"

	// big endian
	stringDigest = "0000000009341e0fecc543998cbfbd2566f9dd5ec1f6134e6d91c228fd55e8e9"
)

func TestScanFmt(t *testing.T) {
	var d blockdigest.Digest
	n, err := fmt.Sscan(stringDigest, &d)
	if nil != err {
		t.Fatalf("hex to digest error: %v", err)
	}

	if 1 != n {
		t.Fatalf("scanned %d items expected to scan 1", n)
	}

	// bytes as little endian format
	expected := blockdigest.Digest{
		0xe9, 0xe8, 0x55, 0xfd,
		0x28, 0xc2, 0x91, 0x6d,
		0x4e, 0x13, 0xf6, 0xc1,
		0x5e, 0xdd, 0xf9, 0x66,
		0x25, 0xbd, 0xbf, 0x8c,
		0x99, 0x43, 0xc5, 0xec,
		0x0f, 0x1e, 0x34, 0x09,
		0x00, 0x00, 0x00, 0x00,
	}

	if d != expected {
		t.Errorf("digest(LE) = %#v expected %#v", d, expected)
	}

	s := fmt.Sprintf("%s", d)
	if s != stringDigest {
		t.Errorf("string: digest = %s expected %s", s, stringDigest)
	}

	s = fmt.Sprintf("%#v", d)
	if s != "<SoterG:"+stringDigest+">" {
		t.Errorf("hash-v: digest = %s expected %s", s, stringDigest)
	}

	var expectedBig big.Int
	n, err = fmt.Sscanf(stringDigest, "%x", &expectedBig)
	if nil != err {
		t.Fatalf("hex to big error: %v", err)
	}

	if 1 != n {
		t.Fatalf("scanned %d items expected to scan 1", n)
	}

	if 0 != d.Cmp(&expectedBig) {
		t.Errorf("digest: %s != expected: %x", d, &expectedBig)
	}
}

func TestScanShort(t *testing.T) {
	var d blockdigest.Digest
	_, err := fmt.Sscan("00ff", &d)
	assert.Equal(t, fault.ErrInvalidDigestLength, err, "short digest scanned")
}

func TestDigest(t *testing.T) {
	header, err := hex.DecodeString(headerHex)
	if nil != err {
		t.Fatalf("hex decode error: %s", err)
	}
	d := blockdigest.NewDigest(header)

	var expected blockdigest.Digest
	_, err = fmt.Sscan(stringDigest, &expected)
	if nil != err {
		t.Fatalf("hex to digest error: %v", err)
	}

	if d != expected {
		t.Errorf("digest = %#v expected %#v", d, expected)
	}

	// block 4 target from bits 0x1c1402c6
	target, _ := new(big.Int).SetString("1402c600000000000000000000000000000000000000000000000000", 16)
	assert.True(t, d.MeetsTarget(target), "digest above its block target")
	assert.False(t, d.MeetsTarget(big.NewInt(1)), "digest below one")
}

func TestDigestShortRecord(t *testing.T) {
	assert.Panics(t, func() {
		blockdigest.NewDigest([]byte("hello world"))
	}, "short record hashed")
}

func TestJSON(t *testing.T) {
	var d blockdigest.Digest
	_, err := fmt.Sscan(stringDigest, &d)
	if nil != err {
		t.Fatalf("hex to digest error: %v", err)
	}

	buffer, err := json.Marshal(d)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, `"e9e855fd28c2916d4e13f6c15eddf96625bdbf8c9943c5ec0f1e340900000000"`, string(buffer), "wrong JSON")

	var back blockdigest.Digest
	err = json.Unmarshal(buffer, &back)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, d, back, "JSON round trip")

	err = json.Unmarshal([]byte(`"e9e8"`), &back)
	assert.Equal(t, fault.ErrInvalidDigestLength, err, "short JSON digest accepted")
}

func TestDigestFromBytes(t *testing.T) {
	var d blockdigest.Digest
	err := blockdigest.DigestFromBytes(&d, make([]byte, 31))
	assert.Equal(t, fault.ErrInvalidDigestLength, err, "short buffer accepted")

	assert.True(t, d.IsZero(), "digest modified on error")

	buffer := make([]byte, blockdigest.Length)
	buffer[0] = 1
	err = blockdigest.DigestFromBytes(&d, buffer)
	assert.Nil(t, err, "wrong error")
	assert.False(t, d.IsZero(), "digest not copied")
}
