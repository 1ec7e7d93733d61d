// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/soteria-network/soterg/fault"
)

const referenceHeader = "00000032e9de8ebb42a4bfbe99af01e5b905e026fc9080b98a0f411c4b15b8cf3b000000" +
	"abec73e42ad979a60bfcc3faf727cf4fa39713311c0fcef5f788b362cd16913d29130269c602141c024dac91"

func run(t *testing.T, args ...string) (map[string]interface{}, error) {
	var w, e bytes.Buffer
	app := newApp(&w, &e)

	err := app.Run(append([]string{"soterg-cli"}, args...))
	if nil != err {
		return nil, err
	}

	reply := make(map[string]interface{})
	if err := json.Unmarshal(w.Bytes(), &reply); nil != err {
		t.Fatalf("reply %q is not JSON: %s", w.String(), err)
	}
	return reply, nil
}

func TestHashCommand(t *testing.T) {
	reply, err := run(t, "hash", "--header", referenceHeader)
	if nil != err {
		t.Fatalf("hash error: %s", err)
	}
	assert.Equal(t, "e9e855fd28c2916d4e13f6c15eddf96625bdbf8c9943c5ec0f1e340900000000", reply["digest"], "wrong digest")
	assert.Equal(t, "0000000009341e0fecc543998cbfbd2566f9dd5ec1f6134e6d91c228fd55e8e9", reply["value"], "wrong value")
}

func TestHashCommandErrors(t *testing.T) {
	_, err := run(t, "hash")
	assert.Equal(t, ErrMissingHeader, err, "missing header accepted")

	_, err = run(t, "hash", "--header", referenceHeader[:158])
	assert.Equal(t, fault.ErrInvalidInputLength, err, "79 byte header accepted")

	_, err = run(t, "hash", "--header", "zz")
	assert.NotNil(t, err, "invalid hex accepted")
}

func TestOrderCommand(t *testing.T) {
	reply, err := run(t, "order", "--timestamp", "0")
	if nil != err {
		t.Fatalf("order error: %s", err)
	}
	assert.Equal(t, "08172501B980", reply["order"], "wrong order")
	assert.Equal(t, "8cb9012517c817fead650287d61bdd9c68803b6bf9c64133dcab3e65b5a50cb9", reply["timeHash"], "wrong time hash")

	reply, err = run(t, "order", "--header", referenceHeader)
	if nil != err {
		t.Fatalf("order error: %s", err)
	}
	assert.Equal(t, "13A5B07BB279", reply["order"], "wrong order")
	assert.Equal(t, float64(0x69021300), reply["window"], "wrong window")

	_, err = run(t, "order")
	assert.Equal(t, ErrMissingTimestamp, err, "no input accepted")
}

func TestVerifyCommand(t *testing.T) {
	reply, err := run(t, "verify", "--header", referenceHeader)
	if nil != err {
		t.Fatalf("verify error: %s", err)
	}
	assert.Equal(t, true, reply["valid"], "reference header rejected")
	assert.Equal(t, "1c1402c6", reply["bits"], "wrong bits")

	reply, err = run(t, "verify", "--header", referenceHeader, "--bits", "1b0404cb")
	if nil != err {
		t.Fatalf("verify error: %s", err)
	}
	assert.Equal(t, false, reply["valid"], "harder target accepted")

	_, err = run(t, "verify", "--header", referenceHeader, "--bits", "1c800000")
	assert.Equal(t, fault.ErrInvalidDifficultyBits, err, "negative bits accepted")
}

func TestMineCommand(t *testing.T) {
	reply, err := run(t, "mine", "--header", referenceHeader, "--bits", "207fffff", "--threads", "2")
	if nil != err {
		t.Fatalf("mine error: %s", err)
	}

	header, ok := reply["header"].(string)
	if !ok {
		t.Fatalf("no header in reply: %v", reply)
	}

	reply, err = run(t, "verify", "--header", header)
	if nil != err {
		t.Fatalf("verify error: %s", err)
	}
	assert.Equal(t, true, reply["valid"], "mined header rejected")
	assert.Equal(t, "207fffff", reply["bits"], "bits not written to header")
}

func TestMineExhausted(t *testing.T) {
	_, err := run(t, "mine", "--header", referenceHeader, "--bits", "1b0404cb", "--count", "4", "--threads", "2")
	assert.Equal(t, fault.ErrNonceNotFound, err, "wrong error")
}

func TestBenchCommand(t *testing.T) {
	reply, err := run(t, "bench", "--count", "16", "--threads", "2")
	if nil != err {
		t.Fatalf("bench error: %s", err)
	}
	assert.Equal(t, float64(16), reply["hashes"], "wrong hash count")
	assert.Equal(t, float64(2), reply["threads"], "wrong threads")
}
