// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fortio.org/safecast"
	"github.com/urfave/cli"

	"github.com/soteria-network/soterg/blockdigest"
	"github.com/soteria-network/soterg/difficulty"
	"github.com/soteria-network/soterg/proof"
)

type mineReply struct {
	Nonce   string             `json:"nonce"`
	Digest  blockdigest.Digest `json:"digest"`
	Value   string             `json:"value"`
	Header  string             `json:"header"`
	Hashes  uint64             `json:"hashes"`
	Seconds float64            `json:"seconds"`
}

func runMine(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	packed, err := headerFromHex(c.String("header"))
	if nil != err {
		return err
	}

	bits, err := bitsFromHex(c.String("bits"), &packed)
	if nil != err {
		return err
	}
	target, err := difficulty.Target(bits)
	if nil != err {
		return err
	}

	start, err := safecast.Conv[uint32](c.Uint64("start"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "bits: %08x  target: %064x\n", bits, target)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := proof.Search(ctx, proof.Request{
		Header:     packed,
		Target:     target,
		Threads:    c.Int("threads"),
		StartNonce: start,
		Count:      c.Uint64("count"),
	})
	if nil != err {
		return err
	}

	reply := mineReply{
		Nonce:   fmt.Sprintf("%08x", result.Nonce),
		Digest:  result.Digest,
		Value:   result.Digest.String(),
		Header:  fmt.Sprintf("%x", result.Header),
		Hashes:  result.Hashes,
		Seconds: result.Elapsed.Seconds(),
	}
	return printJson(m.w, reply)
}
