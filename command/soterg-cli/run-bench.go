// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/urfave/cli"

	"github.com/soteria-network/soterg/blockrecord"
	"github.com/soteria-network/soterg/fault"
	"github.com/soteria-network/soterg/proof"
)

type benchReply struct {
	Threads int     `json:"threads"`
	Hashes  uint64  `json:"hashes"`
	Seconds float64 `json:"seconds"`
	Rate    float64 `json:"hashesPerSecond"`
}

func runBench(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	count := c.Uint64("count")
	if 0 == count {
		count = 1
	}
	threads := c.Int("threads")

	if m.verbose {
		fmt.Fprintf(m.e, "hashing %d headers on %d threads\n", count, threads)
	}

	// a target of one is never met, so every nonce is hashed
	start := time.Now()
	_, err := proof.Search(context.Background(), proof.Request{
		Header:  blockrecord.PackedHeader{},
		Target:  big.NewInt(1),
		Threads: threads,
		Count:   count,
	})
	elapsed := time.Since(start)

	if fault.ErrNonceNotFound != err {
		if nil == err {
			return fmt.Errorf("benchmark found a nonce at target one")
		}
		return err
	}

	reply := benchReply{
		Threads: threads,
		Hashes:  count,
		Seconds: elapsed.Seconds(),
	}
	if elapsed > 0 {
		reply.Rate = float64(count) / elapsed.Seconds()
	}
	return printJson(m.w, reply)
}
