// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/soteria-network/soterg/blockdigest"
	"github.com/soteria-network/soterg/difficulty"
)

type verifyReply struct {
	Digest blockdigest.Digest `json:"digest"`
	Value  string             `json:"value"`
	Bits   string             `json:"bits"`
	Target string             `json:"target"`
	Valid  bool               `json:"valid"`
}

func runVerify(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	packed, err := headerFromHex(c.String("header"))
	if nil != err {
		return err
	}

	bits, err := bitsFromHex(c.String("bits"), &packed)
	if nil != err {
		return err
	}

	if _, err := packed.Unpack(); nil != err {
		return err
	}

	target, err := difficulty.Target(bits)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "header: %x\n", packed)
	}

	digest := packed.Digest()
	reply := verifyReply{
		Digest: digest,
		Value:  digest.String(),
		Bits:   fmt.Sprintf("%08x", bits),
		Target: fmt.Sprintf("%064x", target),
		Valid:  digest.MeetsTarget(target),
	}
	return printJson(m.w, reply)
}
