// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/soteria-network/soterg/blockdigest"
	"github.com/soteria-network/soterg/soterg"
)

type hashReply struct {
	Digest string `json:"digest"` // produced byte order
	Value  string `json:"value"`  // big endian number
}

func runHash(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	packed, err := headerFromHex(c.String("header"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "header: %x\n", packed)
	}

	d, err := soterg.Sum(packed[:])
	if nil != err {
		return err
	}

	reply := hashReply{
		Digest: d.String(),
		Value:  blockdigest.Digest(d).String(),
	}
	return printJson(m.w, reply)
}
