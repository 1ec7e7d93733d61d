// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli"

	"github.com/soteria-network/soterg/hashorder"
	"github.com/soteria-network/soterg/timehash"
)

type orderReply struct {
	Timestamp  uint32   `json:"timestamp"`
	Window     uint32   `json:"window"`
	TimeHash   string   `json:"timeHash"`
	Order      string   `json:"order"`
	Algorithms []string `json:"algorithms"`
}

func runOrder(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	var timestamp uint32
	switch {
	case "" != c.String("header"):
		packed, err := headerFromHex(c.String("header"))
		if nil != err {
			return err
		}
		timestamp = packed.Timestamp()

	case "" != c.String("timestamp"):
		n, err := strconv.ParseUint(c.String("timestamp"), 0, 32)
		if nil != err {
			return err
		}
		timestamp = uint32(n)

	default:
		return ErrMissingTimestamp
	}

	if m.verbose {
		fmt.Fprintf(m.e, "timestamp: 0x%08x\n", timestamp)
	}

	t := timehash.New(timestamp)
	order := hashorder.Derive(t)

	reply := orderReply{
		Timestamp:  timestamp,
		Window:     timehash.Masked(timestamp),
		TimeHash:   t.String(),
		Order:      order.String(),
		Algorithms: order.Names(),
	}
	return printJson(m.w, reply)
}
