// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/soteria-network/soterg/blockrecord"
	"github.com/soteria-network/soterg/hashorder"
)

// command handler
//
// returns true if the program should go on to mine
func processCommand(w io.Writer, program string, arguments []string, configuration *Configuration) bool {

	command := "start"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "check", "c":
		if err := printTemplate(w, configuration, time.Now()); nil != err {
			exitwithstatus.Message("%s: header template error: %s", program, err)
		}

	case "start", "run":
		return true // continue processing

	case "version", "v":
		fmt.Fprintf(w, "%s\n", version)

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Fprintf(w, "error: missing command\n")
		default:
			fmt.Fprintf(w, "error: no such command: %v\n", command)
		}

		fmt.Fprintf(w, "supported commands:\n\n")
		fmt.Fprintf(w, "  help                 (h)      - display this message\n\n")
		fmt.Fprintf(w, "  version              (v)      - display version sting\n\n")
		fmt.Fprintf(w, "  check                (c)      - show the header template and its algorithm order\n\n")
		fmt.Fprintf(w, "  start                (run)    - search for a nonce\n\n")
	}

	return false
}

// summary of the template as the search will see it
type templateSummary struct {
	Header  *blockrecord.Header `json:"header"`
	Packed  string              `json:"packed"`
	Order   string              `json:"order"`
	Target  string              `json:"target"`
	Threads int                 `json:"threads"`
}

func printTemplate(w io.Writer, configuration *Configuration, now time.Time) error {
	header, err := configuration.Header.header(now)
	if nil != err {
		return err
	}
	packed := header.Pack()

	summary := templateSummary{
		Header:  header,
		Packed:  fmt.Sprintf("%x", packed),
		Order:   hashorder.ForTimestamp(header.Timestamp).String(),
		Target:  fmt.Sprintf("%064x", header.Difficulty.BigInt()),
		Threads: configuration.Threads,
	}

	b, err := json.MarshalIndent(summary, "", "  ")
	if nil != err {
		return err
	}
	fmt.Fprintf(w, "%s\n", b)
	return nil
}
