// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/urfave/cli"
)

type metadata struct {
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "soterg-cli"
	app.Usage = "SoterG proof-of-work hash tool"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	headerFlag := cli.StringFlag{
		Name:  "header, H",
		Value: "",
		Usage: "*block header (at least 80 bytes) `HEX`",
	}
	bitsFlag := cli.StringFlag{
		Name:  "bits, b",
		Value: "",
		Usage: " compact difficulty, replaces the header bits `HEX`",
	}

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "hash",
			Usage:     "SoterG digest of a block header",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				headerFlag,
			},
			Action: runHash,
		},
		{
			Name:      "order",
			Usage:     "time hash and algorithm order for a header or timestamp",
			ArgsUsage: "\n   (+ = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "header, H",
					Value: "",
					Usage: "+block header (at least 80 bytes) `HEX`",
				},
				cli.StringFlag{
					Name:  "timestamp, t",
					Value: "",
					Usage: "+header timestamp `SECONDS`",
				},
			},
			Action: runOrder,
		},
		{
			Name:      "verify",
			Usage:     "check a block header digest against its target",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				headerFlag,
				bitsFlag,
			},
			Action: runVerify,
		},
		{
			Name:      "mine",
			Usage:     "search for a nonce that meets the target",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				headerFlag,
				bitsFlag,
				cli.IntFlag{
					Name:  "threads, T",
					Value: runtime.NumCPU(),
					Usage: " number of search threads `COUNT`",
				},
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " first nonce to try `NONCE`",
				},
				cli.Uint64Flag{
					Name:  "count, c",
					Value: 0,
					Usage: " nonces to try, 0 for all `COUNT`",
				},
			},
			Action: runMine,
		},
		{
			Name:      "bench",
			Usage:     "measure the hash rate",
			ArgsUsage: " ",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "count, c",
					Value: 2000,
					Usage: " hashes to compute `COUNT`",
				},
				cli.IntFlag{
					Name:  "threads, T",
					Value: runtime.NumCPU(),
					Usage: " number of threads `COUNT`",
				},
			},
			Action: runBench,
		},
		{
			Name:      "version",
			Usage:     "display soterg-cli version",
			ArgsUsage: " ",
			Action:    runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}
