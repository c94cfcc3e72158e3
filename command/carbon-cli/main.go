// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Carbon Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "carbon-cli"
	app.Usage = "query a carbond node"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: "",
			Usage: "*carbond host/IP and port, `HOST:PORT`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:    "status",
			Usage:   "display node version, uptime and ledger time",
			Flags:   []cli.Flag{},
			Action:  runStatus,
			Aliases: []string{"s"},
		},
		{
			Name:      "credit",
			Usage:     "display a carbon credit record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "project, p",
					Value: "",
					Usage: "*project id `STRING`",
				},
			},
			Action: runCredit,
		},
		{
			Name:      "issuer",
			Usage:     "display issuer verification state",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: "*issuer account `ACCOUNT`",
				},
			},
			Action: runIssuer,
		},
		{
			Name:      "listing",
			Usage:     "display a marketplace listing",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "asset, a",
					Value: 0,
					Usage: "*asset id `NUMBER`",
				},
			},
			Action: runListing,
		},
		{
			Name:      "business",
			Usage:     "display business verification state",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: "*business account `ACCOUNT`",
				},
			},
			Action: runBusiness,
		},
		{
			Name:   "stats",
			Usage:  "display lifetime trading volume and trade count",
			Flags:  []cli.Flag{},
			Action: runStats,
		},
		{
			Name:   "totals",
			Usage:  "display total credits issued",
			Flags:  []cli.Flag{},
			Action: runTotals,
		},
		{
			Name:   "version",
			Usage:  "display version",
			Action: runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {
		m := &metadata{
			connect: c.GlobalString("connect"),
			verbose: c.GlobalBool("verbose"),
			e:       app.ErrWriter,
			w:       app.Writer,
		}
		app.Metadata = map[string]interface{}{
			"config": m,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(os.Stderr, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
