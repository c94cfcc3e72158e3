// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Carbon Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/carbonledger/carbond/command/carbon-cli/rpccalls"
)

func runStatus(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetStatus()
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runVersion(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)
	return printJson(m.w, version)
}
