// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Carbon Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/carbonledger/carbond/command/carbon-cli/rpccalls"
)

func runListing(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	assetID := c.Uint64("asset")
	if 0 == assetID {
		return fmt.Errorf("missing asset id")
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetListing(assetID)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runBusiness(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	business := c.String("account")
	if "" == business {
		return fmt.Errorf("missing business account")
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetBusiness(business)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runStats(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetStats()
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
