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

func runCredit(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	projectID := c.String("project")
	if "" == projectID {
		return fmt.Errorf("missing project id")
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetCredit(projectID)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runIssuer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	issuer := c.String("account")
	if "" == issuer {
		return fmt.Errorf("missing issuer account")
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetIssuer(issuer)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runTotals(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetTotals()
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
