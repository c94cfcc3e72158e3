// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Carbon Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/carbonledger/carbond/account"
	"github.com/carbonledger/carbond/rpc"
)

// GetCredit - retrieve a carbon credit record by project id
func (client *Client) GetCredit(projectID string) (*rpc.CreditGetReply, error) {

	arguments := rpc.CreditGetArguments{
		ProjectID: projectID,
	}
	var reply rpc.CreditGetReply
	if err := client.client.Call("Credit.Get", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetIssuer - retrieve issuer verification state and mint count
func (client *Client) GetIssuer(issuerBase58 string) (*rpc.CreditIssuerReply, error) {

	issuer, err := account.AccountFromBase58(issuerBase58)
	if nil != err {
		return nil, err
	}

	arguments := rpc.CreditIssuerArguments{
		Issuer: issuer,
	}
	var reply rpc.CreditIssuerReply
	if err := client.client.Call("Credit.Issuer", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetTotals - retrieve the registry wide issuance counter
func (client *Client) GetTotals() (*rpc.CreditTotalsReply, error) {

	arguments := rpc.CreditTotalsArguments{}
	var reply rpc.CreditTotalsReply
	if err := client.client.Call("Credit.Totals", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
