// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Carbon Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/carbonledger/carbond/account"
	"github.com/carbonledger/carbond/rpc"
)

// GetListing - retrieve a marketplace listing by its asset id
func (client *Client) GetListing(assetID uint64) (*rpc.MarketListingReply, error) {

	arguments := rpc.MarketListingArguments{
		AssetID: assetID,
	}
	var reply rpc.MarketListingReply
	if err := client.client.Call("Market.Listing", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetBusiness - retrieve business verification state and purchase count
func (client *Client) GetBusiness(businessBase58 string) (*rpc.MarketBusinessReply, error) {

	business, err := account.AccountFromBase58(businessBase58)
	if nil != err {
		return nil, err
	}

	arguments := rpc.MarketBusinessArguments{
		Business: business,
	}
	var reply rpc.MarketBusinessReply
	if err := client.client.Call("Market.Business", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetStats - retrieve lifetime trading volume and trade count
func (client *Client) GetStats() (*rpc.MarketStatsReply, error) {

	arguments := rpc.MarketStatsArguments{}
	var reply rpc.MarketStatsReply
	if err := client.client.Call("Market.Stats", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
