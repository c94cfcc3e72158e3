// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Carbon Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/carbonledger/carbond/account"
	"github.com/carbonledger/carbond/creditrecord"
	"github.com/carbonledger/carbond/marketplace"
)

// Market - marketplace query service
type Market struct {
	log     *logger.L
	limiter *rate.Limiter
}

// MarketListingArguments - select a listing by its asset id
type MarketListingArguments struct {
	AssetID uint64 `json:"assetId"`
}

// MarketListingReply - the stored listing and its live expiry state
type MarketListingReply struct {
	Listing creditrecord.Listing `json:"listing"`
	Expired bool                 `json:"expired"`
}

// Listing - fetch one listing
func (market *Market) Listing(arguments *MarketListingArguments, reply *MarketListingReply) error {
	if err := rateLimit(market.limiter); nil != err {
		return err
	}
	market.log.Infof("Market.Listing: %d", arguments.AssetID)

	listing, err := marketplace.GetListing(arguments.AssetID)
	if nil != err {
		return err
	}
	expired, err := marketplace.IsListingExpired(arguments.AssetID)
	if nil != err {
		return err
	}

	reply.Listing = *listing
	reply.Expired = expired
	return nil
}

// MarketBusinessArguments - select a business by account
type MarketBusinessArguments struct {
	Business account.Account `json:"business"`
}

// MarketBusinessReply - verification state and purchase counter
type MarketBusinessReply struct {
	Status        uint64 `json:"status"`
	CreditsBought uint64 `json:"creditsBought"`
}

// Business - fetch business statistics
func (market *Market) Business(arguments *MarketBusinessArguments, reply *MarketBusinessReply) error {
	if err := rateLimit(market.limiter); nil != err {
		return err
	}
	market.log.Infof("Market.Business: %s", arguments.Business)

	status, bought, err := marketplace.GetBusinessStatus(arguments.Business)
	if nil != err {
		return err
	}

	reply.Status = uint64(status)
	reply.CreditsBought = bought
	return nil
}

// MarketStatsArguments - no parameters
type MarketStatsArguments struct {
}

// MarketStatsReply - lifetime volume in whole units and trade count
type MarketStatsReply struct {
	Volume uint64 `json:"volume"`
	Trades uint64 `json:"trades"`
}

// Stats - marketplace wide counters
func (market *Market) Stats(arguments *MarketStatsArguments, reply *MarketStatsReply) error {
	if err := rateLimit(market.limiter); nil != err {
		return err
	}

	volume, trades, err := marketplace.GetStats()
	if nil != err {
		return err
	}

	reply.Volume = volume
	reply.Trades = trades
	return nil
}
