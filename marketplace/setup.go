// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Carbon Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package marketplace - escrowed trading of minted credits
//
// sellers hand the asset unit to the marketplace custody account when
// listing; buyers pay the custody account and receive the unit at
// settlement.  the sale price is split between seller and admin by
// the deployment fee.  a sale settles entirely or not at all.
package marketplace

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/carbonledger/carbond/account"
	"github.com/carbonledger/carbond/chainclock"
	"github.com/carbonledger/carbond/creditrecord"
	"github.com/carbonledger/carbond/fault"
	"github.com/carbonledger/carbond/storage"
)

// configuration pool key
var marketplaceConfigKey = []byte("marketplace")

// fee denominator, 10000 basis points = 100%
const feeBasisPointsDenominator = 10000

// globals for this module
type marketplaceData struct {
	sync.RWMutex

	log     *logger.L
	clock   chainclock.Clock
	custody account.Account

	initialised bool
}

var globalData marketplaceData

// Initialise - setup the marketplace
//
// custody is the escrow identity that holds listed assets and buyer
// payments until settlement
func Initialise(clock chainclock.Clock, custody account.Account) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("marketplace")
	globalData.log.Info("starting…")

	globalData.clock = clock
	globalData.custody = custody

	globalData.initialised = true
	return nil
}

// Finalise - shutdown the marketplace
func Finalise() error {
	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.initialised = false
	return nil
}

// Custody - the escrow identity of the marketplace
func Custody() account.Account {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.custody
}

// CreateMarketplace - one time deployment, records admin and fee
//
// the fee is not bounds checked, matching historic deployments; a fee
// above 100% is only capped at settlement
func CreateMarketplace(admin account.Account, feeBps uint64) error {
	globalData.Lock()
	defer globalData.Unlock()

	if storage.Pool.Configs.Has(marketplaceConfigKey) {
		return fault.MarketplaceAlreadyCreated
	}

	if feeBps > feeBasisPointsDenominator {
		globalData.log.Warnf("fee above 100%%: %d bps", feeBps)
	}

	config := creditrecord.MarketplaceConfig{
		Admin:       admin,
		FeeBps:      feeBps,
		TotalVolume: 0,
		TotalTrades: 0,
	}
	storage.Pool.Configs.Put(marketplaceConfigKey, config.Pack())

	globalData.log.Infof("marketplace created: admin: %s fee: %d bps", admin, feeBps)
	return nil
}

// read the deployment record
func getConfig() (*creditrecord.MarketplaceConfig, error) {
	packed := storage.Pool.Configs.Get(marketplaceConfigKey)
	if nil == packed {
		return nil, fault.MarketplaceNotCreated
	}
	return creditrecord.UnpackMarketplaceConfig(packed)
}
