// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Carbon Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package escrow - custody of asset units and payment balances
//
// assets are indivisible units: one holding record maps an asset id to
// its current owner.  balances are simple uint64 amounts.  all writes
// go through the storage pools, so inside an open storage transaction
// every movement stays revocable until the group commits.
package escrow

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/carbonledger/carbond/account"
	"github.com/carbonledger/carbond/creditrecord"
	"github.com/carbonledger/carbond/fault"
	"github.com/carbonledger/carbond/storage"
)

// allocator key in the configuration pool
var nextAssetKey = []byte("assets")

// globals for this module
type escrowData struct {
	sync.RWMutex

	log *logger.L

	initialised bool
}

var globalData escrowData

// Initialise - setup the escrow system
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("escrow")
	globalData.log.Info("starting…")

	globalData.initialised = true
	return nil
}

// Finalise - shutdown the escrow system
func Finalise() error {
	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.initialised = false
	return nil
}

// assetKey - 8 byte big endian pool key for an asset id
func assetKey(assetID uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, assetID)
	return key
}

// CreateAsset - allocate the next asset id and assign it to owner
//
// the holding record stores the owner followed by the length prefixed
// name and metadata url supplied at mint time
func CreateAsset(owner account.Account, name string, url string) (uint64, error) {
	globalData.Lock()
	defer globalData.Unlock()

	assetID, _ := storage.Pool.Configs.GetN(nextAssetKey)
	assetID += 1
	storage.Pool.Configs.PutN(nextAssetKey, assetID)

	holding, err := creditrecord.Holding{
		Owner: owner,
		Name:  name,
		URL:   url,
	}.Pack()
	if nil != err {
		return 0, err
	}
	storage.Pool.Holdings.Put(assetKey(assetID), holding)

	globalData.log.Infof("create asset: %d owner: %s", assetID, owner)
	return assetID, nil
}

// Owner - current holder of an asset
func Owner(assetID uint64) (account.Account, error) {
	globalData.RLock()
	defer globalData.RUnlock()
	return owner(assetID)
}

func owner(assetID uint64) (account.Account, error) {
	packed := storage.Pool.Holdings.Get(assetKey(assetID))
	if nil == packed {
		return account.Account{}, fault.AssetNotFound
	}
	holding, err := creditrecord.UnpackHolding(packed)
	if nil != err {
		return account.Account{}, err
	}
	return holding.Owner, nil
}

// TransferAsset - move an asset unit from one holder to another
//
// from must be the current holder
func TransferAsset(assetID uint64, from account.Account, to account.Account) error {
	globalData.Lock()
	defer globalData.Unlock()

	key := assetKey(assetID)
	packed := storage.Pool.Holdings.Get(key)
	if nil == packed {
		return fault.AssetNotFound
	}
	holding, err := creditrecord.UnpackHolding(packed)
	if nil != err {
		return err
	}
	if from != holding.Owner {
		return fault.AssetNotHeldBySender
	}

	holding.Owner = to
	repacked, err := holding.Pack()
	if nil != err {
		return err
	}
	storage.Pool.Holdings.Put(key, repacked)

	globalData.log.Infof("transfer asset: %d from: %s to: %s", assetID, from, to)
	return nil
}

// Pay - move amount from one balance to another
func Pay(from account.Account, to account.Account, amount uint64) error {
	globalData.Lock()
	defer globalData.Unlock()

	fromBalance, _ := storage.Pool.Balances.GetN(from.Bytes())
	if fromBalance < amount {
		return fault.InsufficientFunds
	}

	// sender and receiver share one balance record: nothing moves
	if from == to {
		globalData.log.Infof("pay: %d from: %s to self", amount, from)
		return nil
	}

	toBalance, _ := storage.Pool.Balances.GetN(to.Bytes())

	storage.Pool.Balances.PutN(from.Bytes(), fromBalance-amount)
	storage.Pool.Balances.PutN(to.Bytes(), toBalance+amount)

	globalData.log.Infof("pay: %d from: %s to: %s", amount, from, to)
	return nil
}

// Deposit - credit an account balance
//
// operator funding entry point, not reachable from a contract call
func Deposit(target account.Account, amount uint64) {
	globalData.Lock()
	defer globalData.Unlock()

	balance, _ := storage.Pool.Balances.GetN(target.Bytes())
	storage.Pool.Balances.PutN(target.Bytes(), balance+amount)
}

// Balance - current balance of an account, zero if never funded
func Balance(target account.Account) uint64 {
	globalData.RLock()
	defer globalData.RUnlock()

	balance, _ := storage.Pool.Balances.GetN(target.Bytes())
	return balance
}
