// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Carbon Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - all-or-nothing execution of transaction groups
//
// groups execute one at a time under a single lock.  the ledger clock
// is advanced once at the start of a group and frozen for its
// duration, so every rule inside the group sees the same time.  all
// pool writes stage in one storage transaction; the first failing
// step aborts everything, including escrow movements made by earlier
// steps of the same group.
package ledger

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/carbonledger/carbond/account"
	"github.com/carbonledger/carbond/chainclock"
	"github.com/carbonledger/carbond/escrow"
	"github.com/carbonledger/carbond/fault"
	"github.com/carbonledger/carbond/marketplace"
	"github.com/carbonledger/carbond/registry"
	"github.com/carbonledger/carbond/storage"
	"github.com/carbonledger/carbond/txgroup"
)

// contract names for contract call steps
const (
	RegistryContract    = "registry"
	MarketplaceContract = "marketplace"
)

// registry methods
const (
	MethodCreateRegistry = "create-registry"
	MethodRegisterIssuer = "register-issuer"
	MethodVerifyIssuer   = "verify-issuer"
	MethodMint           = "mint"
)

// marketplace methods
const (
	MethodCreateMarketplace = "create-marketplace"
	MethodRegisterBusiness  = "register-business"
	MethodVerifyBusiness    = "verify-business"
	MethodRejectBusiness    = "reject-business"
	MethodList              = "list"
	MethodBuy               = "buy"
	MethodCancel            = "cancel"
)

// Result - outcome of an executed group
//
// AssetIDs maps the index of each mint step to the asset it allocated
type Result struct {
	Timestamp uint64         `json:"timestamp"`
	AssetIDs  map[int]uint64 `json:"assetIds,omitempty"`
}

// globals for this module
type ledgerData struct {
	sync.Mutex

	log   *logger.L
	clock chainclock.Monotonic

	initialised bool
}

var globalData ledgerData

// Initialise - setup the group executor
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("ledger")
	globalData.log.Info("starting…")

	globalData.clock.Reset()

	globalData.initialised = true
	return nil
}

// Finalise - shutdown the group executor
func Finalise() error {
	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.initialised = false
	return nil
}

// Clock - the shared ledger clock
//
// hand this to every module that compares against ledger time
func Clock() chainclock.Clock {
	return &globalData.clock
}

// Execute - run a group to completion or to nothing
//
// timestamp is the submission time; the clock never moves backwards,
// so a stale timestamp executes at the current ledger time
func Execute(group txgroup.Group, timestamp uint64) (*Result, error) {
	globalData.Lock()
	defer globalData.Unlock()

	now := globalData.clock.Advance(timestamp)

	err := storage.Begin()
	if nil != err {
		return nil, err
	}

	result := &Result{
		Timestamp: now,
	}

	for i, step := range group {
		err = executeStep(group, i, step, result)
		if nil != err {
			storage.Abort()
			globalData.log.Warnf("group aborted at step %d: %s", i, err)
			return nil, err
		}
	}

	err = storage.Commit()
	if nil != err {
		storage.Abort()
		return nil, err
	}

	globalData.log.Infof("group committed: %d steps at %d", len(group), now)
	return result, nil
}

// run one step of a group
func executeStep(group txgroup.Group, i int, step *txgroup.Step, result *Result) error {
	switch step.Kind {

	case txgroup.PaymentKind:
		return escrow.Pay(step.Sender, step.Receiver, step.Amount)

	case txgroup.AssetTransferKind:
		return escrow.TransferAsset(step.AssetID, step.Sender, step.Receiver)

	case txgroup.ContractCallKind:
		return executeCall(step.Sender, step.Call, group.Previous(i), i, result)

	default:
		return fault.InvalidApplicationCall
	}
}

// dispatch a contract call step
func executeCall(sender account.Account, call *txgroup.Call, companion *txgroup.Step, i int, result *Result) error {
	if nil == call {
		return fault.InvalidApplicationCall
	}

	switch call.Contract {

	case RegistryContract:
		switch call.Method {
		case MethodCreateRegistry:
			return registry.CreateRegistry(sender)
		case MethodRegisterIssuer:
			return registry.RegisterIssuer(sender, call.Name, call.Country, call.Standard)
		case MethodVerifyIssuer:
			return registry.VerifyIssuer(sender, call.Account)
		case MethodMint:
			assetID, err := registry.MintCarbonCredit(sender, call.ProjectID, call.Name,
				call.Location, call.CO2Tonnes, call.VintageYear, call.ProjectType,
				call.IPFSHash, call.YearsValid)
			if nil != err {
				return err
			}
			if nil == result.AssetIDs {
				result.AssetIDs = map[int]uint64{}
			}
			result.AssetIDs[i] = assetID
			return nil
		}

	case MarketplaceContract:
		switch call.Method {
		case MethodCreateMarketplace:
			return marketplace.CreateMarketplace(sender, call.FeeBps)
		case MethodRegisterBusiness:
			return marketplace.RegisterBusiness(sender, call.Name, call.Country)
		case MethodVerifyBusiness:
			return marketplace.VerifyBusiness(sender, call.Account)
		case MethodRejectBusiness:
			return marketplace.RejectBusiness(sender, call.Account)
		case MethodList:
			return marketplace.ListCredit(sender, companion, call.AssetID, call.Price,
				call.CO2Tonnes, call.VintageYear, call.ProjectType, call.Standard,
				call.MinimumPurchase, call.IPFSHash, call.ExpiryTimestamp)
		case MethodBuy:
			return marketplace.BuyCredit(sender, companion, call.AssetID)
		case MethodCancel:
			return marketplace.CancelListing(sender, call.AssetID)
		}
	}

	return fault.InvalidApplicationCall
}
