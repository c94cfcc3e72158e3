// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Carbon Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carbonledger/carbond/account"
	"github.com/carbonledger/carbond/escrow"
	"github.com/carbonledger/carbond/fault"
	"github.com/carbonledger/carbond/ledger"
	"github.com/carbonledger/carbond/marketplace"
	"github.com/carbonledger/carbond/registry"
	"github.com/carbonledger/carbond/storage"
	"github.com/carbonledger/carbond/txgroup"
)

// test files
const (
	testingDirName   = "testing"
	databaseFileName = testingDirName + "/test.leveldb"
)

var (
	admin   = makeAccount(0x01)
	issuer  = makeAccount(0x02)
	seller  = makeAccount(0x02) // the issuer sells its own mint
	buyer   = makeAccount(0x03)
	custody = makeAccount(0xff)
)

func removeFiles() {
	os.RemoveAll(testingDirName)
}

func setup(t *testing.T) {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	require.NoError(t, storage.Initialise(databaseFileName))
	require.NoError(t, escrow.Initialise())
	require.NoError(t, ledger.Initialise())
	require.NoError(t, registry.Initialise(ledger.Clock()))
	require.NoError(t, marketplace.Initialise(ledger.Clock(), custody))
}

func teardown(t *testing.T) {
	marketplace.Finalise()
	registry.Finalise()
	ledger.Finalise()
	escrow.Finalise()
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}

func makeAccount(fill byte) account.Account {
	var a account.Account
	for i := 0; i < account.AccountSize; i += 1 {
		a[i] = fill
	}
	return a
}

func call(sender account.Account, c txgroup.Call) *txgroup.Step {
	return &txgroup.Step{
		Kind:   txgroup.ContractCallKind,
		Sender: sender,
		Call:   &c,
	}
}

// run the deployment and issuer verification groups
func deployAll(t *testing.T) {
	_, err := ledger.Execute(txgroup.Group{
		call(admin, txgroup.Call{Contract: ledger.RegistryContract, Method: ledger.MethodCreateRegistry}),
		call(admin, txgroup.Call{Contract: ledger.MarketplaceContract, Method: ledger.MethodCreateMarketplace, FeeBps: 250}),
	}, 1700000000)
	require.NoError(t, err)

	_, err = ledger.Execute(txgroup.Group{
		call(issuer, txgroup.Call{
			Contract: ledger.RegistryContract,
			Method:   ledger.MethodRegisterIssuer,
			Name:     "Evergreen Offsets",
			Country:  "NZ",
			Standard: "Gold Standard",
		}),
		call(admin, txgroup.Call{
			Contract: ledger.RegistryContract,
			Method:   ledger.MethodVerifyIssuer,
			Account:  issuer,
		}),
	}, 1700000000)
	require.NoError(t, err)
}

// mint one credit and return its asset id
func mintCredit(t *testing.T, projectID string) uint64 {
	result, err := ledger.Execute(txgroup.Group{
		call(issuer, txgroup.Call{
			Contract:    ledger.RegistryContract,
			Method:      ledger.MethodMint,
			ProjectID:   projectID,
			Name:        "Rimu Forest",
			Location:    "Otago",
			CO2Tonnes:   1000,
			VintageYear: 2024,
			ProjectType: "reforestation",
			IPFSHash:    "ipfs-hash",
			YearsValid:  5,
		}),
	}, 1700000000)
	require.NoError(t, err)
	require.Contains(t, result.AssetIDs, 0)
	return result.AssetIDs[0]
}

// transfer to custody and list in one group
func listCredit(t *testing.T, assetID uint64, price uint64) {
	_, err := ledger.Execute(txgroup.Group{
		{
			Kind:     txgroup.AssetTransferKind,
			Sender:   seller,
			Receiver: custody,
			Amount:   1,
			AssetID:  assetID,
		},
		call(seller, txgroup.Call{
			Contract:        ledger.MarketplaceContract,
			Method:          ledger.MethodList,
			AssetID:         assetID,
			Price:           price,
			CO2Tonnes:       1000,
			VintageYear:     2024,
			ProjectType:     "reforestation",
			Standard:        "Gold Standard",
			MinimumPurchase: 10,
			IPFSHash:        "ipfs-hash",
			ExpiryTimestamp: 1861228800,
		}),
	}, 1700000000)
	require.NoError(t, err)
}

func registerVerifiedBuyer(t *testing.T) {
	_, err := ledger.Execute(txgroup.Group{
		call(buyer, txgroup.Call{
			Contract: ledger.MarketplaceContract,
			Method:   ledger.MethodRegisterBusiness,
			Name:     "Acme Logistics",
			Country:  "SG",
		}),
		call(admin, txgroup.Call{
			Contract: ledger.MarketplaceContract,
			Method:   ledger.MethodVerifyBusiness,
			Account:  buyer,
		}),
	}, 1700000000)
	require.NoError(t, err)
}

func buyGroup(assetID uint64, price uint64) txgroup.Group {
	return txgroup.Group{
		{
			Kind:     txgroup.PaymentKind,
			Sender:   buyer,
			Receiver: custody,
			Amount:   price,
		},
		call(buyer, txgroup.Call{
			Contract: ledger.MarketplaceContract,
			Method:   ledger.MethodBuy,
			AssetID:  assetID,
		}),
	}
}

func TestFullTradeFlow(t *testing.T) {
	setup(t)
	defer teardown(t)

	deployAll(t)
	assetID := mintCredit(t, "PRJ-001")
	assert.Equal(t, uint64(1), assetID)

	listCredit(t, assetID, 1000000)
	registerVerifiedBuyer(t)
	escrow.Deposit(buyer, 1500000)

	result, err := ledger.Execute(buyGroup(assetID, 1000000), 1700000100)
	require.NoError(t, err)
	assert.Equal(t, uint64(1700000100), result.Timestamp)

	// settlement: 1000000 at 250 bps
	assert.Equal(t, uint64(975000), escrow.Balance(seller))
	assert.Equal(t, uint64(25000), escrow.Balance(admin))
	assert.Equal(t, uint64(500000), escrow.Balance(buyer))
	assert.Equal(t, uint64(0), escrow.Balance(custody))

	owner, err := escrow.Owner(assetID)
	require.NoError(t, err)
	assert.Equal(t, buyer, owner)

	volume, trades, err := marketplace.GetStats()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), volume)
	assert.Equal(t, uint64(1), trades)
}

func TestGroupAbortLeavesNoEffects(t *testing.T) {
	setup(t)
	defer teardown(t)

	deployAll(t)
	assetID := mintCredit(t, "PRJ-001")
	listCredit(t, assetID, 1000000)
	registerVerifiedBuyer(t)
	escrow.Deposit(buyer, 1500000)

	// payment step succeeds, buy step fails on the price mismatch
	_, err := ledger.Execute(buyGroup(assetID, 999999), 1700000100)
	assert.Equal(t, fault.CompanionAmountMismatch, err)

	// nothing moved, not even the payment of the first step
	assert.Equal(t, uint64(1500000), escrow.Balance(buyer))
	assert.Equal(t, uint64(0), escrow.Balance(custody))
	assert.Equal(t, uint64(0), escrow.Balance(seller))

	owner, ownerErr := escrow.Owner(assetID)
	require.NoError(t, ownerErr)
	assert.Equal(t, custody, owner)

	listing, listingErr := marketplace.GetListing(assetID)
	require.NoError(t, listingErr)
	assert.True(t, listing.Active)

	volume, trades, statsErr := marketplace.GetStats()
	require.NoError(t, statsErr)
	assert.Equal(t, uint64(0), volume)
	assert.Equal(t, uint64(0), trades)

	// the same group with the right price settles
	_, err = ledger.Execute(buyGroup(assetID, 1000000), 1700000101)
	require.NoError(t, err)
	assert.Equal(t, uint64(975000), escrow.Balance(seller))
}

func TestMissingCompanionAborts(t *testing.T) {
	setup(t)
	defer teardown(t)

	deployAll(t)
	assetID := mintCredit(t, "PRJ-001")

	// list without the preceding asset transfer
	_, err := ledger.Execute(txgroup.Group{
		call(seller, txgroup.Call{
			Contract:        ledger.MarketplaceContract,
			Method:          ledger.MethodList,
			AssetID:         assetID,
			Price:           1000000,
			CO2Tonnes:       1000,
			VintageYear:     2024,
			MinimumPurchase: 10,
			ExpiryTimestamp: 1861228800,
		}),
	}, 1700000000)
	assert.Equal(t, fault.MissingCompanion, err)
	assert.True(t, fault.IsErrProtocol(err))

	_, err = marketplace.GetListing(assetID)
	assert.Equal(t, fault.ListingNotFound, err)

	// the asset never left the issuer
	owner, ownerErr := escrow.Owner(assetID)
	require.NoError(t, ownerErr)
	assert.Equal(t, issuer, owner)
}

func TestClockNeverMovesBackwards(t *testing.T) {
	setup(t)
	defer teardown(t)

	deployAll(t)
	assetID := mintCredit(t, "PRJ-001")
	listCredit(t, assetID, 1000000)
	registerVerifiedBuyer(t)
	escrow.Deposit(buyer, 1000000)

	// advance past listing expiry
	_, err := ledger.Execute(txgroup.Group{
		call(makeAccount(0x77), txgroup.Call{
			Contract: ledger.MarketplaceContract,
			Method:   ledger.MethodRegisterBusiness,
			Name:     "Carbon Dodgers",
			Country:  "SG",
		}),
	}, 1861228801)
	require.NoError(t, err)

	// a stale timestamp cannot rewind the clock to dodge expiry
	_, err = ledger.Execute(buyGroup(assetID, 1000000), 1700000000)
	assert.Equal(t, fault.ListingExpired, err)
}

func TestUnknownCallRejected(t *testing.T) {
	setup(t)
	defer teardown(t)

	deployAll(t)

	_, err := ledger.Execute(txgroup.Group{
		call(admin, txgroup.Call{Contract: "unknown", Method: "whatever"}),
	}, 1700000000)
	assert.Equal(t, fault.InvalidApplicationCall, err)

	_, err = ledger.Execute(txgroup.Group{
		{Kind: txgroup.ContractCallKind, Sender: admin},
	}, 1700000000)
	assert.Equal(t, fault.InvalidApplicationCall, err)

	_, err = ledger.Execute(txgroup.Group{
		{Kind: txgroup.NullKind},
	}, 1700000000)
	assert.Equal(t, fault.InvalidApplicationCall, err)
}

func TestDuplicateMintAborts(t *testing.T) {
	setup(t)
	defer teardown(t)

	deployAll(t)
	mintCredit(t, "PRJ-001")

	total, err := registry.GetTotalIssued()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), total)

	_, err = ledger.Execute(txgroup.Group{
		call(issuer, txgroup.Call{
			Contract:    ledger.RegistryContract,
			Method:      ledger.MethodMint,
			ProjectID:   "PRJ-001",
			Name:        "Rimu Forest",
			CO2Tonnes:   1000,
			VintageYear: 2024,
			YearsValid:  5,
		}),
	}, 1700000000)
	assert.Equal(t, fault.ProjectAlreadyExists, err)

	total, err = registry.GetTotalIssued()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), total)
}
