// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Carbon Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package marketplace

import (
	"encoding/binary"

	"github.com/carbonledger/carbond/account"
	"github.com/carbonledger/carbond/creditrecord"
	"github.com/carbonledger/carbond/escrow"
	"github.com/carbonledger/carbond/fault"
	"github.com/carbonledger/carbond/storage"
	"github.com/carbonledger/carbond/txgroup"
)

// listingKey - 8 byte big endian pool key for an asset id
func listingKey(assetID uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, assetID)
	return key
}

// ListCredit - put a credit up for sale
//
// the companion step must hand exactly one unit of the asset to the
// marketplace custody account.  an existing listing for the same
// asset is overwritten, so a seller can relist after a cancel or
// adjust the price of an unsold listing.
func ListCredit(
	caller account.Account,
	companion *txgroup.Step,
	assetID uint64,
	price uint64,
	co2Tonnes uint64,
	vintageYear uint64,
	projectType string,
	standard string,
	minimumPurchase uint64,
	ipfsHash string,
	expiryTimestamp uint64,
) error {
	globalData.Lock()
	defer globalData.Unlock()

	if _, err := getConfig(); nil != err {
		return err
	}

	if 0 == price {
		return fault.InvalidListingPrice
	}
	if 0 == minimumPurchase {
		return fault.InvalidMinimumQuantity
	}
	if minimumPurchase > co2Tonnes {
		return fault.MinimumQuantityTooLarge
	}

	err := txgroup.CheckCompanion(companion, txgroup.Expect{
		Kind:     txgroup.AssetTransferKind,
		Sender:   caller,
		Receiver: globalData.custody,
		AssetID:  assetID,
	})
	if nil != err {
		return err
	}
	if 1 != companion.Amount {
		return fault.InvalidAssetQuantity
	}

	now := globalData.clock.Now()
	if now >= expiryTimestamp {
		return fault.CreditExpired
	}

	listing := creditrecord.Listing{
		AssetID:         assetID,
		Seller:          caller,
		Price:           price,
		CO2Tonnes:       co2Tonnes,
		VintageYear:     vintageYear,
		MinimumPurchase: minimumPurchase,
		ListedAt:        now,
		ExpiryTimestamp: expiryTimestamp,
		Active:          true,
	}
	storage.Pool.Listings.Put(listingKey(assetID), listing.Pack())

	globalData.log.Infof("listed: asset: %d seller: %s price: %d type: %q standard: %q hash: %q",
		assetID, caller, price, projectType, standard, ipfsHash)
	return nil
}

// CancelListing - withdraw an unsold listing
//
// only the seller can cancel; the asset unit goes back to them
func CancelListing(caller account.Account, assetID uint64) error {
	globalData.Lock()
	defer globalData.Unlock()

	key := listingKey(assetID)
	packed := storage.Pool.Listings.Get(key)
	if nil == packed {
		return fault.ListingNotFound
	}
	listing, err := creditrecord.UnpackListing(packed)
	if nil != err {
		return err
	}

	if caller != listing.Seller {
		return fault.OnlySellerCanCancel
	}
	if !listing.Active {
		return fault.ListingNotActive
	}

	err = escrow.TransferAsset(assetID, globalData.custody, listing.Seller)
	if nil != err {
		return err
	}

	listing.Active = false
	storage.Pool.Listings.Put(key, listing.Pack())

	globalData.log.Infof("cancelled: asset: %d seller: %s", assetID, caller)
	return nil
}
