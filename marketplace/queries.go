// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Carbon Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package marketplace

import (
	"github.com/carbonledger/carbond/account"
	"github.com/carbonledger/carbond/creditrecord"
	"github.com/carbonledger/carbond/fault"
	"github.com/carbonledger/carbond/storage"
)

// MicroUnitsPerUnit - prices are kept in micro units, stats report
// whole units
const MicroUnitsPerUnit = 1000000

// GetListing - the stored listing for an asset
//
// legacy records decode with zero expiry
func GetListing(assetID uint64) (*creditrecord.Listing, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	packed := storage.Pool.Listings.Get(listingKey(assetID))
	if nil == packed {
		return nil, fault.ListingNotFound
	}
	return creditrecord.UnpackListing(packed)
}

// IsListingExpired - true only once the clock has passed the expiry
//
// trading cuts off one second earlier: list and buy reject at equality
func IsListingExpired(assetID uint64) (bool, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	packed := storage.Pool.Listings.Get(listingKey(assetID))
	if nil == packed {
		return false, fault.ListingNotFound
	}
	listing, err := creditrecord.UnpackListing(packed)
	if nil != err {
		return false, err
	}
	return globalData.clock.Now() > listing.ExpiryTimestamp, nil
}

// GetBusinessStatus - verification state and purchase counter
func GetBusinessStatus(businessAccount account.Account) (creditrecord.BusinessStatus, uint64, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	packed := storage.Pool.Businesses.Get(businessAccount.Bytes())
	if nil == packed {
		return creditrecord.BusinessPending, 0, fault.BusinessNotFound
	}
	business, err := creditrecord.UnpackBusiness(packed)
	if nil != err {
		return creditrecord.BusinessPending, 0, err
	}
	return business.Status, business.CreditsBought, nil
}

// GetStats - lifetime traded volume in whole units and trade count
func GetStats() (uint64, uint64, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	config, err := getConfig()
	if nil != err {
		return 0, 0, err
	}
	return config.TotalVolume / MicroUnitsPerUnit, config.TotalTrades, nil
}
