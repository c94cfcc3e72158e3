// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Carbon Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package marketplace

import (
	"github.com/carbonledger/carbond/account"
	"github.com/carbonledger/carbond/creditrecord"
	"github.com/carbonledger/carbond/escrow"
	"github.com/carbonledger/carbond/fault"
	"github.com/carbonledger/carbond/storage"
	"github.com/carbonledger/carbond/txgroup"
)

// BuyCredit - settle the sale of a listed credit
//
// the companion payment must match the listing price exactly and be
// made to the custody account.  settlement splits the price:
//
//	fee    = price · feeBps / 10000   (floor, capped at price)
//	payout = price − fee
//
// pays the seller, pays the admin, hands the asset unit to the buyer
// and closes the listing.  all checks precede all effects, so inside
// a group transaction a failed buy moves nothing.
func BuyCredit(caller account.Account, companion *txgroup.Step, assetID uint64) error {
	globalData.Lock()
	defer globalData.Unlock()

	config, err := getConfig()
	if nil != err {
		return err
	}

	if nil == companion {
		return fault.MissingCompanion
	}

	packedBusiness := storage.Pool.Businesses.Get(caller.Bytes())
	if nil == packedBusiness {
		return fault.BusinessNotVerified
	}
	business, err := creditrecord.UnpackBusiness(packedBusiness)
	if nil != err {
		return err
	}
	if creditrecord.BusinessVerified != business.Status {
		return fault.BusinessNotVerified
	}

	key := listingKey(assetID)
	packedListing := storage.Pool.Listings.Get(key)
	if nil == packedListing {
		return fault.ListingNotFound
	}
	listing, err := creditrecord.UnpackListing(packedListing)
	if nil != err {
		return err
	}
	if !listing.Active {
		return fault.ListingNotActive
	}
	if globalData.clock.Now() >= listing.ExpiryTimestamp {
		return fault.ListingExpired
	}

	err = txgroup.CheckCompanion(companion, txgroup.Expect{
		Kind:     txgroup.PaymentKind,
		Sender:   caller,
		Receiver: globalData.custody,
		Amount:   listing.Price,
	})
	if nil != err {
		return err
	}

	fee := listing.Price * config.FeeBps / feeBasisPointsDenominator
	if fee > listing.Price {
		fee = listing.Price
	}
	payout := listing.Price - fee

	err = escrow.Pay(globalData.custody, listing.Seller, payout)
	if nil != err {
		return err
	}
	if fee > 0 {
		err = escrow.Pay(globalData.custody, config.Admin, fee)
		if nil != err {
			return err
		}
	}

	err = escrow.TransferAsset(assetID, globalData.custody, caller)
	if nil != err {
		return err
	}

	listing.Active = false
	storage.Pool.Listings.Put(key, listing.Pack())

	business.CreditsBought += 1
	repackedBusiness, err := business.Pack()
	if nil != err {
		return err
	}
	storage.Pool.Businesses.Put(caller.Bytes(), repackedBusiness)

	config.TotalVolume += listing.Price
	config.TotalTrades += 1
	storage.Pool.Configs.Put(marketplaceConfigKey, config.Pack())

	globalData.log.Infof("sold: asset: %d seller: %s buyer: %s price: %d fee: %d",
		assetID, listing.Seller, caller, listing.Price, fee)
	return nil
}
