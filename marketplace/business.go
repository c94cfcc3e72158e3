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

// RegisterBusiness - create or overwrite a business registration
//
// always starts pending; counters reset on re-registration
func RegisterBusiness(caller account.Account, name string, country string) error {
	globalData.Lock()
	defer globalData.Unlock()

	business := creditrecord.Business{
		Status:         creditrecord.BusinessPending,
		CreditsBought:  0,
		CreditsRetired: 0,
		Name:           name,
		Country:        country,
	}
	packed, err := business.Pack()
	if nil != err {
		return err
	}
	storage.Pool.Businesses.Put(caller.Bytes(), packed)

	globalData.log.Infof("business registered: %s name: %q", caller, name)
	return nil
}

// admin only status change, re-verification of a rejected business is
// allowed
func setBusinessStatus(caller account.Account, businessAccount account.Account, status creditrecord.BusinessStatus) error {
	config, err := getConfig()
	if nil != err {
		return err
	}
	if caller != config.Admin {
		return fault.AdminOnly
	}

	packed := storage.Pool.Businesses.Get(businessAccount.Bytes())
	if nil == packed {
		return fault.BusinessNotFound
	}
	business, err := creditrecord.UnpackBusiness(packed)
	if nil != err {
		return err
	}

	business.Status = status
	repacked, err := business.Pack()
	if nil != err {
		return err
	}
	storage.Pool.Businesses.Put(businessAccount.Bytes(), repacked)

	globalData.log.Infof("business status: %s → %d", businessAccount, status)
	return nil
}

// VerifyBusiness - mark a business as verified, admin only
func VerifyBusiness(caller account.Account, businessAccount account.Account) error {
	globalData.Lock()
	defer globalData.Unlock()
	return setBusinessStatus(caller, businessAccount, creditrecord.BusinessVerified)
}

// RejectBusiness - mark a business as rejected, admin only
func RejectBusiness(caller account.Account, businessAccount account.Account) error {
	globalData.Lock()
	defer globalData.Unlock()
	return setBusinessStatus(caller, businessAccount, creditrecord.BusinessRejected)
}
