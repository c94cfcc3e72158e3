// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Carbon Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/carbonledger/carbond/account"
	"github.com/carbonledger/carbond/creditrecord"
	"github.com/carbonledger/carbond/fault"
	"github.com/carbonledger/carbond/storage"
)

// RegisterIssuer - create or overwrite an issuer registration
//
// re-registration resets verification and the issued counter
func RegisterIssuer(caller account.Account, name string, country string, standard string) error {
	globalData.Lock()
	defer globalData.Unlock()

	issuer := creditrecord.Issuer{
		Verified:      false,
		CreditsIssued: 0,
		Name:          name,
		Country:       country,
		Standard:      standard,
	}
	packed, err := issuer.Pack()
	if nil != err {
		return err
	}
	storage.Pool.Issuers.Put(caller.Bytes(), packed)

	globalData.log.Infof("issuer registered: %s name: %q", caller, name)
	return nil
}

// VerifyIssuer - mark a registered issuer as verified, admin only
func VerifyIssuer(caller account.Account, issuerAccount account.Account) error {
	globalData.Lock()
	defer globalData.Unlock()

	config, err := getConfig()
	if nil != err {
		return err
	}
	if caller != config.Admin {
		return fault.AdminOnly
	}

	packed := storage.Pool.Issuers.Get(issuerAccount.Bytes())
	if nil == packed {
		return fault.IssuerNotFound
	}
	issuer, err := creditrecord.UnpackIssuer(packed)
	if nil != err {
		return err
	}

	issuer.Verified = true
	repacked, err := issuer.Pack()
	if nil != err {
		return err
	}
	storage.Pool.Issuers.Put(issuerAccount.Bytes(), repacked)

	globalData.log.Infof("issuer verified: %s", issuerAccount)
	return nil
}
