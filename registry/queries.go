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

// read a credit record by project id
func getCredit(projectID string) (*creditrecord.CreditRecord, error) {
	packed := storage.Pool.Credits.Get([]byte(projectID))
	if nil == packed {
		return nil, fault.ProjectNotFound
	}
	return creditrecord.UnpackCreditRecord(packed)
}

// GetCredit - the full record of a minted credit
func GetCredit(projectID string) (*creditrecord.CreditRecord, error) {
	globalData.RLock()
	defer globalData.RUnlock()
	return getCredit(projectID)
}

// IsCreditExpired - true only once the clock has passed the expiry
func IsCreditExpired(projectID string) (bool, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	record, err := getCredit(projectID)
	if nil != err {
		return false, err
	}
	return globalData.clock.Now() > record.ExpiryTimestamp, nil
}

// GetCreditExpiry - expiry timestamp of a minted credit
func GetCreditExpiry(projectID string) (uint64, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	record, err := getCredit(projectID)
	if nil != err {
		return 0, err
	}
	return record.ExpiryTimestamp, nil
}

// GetCreditAssetID - escrowed asset unit backing a minted credit
func GetCreditAssetID(projectID string) (uint64, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	record, err := getCredit(projectID)
	if nil != err {
		return 0, err
	}
	return record.AssetID, nil
}

// GetIssuerStats - verification flag and mint count of an issuer
func GetIssuerStats(issuerAccount account.Account) (bool, uint64, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	packed := storage.Pool.Issuers.Get(issuerAccount.Bytes())
	if nil == packed {
		return false, 0, fault.IssuerNotFound
	}
	issuer, err := creditrecord.UnpackIssuer(packed)
	if nil != err {
		return false, 0, err
	}
	return issuer.Verified, issuer.CreditsIssued, nil
}

// GetTotalIssued - registry wide mint counter
func GetTotalIssued() (uint64, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	config, err := getConfig()
	if nil != err {
		return 0, err
	}
	return config.TotalIssued, nil
}
