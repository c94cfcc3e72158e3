// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Carbon Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/carbonledger/carbond/account"
	"github.com/carbonledger/carbond/creditrecord"
	"github.com/carbonledger/carbond/escrow"
	"github.com/carbonledger/carbond/fault"
	"github.com/carbonledger/carbond/storage"
)

// MintCarbonCredit - mint a credit batch for a verified issuer
//
// allocates one escrowed asset unit owned by the caller, writes the
// credit record keyed by project id and bumps the issuer and registry
// counters.  expiry is computed from the vintage year, never supplied
// by the caller:
//
//	expiry = vintage start + years valid
//
// where both terms are whole years from Jan 1 2000
func MintCarbonCredit(
	caller account.Account,
	projectID string,
	projectName string,
	location string,
	co2Tonnes uint64,
	vintageYear uint64,
	projectType string,
	ipfsHash string,
	yearsValid uint64,
) (uint64, error) {
	globalData.Lock()
	defer globalData.Unlock()

	config, err := getConfig()
	if nil != err {
		return 0, err
	}

	packedIssuer := storage.Pool.Issuers.Get(caller.Bytes())
	if nil == packedIssuer {
		return 0, fault.IssuerNotVerified
	}
	issuer, err := creditrecord.UnpackIssuer(packedIssuer)
	if nil != err {
		return 0, err
	}
	if !issuer.Verified {
		return 0, fault.IssuerNotVerified
	}

	if 0 == co2Tonnes {
		return 0, fault.InvalidCarbonTonnage
	}
	if vintageYear < creditrecord.MinimumVintageYear {
		return 0, fault.InvalidVintageYear
	}
	if yearsValid < creditrecord.MinimumYearsValid || yearsValid > creditrecord.MaximumYearsValid {
		return 0, fault.InvalidYearsValid
	}

	projectKey := []byte(projectID)
	if storage.Pool.Credits.Has(projectKey) {
		return 0, fault.ProjectAlreadyExists
	}

	assetID, err := escrow.CreateAsset(caller, projectName, ipfsHash)
	if nil != err {
		return 0, err
	}

	record := creditrecord.CreditRecord{
		AssetID:         assetID,
		CO2Tonnes:       co2Tonnes,
		VintageYear:     vintageYear,
		MintTimestamp:   globalData.clock.Now(),
		ExpiryTimestamp: creditrecord.ExpiryTimestamp(vintageYear, yearsValid),
	}
	storage.Pool.Credits.Put(projectKey, record.Pack())

	issuer.CreditsIssued += 1
	repackedIssuer, err := issuer.Pack()
	if nil != err {
		return 0, err
	}
	storage.Pool.Issuers.Put(caller.Bytes(), repackedIssuer)

	config.TotalIssued += 1
	storage.Pool.Configs.Put(registryConfigKey, config.Pack())

	globalData.log.Infof("minted: project: %q asset: %d co2: %d vintage: %d type: %q location: %q",
		projectID, assetID, co2Tonnes, vintageYear, projectType, location)
	return assetID, nil
}
