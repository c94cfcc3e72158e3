// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Carbon Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package creditrecord

import (
	"encoding/binary"

	"github.com/carbonledger/carbond/account"
	"github.com/carbonledger/carbond/fault"
)

// read a big endian uint64 field
func uint64At(buffer []byte, start int) uint64 {
	return binary.BigEndian.Uint64(buffer[start : start+uint64ByteSize])
}

// read a 2 byte length prefixed string, returns the next offset
func stringAt(buffer []byte, start int) (string, int, error) {
	if start+lengthByteSize > len(buffer) {
		return "", 0, fault.InvalidRecord
	}
	length := int(binary.BigEndian.Uint16(buffer[start : start+lengthByteSize]))
	start += lengthByteSize
	if start+length > len(buffer) {
		return "", 0, fault.InvalidRecord
	}
	return string(buffer[start : start+length]), start + length, nil
}

// UnpackCreditRecord - decode a 40 byte credit record
func UnpackCreditRecord(buffer []byte) (*CreditRecord, error) {
	if CreditRecordLength != len(buffer) {
		return nil, fault.InvalidRecord
	}
	return &CreditRecord{
		AssetID:         uint64At(buffer, creditAssetIDStart),
		CO2Tonnes:       uint64At(buffer, creditCO2Start),
		VintageYear:     uint64At(buffer, creditVintageStart),
		MintTimestamp:   uint64At(buffer, creditMintTimeStart),
		ExpiryTimestamp: uint64At(buffer, creditExpiryStart),
	}, nil
}

// UnpackListing - decode a listing record
//
// the layout is selected by record length: 96 bytes is the current
// layout, 128 bytes is the superseded legacy layout which carries no
// expiry (reported as zero) and a trailing ipfs hash
func UnpackListing(buffer []byte) (*Listing, error) {
	switch len(buffer) {

	case ListingLength:
		seller, err := account.AccountFromBytes(buffer[listingSellerStart:listingSellerFinish])
		if nil != err {
			return nil, fault.InvalidRecord
		}
		return &Listing{
			AssetID:         uint64At(buffer, listingAssetIDStart),
			Seller:          seller,
			Price:           uint64At(buffer, listingPriceStart),
			CO2Tonnes:       uint64At(buffer, listingCO2Start),
			VintageYear:     uint64At(buffer, listingVintageStart),
			MinimumPurchase: uint64At(buffer, listingMinimumStart),
			ListedAt:        uint64At(buffer, listingListedAtStart),
			ExpiryTimestamp: uint64At(buffer, listingExpiryStart),
			Active:          1 == uint64At(buffer, listingActiveStart),
		}, nil

	case LegacyListingLength:
		seller, err := account.AccountFromBytes(buffer[listingSellerStart:listingSellerFinish])
		if nil != err {
			return nil, fault.InvalidRecord
		}
		return &Listing{
			AssetID:         uint64At(buffer, listingAssetIDStart),
			Seller:          seller,
			Price:           uint64At(buffer, listingPriceStart),
			CO2Tonnes:       uint64At(buffer, listingCO2Start),
			VintageYear:     uint64At(buffer, listingVintageStart),
			MinimumPurchase: uint64At(buffer, listingMinimumStart),
			ListedAt:        uint64At(buffer, listingListedAtStart),
			Active:          1 == uint64At(buffer, legacyActiveStart),
			IPFSHash:        string(buffer[legacyHashStart:legacyHashFinish]),
		}, nil

	default:
		return nil, fault.InvalidRecord
	}
}

// UnpackIssuer - decode an issuer registration
func UnpackIssuer(buffer []byte) (*Issuer, error) {
	if len(buffer) < issuerStringsStart {
		return nil, fault.InvalidRecord
	}
	name, next, err := stringAt(buffer, issuerStringsStart)
	if nil != err {
		return nil, err
	}
	country, next, err := stringAt(buffer, next)
	if nil != err {
		return nil, err
	}
	standard, _, err := stringAt(buffer, next)
	if nil != err {
		return nil, err
	}
	return &Issuer{
		Verified:      1 == uint64At(buffer, issuerVerifiedStart),
		CreditsIssued: uint64At(buffer, issuerIssuedStart),
		Name:          name,
		Country:       country,
		Standard:      standard,
	}, nil
}

// UnpackBusiness - decode a business registration
func UnpackBusiness(buffer []byte) (*Business, error) {
	if len(buffer) < businessStringsStart {
		return nil, fault.InvalidRecord
	}
	name, next, err := stringAt(buffer, businessStringsStart)
	if nil != err {
		return nil, err
	}
	country, _, err := stringAt(buffer, next)
	if nil != err {
		return nil, err
	}
	return &Business{
		Status:         BusinessStatus(uint64At(buffer, businessStatusStart)),
		CreditsBought:  uint64At(buffer, businessBoughtStart),
		CreditsRetired: uint64At(buffer, businessRetiredStart),
		Name:           name,
		Country:        country,
	}, nil
}

// UnpackHolding - decode an asset holding
func UnpackHolding(buffer []byte) (*Holding, error) {
	if len(buffer) < holdingStringsStart {
		return nil, fault.InvalidRecord
	}
	owner, err := account.AccountFromBytes(buffer[holdingOwnerStart:holdingOwnerFinish])
	if nil != err {
		return nil, fault.InvalidRecord
	}
	name, next, err := stringAt(buffer, holdingStringsStart)
	if nil != err {
		return nil, err
	}
	url, _, err := stringAt(buffer, next)
	if nil != err {
		return nil, err
	}
	return &Holding{
		Owner: owner,
		Name:  name,
		URL:   url,
	}, nil
}

// UnpackRegistryConfig - decode the registry configuration
func UnpackRegistryConfig(buffer []byte) (*RegistryConfig, error) {
	if RegistryConfigLength != len(buffer) {
		return nil, fault.InvalidRecord
	}
	admin, err := account.AccountFromBytes(buffer[registryAdminStart:registryAdminFinish])
	if nil != err {
		return nil, fault.InvalidRecord
	}
	return &RegistryConfig{
		Admin:       admin,
		TotalIssued: uint64At(buffer, registryIssuedStart),
	}, nil
}

// UnpackMarketplaceConfig - decode the marketplace configuration
func UnpackMarketplaceConfig(buffer []byte) (*MarketplaceConfig, error) {
	if MarketplaceConfigLength != len(buffer) {
		return nil, fault.InvalidRecord
	}
	admin, err := account.AccountFromBytes(buffer[marketAdminStart:marketAdminFinish])
	if nil != err {
		return nil, fault.InvalidRecord
	}
	return &MarketplaceConfig{
		Admin:       admin,
		FeeBps:      uint64At(buffer, marketFeeStart),
		TotalVolume: uint64At(buffer, marketVolumeStart),
		TotalTrades: uint64At(buffer, marketTradesStart),
	}, nil
}
