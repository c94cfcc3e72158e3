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

const (
	uint64ByteSize = 8
	lengthByteSize = 2
)

// structure of the credit record (40 bytes)
const (
	creditAssetIDStart  = 0
	creditAssetIDFinish = creditAssetIDStart + uint64ByteSize

	creditCO2Start  = creditAssetIDFinish
	creditCO2Finish = creditCO2Start + uint64ByteSize

	creditVintageStart  = creditCO2Finish
	creditVintageFinish = creditVintageStart + uint64ByteSize

	creditMintTimeStart  = creditVintageFinish
	creditMintTimeFinish = creditMintTimeStart + uint64ByteSize

	creditExpiryStart  = creditMintTimeFinish
	creditExpiryFinish = creditExpiryStart + uint64ByteSize

	CreditRecordLength = creditExpiryFinish
)

// structure of the current listing record (96 bytes)
const (
	listingAssetIDStart  = 0
	listingAssetIDFinish = listingAssetIDStart + uint64ByteSize

	listingSellerStart  = listingAssetIDFinish
	listingSellerFinish = listingSellerStart + account.AccountSize

	listingPriceStart  = listingSellerFinish
	listingPriceFinish = listingPriceStart + uint64ByteSize

	listingCO2Start  = listingPriceFinish
	listingCO2Finish = listingCO2Start + uint64ByteSize

	listingVintageStart  = listingCO2Finish
	listingVintageFinish = listingVintageStart + uint64ByteSize

	listingMinimumStart  = listingVintageFinish
	listingMinimumFinish = listingMinimumStart + uint64ByteSize

	listingListedAtStart  = listingMinimumFinish
	listingListedAtFinish = listingListedAtStart + uint64ByteSize

	listingExpiryStart  = listingListedAtFinish
	listingExpiryFinish = listingExpiryStart + uint64ByteSize

	listingActiveStart  = listingExpiryFinish
	listingActiveFinish = listingActiveStart + uint64ByteSize

	ListingLength = listingActiveFinish
)

// structure of the superseded legacy listing record (128 bytes)
//
// no expiry field; active sits where the current layout stores
// expiry and a truncated ipfs hash trails the record
const (
	legacyActiveStart  = listingListedAtFinish
	legacyActiveFinish = legacyActiveStart + uint64ByteSize

	legacyHashStart  = legacyActiveFinish
	legacyHashFinish = legacyHashStart + 40

	LegacyListingLength = legacyHashFinish
)

// structure of the registry configuration record (40 bytes)
const (
	registryAdminStart  = 0
	registryAdminFinish = registryAdminStart + account.AccountSize

	registryIssuedStart  = registryAdminFinish
	registryIssuedFinish = registryIssuedStart + uint64ByteSize

	RegistryConfigLength = registryIssuedFinish
)

// structure of the marketplace configuration record (56 bytes)
const (
	marketAdminStart  = 0
	marketAdminFinish = marketAdminStart + account.AccountSize

	marketFeeStart  = marketAdminFinish
	marketFeeFinish = marketFeeStart + uint64ByteSize

	marketVolumeStart  = marketFeeFinish
	marketVolumeFinish = marketVolumeStart + uint64ByteSize

	marketTradesStart  = marketVolumeFinish
	marketTradesFinish = marketTradesStart + uint64ByteSize

	MarketplaceConfigLength = marketTradesFinish
)

// fixed offsets of issuer and business records; the trailing strings
// are 2 byte length prefixed
const (
	issuerVerifiedStart  = 0
	issuerVerifiedFinish = issuerVerifiedStart + uint64ByteSize

	issuerIssuedStart  = issuerVerifiedFinish
	issuerIssuedFinish = issuerIssuedStart + uint64ByteSize

	issuerStringsStart = issuerIssuedFinish

	businessStatusStart  = 0
	businessStatusFinish = businessStatusStart + uint64ByteSize

	businessBoughtStart  = businessStatusFinish
	businessBoughtFinish = businessBoughtStart + uint64ByteSize

	businessRetiredStart  = businessBoughtFinish
	businessRetiredFinish = businessRetiredStart + uint64ByteSize

	businessStringsStart = businessRetiredFinish

	holdingOwnerStart  = 0
	holdingOwnerFinish = holdingOwnerStart + account.AccountSize

	holdingStringsStart = holdingOwnerFinish
)

// append a big endian uint64
func appendUint64(buffer []byte, value uint64) []byte {
	scratch := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(scratch, value)
	return append(buffer, scratch...)
}

// append a 2 byte length prefixed string
func appendString(buffer []byte, s string, limit int) ([]byte, error) {
	if len(s) > limit {
		return nil, fault.StringTooLong
	}
	scratch := make([]byte, lengthByteSize)
	binary.BigEndian.PutUint16(scratch, uint16(len(s)))
	buffer = append(buffer, scratch...)
	return append(buffer, s...), nil
}

func boolToUint64(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// Pack - byte form of a credit record
func (record CreditRecord) Pack() Packed {
	buffer := make([]byte, 0, CreditRecordLength)
	buffer = appendUint64(buffer, record.AssetID)
	buffer = appendUint64(buffer, record.CO2Tonnes)
	buffer = appendUint64(buffer, record.VintageYear)
	buffer = appendUint64(buffer, record.MintTimestamp)
	buffer = appendUint64(buffer, record.ExpiryTimestamp)
	return buffer
}

// Pack - byte form of a listing in the current layout
//
// legacy layout records are never written
func (listing Listing) Pack() Packed {
	buffer := make([]byte, 0, ListingLength)
	buffer = appendUint64(buffer, listing.AssetID)
	buffer = append(buffer, listing.Seller.Bytes()...)
	buffer = appendUint64(buffer, listing.Price)
	buffer = appendUint64(buffer, listing.CO2Tonnes)
	buffer = appendUint64(buffer, listing.VintageYear)
	buffer = appendUint64(buffer, listing.MinimumPurchase)
	buffer = appendUint64(buffer, listing.ListedAt)
	buffer = appendUint64(buffer, listing.ExpiryTimestamp)
	buffer = appendUint64(buffer, boolToUint64(listing.Active))
	return buffer
}

// Pack - byte form of an issuer registration
func (issuer Issuer) Pack() (Packed, error) {
	buffer := make([]byte, 0, issuerStringsStart+3*lengthByteSize+len(issuer.Name)+len(issuer.Country)+len(issuer.Standard))
	buffer = appendUint64(buffer, boolToUint64(issuer.Verified))
	buffer = appendUint64(buffer, issuer.CreditsIssued)
	buffer, err := appendString(buffer, issuer.Name, maxNameLength)
	if nil != err {
		return nil, err
	}
	buffer, err = appendString(buffer, issuer.Country, maxCountryLength)
	if nil != err {
		return nil, err
	}
	buffer, err = appendString(buffer, issuer.Standard, maxStandardLength)
	if nil != err {
		return nil, err
	}
	return buffer, nil
}

// Pack - byte form of a business registration
func (business Business) Pack() (Packed, error) {
	buffer := make([]byte, 0, businessStringsStart+2*lengthByteSize+len(business.Name)+len(business.Country))
	buffer = appendUint64(buffer, uint64(business.Status))
	buffer = appendUint64(buffer, business.CreditsBought)
	buffer = appendUint64(buffer, business.CreditsRetired)
	buffer, err := appendString(buffer, business.Name, maxNameLength)
	if nil != err {
		return nil, err
	}
	buffer, err = appendString(buffer, business.Country, maxCountryLength)
	if nil != err {
		return nil, err
	}
	return buffer, nil
}

// Pack - byte form of an asset holding
func (holding Holding) Pack() (Packed, error) {
	buffer := make([]byte, 0, holdingStringsStart+2*lengthByteSize+len(holding.Name)+len(holding.URL))
	buffer = append(buffer, holding.Owner.Bytes()...)
	buffer, err := appendString(buffer, holding.Name, maxNameLength)
	if nil != err {
		return nil, err
	}
	buffer, err = appendString(buffer, holding.URL, maxURLLength)
	if nil != err {
		return nil, err
	}
	return buffer, nil
}

// Pack - byte form of the registry configuration
func (config RegistryConfig) Pack() Packed {
	buffer := make([]byte, 0, RegistryConfigLength)
	buffer = append(buffer, config.Admin.Bytes()...)
	buffer = appendUint64(buffer, config.TotalIssued)
	return buffer
}

// Pack - byte form of the marketplace configuration
func (config MarketplaceConfig) Pack() Packed {
	buffer := make([]byte, 0, MarketplaceConfigLength)
	buffer = append(buffer, config.Admin.Bytes()...)
	buffer = appendUint64(buffer, config.FeeBps)
	buffer = appendUint64(buffer, config.TotalVolume)
	buffer = appendUint64(buffer, config.TotalTrades)
	return buffer
}
