// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Carbon Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package creditrecord - the packed record schemas of the credit ledger
//
// Every persisted fact is a fixed-layout byte record.  This package
// owns the encode/decode of each record type so that no other code
// slices raw buffers, and both the current and the superseded legacy
// listing layouts can be read without ambiguity.
package creditrecord

import (
	"github.com/carbonledger/carbond/account"
)

// Packed - packed records are just a byte slice
type Packed []byte

// expiry calculation constants
//
// one year is counted as exactly 31,536,000 seconds and year 2000
// starts at unix time 946,684,800; the stored expiry is:
//   vintage timestamp + years valid × seconds per year
const (
	SecondsPerYear = 31536000
	Base2000Unix   = 946684800
)

// validation bounds
const (
	MinimumVintageYear = 2000
	MinimumYearsValid  = 1
	MaximumYearsValid  = 10
)

// byte sizes for various fields
const (
	maxNameLength     = 64
	maxCountryLength  = 64
	maxStandardLength = 32
	maxURLLength      = 128
)

// CreditRecord - one minted carbon credit, keyed by its project id
//
// immutable and append-only once minted
type CreditRecord struct {
	AssetID         uint64 `json:"assetId"`
	CO2Tonnes       uint64 `json:"co2Tonnes"`
	VintageYear     uint64 `json:"vintageYear"`
	MintTimestamp   uint64 `json:"mintTimestamp"`
	ExpiryTimestamp uint64 `json:"expiryTimestamp"`
}

// Issuer - an NGO registration, keyed by its account
type Issuer struct {
	Verified      bool   `json:"verified"`
	CreditsIssued uint64 `json:"creditsIssued"`
	Name          string `json:"name"`
	Country       string `json:"country"`
	Standard      string `json:"standard"`
}

// BusinessStatus - verification state of a business
type BusinessStatus uint64

// possible business states
const (
	BusinessPending  BusinessStatus = 0
	BusinessVerified BusinessStatus = 1
	BusinessRejected BusinessStatus = 2
)

// Business - a buying company registration, keyed by its account
type Business struct {
	Status         BusinessStatus `json:"status"`
	CreditsBought  uint64         `json:"creditsBought"`
	CreditsRetired uint64         `json:"creditsRetired"`
	Name           string         `json:"name"`
	Country        string         `json:"country"`
}

// Listing - a credit offered for sale, keyed by its asset id
//
// IPFSHash is only present on records in the superseded legacy
// layout; the current layout does not store it
type Listing struct {
	AssetID         uint64          `json:"assetId"`
	Seller          account.Account `json:"seller"`
	Price           uint64          `json:"price"`
	CO2Tonnes       uint64          `json:"co2Tonnes"`
	VintageYear     uint64          `json:"vintageYear"`
	MinimumPurchase uint64          `json:"minimumPurchase"`
	ListedAt        uint64          `json:"listedAt"`
	ExpiryTimestamp uint64          `json:"expiryTimestamp"`
	Active          bool            `json:"active"`
	IPFSHash        string          `json:"ipfsHash,omitempty"`
}

// RegistryConfig - registry deployment singleton
//
// admin is set at deployment and never changes
type RegistryConfig struct {
	Admin       account.Account `json:"admin"`
	TotalIssued uint64          `json:"totalIssued"`
}

// MarketplaceConfig - marketplace deployment singleton
//
// admin and fee are set at deployment and never change; the counters
// only ever increase
type MarketplaceConfig struct {
	Admin       account.Account `json:"admin"`
	FeeBps      uint64          `json:"feeBps"`
	TotalVolume uint64          `json:"totalVolume"`
	TotalTrades uint64          `json:"totalTrades"`
}

// Holding - ownership record of one escrowed asset unit
//
// name and url are the mint time metadata of the underlying credit
type Holding struct {
	Owner account.Account `json:"owner"`
	Name  string          `json:"name"`
	URL   string          `json:"url"`
}

// VintageTimestamp - unix time of Jan 1 of the vintage year
func VintageTimestamp(vintageYear uint64) uint64 {
	return Base2000Unix + (vintageYear-MinimumVintageYear)*SecondsPerYear
}

// ExpiryTimestamp - unix time at which a credit of the given vintage
// stops being sellable
func ExpiryTimestamp(vintageYear uint64, yearsValid uint64) uint64 {
	return VintageTimestamp(vintageYear) + yearsValid*SecondsPerYear
}
