// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Carbon Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package creditrecord_test

import (
	"bytes"
	"testing"

	"github.com/carbonledger/carbond/account"
	"github.com/carbonledger/carbond/creditrecord"
	"github.com/carbonledger/carbond/fault"
)

// a seller account for fixtures
var testSellerBytes = []byte{
	0x9f, 0xc4, 0x86, 0xa2, 0x53, 0x4f, 0x17, 0xe3,
	0x67, 0x74, 0x8c, 0x09, 0x0f, 0x0b, 0xa4, 0xd3,
	0x25, 0x01, 0x14, 0x81, 0x58, 0xf9, 0x0e, 0xfb,
	0x4b, 0x83, 0x75, 0x97, 0x5b, 0x04, 0xdd, 0x79,
}

func testSeller(t *testing.T) account.Account {
	seller, err := account.AccountFromBytes(testSellerBytes)
	if nil != err {
		t.Fatalf("account error: %s", err)
	}
	return seller
}

func TestExpiryTimestamp(t *testing.T) {

	testData := []struct {
		vintageYear uint64
		yearsValid  uint64
		expected    uint64
	}{
		{2000, 1, 978220800},
		{2024, 5, 1861228800},
		{2024, 1, 1735084800},
		{2030, 10, 2208124800},
	}

	for i, item := range testData {
		actual := creditrecord.ExpiryTimestamp(item.vintageYear, item.yearsValid)
		if actual != item.expected {
			t.Errorf("%d: expiry(%d, %d): actual: %d  expected: %d",
				i, item.vintageYear, item.yearsValid, actual, item.expected)
		}
	}
}

func TestPackCreditRecord(t *testing.T) {

	record := creditrecord.CreditRecord{
		AssetID:         7,
		CO2Tonnes:       1000,
		VintageYear:     2024,
		MintTimestamp:   1703548800,
		ExpiryTimestamp: 1861228800,
	}

	expected := []byte{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x07,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0xe8,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x07, 0xe8,
		0x00, 0x00, 0x00, 0x00, 0x65, 0x8a, 0x17, 0x80,
		0x00, 0x00, 0x00, 0x00, 0x6e, 0xf0, 0x19, 0x00,
	}

	packed := record.Pack()
	if !bytes.Equal(packed, expected) {
		t.Errorf("pack credit record: actual: %x  expected: %x", packed, expected)
	}

	unpacked, err := creditrecord.UnpackCreditRecord(packed)
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	if *unpacked != record {
		t.Errorf("unpack credit record: actual: %+v  expected: %+v", unpacked, record)
	}
}

func TestUnpackCreditRecordWrongLength(t *testing.T) {
	_, err := creditrecord.UnpackCreditRecord(make([]byte, 39))
	if fault.InvalidRecord != err {
		t.Errorf("short record: actual: %v  expected: %v", err, fault.InvalidRecord)
	}
	_, err = creditrecord.UnpackCreditRecord(make([]byte, 41))
	if fault.InvalidRecord != err {
		t.Errorf("long record: actual: %v  expected: %v", err, fault.InvalidRecord)
	}
}

func TestPackListing(t *testing.T) {

	listing := creditrecord.Listing{
		AssetID:         7,
		Seller:          testSeller(t),
		Price:           250,
		CO2Tonnes:       1000,
		VintageYear:     2024,
		MinimumPurchase: 10,
		ListedAt:        1703548800,
		ExpiryTimestamp: 1861228800,
		Active:          true,
	}

	expected := []byte{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x07,
		0x9f, 0xc4, 0x86, 0xa2, 0x53, 0x4f, 0x17, 0xe3,
		0x67, 0x74, 0x8c, 0x09, 0x0f, 0x0b, 0xa4, 0xd3,
		0x25, 0x01, 0x14, 0x81, 0x58, 0xf9, 0x0e, 0xfb,
		0x4b, 0x83, 0x75, 0x97, 0x5b, 0x04, 0xdd, 0x79,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xfa,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0xe8,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x07, 0xe8,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x0a,
		0x00, 0x00, 0x00, 0x00, 0x65, 0x8a, 0x17, 0x80,
		0x00, 0x00, 0x00, 0x00, 0x6e, 0xf0, 0x19, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01,
	}

	packed := listing.Pack()
	if creditrecord.ListingLength != len(packed) {
		t.Fatalf("listing length: actual: %d  expected: %d", len(packed), creditrecord.ListingLength)
	}
	if !bytes.Equal(packed, expected) {
		t.Errorf("pack listing: actual: %x  expected: %x", packed, expected)
	}

	unpacked, err := creditrecord.UnpackListing(packed)
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	if *unpacked != listing {
		t.Errorf("unpack listing: actual: %+v  expected: %+v", unpacked, listing)
	}
}

func TestUnpackLegacyListing(t *testing.T) {

	hash := "QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79oj"
	if 40 != len(hash) {
		t.Fatalf("hash length: actual: %d  expected: 40", len(hash))
	}

	buffer := []byte{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x07,
	}
	buffer = append(buffer, testSellerBytes...)
	buffer = append(buffer,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xfa, // price
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0xe8, // co2
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x07, 0xe8, // vintage
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x0a, // minimum
		0x00, 0x00, 0x00, 0x00, 0x65, 0x8a, 0x17, 0x80, // listed at
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, // active
	)
	buffer = append(buffer, hash...)
	if creditrecord.LegacyListingLength != len(buffer) {
		t.Fatalf("buffer length: actual: %d  expected: %d", len(buffer), creditrecord.LegacyListingLength)
	}

	unpacked, err := creditrecord.UnpackListing(buffer)
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}

	expected := creditrecord.Listing{
		AssetID:         7,
		Seller:          testSeller(t),
		Price:           250,
		CO2Tonnes:       1000,
		VintageYear:     2024,
		MinimumPurchase: 10,
		ListedAt:        1703548800,
		ExpiryTimestamp: 0,
		Active:          true,
		IPFSHash:        hash,
	}
	if *unpacked != expected {
		t.Errorf("unpack legacy listing: actual: %+v  expected: %+v", unpacked, expected)
	}
}

func TestUnpackListingWrongLength(t *testing.T) {
	for _, n := range []int{0, 95, 97, 127, 129} {
		_, err := creditrecord.UnpackListing(make([]byte, n))
		if fault.InvalidRecord != err {
			t.Errorf("length %d: actual: %v  expected: %v", n, err, fault.InvalidRecord)
		}
	}
}

func TestPackIssuer(t *testing.T) {

	issuer := creditrecord.Issuer{
		Verified:      true,
		CreditsIssued: 50,
		Name:          "Evergreen Offsets",
		Country:       "NZ",
		Standard:      "Gold Standard",
	}

	packed, err := issuer.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	expected := []byte{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x32,
		0x00, 0x11,
	}
	expected = append(expected, "Evergreen Offsets"...)
	expected = append(expected, 0x00, 0x02)
	expected = append(expected, "NZ"...)
	expected = append(expected, 0x00, 0x0d)
	expected = append(expected, "Gold Standard"...)

	if !bytes.Equal(packed, expected) {
		t.Errorf("pack issuer: actual: %x  expected: %x", packed, expected)
	}

	unpacked, err := creditrecord.UnpackIssuer(packed)
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	if *unpacked != issuer {
		t.Errorf("unpack issuer: actual: %+v  expected: %+v", unpacked, issuer)
	}
}

func TestPackIssuerNameTooLong(t *testing.T) {
	issuer := creditrecord.Issuer{
		Name: string(make([]byte, 65)),
	}
	_, err := issuer.Pack()
	if fault.StringTooLong != err {
		t.Errorf("long name: actual: %v  expected: %v", err, fault.StringTooLong)
	}
}

func TestPackBusiness(t *testing.T) {

	business := creditrecord.Business{
		Status:         creditrecord.BusinessVerified,
		CreditsBought:  1000,
		CreditsRetired: 250,
		Name:           "Acme Logistics",
		Country:        "SG",
	}

	packed, err := business.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	unpacked, err := creditrecord.UnpackBusiness(packed)
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	if *unpacked != business {
		t.Errorf("unpack business: actual: %+v  expected: %+v", unpacked, business)
	}
}

func TestUnpackBusinessTruncated(t *testing.T) {
	business := creditrecord.Business{
		Status: creditrecord.BusinessPending,
		Name:   "Acme Logistics",
	}
	packed, err := business.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	_, err = creditrecord.UnpackBusiness(packed[:len(packed)-3])
	if fault.InvalidRecord != err {
		t.Errorf("truncated record: actual: %v  expected: %v", err, fault.InvalidRecord)
	}
}

func TestPackHolding(t *testing.T) {

	holding := creditrecord.Holding{
		Owner: testSeller(t),
		Name:  "Rimu Forest Restoration",
		URL:   "ipfs://QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79oj",
	}

	packed, err := holding.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	unpacked, err := creditrecord.UnpackHolding(packed)
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	if *unpacked != holding {
		t.Errorf("unpack holding: actual: %+v  expected: %+v", unpacked, holding)
	}

	_, err = creditrecord.UnpackHolding(packed[:20])
	if fault.InvalidRecord != err {
		t.Errorf("truncated holding: actual: %v  expected: %v", err, fault.InvalidRecord)
	}
}

func TestPackConfigs(t *testing.T) {

	admin := testSeller(t)

	registry := creditrecord.RegistryConfig{
		Admin:       admin,
		TotalIssued: 12,
	}
	packedRegistry := registry.Pack()
	if creditrecord.RegistryConfigLength != len(packedRegistry) {
		t.Fatalf("registry config length: actual: %d  expected: %d",
			len(packedRegistry), creditrecord.RegistryConfigLength)
	}
	unpackedRegistry, err := creditrecord.UnpackRegistryConfig(packedRegistry)
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	if *unpackedRegistry != registry {
		t.Errorf("unpack registry config: actual: %+v  expected: %+v", unpackedRegistry, registry)
	}

	market := creditrecord.MarketplaceConfig{
		Admin:       admin,
		FeeBps:      250,
		TotalVolume: 5000,
		TotalTrades: 3,
	}
	packedMarket := market.Pack()
	if creditrecord.MarketplaceConfigLength != len(packedMarket) {
		t.Fatalf("marketplace config length: actual: %d  expected: %d",
			len(packedMarket), creditrecord.MarketplaceConfigLength)
	}
	unpackedMarket, err := creditrecord.UnpackMarketplaceConfig(packedMarket)
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	if *unpackedMarket != market {
		t.Errorf("unpack marketplace config: actual: %+v  expected: %+v", unpackedMarket, market)
	}
}
