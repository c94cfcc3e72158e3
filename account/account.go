// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Carbon Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - ledger account identities
//
// An account is an ED25519 public key.  The raw 32 bytes are used
// directly as state keys in the box store and as the security
// principal compared against a transaction's sender.  The text form
// is Base58 of the key followed by a four byte SHA3-256 checksum.
package account

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/carbonledger/carbond/fault"
)

// miscellaneous constants
const (
	AccountSize    = ed25519.PublicKeySize // bytes in an account identity
	checksumLength = 4
)

// Account - a ledger account identity
type Account [AccountSize]byte

// AccountFromBytes - convert a raw byte slice to an account
func AccountFromBytes(buffer []byte) (Account, error) {
	var account Account
	if AccountSize != len(buffer) {
		return account, fault.InvalidKeyLength
	}
	copy(account[:], buffer)
	return account, nil
}

// AccountFromBase58 - convert the checksummed text form back to an account
func AccountFromBase58(accountBase58Encoded string) (Account, error) {
	var account Account

	accountDecoded, err := base58.Decode(accountBase58Encoded)
	if nil != err {
		return account, fault.CannotDecodeAccount
	}
	if AccountSize+checksumLength != len(accountDecoded) {
		return account, fault.InvalidKeyLength
	}

	checksum := sha3.Sum256(accountDecoded[:AccountSize])
	if !bytes.Equal(checksum[:checksumLength], accountDecoded[AccountSize:]) {
		return account, fault.ChecksumMismatch
	}

	copy(account[:], accountDecoded[:AccountSize])
	return account, nil
}

// Bytes - the raw 32 byte key, for use as a state key
func (account Account) Bytes() []byte {
	return account[:]
}

// IsZero - check for the all zero account
func (account Account) IsZero() bool {
	var zero Account
	return zero == account
}

// String - Base58 encoded key with checksum
func (account Account) String() string {
	checksum := sha3.Sum256(account[:])
	buffer := make([]byte, 0, AccountSize+checksumLength)
	buffer = append(buffer, account[:]...)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// MarshalText - implement the text marshaller interface
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - implement the text unmarshaller interface
func (account *Account) UnmarshalText(text []byte) error {
	a, err := AccountFromBase58(string(text))
	if nil != err {
		return err
	}
	*account = a
	return nil
}

// CheckSignature - verify that signature covers message under this account's key
func (account Account) CheckSignature(message []byte, signature Signature) error {
	if ed25519.SignatureSize != len(signature) {
		return fault.InvalidSignature
	}
	if !ed25519.Verify(ed25519.PublicKey(account[:]), message, signature) {
		return fault.InvalidSignature
	}
	return nil
}
