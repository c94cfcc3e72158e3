// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Carbon Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"

	"github.com/carbonledger/carbond/fault"
)

// Signature - the byte signature of a message
type Signature []byte

// MarshalText - implement the text marshaller interface
func (signature Signature) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(signature))
	buffer := make([]byte, size)
	hex.Encode(buffer, signature)
	return buffer, nil
}

// UnmarshalText - implement the text unmarshaller interface
func (signature *Signature) UnmarshalText(text []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(text)))
	byteCount, err := hex.Decode(buffer, text)
	if nil != err {
		return fault.InvalidSignature
	}
	*signature = buffer[:byteCount]
	return nil
}
