// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Carbon Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package txgroup - the submitted transaction group model
//
// a group is an ordered list of steps executed all-or-nothing by the
// ledger.  contract call steps that move value require the step
// immediately before them in the group to be a matching payment or
// asset transfer; CheckCompanion performs that validation.
package txgroup

import (
	"github.com/carbonledger/carbond/account"
	"github.com/carbonledger/carbond/fault"
)

// Kind - the type of a group step
type Kind uint8

// step kinds
const (
	NullKind Kind = iota
	PaymentKind
	AssetTransferKind
	ContractCallKind
)

// String - printable form of a step kind
func (kind Kind) String() string {
	switch kind {
	case NullKind:
		return "null"
	case PaymentKind:
		return "payment"
	case AssetTransferKind:
		return "asset-transfer"
	case ContractCallKind:
		return "contract-call"
	default:
		return "*unknown*"
	}
}

// Call - the method and arguments of a contract call step
//
// a flat argument record; each method reads only the fields it needs
type Call struct {
	Contract        string          `json:"contract"`
	Method          string          `json:"method"`
	Account         account.Account `json:"account"`
	ProjectID       string          `json:"projectId"`
	Name            string          `json:"name"`
	Location        string          `json:"location"`
	Country         string          `json:"country"`
	Standard        string          `json:"standard"`
	ProjectType     string          `json:"projectType"`
	IPFSHash        string          `json:"ipfsHash"`
	CO2Tonnes       uint64          `json:"co2Tonnes"`
	VintageYear     uint64          `json:"vintageYear"`
	YearsValid      uint64          `json:"yearsValid"`
	Price           uint64          `json:"price"`
	FeeBps          uint64          `json:"feeBps"`
	MinimumPurchase uint64          `json:"minimumPurchase"`
	ExpiryTimestamp uint64          `json:"expiryTimestamp"`
	AssetID         uint64          `json:"assetId"`
}

// Step - one entry of a transaction group
type Step struct {
	Kind     Kind            `json:"kind"`
	Sender   account.Account `json:"sender"`
	Receiver account.Account `json:"receiver"`
	Amount   uint64          `json:"amount"`
	AssetID  uint64          `json:"assetId"`
	Call     *Call           `json:"call,omitempty"`
}

// Group - an ordered list of steps
type Group []*Step

// Previous - the step immediately before index i, nil for the first
func (group Group) Previous(i int) *Step {
	if i <= 0 || i > len(group) {
		return nil
	}
	return group[i-1]
}

// Expect - the companion step a contract call requires
//
// Amount is only compared for payment companions; AssetID only for
// asset transfer companions
type Expect struct {
	Kind     Kind
	Sender   account.Account
	Receiver account.Account
	Amount   uint64
	AssetID  uint64
}

// CheckCompanion - validate a companion step against expectations
//
// checks are ordered: presence, kind, sender, receiver, then the
// kind-specific amount or asset
func CheckCompanion(companion *Step, expected Expect) error {
	if nil == companion {
		return fault.MissingCompanion
	}
	if expected.Kind != companion.Kind {
		return fault.WrongCompanionKind
	}
	if expected.Sender != companion.Sender {
		return fault.CompanionSenderMismatch
	}
	if expected.Receiver != companion.Receiver {
		return fault.CompanionReceiverMismatch
	}
	switch expected.Kind {
	case PaymentKind:
		if expected.Amount != companion.Amount {
			return fault.CompanionAmountMismatch
		}
	case AssetTransferKind:
		if expected.AssetID != companion.AssetID {
			return fault.CompanionAssetMismatch
		}
	}
	return nil
}
