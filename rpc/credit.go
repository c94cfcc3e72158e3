// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Carbon Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/carbonledger/carbond/account"
	"github.com/carbonledger/carbond/creditrecord"
	"github.com/carbonledger/carbond/registry"
)

// Credit - registry query service
type Credit struct {
	log     *logger.L
	limiter *rate.Limiter
}

// CreditGetArguments - select a credit by project id
type CreditGetArguments struct {
	ProjectID string `json:"projectId"`
}

// CreditGetReply - the stored record and its live expiry state
type CreditGetReply struct {
	Record  creditrecord.CreditRecord `json:"record"`
	Expired bool                      `json:"expired"`
}

// Get - fetch one minted credit
func (credit *Credit) Get(arguments *CreditGetArguments, reply *CreditGetReply) error {
	if err := rateLimit(credit.limiter); nil != err {
		return err
	}
	credit.log.Infof("Credit.Get: %q", arguments.ProjectID)

	record, err := registry.GetCredit(arguments.ProjectID)
	if nil != err {
		return err
	}
	expired, err := registry.IsCreditExpired(arguments.ProjectID)
	if nil != err {
		return err
	}

	reply.Record = *record
	reply.Expired = expired
	return nil
}

// CreditIssuerArguments - select an issuer by account
type CreditIssuerArguments struct {
	Issuer account.Account `json:"issuer"`
}

// CreditIssuerReply - issuer verification state and mint count
type CreditIssuerReply struct {
	Verified      bool   `json:"verified"`
	CreditsIssued uint64 `json:"creditsIssued"`
}

// Issuer - fetch issuer statistics
func (credit *Credit) Issuer(arguments *CreditIssuerArguments, reply *CreditIssuerReply) error {
	if err := rateLimit(credit.limiter); nil != err {
		return err
	}
	credit.log.Infof("Credit.Issuer: %s", arguments.Issuer)

	verified, issued, err := registry.GetIssuerStats(arguments.Issuer)
	if nil != err {
		return err
	}

	reply.Verified = verified
	reply.CreditsIssued = issued
	return nil
}

// CreditTotalsArguments - no parameters
type CreditTotalsArguments struct {
}

// CreditTotalsReply - registry wide counters
type CreditTotalsReply struct {
	TotalIssued uint64 `json:"totalIssued"`
}

// Totals - registry wide mint counter
func (credit *Credit) Totals(arguments *CreditTotalsArguments, reply *CreditTotalsReply) error {
	if err := rateLimit(credit.limiter); nil != err {
		return err
	}

	total, err := registry.GetTotalIssued()
	if nil != err {
		return err
	}

	reply.TotalIssued = total
	return nil
}
