// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Carbon Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/carbonledger/carbond/ledger"
	"github.com/carbonledger/carbond/txgroup"
)

// Group - transaction group submission service
type Group struct {
	log     *logger.L
	limiter *rate.Limiter
}

// steps per submitted group
const maximumGroupSize = 16

// GroupSubmitArguments - an assembled group
type GroupSubmitArguments struct {
	Steps txgroup.Group `json:"steps"`
}

// Submit - execute a group all-or-nothing
//
// the execution timestamp is taken from the server clock at
// submission, never from the client
func (group *Group) Submit(arguments *GroupSubmitArguments, reply *ledger.Result) error {
	if err := rateLimitN(group.limiter, len(arguments.Steps), maximumGroupSize); nil != err {
		return err
	}
	group.log.Infof("Group.Submit: %d steps", len(arguments.Steps))

	result, err := ledger.Execute(arguments.Steps, uint64(time.Now().Unix()))
	if nil != err {
		return err
	}

	*reply = *result
	return nil
}
