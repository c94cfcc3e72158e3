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
)

// Node - daemon status service
type Node struct {
	log     *logger.L
	limiter *rate.Limiter
	start   time.Time
	version string
}

// NodeInfoArguments - no parameters
type NodeInfoArguments struct {
}

// NodeInfoReply - daemon status
type NodeInfoReply struct {
	Version     string `json:"version"`
	Uptime      string `json:"uptime"`
	Connections uint64 `json:"connections"`
	LedgerTime  uint64 `json:"ledgerTime"`
}

// Info - version, uptime and the current ledger time
func (node *Node) Info(arguments *NodeInfoArguments, reply *NodeInfoReply) error {
	if err := rateLimit(node.limiter); nil != err {
		return err
	}

	reply.Version = node.version
	reply.Uptime = time.Since(node.start).String()
	reply.Connections = connectionCount.Uint64()
	reply.LedgerTime = ledger.Clock().Now()
	return nil
}
