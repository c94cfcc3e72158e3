// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Carbon Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	netrpc "net/rpc"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
)

// rate limits per connection
const (
	defaultRateLimit = 200
	defaultBurst     = 100
)

// create the service instances and register them
func createServer(log *logger.L, version string, start time.Time) *netrpc.Server {

	server := netrpc.NewServer()

	_ = server.Register(&Credit{
		log:     log,
		limiter: rate.NewLimiter(rate.Limit(defaultRateLimit), defaultBurst),
	})
	_ = server.Register(&Market{
		log:     log,
		limiter: rate.NewLimiter(rate.Limit(defaultRateLimit), defaultBurst),
	})
	_ = server.Register(&Node{
		log:     log,
		limiter: rate.NewLimiter(rate.Limit(defaultRateLimit), defaultBurst),
		start:   start,
		version: version,
	})
	_ = server.Register(&Group{
		log:     log,
		limiter: rate.NewLimiter(rate.Limit(defaultRateLimit), defaultBurst),
	})

	return server
}
