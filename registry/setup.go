// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Carbon Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - carbon credit issuance
//
// issuers register, the registry admin verifies them, and verified
// issuers mint credits.  one credit record per project id, append
// only.  every timestamp is read from the ledger clock, never from
// caller supplied data.
package registry

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/carbonledger/carbond/account"
	"github.com/carbonledger/carbond/chainclock"
	"github.com/carbonledger/carbond/creditrecord"
	"github.com/carbonledger/carbond/fault"
	"github.com/carbonledger/carbond/storage"
)

// configuration pool key
var registryConfigKey = []byte("registry")

// globals for this module
type registryData struct {
	sync.RWMutex

	log   *logger.L
	clock chainclock.Clock

	initialised bool
}

var globalData registryData

// Initialise - setup the registry
func Initialise(clock chainclock.Clock) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("registry")
	globalData.log.Info("starting…")

	globalData.clock = clock

	globalData.initialised = true
	return nil
}

// Finalise - shutdown the registry
func Finalise() error {
	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.initialised = false
	return nil
}

// CreateRegistry - one time deployment, records the admin account
func CreateRegistry(admin account.Account) error {
	globalData.Lock()
	defer globalData.Unlock()

	if storage.Pool.Configs.Has(registryConfigKey) {
		return fault.RegistryAlreadyCreated
	}

	config := creditrecord.RegistryConfig{
		Admin:       admin,
		TotalIssued: 0,
	}
	storage.Pool.Configs.Put(registryConfigKey, config.Pack())

	globalData.log.Infof("registry created: admin: %s", admin)
	return nil
}

// read the deployment record
func getConfig() (*creditrecord.RegistryConfig, error) {
	packed := storage.Pool.Configs.Get(registryConfigKey)
	if nil == packed {
		return nil, fault.RegistryNotCreated
	}
	return creditrecord.UnpackRegistryConfig(packed)
}
