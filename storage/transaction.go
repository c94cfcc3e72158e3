// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Carbon Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/carbonledger/carbond/fault"
)

// a transaction stages every pool write in a single batch so that the
// whole set of effects commits or aborts as one unit; this is the
// persistence half of the all-or-nothing transaction group

// Begin - start staging pool writes
//
// only one transaction can be open at a time; the group executor
// serialises callers
func Begin() error {
	poolData.Lock()
	defer poolData.Unlock()

	if nil == poolData.db {
		return fault.NotInitialised
	}
	if poolData.inUse {
		return fault.TransactionInUse
	}

	poolData.batch = new(leveldb.Batch)
	poolData.cache.Clear()
	poolData.inUse = true
	return nil
}

// Commit - write all staged changes to the database
func Commit() error {
	poolData.Lock()
	defer poolData.Unlock()

	if !poolData.inUse {
		return fault.NotInitialised
	}

	err := poolData.db.Write(poolData.batch, nil)
	poolData.batch = nil
	poolData.cache.Clear()
	poolData.inUse = false
	return err
}

// Abort - discard all staged changes
func Abort() {
	poolData.Lock()
	defer poolData.Unlock()

	if !poolData.inUse {
		return
	}

	poolData.log.Debug("transaction aborted")
	poolData.batch = nil
	poolData.cache.Clear()
	poolData.inUse = false
}

// InUse - check if a transaction is currently open
func InUse() bool {
	poolData.RLock()
	defer poolData.RUnlock()
	return poolData.inUse
}
