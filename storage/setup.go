// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Carbon Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"

	"github.com/carbonledger/carbond/fault"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Credits    *PoolHandle `prefix:"C"`
	Issuers    *PoolHandle `prefix:"I"`
	Businesses *PoolHandle `prefix:"B"`
	Listings   *PoolHandle `prefix:"L"`
	Configs    *PoolHandle `prefix:"G"`
	Holdings   *PoolHandle `prefix:"H"`
	Balances   *PoolHandle `prefix:"M"`
	TestData   *PoolHandle `prefix:"Z"`
}

// Pool - the set of exported pools
var Pool pools

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x100
)

// holds the database handle and the in-flight transaction data
var poolData struct {
	sync.RWMutex
	log   *logger.L
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
	inUse bool
}

// Initialise - open up the database connection
//
// this must be called before any pool is accessed
func Initialise(database string) error {
	poolData.Lock()
	defer poolData.Unlock()

	if nil != poolData.db {
		return fault.AlreadyInitialised
	}

	poolData.log = logger.New("storage")
	poolData.log.Info("starting…")

	db, err := leveldb.OpenFile(database, nil)
	if nil != err {
		return err
	}

	// ensure the database is the expected version
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		// new database: stamp the current version
		buffer := make([]byte, 8)
		binary.BigEndian.PutUint64(buffer, currentDBVersion)
		err = db.Put(versionKey, buffer, nil)
		if nil != err {
			db.Close()
			return err
		}
	} else if nil != err {
		db.Close()
		return err
	} else {
		version := binary.BigEndian.Uint64(versionValue)
		if currentDBVersion != version {
			db.Close()
			return fmt.Errorf("database version: %d  expected: %d", version, currentDBVersion)
		}
	}

	poolData.db = db
	poolData.cache = newCache()

	// this will be a struct type
	poolType := reflect.TypeOf(Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&Pool).Elem()

	// scan each field to locate its prefix tag
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)
		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			poolData.db = nil
			db.Close()
			return fmt.Errorf("pool: %v  has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix: prefix,
			limit:  limit,
		}
		newPool := reflect.ValueOf(p)
		poolValue.Field(i).Set(newPool)
	}

	return nil
}

// Finalise - close the database connection
func Finalise() {
	poolData.Lock()
	defer poolData.Unlock()

	if nil == poolData.db {
		return
	}

	poolData.log.Info("shutting down…")
	poolData.db.Close()
	poolData.db = nil
	poolData.batch = nil
	poolData.cache = nil
	poolData.inUse = false

	// reset pools to detect use-after-finalise
	Pool = pools{}
}
