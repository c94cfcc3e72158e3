// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Carbon Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key→value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ⧺             = concatenation of byte data
// 3. asset id      = big endian uint64 (8 bytes)
// 4. account       = ledger account (32 byte public key)
// 5. timestamps    = unix seconds as big endian uint64 (8 bytes)
// 6. strings       = 2 byte big endian length ⧺ utf-8 bytes
//
// Credits:
//
//   C ⧺ project id         - minted carbon credit record (40 bytes)
//                            data: asset id ⧺ co2 tonnes ⧺ vintage year ⧺ mint time ⧺ expiry time
//
// Registrations:
//
//   I ⧺ account            - issuer registration
//                            data: verified ⧺ credits issued ⧺ name ⧺ country ⧺ standard
//   B ⧺ account            - business registration
//                            data: status ⧺ credits bought ⧺ credits retired ⧺ name ⧺ country
//
// Marketplace:
//
//   L ⧺ asset id           - listing, current layout (96 bytes)
//                            data: asset id ⧺ seller ⧺ price ⧺ co2 ⧺ vintage ⧺ min qty ⧺ listed at ⧺ expiry ⧺ active
//                          - legacy layout (128 bytes) is decoded but never written
//                            data: asset id ⧺ seller ⧺ price ⧺ co2 ⧺ vintage ⧺ min qty ⧺ listed at ⧺ active ⧺ ipfs hash
//
// Contract configuration:
//
//   G ⧺ name               - deployment singletons and allocators
//                            "registry":    admin ⧺ total credits issued
//                            "marketplace": admin ⧺ fee bps ⧺ total volume ⧺ total trades
//                            "assets":      next asset id
//
// Escrow:
//
//   H ⧺ asset id           - current holder of an indivisible asset unit
//                            data: account ⧺ asset name ⧺ asset url
//   M ⧺ account            - currency balance
//                            data: amount
//
// Testing:
//
//   Z ⧺ key                - testing data
package storage
