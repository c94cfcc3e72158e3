// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Carbon Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chainclock - the trusted ledger timestamp
//
// Every time sensitive rule in the contracts compares against this
// clock, never against caller supplied data.  The value is frozen for
// the duration of one executed transaction group and can never move
// backwards, so all participants in a group observe exactly the same
// time.
package chainclock

import (
	"sync"
)

// Clock - read access to the ledger time
type Clock interface {
	Now() uint64
}

// Monotonic - a clock that only moves forward
//
// the zero value is ready to use and reads as time zero until the
// first Advance
type Monotonic struct {
	sync.RWMutex
	now uint64
}

// Now - the current frozen ledger time
func (m *Monotonic) Now() uint64 {
	m.RLock()
	defer m.RUnlock()
	return m.now
}

// Reset - return the clock to time zero
//
// only for process startup; the monotonic guarantee holds within one
// run of the executor
func (m *Monotonic) Reset() {
	m.Lock()
	defer m.Unlock()
	m.now = 0
}

// Advance - move the clock to timestamp, unless that would move it
// backwards; returns the value the clock settled on
func (m *Monotonic) Advance(timestamp uint64) uint64 {
	m.Lock()
	defer m.Unlock()
	if timestamp > m.now {
		m.now = timestamp
	}
	return m.now
}
