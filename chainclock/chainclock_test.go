// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Carbon Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainclock_test

import (
	"testing"

	"github.com/carbonledger/carbond/chainclock"
)

// the clock must never move backwards no matter what timestamps are offered
func TestMonotonic(t *testing.T) {

	clk := &chainclock.Monotonic{}

	if 0 != clk.Now() {
		t.Errorf("zero value clock reads: %d", clk.Now())
	}

	steps := []struct {
		advance  uint64
		expected uint64
	}{
		{1000, 1000},
		{1500, 1500},
		{1200, 1500}, // attempt to move backwards
		{1500, 1500}, // equal timestamp keeps value
		{9000, 9000},
		{0, 9000},
	}

	for i, step := range steps {
		settled := clk.Advance(step.advance)
		if settled != step.expected {
			t.Errorf("%d: Advance(%d) settled on: %d  expected: %d", i, step.advance, settled, step.expected)
		}
		if clk.Now() != step.expected {
			t.Errorf("%d: Now() = %d  expected: %d", i, clk.Now(), step.expected)
		}
	}

	clk.Reset()
	if 0 != clk.Now() {
		t.Errorf("reset clock reads: %d", clk.Now())
	}
}
