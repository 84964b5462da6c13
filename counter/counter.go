// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - counters safe for concurrent use
package counter

import (
	"sync/atomic"
)

// Counter - an unsigned 64 bit count
type Counter uint64

// Increment - add 1, returns new value
func (c *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(c), 1)
}

// Uint64 - current value
func (c *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(c))
}

// IsZero - check if nothing was counted
func (c *Counter) IsZero() bool {
	return 0 == c.Uint64()
}

// Outcome - successes and failures of some repeated action
type Outcome struct {
	Succeeded Counter
	Failed    Counter
}

// Record - count one action as success when err is nil
func (o *Outcome) Record(err error) {
	if nil == err {
		o.Succeeded.Increment()
	} else {
		o.Failed.Increment()
	}
}

// Total - every recorded action
func (o *Outcome) Total() uint64 {
	return o.Succeeded.Uint64() + o.Failed.Uint64()
}
