// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bank

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/offerledger/counter"
	"github.com/bitmark-inc/offerledger/response"
)

// DefaultQueueSize - used when a size of zero is requested
const DefaultQueueSize = 1000

// Queue - bounded queue of transfers
type Queue struct {
	log   *logger.L
	queue chan response.BankSend
	sent  counter.Counter
}

// NewQueue - create a queue holding up to size transfers
func NewQueue(size int) *Queue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &Queue{
		log:   logger.New("bank"),
		queue: make(chan response.BankSend, size),
	}
}

// Dispatch - queue a transfer, blocks while the queue is full
func (q *Queue) Dispatch(item response.BankSend) {
	n := q.sent.Increment()
	q.log.Infof("transfer[%d]: to: %s  amount: %v", n, item.ToAddress, item.Amount)
	q.queue <- item
}

// Chan - channel to read from
func (q *Queue) Chan() <-chan response.BankSend {
	return q.queue
}

// Drain - everything currently queued, without waiting
func (q *Queue) Drain() []response.BankSend {
	items := make([]response.BankSend, 0, len(q.queue))
	for {
		select {
		case item := <-q.queue:
			items = append(items, item)
		default:
			return items
		}
	}
}

// Sent - total transfers dispatched
func (q *Queue) Sent() uint64 {
	return q.sent.Uint64()
}
