// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bank_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/offerledger/bank"
	"github.com/bitmark-inc/offerledger/coin"
	"github.com/bitmark-inc/offerledger/response"
)

func TestQueueOrder(t *testing.T) {
	q := bank.NewQueue(10)

	items := []response.BankSend{
		{ToAddress: "a1", Amount: []coin.Coin{coin.New(1, "utest")}},
		{ToAddress: "a2", Amount: []coin.Coin{coin.New(2, "utest")}},
		{ToAddress: "a3", Amount: []coin.Coin{coin.New(3, "utest")}},
	}

	for _, item := range items {
		q.Dispatch(item)
	}

	queue := q.Chan()
	for _, item := range items {
		received := <-queue
		assert.Equal(t, item, received, "wrong order")
	}
	assert.Equal(t, uint64(3), q.Sent(), "sent count")
}

func TestQueueDrain(t *testing.T) {
	q := bank.NewQueue(0)

	assert.Equal(t, 0, len(q.Drain()), "empty queue")

	q.Dispatch(response.BankSend{ToAddress: "a1"})
	q.Dispatch(response.BankSend{ToAddress: "a2"})

	drained := q.Drain()
	if assert.Equal(t, 2, len(drained), "drained count") {
		assert.Equal(t, "a1", drained[0].ToAddress.String(), "first")
		assert.Equal(t, "a2", drained[1].ToAddress.String(), "second")
	}
	assert.Equal(t, 0, len(q.Drain()), "drained twice")
}

func TestQueueConsumer(t *testing.T) {
	const total = 50
	q := bank.NewQueue(1)

	var wg sync.WaitGroup
	wg.Add(1)
	received := 0
	go func() {
		defer wg.Done()
		for range q.Chan() {
			received += 1
			if total == received {
				return
			}
		}
	}()

	for i := 0; i < total; i += 1 {
		q.Dispatch(response.BankSend{ToAddress: "a1"})
	}
	wg.Wait()
	assert.Equal(t, total, received, "received count")
}
