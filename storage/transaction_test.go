// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/offerledger/fault"
	"github.com/bitmark-inc/offerledger/storage/mocks"
)

func TestTransactionReadsOwnWrites(t *testing.T) {
	db := setupTestDatabase(t)
	defer db.Close()

	pool := db.Pool.Deposits
	key := []byte("key")

	trx, _ := db.Begin()
	trx.Put(pool, key, []byte("one"))

	assert.True(t, trx.Has(pool, key), "staged key missing")
	assert.Equal(t, []byte("one"), trx.Get(pool, key), "staged value")
	assert.Nil(t, pool.Get(key), "staged value visible outside transaction")

	assert.Nil(t, trx.Commit(), "commit")
	assert.Equal(t, []byte("one"), pool.Get(key), "committed value")
}

func TestTransactionDeleteHidesCommitted(t *testing.T) {
	db := setupTestDatabase(t)
	defer db.Close()

	pool := db.Pool.BidsByOwner
	key := []byte("key")

	trx, _ := db.Begin()
	trx.Put(pool, key, []byte("value"))
	trx.Commit()

	trx, _ = db.Begin()
	trx.Delete(pool, key)
	assert.False(t, trx.Has(pool, key), "deleted key still present")
	assert.Nil(t, trx.Get(pool, key), "deleted key still has value")
	assert.True(t, pool.Has(key), "delete visible before commit")

	trx.Commit()
	assert.False(t, pool.Has(key), "delete not committed")
}

func TestTransactionEmptyValue(t *testing.T) {
	db := setupTestDatabase(t)
	defer db.Close()

	pool := db.Pool.AsksByToken
	key := []byte("marker")

	trx, _ := db.Begin()
	trx.Put(pool, key, nil)
	assert.True(t, trx.Has(pool, key), "empty staged value must exist")
	trx.Commit()

	assert.True(t, pool.Has(key), "empty committed value must exist")
}

func TestTransactionAbortDiscards(t *testing.T) {
	db := setupTestDatabase(t)
	defer db.Close()

	pool := db.Pool.Config
	key := []byte("config")

	trx, _ := db.Begin()
	trx.Put(pool, key, []byte("value"))
	assert.Equal(t, 1, trx.Len(), "staged count")
	trx.Abort()

	assert.False(t, pool.Has(key), "aborted write committed")
	assert.Equal(t, fault.ErrTransactionClosed, trx.Commit(), "commit after abort")
}

func TestTransactionCommitTwice(t *testing.T) {
	db := setupTestDatabase(t)
	defer db.Close()

	trx, _ := db.Begin()
	assert.Nil(t, trx.Commit(), "first commit")
	assert.Equal(t, fault.ErrTransactionClosed, trx.Commit(), "second commit")
}

func TestTransactionPoolsAreSeparate(t *testing.T) {
	db := setupTestDatabase(t)
	defer db.Close()

	key := []byte("same")

	trx, _ := db.Begin()
	trx.Put(db.Pool.BidsByOwner, key, []byte("bid"))
	trx.Put(db.Pool.AsksByOwner, key, []byte("ask"))
	trx.Commit()

	assert.Equal(t, []byte("bid"), db.Pool.BidsByOwner.Get(key), "bid pool")
	assert.Equal(t, []byte("ask"), db.Pool.AsksByOwner.Get(key), "ask pool")
}

func TestTransactionUsesCache(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	db := setupTestDatabase(t)
	defer db.Close()

	cache := mocks.NewMockCache(ctl)
	db.inUse = true
	trx := newTransaction(db, cache)

	pool := db.Pool.Deposits
	key := []byte("key")
	prefixed := string(pool.prefixKey(key))

	gomock.InOrder(
		cache.EXPECT().Set(dbPut, prefixed, []byte("v")).Times(1),
		cache.EXPECT().Get(prefixed).Return([]byte("v"), true).Times(1),
		cache.EXPECT().Set(dbDelete, prefixed, nil).Times(1),
		cache.EXPECT().Get(prefixed).Return(nil, true).Times(1),
		cache.EXPECT().Clear().Times(1),
	)

	trx.Put(pool, key, []byte("v"))
	assert.Equal(t, []byte("v"), trx.Get(pool, key), "cached value")
	trx.Delete(pool, key)
	assert.False(t, trx.Has(pool, key), "cached delete")
	trx.Abort()

	assert.False(t, db.inUse, "transaction not released")
}
