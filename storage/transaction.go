// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/offerledger/fault"
)

// Transaction - the store context of one operation
//
// writes are staged until Commit, reads see the staged writes; after
// Commit or Abort the transaction must not be used again
type Transaction interface {
	Put(Handle, []byte, []byte)
	Delete(Handle, []byte)
	Get(Handle, []byte) []byte
	Has(Handle, []byte) bool
	Len() int
	Commit() error
	Abort()
}

type transaction struct {
	sync.Mutex
	database *Database
	batch    *leveldb.Batch
	cache    Cache
	closed   bool
}

func newTransaction(database *Database, cache Cache) *transaction {
	return &transaction{
		database: database,
		batch:    new(leveldb.Batch),
		cache:    cache,
	}
}

// Put - stage a key/value bytes pair
func (t *transaction) Put(handle Handle, key []byte, value []byte) {
	t.Lock()
	defer t.Unlock()

	k := handle.prefixKey(key)
	t.cache.Set(dbPut, string(k), value)
	t.batch.Put(k, value)
}

// Delete - stage removal of a key
func (t *transaction) Delete(handle Handle, key []byte) {
	t.Lock()
	defer t.Unlock()

	k := handle.prefixKey(key)
	t.cache.Set(dbDelete, string(k), nil)
	t.batch.Delete(k)
}

// Get - staged value if any, else the committed value, nil if absent
func (t *transaction) Get(handle Handle, key []byte) []byte {
	t.Lock()
	value, staged := t.cache.Get(string(handle.prefixKey(key)))
	t.Unlock()

	if staged {
		return value
	}
	return handle.Get(key)
}

// Has - check if a key exists taking staged writes into account
func (t *transaction) Has(handle Handle, key []byte) bool {
	t.Lock()
	value, staged := t.cache.Get(string(handle.prefixKey(key)))
	t.Unlock()

	if staged {
		return nil != value
	}
	return handle.Has(key)
}

// Len - number of staged writes
func (t *transaction) Len() int {
	t.Lock()
	defer t.Unlock()
	return t.batch.Len()
}

// Commit - write all staged data in one batch
func (t *transaction) Commit() error {
	t.Lock()
	defer t.Unlock()

	if t.closed {
		return fault.ErrTransactionClosed
	}

	err := t.database.write(t.batch)
	t.close()
	return err
}

// Abort - discard all staged data
func (t *transaction) Abort() {
	t.Lock()
	defer t.Unlock()

	if t.closed {
		return
	}
	t.close()
}

// must hold lock
func (t *transaction) close() {
	t.batch.Reset()
	t.cache.Clear()
	t.closed = true
	t.database.release()
}
