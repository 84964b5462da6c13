// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/logger"
)

// Handle - read access to one pool, writes go through a Transaction
type Handle interface {
	Name() string
	Get([]byte) []byte
	Has([]byte) bool
	NewFetchCursor() *FetchCursor
	prefixKey([]byte) []byte
}

// PoolHandle - handle for a storage pool
type PoolHandle struct {
	name     string
	prefix   byte
	limit    []byte
	database *Database
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// Name - the field name from Pools
func (p *PoolHandle) Name() string {
	return p.name
}

// Prefix - the single byte prefix as a string tag
func (p *PoolHandle) Prefix() string {
	return string([]byte{p.prefix})
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Get - read a committed value for a given key
//
// returns nil if the key is not present
func (p *PoolHandle) Get(key []byte) []byte {
	p.database.RLock()
	defer p.database.RUnlock()
	if nil == p.database.db {
		return nil
	}
	value, err := p.database.db.Get(p.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("pool.Get", err)
	return value
}

// Has - check if a committed key exists
func (p *PoolHandle) Has(key []byte) bool {
	p.database.RLock()
	defer p.database.RUnlock()
	if nil == p.database.db {
		return false
	}
	value, err := p.database.db.Has(p.prefixKey(key), nil)
	logger.PanicIfError("pool.Has", err)
	return value
}

// Count - number of committed elements in the pool
func (p *PoolHandle) Count() (int, error) {
	n := 0
	err := p.NewFetchCursor().Map(func(key []byte, value []byte) error {
		n += 1
		return nil
	})
	return n, err
}

// the full key range of the pool
func (p *PoolHandle) fullRange() ldb_util.Range {
	return ldb_util.Range{
		Start: []byte{p.prefix}, // Start of key range, included in the range
		Limit: p.limit,          // Limit of key range, excluded from the range
	}
}
