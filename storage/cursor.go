// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/offerledger/fault"
)

// FetchCursor - cursor structure
//
// cursors only see committed data
type FetchCursor struct {
	pool     *PoolHandle
	maxRange ldb_util.Range
}

// NewFetchCursor - initialise a cursor to the start of a pool
func (p *PoolHandle) NewFetchCursor() *FetchCursor {
	return &FetchCursor{
		pool:     p,
		maxRange: p.fullRange(),
	}
}

// Prefix - restrict the cursor to keys beginning with prefix
func (cursor *FetchCursor) Prefix(prefix []byte) *FetchCursor {
	cursor.maxRange = *ldb_util.BytesPrefix(cursor.pool.prefixKey(prefix))
	return cursor
}

// Seek - move cursor to specific key position (inclusive)
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	cursor.maxRange.Start = cursor.pool.prefixKey(key)
	return cursor
}

// After - move cursor to just past a specific key
func (cursor *FetchCursor) After(key []byte) *FetchCursor {
	cursor.maxRange.Start = append(cursor.pool.prefixKey(key), 0x00)
	return cursor
}

// Fetch - return up to count elements and advance the cursor past them
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if nil == cursor {
		return nil, fault.ErrInvalidCursor
	}
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}

	results := make([]Element, 0, count)
	err := cursor.iterate(func(key []byte, value []byte) (bool, error) {
		results = append(results, Element{
			Key:   key,
			Value: value,
		})
		return len(results) < count, nil
	})

	if n := len(results); n > 0 {
		cursor.After(results[n-1].Key)
	}
	return results, err
}

// Map - run a function on all elements in the range
//
// iteration stops at the first error, which is returned
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) error) error {
	if nil == cursor {
		return fault.ErrInvalidCursor
	}
	return cursor.iterate(func(key []byte, value []byte) (bool, error) {
		err := f(key, value)
		return nil == err, err
	})
}

// call f with copies of prefix-stripped keys and values until it returns false
func (cursor *FetchCursor) iterate(f func(key []byte, value []byte) (bool, error)) error {
	database := cursor.pool.database
	database.RLock()
	defer database.RUnlock()

	if nil == database.db {
		return nil
	}

	iter := database.db.NewIterator(&cursor.maxRange, nil)

	var err error
iterating:
	for iter.Next() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])              // ...

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		more := false
		more, err = f(dataKey, dataValue)
		if !more {
			break iterating
		}
	}
	iter.Release()
	if nil == err {
		err = iter.Error()
	}
	return err
}
