// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/offerledger/fault"
)

// Pools - the set of exported pools
//
// note all must be exported (i.e. initial capital) or initialisation will fail
type Pools struct {
	Deposits    *PoolHandle `prefix:"D"`
	BidsByOwner *PoolHandle `prefix:"B"`
	BidsByToken *PoolHandle `prefix:"b"`
	AsksByOwner *PoolHandle `prefix:"S"`
	AsksByToken *PoolHandle `prefix:"s"`
	Config      *PoolHandle `prefix:"C"`
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const currentDBVersion = 0x100

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Database - an open store and its pools
type Database struct {
	sync.RWMutex // protects db against Close
	db           *leveldb.DB
	readOnly     bool

	trxLock sync.Mutex
	inUse   bool

	Pool Pools
}

// Open - open (or create) a database directory
func Open(name string, readOnly bool) (*Database, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, err
	}
	return initialise(db, readOnly)
}

// OpenMemory - a database that only lives as long as the process
func OpenMemory() (*Database, error) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		return nil, err
	}
	return initialise(db, ReadWrite)
}

func initialise(db *leveldb.DB, readOnly bool) (*Database, error) {
	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	version, err := getVersion(db)
	if nil != err {
		return nil, err
	}

	switch {
	case 0 == version && !readOnly:
		// empty database so tag as current version
		err = putVersion(db, currentDBVersion)
		if nil != err {
			return nil, err
		}
	case 0 == version && readOnly:
		// nothing was ever written
	case currentDBVersion != version:
		return nil, fault.ErrIncompatibleDatabase
	}

	d := &Database{
		db:       db,
		readOnly: readOnly,
	}

	err = d.setupPools()
	if nil != err {
		return nil, err
	}

	ok = true // prevent db close
	return d, nil
}

// scan each field of Pools creating a handle from its prefix tag
func (d *Database) setupPools() error {
	poolType := reflect.TypeOf(d.Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&d.Pool).Elem()

	for i := 0; i < poolType.NumField(); i += 1 {
		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) || 0 == prefixTag[0] {
			return fault.ErrInvalidPoolPrefix
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			name:     fieldInfo.Name,
			prefix:   prefix,
			limit:    limit,
			database: d,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}
	return nil
}

// Close - close the database connection
func (d *Database) Close() error {
	d.Lock()
	defer d.Unlock()

	if nil == d.db {
		return nil
	}
	err := d.db.Close()
	d.db = nil
	return err
}

// PoolByTag - locate a pool from its prefix tag
func (d *Database) PoolByTag(tag string) (*PoolHandle, bool) {
	for _, p := range d.AllPools() {
		if tag == string([]byte{p.prefix}) {
			return p, true
		}
	}
	return nil, false
}

// AllPools - every pool in declaration order
func (d *Database) AllPools() []*PoolHandle {
	poolValue := reflect.ValueOf(d.Pool)
	pools := make([]*PoolHandle, 0, poolValue.NumField())
	for i := 0; i < poolValue.NumField(); i += 1 {
		pools = append(pools, poolValue.Field(i).Interface().(*PoolHandle))
	}
	return pools
}

// Begin - start the single transaction allowed on a database
func (d *Database) Begin() (Transaction, error) {
	if d.readOnly {
		return nil, fault.ErrReadOnlyDatabase
	}

	d.trxLock.Lock()
	defer d.trxLock.Unlock()

	if d.inUse {
		return nil, fault.ErrTransactionInUse
	}
	d.inUse = true

	return newTransaction(d, newCache()), nil
}

// called by Commit and Abort
func (d *Database) release() {
	d.trxLock.Lock()
	d.inUse = false
	d.trxLock.Unlock()
}

// write a batch under the read lock (Close takes the write lock)
func (d *Database) write(batch *leveldb.Batch) error {
	d.RLock()
	defer d.RUnlock()
	if nil == d.db {
		return leveldb.ErrClosed
	}
	return d.db.Write(batch, nil)
}

// return:
//   version number, 0 if never set
func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
