// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// All writes go through a Transaction: they are staged in a batch and
// only reach the database on Commit, so an aborted operation leaves no
// trace.  Reads inside a transaction see the staged writes.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ⧺              = concatenation of byte data
// 3. pair key      = length(first) as big endian uint16 ⧺ first ⧺ second
// 4. owner         = validated account identifier
// 5. denom         = coin denomination
// 6. token id      = identifier of a traded item
// 7. values        = JSON encoded records
//
// Ledger:
//
//   D ++ owner ⧺ denom         - balance for one denomination
//                                data: {count, owner, coins}
//
// Offers:
//
//   B ++ owner ⧺ token id      - bids by owner
//   b ++ token id ⧺ owner      - bids by token (mirror of B)
//   S ++ owner ⧺ token id      - asks by owner
//   s ++ token id ⧺ owner      - asks by token (mirror of S)
//                                data: {token_id, amount}
//
// Configuration:
//
//   C ++ "config"              - administrator
//                                data: {owner}
//
// Version:
//
//   0x00 ++ "VERSION"          - database layout version (big endian uint32)
package storage
