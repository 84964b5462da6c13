// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - per account, per denomination balances
//
// a balance is keyed by storage.PairKey(owner, denom) and is created
// by the first deposit; it is never removed, a zero balance stays as a
// record
//
// Count is the number of deposits minus the number of withdrawals, it
// says nothing about whether the balance is valid
package ledger
