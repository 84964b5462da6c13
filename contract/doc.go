// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package contract - entry points for instantiate, execute and query
//
// every execute runs one ledger, offer or admin operation inside its
// own storage transaction; the transaction is committed only when the
// operation succeeds and transfers are dispatched only after that
// commit
//
// messages are JSON objects with exactly one snake_case key naming the
// command, e.g.
//
//   {"withdraw": {"amount": "100", "denom": "utest"}}
//   {"address_offers": {"address": "sender_address", "bid": true}}
package contract
