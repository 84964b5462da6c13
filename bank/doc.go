// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bank - a queue of committed transfer intents
//
// the ledger never moves coins itself, it hands response.BankSend
// items to this queue after a successful commit and whatever holds the
// coins reads them from Chan
package bank
