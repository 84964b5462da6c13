// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package coin - denominated amounts
//
// Amounts are unsigned 128 bit integers.  Addition and subtraction
// are checked: overflow beyond 2^128-1 and underflow below zero are
// returned as errors, never wrapped or clamped.
//
// In JSON an amount is a quoted decimal string so that values above
// 2^53 survive round trips through other languages.
package coin
