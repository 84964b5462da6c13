// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - validated account identifiers
//
// On the bitmark and testing chains an account is the Base58
// encoding of:
//
//   key variant ⧺ public key ⧺ checksum
//
// where key variant is a varint whose low bits flag a public key (0x01)
// and a test network key (0x02), the algorithm is in the bits from bit
// 4 upwards, and checksum is the first 4 bytes of SHA3-256 of the
// preceding bytes.
//
// On the local chain any plain identifier of 3 to 64 characters drawn
// from [a-z0-9_-] is accepted, which allows simple names like
// "sender_address" during development.
package account
