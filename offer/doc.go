// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package offer - bids and asks on tokens
//
// every offer is stored twice per side:
//
//   by owner:  PairKey(owner, token_id)  →  Offer
//   by token:  PairKey(token_id, owner)  →  Offer
//
// both entries are always staged in the same transaction so the two
// indexes cannot disagree after a commit
//
// offers are only recorded and withdrawn here, nothing matches a bid
// against an ask
package offer
