// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package offer

import (
	"github.com/bitmark-inc/offerledger/account"
	"github.com/bitmark-inc/offerledger/coin"
	"github.com/bitmark-inc/offerledger/fault"
)

// Side - which side of the book an offer is on
type Side int

// the sides
const (
	Bid Side = iota
	Ask
)

const maxTokenIDLength = 256

// Offer - the stored record, identical under both keys
type Offer struct {
	TokenID string    `json:"token_id"`
	Amount  coin.Coin `json:"amount"`
}

// Listing - an offer together with its owner, as returned by queries
type Listing struct {
	Owner   account.Address `json:"owner"`
	TokenID string          `json:"token_id"`
	Amount  coin.Coin       `json:"amount"`
}

// SideOf - Bid when true, otherwise Ask
func SideOf(bid bool) Side {
	if bid {
		return Bid
	}
	return Ask
}

// String - "bid" or "ask"
func (s Side) String() string {
	switch s {
	case Bid:
		return "bid"
	case Ask:
		return "ask"
	default:
		return "unknown"
	}
}

// ValidateTokenID - token ids are opaque but must be present
func ValidateTokenID(tokenID string) error {
	if "" == tokenID || len(tokenID) > maxTokenIDLength {
		return fault.ErrInvalidTokenId
	}
	return nil
}
