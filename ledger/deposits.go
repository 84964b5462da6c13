// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/json"
	"math"

	"github.com/bitmark-inc/offerledger/account"
	"github.com/bitmark-inc/offerledger/coin"
	"github.com/bitmark-inc/offerledger/fault"
)

// Deposits - the balance record of one owner in one denomination
type Deposits struct {
	Count int32           `json:"count"`
	Owner account.Address `json:"owner"`
	Coins coin.Coin       `json:"coins"`
}

// Entry - a balance with its denomination, as listed for an owner
//
// JSON form is the pair [denom, deposits]
type Entry struct {
	Denom    string
	Deposits Deposits
}

// credit a coin and record one more deposit
func (d *Deposits) add(amount coin.Uint128) error {
	total, err := d.Coins.Amount.CheckedAdd(amount)
	if nil != err {
		return err
	}
	if math.MaxInt32 == d.Count {
		return fault.ErrCountOverflow
	}
	d.Coins.Amount = total
	d.Count += 1
	return nil
}

// debit a coin and record one less deposit
func (d *Deposits) sub(amount coin.Uint128) error {
	remaining, err := d.Coins.Amount.CheckedSub(amount)
	if nil != err {
		return err
	}
	if d.Count <= 0 {
		return fault.ErrCountUnderflow
	}
	d.Coins.Amount = remaining
	d.Count -= 1
	return nil
}

// MarshalJSON - output as [denom, deposits]
func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{e.Denom, e.Deposits})
}

// UnmarshalJSON - read a [denom, deposits] pair
func (e *Entry) UnmarshalJSON(b []byte) error {
	var pair []json.RawMessage
	err := json.Unmarshal(b, &pair)
	if nil != err {
		return err
	}
	if 2 != len(pair) {
		return fault.ErrCorruptRecord
	}
	err = json.Unmarshal(pair[0], &e.Denom)
	if nil != err {
		return err
	}
	return json.Unmarshal(pair[1], &e.Deposits)
}
