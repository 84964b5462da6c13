// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coin

import (
	"strings"

	"github.com/bitmark-inc/offerledger/fault"
)

// Coin - an amount of a single denomination
type Coin struct {
	Denom  string  `json:"denom"`
	Amount Uint128 `json:"amount"`
}

// New - create a coin
func New(amount uint64, denom string) Coin {
	return Coin{
		Denom:  denom,
		Amount: NewUint128(amount),
	}
}

// String - amount immediately followed by denomination e.g. "100utest"
func (c Coin) String() string {
	return c.Amount.String() + c.Denom
}

// Validate - a coin needs a denomination and a non-zero amount
func (c Coin) Validate() error {
	if err := ValidateDenom(c.Denom); nil != err {
		return err
	}
	if c.Amount.IsZero() {
		return fault.ErrZeroAmount
	}
	return nil
}

// ValidateDenom - denominations start with a letter, then letters,
// digits or one of "/:._-", at most 128 characters
func ValidateDenom(denom string) error {
	n := len(denom)
	if n < 1 || n > 128 {
		return fault.ErrInvalidDenomination
	}
	for i, c := range denom {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case i > 0 && c >= '0' && c <= '9':
		case i > 0 && strings.ContainsRune("/:._-", c):
		default:
			return fault.ErrInvalidDenomination
		}
	}
	return nil
}

// Parse - convert "100utest" into a coin
func Parse(s string) (Coin, error) {
	s = strings.TrimSpace(s)
	split := 0
	for split < len(s) && s[split] >= '0' && s[split] <= '9' {
		split += 1
	}
	if 0 == split || split == len(s) {
		return Coin{}, fault.ErrInvalidCoin
	}
	amount, err := ParseUint128(s[:split])
	if nil != err {
		return Coin{}, err
	}
	c := Coin{
		Denom:  s[split:],
		Amount: amount,
	}
	if err := ValidateDenom(c.Denom); nil != err {
		return Coin{}, err
	}
	return c, nil
}

// ParseList - convert a comma separated list e.g. "10uatom,5ustake"
func ParseList(s string) ([]Coin, error) {
	if "" == strings.TrimSpace(s) {
		return nil, nil
	}
	items := strings.Split(s, ",")
	coins := make([]Coin, 0, len(items))
	for _, item := range items {
		c, err := Parse(item)
		if nil != err {
			return nil, err
		}
		coins = append(coins, c)
	}
	return coins, nil
}
