// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coin

import (
	"encoding/json"
	"strings"

	"github.com/holiman/uint256"

	"github.com/bitmark-inc/offerledger/fault"
)

const bitSize = 128

// Uint128 - an unsigned 128 bit amount
type Uint128 struct {
	v uint256.Int
}

// Zero - the zero amount
var Zero = Uint128{}

// Max - largest representable amount
var Max = func() Uint128 {
	m := Uint128{}
	m.v.Lsh(uint256.NewInt(1), bitSize)
	m.v.SubUint64(&m.v, 1)
	return m
}()

// NewUint128 - amount from a uint64
func NewUint128(n uint64) Uint128 {
	u := Uint128{}
	u.v.SetUint64(n)
	return u
}

// ParseUint128 - amount from a decimal string
func ParseUint128(s string) (Uint128, error) {
	u := Uint128{}
	if "" == s || strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return u, fault.ErrInvalidAmount
	}
	v, err := uint256.FromDecimal(s)
	if nil != err {
		return u, fault.ErrInvalidAmount
	}
	if v.BitLen() > bitSize {
		return u, fault.ErrOverflow
	}
	u.v = *v
	return u, nil
}

// CheckedAdd - return a + b or ErrOverflow
func (a Uint128) CheckedAdd(b Uint128) (Uint128, error) {
	r := Uint128{}
	r.v.Add(&a.v, &b.v)
	if r.v.BitLen() > bitSize {
		return Zero, fault.ErrOverflow
	}
	return r, nil
}

// CheckedSub - return a - b or ErrInsufficientFunds
func (a Uint128) CheckedSub(b Uint128) (Uint128, error) {
	r := Uint128{}
	if _, underflow := r.v.SubOverflow(&a.v, &b.v); underflow {
		return Zero, fault.ErrInsufficientFunds
	}
	return r, nil
}

// IsZero - true if the amount is zero
func (a Uint128) IsZero() bool {
	return a.v.IsZero()
}

// Cmp - compare: -1 if a < b, 0 if equal, +1 if a > b
func (a Uint128) Cmp(b Uint128) int {
	return a.v.Cmp(&b.v)
}

// Equal - true if a == b
func (a Uint128) Equal(b Uint128) bool {
	return a.v.Eq(&b.v)
}

// String - decimal representation
func (a Uint128) String() string {
	return a.v.Dec()
}

// MarshalJSON - quoted decimal string
func (a Uint128) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON - accept a quoted decimal string or a bare integer
func (a *Uint128) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(b) > 0 && '"' == b[0] {
		if err := json.Unmarshal(b, &s); nil != err {
			return fault.ErrInvalidAmount
		}
	}
	u, err := ParseUint128(s)
	if nil != err {
		return err
	}
	*a = u
	return nil
}

// MarshalText - for use as a flag or map key
func (a Uint128) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - inverse of MarshalText
func (a *Uint128) UnmarshalText(s []byte) error {
	u, err := ParseUint128(string(s))
	if nil != err {
		return err
	}
	*a = u
	return nil
}
