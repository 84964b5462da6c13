// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"github.com/bitmark-inc/offerledger/chain"
	"github.com/bitmark-inc/offerledger/fault"
)

// limits for plain identifiers
const (
	minimumPlainLength = 3
	maximumPlainLength = 64
)

// Validator - turns caller supplied text into an Address
type Validator interface {
	Validate(string) (Address, error)
}

// NewValidator - the validator appropriate to a chain
func NewValidator(chainName string) (Validator, error) {
	switch chainName {
	case chain.Bitmark:
		return &base58Validator{test: false}, nil
	case chain.Testing:
		return &base58Validator{test: true}, nil
	case chain.Local:
		return &plainValidator{}, nil
	default:
		return nil, fault.ErrInvalidChain
	}
}

type base58Validator struct {
	test bool
}

func (v *base58Validator) Validate(s string) (Address, error) {
	account, err := FromBase58(s)
	if nil != err {
		return "", err
	}
	if account.Test != v.test {
		return "", fault.ErrWrongNetworkForAccount
	}
	return Address(s), nil
}

type plainValidator struct{}

func (v *plainValidator) Validate(s string) (Address, error) {
	if len(s) < minimumPlainLength || len(s) > maximumPlainLength {
		return "", fault.ErrInvalidAccount
	}
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case '_' == c || '-' == c:
		default:
			return "", fault.ErrInvalidAccount
		}
	}
	return Address(s), nil
}
