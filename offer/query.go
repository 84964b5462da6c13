// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package offer

import (
	"github.com/bitmark-inc/offerledger/account"
	"github.com/bitmark-inc/offerledger/storage"
)

// page sizes
const (
	DefaultLimit = 10
	MaximumLimit = 30
)

// ForAddress - call f for each committed offer of an owner in token order
//
// enumeration stops at the first error from f
func (r *Registry) ForAddress(side Side, owner account.Address, f func(Listing) error) error {
	cursor := r.byOwner[side].NewFetchCursor().Prefix(storage.PairPrefix(owner.String()))
	return cursor.Map(func(key []byte, value []byte) error {
		l, err := listingByOwner(key, value)
		if nil != err {
			return err
		}
		return f(l)
	})
}

// ForToken - call f for each committed offer on a token in owner order
func (r *Registry) ForToken(side Side, tokenID string, f func(Listing) error) error {
	cursor := r.byToken[side].NewFetchCursor().Prefix(storage.PairPrefix(tokenID))
	return cursor.Map(func(key []byte, value []byte) error {
		l, err := listingByToken(key, value)
		if nil != err {
			return err
		}
		return f(l)
	})
}

// AddressOffers - one page of an owner's offers, starting after a token id
func (r *Registry) AddressOffers(side Side, owner account.Address, startAfter *string, limit *uint32) ([]Listing, error) {
	return page(r.byOwner[side], owner.String(), startAfter, limit, listingByOwner)
}

// TokenOffers - one page of the offers on a token, starting after an owner
func (r *Registry) TokenOffers(side Side, tokenID string, startAfter *string, limit *uint32) ([]Listing, error) {
	return page(r.byToken[side], tokenID, startAfter, limit, listingByToken)
}

func page(pool storage.Handle, first string, startAfter *string, limit *uint32, decode func([]byte, []byte) (Listing, error)) ([]Listing, error) {
	n := DefaultLimit
	if nil != limit {
		n = int(*limit)
		if n > MaximumLimit {
			n = MaximumLimit
		}
	}
	listings := make([]Listing, 0, n)
	if 0 == n {
		return listings, nil
	}

	cursor := pool.NewFetchCursor().Prefix(storage.PairPrefix(first))
	if nil != startAfter {
		cursor.After(storage.PairKey(first, *startAfter))
	}

	elements, err := cursor.Fetch(n)
	if nil != err {
		return nil, err
	}
	for _, e := range elements {
		l, err := decode(e.Key, e.Value)
		if nil != err {
			return nil, err
		}
		listings = append(listings, l)
	}
	return listings, nil
}

func listingByOwner(key []byte, value []byte) (Listing, error) {
	owner, _, err := storage.SplitPairKey(key)
	if nil != err {
		return Listing{}, err
	}
	return listing(owner, value)
}

func listingByToken(key []byte, value []byte) (Listing, error) {
	_, owner, err := storage.SplitPairKey(key)
	if nil != err {
		return Listing{}, err
	}
	return listing(owner, value)
}

func listing(owner string, value []byte) (Listing, error) {
	o, err := unpack(value)
	if nil != err {
		return Listing{}, err
	}
	return Listing{
		Owner:   account.Address(owner),
		TokenID: o.TokenID,
		Amount:  o.Amount,
	}, nil
}
