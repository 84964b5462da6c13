// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package offer

import (
	"encoding/json"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/offerledger/account"
	"github.com/bitmark-inc/offerledger/coin"
	"github.com/bitmark-inc/offerledger/fault"
	"github.com/bitmark-inc/offerledger/response"
	"github.com/bitmark-inc/offerledger/storage"
)

// Registry - the four offer indexes
type Registry struct {
	log     *logger.L
	byOwner [2]storage.Handle
	byToken [2]storage.Handle
}

// New - a registry over the bid and ask pools
func New(bidsByOwner, bidsByToken, asksByOwner, asksByToken storage.Handle) *Registry {
	return &Registry{
		log:     logger.New("offer"),
		byOwner: [2]storage.Handle{Bid: bidsByOwner, Ask: asksByOwner},
		byToken: [2]storage.Handle{Bid: bidsByToken, Ask: asksByToken},
	}
}

// Get - an owner's offer on a token through the owner index
func (r *Registry) Get(trx storage.Transaction, side Side, owner account.Address, tokenID string) (*Offer, error) {
	return get(trx, r.byOwner[side], storage.PairKey(owner.String(), tokenID))
}

// GetByToken - an owner's offer on a token through the token index
func (r *Registry) GetByToken(trx storage.Transaction, side Side, tokenID string, owner account.Address) (*Offer, error) {
	return get(trx, r.byToken[side], storage.PairKey(tokenID, owner.String()))
}

// AddBid - record a bid escrowing the single attached coin
func (r *Registry) AddBid(trx storage.Transaction, sender account.Address, tokenID string, funds []coin.Coin) (*response.Response, error) {
	if 1 != len(funds) {
		return nil, fault.ErrExactlyOneCoin
	}
	err := funds[0].Validate()
	if nil != err {
		return nil, err
	}

	return r.add(trx, Bid, sender, tokenID, funds[0], fault.ErrInvalidBid)
}

// AddAsk - record the price at which the sender will sell a token
func (r *Registry) AddAsk(trx storage.Transaction, sender account.Address, tokenID string, amount coin.Uint128, denom string) (*response.Response, error) {
	price := coin.Coin{
		Denom:  denom,
		Amount: amount,
	}
	err := price.Validate()
	if nil != err {
		return nil, err
	}

	return r.add(trx, Ask, sender, tokenID, price, fault.ErrInvalidAsk)
}

func (r *Registry) add(trx storage.Transaction, side Side, sender account.Address, tokenID string, amount coin.Coin, duplicate error) (*response.Response, error) {
	err := ValidateTokenID(tokenID)
	if nil != err {
		return nil, err
	}

	ownerKey := storage.PairKey(sender.String(), tokenID)
	if trx.Has(r.byOwner[side], ownerKey) {
		return nil, duplicate
	}

	data, err := json.Marshal(Offer{
		TokenID: tokenID,
		Amount:  amount,
	})
	if nil != err {
		return nil, err
	}

	trx.Put(r.byOwner[side], ownerKey, data)
	trx.Put(r.byToken[side], storage.PairKey(tokenID, sender.String()), data)

	r.log.Debugf("add %s: %s  token: %q  amount: %s", side, sender, tokenID, amount)

	return response.New("add_"+side.String()).
		AddCoin(amount).
		AddAttribute("token_id", tokenID), nil
}

// Remove - withdraw the sender's bid and ask on a token
//
// a removed bid returns its escrowed coin to the sender
func (r *Registry) Remove(trx storage.Transaction, sender account.Address, tokenID string) (*response.Response, error) {
	err := ValidateTokenID(tokenID)
	if nil != err {
		return nil, err
	}

	rsp := response.New("remove_offer").AddAttribute("token_id", tokenID)

	removed := make([]string, 0, 2)
	for _, side := range []Side{Bid, Ask} {
		o, err := r.Get(trx, side, sender, tokenID)
		if fault.ErrOfferNotFound == err {
			continue
		}
		if nil != err {
			return nil, err
		}

		trx.Delete(r.byOwner[side], storage.PairKey(sender.String(), tokenID))
		trx.Delete(r.byToken[side], storage.PairKey(tokenID, sender.String()))
		removed = append(removed, side.String())

		if Bid == side {
			rsp.AddMessage(sender, o.Amount)
		}
	}

	if 0 == len(removed) {
		return nil, fault.ErrOfferNotFound
	}

	r.log.Debugf("remove: %s  token: %q  sides: %v", sender, tokenID, removed)

	return rsp.AddAttribute("side", strings.Join(removed, ",")), nil
}

func get(trx storage.Transaction, pool storage.Handle, key []byte) (*Offer, error) {
	data := trx.Get(pool, key)
	if nil == data {
		return nil, fault.ErrOfferNotFound
	}
	return unpack(data)
}

func unpack(data []byte) (*Offer, error) {
	var o Offer
	err := json.Unmarshal(data, &o)
	if nil != err {
		return nil, fault.ErrCorruptRecord
	}
	return &o, nil
}
