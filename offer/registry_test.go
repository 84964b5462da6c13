// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package offer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/offerledger/account"
	"github.com/bitmark-inc/offerledger/coin"
	"github.com/bitmark-inc/offerledger/fault"
	"github.com/bitmark-inc/offerledger/offer"
	"github.com/bitmark-inc/offerledger/response"
	"github.com/bitmark-inc/offerledger/storage"
)

const (
	alice = account.Address("alice")
	bob   = account.Address("bob")
	token = "token-1"
	denom = "utest"
)

func run(t *testing.T, db *storage.Database, f func(storage.Transaction) (*response.Response, error)) (*response.Response, error) {
	trx, err := db.Begin()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}
	r, err := f(trx)
	if nil != err {
		trx.Abort()
		return nil, err
	}
	if err := trx.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}
	return r, nil
}

func addBid(t *testing.T, db *storage.Database, r *offer.Registry, owner account.Address, tokenID string, amount uint64) (*response.Response, error) {
	return run(t, db, func(trx storage.Transaction) (*response.Response, error) {
		return r.AddBid(trx, owner, tokenID, []coin.Coin{coin.New(amount, denom)})
	})
}

func addAsk(t *testing.T, db *storage.Database, r *offer.Registry, owner account.Address, tokenID string, amount uint64) (*response.Response, error) {
	return run(t, db, func(trx storage.Transaction) (*response.Response, error) {
		return r.AddAsk(trx, owner, tokenID, coin.NewUint128(amount), denom)
	})
}

func remove(t *testing.T, db *storage.Database, r *offer.Registry, owner account.Address, tokenID string) (*response.Response, error) {
	return run(t, db, func(trx storage.Transaction) (*response.Response, error) {
		return r.Remove(trx, owner, tokenID)
	})
}

func TestAddBidDualIndex(t *testing.T) {
	db, r := setupTestRegistry(t)
	defer db.Close()

	rsp, err := addBid(t, db, r, alice, token, 75)
	assert.Nil(t, err, "add bid error")
	assert.Equal(t, []response.Attribute{
		{Key: "execute", Value: "add_bid"},
		{Key: "denom", Value: denom},
		{Key: "amount", Value: "75"},
		{Key: "token_id", Value: token},
	}, rsp.Attributes, "attributes")
	assert.Equal(t, 0, len(rsp.Messages), "bid escrow must not transfer")

	trx, _ := db.Begin()
	defer trx.Abort()

	byOwner, err := r.Get(trx, offer.Bid, alice, token)
	assert.Nil(t, err, "owner index")
	byToken, err := r.GetByToken(trx, offer.Bid, token, alice)
	assert.Nil(t, err, "token index")
	assert.Equal(t, byOwner, byToken, "index records differ")
	assert.Equal(t, &offer.Offer{TokenID: token, Amount: coin.New(75, denom)}, byOwner, "record")

	_, err = r.Get(trx, offer.Ask, alice, token)
	assert.Equal(t, fault.ErrOfferNotFound, err, "bid leaked into asks")
}

func TestAddBidTwice(t *testing.T) {
	db, r := setupTestRegistry(t)
	defer db.Close()

	_, err := addBid(t, db, r, alice, token, 75)
	assert.Nil(t, err, "first bid")

	_, err = addBid(t, db, r, alice, token, 80)
	assert.Equal(t, fault.ErrInvalidBid, err, "second bid")

	nOwner, _ := db.Pool.BidsByOwner.Count()
	nToken, _ := db.Pool.BidsByToken.Count()
	assert.Equal(t, 1, nOwner, "owner index entries")
	assert.Equal(t, 1, nToken, "token index entries")

	trx, _ := db.Begin()
	defer trx.Abort()
	o, _ := r.Get(trx, offer.Bid, alice, token)
	assert.Equal(t, coin.New(75, denom), o.Amount, "original bid replaced")
}

func TestAddAskTwice(t *testing.T) {
	db, r := setupTestRegistry(t)
	defer db.Close()

	_, err := addAsk(t, db, r, alice, token, 500)
	assert.Nil(t, err, "first ask")

	_, err = addAsk(t, db, r, alice, token, 600)
	assert.Equal(t, fault.ErrInvalidAsk, err, "second ask")

	_, err = addBid(t, db, r, alice, token, 400)
	assert.Nil(t, err, "bid beside ask")
}

func TestAddInvalid(t *testing.T) {
	db, r := setupTestRegistry(t)
	defer db.Close()

	_, err := addBid(t, db, r, alice, "", 1)
	assert.Equal(t, fault.ErrInvalidTokenId, err, "empty token id")

	_, err = addBid(t, db, r, alice, token, 0)
	assert.Equal(t, fault.ErrZeroAmount, err, "zero bid")

	_, err = run(t, db, func(trx storage.Transaction) (*response.Response, error) {
		return r.AddBid(trx, alice, token, nil)
	})
	assert.Equal(t, fault.ErrExactlyOneCoin, err, "no funds")

	_, err = run(t, db, func(trx storage.Transaction) (*response.Response, error) {
		return r.AddAsk(trx, alice, token, coin.NewUint128(1), "")
	})
	assert.Equal(t, fault.ErrInvalidDenomination, err, "empty denom")

	n, _ := db.Pool.BidsByOwner.Count()
	assert.Equal(t, 0, n, "invalid offers recorded")
}

func TestRemoveOffer(t *testing.T) {
	db, r := setupTestRegistry(t)
	defer db.Close()

	addBid(t, db, r, alice, token, 75)
	addAsk(t, db, r, alice, token, 90)
	addBid(t, db, r, bob, token, 60)

	rsp, err := remove(t, db, r, alice, token)
	assert.Nil(t, err, "remove error")
	side, _ := rsp.Value("side")
	assert.Equal(t, "bid,ask", side, "sides")
	assert.Equal(t, []response.BankSend{
		{ToAddress: alice, Amount: []coin.Coin{coin.New(75, denom)}},
	}, rsp.Messages, "escrow refund")

	for _, pool := range []*storage.PoolHandle{db.Pool.AsksByOwner, db.Pool.AsksByToken} {
		n, _ := pool.Count()
		assert.Equal(t, 0, n, "%s entries", pool.Name())
	}
	for _, pool := range []*storage.PoolHandle{db.Pool.BidsByOwner, db.Pool.BidsByToken} {
		n, _ := pool.Count()
		assert.Equal(t, 1, n, "%s entries", pool.Name())
	}

	_, err = remove(t, db, r, alice, token)
	assert.Equal(t, fault.ErrOfferNotFound, err, "second remove")
}

func TestRemoveAskOnly(t *testing.T) {
	db, r := setupTestRegistry(t)
	defer db.Close()

	addAsk(t, db, r, bob, token, 90)

	rsp, err := remove(t, db, r, bob, token)
	assert.Nil(t, err, "remove error")
	side, _ := rsp.Value("side")
	assert.Equal(t, "ask", side, "sides")
	assert.Equal(t, 0, len(rsp.Messages), "ask removal must not transfer")
}

func TestSideString(t *testing.T) {
	assert.Equal(t, "bid", offer.SideOf(true).String(), "bid")
	assert.Equal(t, "ask", offer.SideOf(false).String(), "ask")
}
