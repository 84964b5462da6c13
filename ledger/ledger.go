// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/json"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/offerledger/account"
	"github.com/bitmark-inc/offerledger/coin"
	"github.com/bitmark-inc/offerledger/fault"
	"github.com/bitmark-inc/offerledger/response"
	"github.com/bitmark-inc/offerledger/storage"
)

// Ledger - balances held in one storage pool
type Ledger struct {
	log  *logger.L
	pool storage.Handle
}

// New - a ledger over the deposits pool
func New(pool storage.Handle) *Ledger {
	return &Ledger{
		log:  logger.New("ledger"),
		pool: pool,
	}
}

// Get - the balance of owner in denom as seen by a transaction
//
// a missing balance is fault.ErrDepositNotFound
func (l *Ledger) Get(trx storage.Transaction, owner account.Address, denom string) (*Deposits, error) {
	data := trx.Get(l.pool, storage.PairKey(owner.String(), denom))
	if nil == data {
		return nil, fault.ErrDepositNotFound
	}
	return unpack(data)
}

// Put - stage a balance record
func (l *Ledger) Put(trx storage.Transaction, owner account.Address, denom string, deposits *Deposits) error {
	data, err := json.Marshal(deposits)
	if nil != err {
		return err
	}
	trx.Put(l.pool, storage.PairKey(owner.String(), denom), data)
	return nil
}

// List - all committed balances of an owner in ascending denom order
func (l *Ledger) List(owner account.Address) ([]Entry, error) {
	entries := make([]Entry, 0, 4)
	cursor := l.pool.NewFetchCursor().Prefix(storage.PairPrefix(owner.String()))
	err := cursor.Map(func(key []byte, value []byte) error {
		_, denom, err := storage.SplitPairKey(key)
		if nil != err {
			return err
		}
		deposits, err := unpack(value)
		if nil != err {
			return err
		}
		entries = append(entries, Entry{
			Denom:    denom,
			Deposits: *deposits,
		})
		return nil
	})
	if nil != err {
		return nil, err
	}
	return entries, nil
}

// Deposit - credit the single attached coin to the sender
func (l *Ledger) Deposit(trx storage.Transaction, sender account.Address, funds []coin.Coin) (*response.Response, error) {
	if 1 != len(funds) {
		return nil, fault.ErrExactlyOneCoin
	}
	attached := funds[0]
	err := attached.Validate()
	if nil != err {
		return nil, err
	}

	deposits, err := l.Get(trx, sender, attached.Denom)
	switch err {
	case nil:
		err = deposits.add(attached.Amount)
		if nil != err {
			return nil, err
		}
	case fault.ErrDepositNotFound:
		deposits = &Deposits{
			Count: 1,
			Owner: sender,
			Coins: attached,
		}
	default:
		return nil, err
	}

	err = l.Put(trx, sender, attached.Denom, deposits)
	if nil != err {
		return nil, err
	}

	l.log.Debugf("deposit: %s  %s  count: %d", sender, deposits.Coins, deposits.Count)

	return response.New("deposit").AddCoin(attached), nil
}

// Withdraw - debit the sender and emit a transfer of the same amount
func (l *Ledger) Withdraw(trx storage.Transaction, sender account.Address, amount coin.Uint128, denom string) (*response.Response, error) {
	requested := coin.Coin{
		Denom:  denom,
		Amount: amount,
	}
	err := requested.Validate()
	if nil != err {
		return nil, err
	}

	deposits, err := l.Get(trx, sender, denom)
	if nil != err {
		return nil, err
	}

	err = deposits.sub(amount)
	if nil != err {
		return nil, err
	}

	err = l.Put(trx, sender, denom, deposits)
	if nil != err {
		return nil, err
	}

	l.log.Debugf("withdraw: %s  %s  remaining: %s", sender, requested, deposits.Coins)

	return response.New("withdraw").
		AddCoin(requested).
		AddMessage(sender, requested), nil
}

func unpack(data []byte) (*Deposits, error) {
	var deposits Deposits
	err := json.Unmarshal(data, &deposits)
	if nil != err {
		return nil, fault.ErrCorruptRecord
	}
	return &deposits, nil
}
