// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"encoding/json"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/offerledger/account"
	"github.com/bitmark-inc/offerledger/admin"
	"github.com/bitmark-inc/offerledger/counter"
	"github.com/bitmark-inc/offerledger/fault"
	"github.com/bitmark-inc/offerledger/ledger"
	"github.com/bitmark-inc/offerledger/offer"
	"github.com/bitmark-inc/offerledger/response"
	"github.com/bitmark-inc/offerledger/storage"
)

// Dispatcher - receives transfers once they are committed
type Dispatcher interface {
	Dispatch(response.BankSend)
}

// Contract - one ledger, registry and configuration over a database
type Contract struct {
	sync.Mutex

	log       *logger.L
	db        *storage.Database
	validator account.Validator
	ledger    *ledger.Ledger
	registry  *offer.Registry
	admin     *admin.Store
	bank      Dispatcher
	outcome   counter.Outcome
}

// New - wire the components onto the pools of db
func New(db *storage.Database, validator account.Validator, bank Dispatcher) *Contract {
	p := db.Pool
	return &Contract{
		log:       logger.New("contract"),
		db:        db,
		validator: validator,
		ledger:    ledger.New(p.Deposits),
		registry:  offer.New(p.BidsByOwner, p.BidsByToken, p.AsksByOwner, p.AsksByToken),
		admin:     admin.New(p.Config, validator),
		bank:      bank,
	}
}

// Instantiate - record the sender as owner
func (c *Contract) Instantiate(info MessageInfo, _ InstantiateMsg) (*response.Response, error) {
	c.Lock()
	defer c.Unlock()

	sender, err := c.validator.Validate(info.Sender)
	if nil != err {
		return nil, err
	}
	if 0 != len(info.Funds) {
		return nil, fault.ErrFundsNotAccepted
	}

	return c.run("instantiate", func(trx storage.Transaction) (*response.Response, error) {
		config, err := c.admin.Initialise(trx, sender)
		if nil != err {
			return nil, err
		}
		return response.New("instantiate").AddAttribute("owner", config.Owner.String()), nil
	})
}

// Execute - run one command
func (c *Contract) Execute(info MessageInfo, msg ExecuteMsg) (*response.Response, error) {
	c.Lock()
	defer c.Unlock()

	if 1 != msg.commands() {
		return nil, fault.ErrInvalidMessage
	}

	sender, err := c.validator.Validate(info.Sender)
	if nil != err {
		return nil, err
	}

	// only deposit and add_bid take coins
	if nil == msg.Deposit && nil == msg.AddBid && 0 != len(info.Funds) {
		return nil, fault.ErrFundsNotAccepted
	}

	switch {
	case nil != msg.Deposit:
		return c.run("deposit", func(trx storage.Transaction) (*response.Response, error) {
			return c.ledger.Deposit(trx, sender, info.Funds)
		})

	case nil != msg.Withdraw:
		m := msg.Withdraw
		return c.run("withdraw", func(trx storage.Transaction) (*response.Response, error) {
			return c.ledger.Withdraw(trx, sender, m.Amount, m.Denom)
		})

	case nil != msg.AddBid:
		m := msg.AddBid
		return c.run("add_bid", func(trx storage.Transaction) (*response.Response, error) {
			return c.registry.AddBid(trx, sender, m.TokenID, info.Funds)
		})

	case nil != msg.AddAsk:
		m := msg.AddAsk
		return c.run("add_ask", func(trx storage.Transaction) (*response.Response, error) {
			return c.registry.AddAsk(trx, sender, m.TokenID, m.Amount, m.Denom)
		})

	case nil != msg.RemoveOffer:
		m := msg.RemoveOffer
		return c.run("remove_offer", func(trx storage.Transaction) (*response.Response, error) {
			return c.registry.Remove(trx, sender, m.TokenID)
		})

	default:
		m := msg.UpdateConfig
		return c.run("update_config", func(trx storage.Transaction) (*response.Response, error) {
			return c.admin.Update(trx, sender, m.Owner)
		})
	}
}

// Query - read committed state, result is JSON
func (c *Contract) Query(msg QueryMsg) ([]byte, error) {
	c.Lock()
	defer c.Unlock()

	if 1 != msg.commands() {
		return nil, fault.ErrInvalidMessage
	}

	var result interface{}
	switch {
	case nil != msg.Deposits:
		address, err := c.validator.Validate(msg.Deposits.Address)
		if nil != err {
			return nil, err
		}
		entries, err := c.ledger.List(address)
		if nil != err {
			return nil, err
		}
		result = DepositsResponse{Deposits: entries}

	case nil != msg.AddressOffers:
		q := msg.AddressOffers
		address, err := c.validator.Validate(q.Address)
		if nil != err {
			return nil, err
		}
		listings, err := c.registry.AddressOffers(offer.SideOf(q.Bid), address, q.StartAfter, q.Limit)
		if nil != err {
			return nil, err
		}
		result = OffersResponse{Offers: listings}

	case nil != msg.TokenIDOffers:
		q := msg.TokenIDOffers
		err := offer.ValidateTokenID(q.TokenID)
		if nil != err {
			return nil, err
		}
		listings, err := c.registry.TokenOffers(offer.SideOf(q.Bid), q.TokenID, q.StartAfter, q.Limit)
		if nil != err {
			return nil, err
		}
		result = OffersResponse{Offers: listings}

	default:
		config, err := c.admin.Load()
		if nil != err {
			return nil, err
		}
		result = config
	}

	return json.Marshal(result)
}

// Stats - committed and aborted operation counts
func (c *Contract) Stats() (uint64, uint64) {
	return c.outcome.Succeeded.Uint64(), c.outcome.Failed.Uint64()
}

// run f in a transaction, commit on success then hand over transfers
func (c *Contract) run(name string, f func(storage.Transaction) (*response.Response, error)) (*response.Response, error) {
	trx, err := c.db.Begin()
	if nil != err {
		c.log.Errorf("%s: begin error: %s", name, err)
		return nil, err
	}

	rsp, err := f(trx)
	if nil != err {
		trx.Abort()
		c.outcome.Record(err)
		c.log.Warnf("%s: aborted: %s", name, err)
		return nil, err
	}

	err = trx.Commit()
	c.outcome.Record(err)
	if nil != err {
		c.log.Errorf("%s: commit error: %s", name, err)
		return nil, err
	}
	c.log.Infof("%s: committed: %v", name, rsp.Attributes)

	for _, m := range rsp.Messages {
		c.bank.Dispatch(m)
	}
	return rsp, nil
}
