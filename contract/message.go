// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"encoding/json"

	"github.com/bitmark-inc/offerledger/coin"
	"github.com/bitmark-inc/offerledger/fault"
	"github.com/bitmark-inc/offerledger/ledger"
	"github.com/bitmark-inc/offerledger/offer"
)

// MessageInfo - who is calling and what they attached
type MessageInfo struct {
	Sender string      `json:"sender"`
	Funds  []coin.Coin `json:"funds"`
}

// InstantiateMsg - no parameters, the sender becomes the owner
type InstantiateMsg struct{}

// ExecuteMsg - exactly one field must be set
type ExecuteMsg struct {
	Deposit      *DepositMsg      `json:"deposit,omitempty"`
	Withdraw     *WithdrawMsg     `json:"withdraw,omitempty"`
	AddBid       *AddBidMsg       `json:"add_bid,omitempty"`
	AddAsk       *AddAskMsg       `json:"add_ask,omitempty"`
	RemoveOffer  *RemoveOfferMsg  `json:"remove_offer,omitempty"`
	UpdateConfig *UpdateConfigMsg `json:"update_config,omitempty"`
}

// DepositMsg - the attached coin is the deposit
type DepositMsg struct{}

// WithdrawMsg - amount of denom to send back to the sender
type WithdrawMsg struct {
	Amount coin.Uint128 `json:"amount"`
	Denom  string       `json:"denom"`
}

// AddBidMsg - the attached coin is the bid
type AddBidMsg struct {
	TokenID string `json:"token_id"`
}

// AddAskMsg - asking price for a token
type AddAskMsg struct {
	TokenID string       `json:"token_id"`
	Amount  coin.Uint128 `json:"amount"`
	Denom   string       `json:"denom"`
}

// RemoveOfferMsg - drop the sender's bid and ask on a token
type RemoveOfferMsg struct {
	TokenID string `json:"token_id"`
}

// UpdateConfigMsg - owner handover, a missing owner changes nothing
type UpdateConfigMsg struct {
	Owner *string `json:"owner,omitempty"`
}

// QueryMsg - exactly one field must be set
type QueryMsg struct {
	Deposits      *DepositsQuery      `json:"deposits,omitempty"`
	AddressOffers *AddressOffersQuery `json:"address_offers,omitempty"`
	TokenIDOffers *TokenIDOffersQuery `json:"token_id_offers,omitempty"`
	Config        *ConfigQuery        `json:"config,omitempty"`
}

// DepositsQuery - all balances of an address
type DepositsQuery struct {
	Address string `json:"address"`
}

// AddressOffersQuery - a page of an address's bids or asks
type AddressOffersQuery struct {
	Address    string  `json:"address"`
	Bid        bool    `json:"bid"`
	StartAfter *string `json:"start_after,omitempty"`
	Limit      *uint32 `json:"limit,omitempty"`
}

// TokenIDOffersQuery - a page of the bids or asks on a token
type TokenIDOffersQuery struct {
	TokenID    string  `json:"token_id"`
	Bid        bool    `json:"bid"`
	StartAfter *string `json:"start_after,omitempty"`
	Limit      *uint32 `json:"limit,omitempty"`
}

// ConfigQuery - the configuration record
type ConfigQuery struct{}

// DepositsResponse - reply to DepositsQuery
type DepositsResponse struct {
	Deposits []ledger.Entry `json:"deposits"`
}

// OffersResponse - reply to both offer queries
type OffersResponse struct {
	Offers []offer.Listing `json:"offers"`
}

// ParseExecuteMsg - decode and check a JSON execute message
func ParseExecuteMsg(b []byte) (*ExecuteMsg, error) {
	var msg ExecuteMsg
	err := json.Unmarshal(b, &msg)
	if nil != err {
		return nil, err
	}
	if 1 != msg.commands() {
		return nil, fault.ErrInvalidMessage
	}
	return &msg, nil
}

// ParseQueryMsg - decode and check a JSON query message
func ParseQueryMsg(b []byte) (*QueryMsg, error) {
	var msg QueryMsg
	err := json.Unmarshal(b, &msg)
	if nil != err {
		return nil, err
	}
	if 1 != msg.commands() {
		return nil, fault.ErrInvalidMessage
	}
	return &msg, nil
}

func (m *ExecuteMsg) commands() int {
	return present(m.Deposit != nil, m.Withdraw != nil, m.AddBid != nil,
		m.AddAsk != nil, m.RemoveOffer != nil, m.UpdateConfig != nil)
}

func (m *QueryMsg) commands() int {
	return present(m.Deposits != nil, m.AddressOffers != nil,
		m.TokenIDOffers != nil, m.Config != nil)
}

func present(flags ...bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n += 1
		}
	}
	return n
}
