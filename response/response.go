// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package response - the effects of one successful operation
//
// an operation emits key/value attributes describing what it did and
// zero or more transfer intents which the host carries out only after
// the operation has been committed
package response

import (
	"github.com/bitmark-inc/offerledger/account"
	"github.com/bitmark-inc/offerledger/coin"
)

// Attribute - a key/value annotation
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// BankSend - an intent to move coins held by the host to an account
type BankSend struct {
	ToAddress account.Address `json:"to_address"`
	Amount    []coin.Coin     `json:"amount"`
}

// Response - attributes and transfers of one operation
type Response struct {
	Attributes []Attribute `json:"attributes"`
	Messages   []BankSend  `json:"messages"`
}

// New - a response tagged with the name of the executed operation
func New(execute string) *Response {
	return &Response{
		Attributes: []Attribute{{Key: "execute", Value: execute}},
		Messages:   []BankSend{},
	}
}

// AddAttribute - append an attribute
func (r *Response) AddAttribute(key string, value string) *Response {
	r.Attributes = append(r.Attributes, Attribute{Key: key, Value: value})
	return r
}

// AddCoin - append the denom and amount attributes of a coin
func (r *Response) AddCoin(c coin.Coin) *Response {
	return r.AddAttribute("denom", c.Denom).AddAttribute("amount", c.Amount.String())
}

// AddMessage - append a transfer intent
func (r *Response) AddMessage(to account.Address, amount ...coin.Coin) *Response {
	r.Messages = append(r.Messages, BankSend{ToAddress: to, Amount: amount})
	return r
}

// Value - the first attribute value for a key
func (r *Response) Value(key string) (string, bool) {
	for _, a := range r.Attributes {
		if key == a.Key {
			return a.Value, true
		}
	}
	return "", false
}
