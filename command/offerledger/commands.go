// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/offerledger/coin"
	"github.com/bitmark-inc/offerledger/contract"
	"github.com/bitmark-inc/offerledger/response"
)

// result of an execute, transfers are those drained from the bank queue
type executeResult struct {
	Response  *response.Response  `json:"response"`
	Transfers []response.BankSend `json:"transfers"`
}

func runInstantiate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	info, err := messageInfo(c, false)
	if nil != err {
		return err
	}

	rsp, err := m.contract.Instantiate(info, contract.InstantiateMsg{})
	if nil != err {
		return err
	}
	return printResult(m, rsp)
}

func runDeposit(c *cli.Context) error {
	return execute(c, true, contract.ExecuteMsg{
		Deposit: &contract.DepositMsg{},
	})
}

func runWithdraw(c *cli.Context) error {
	amount, denom, err := amountAndDenom(c)
	if nil != err {
		return err
	}
	return execute(c, false, contract.ExecuteMsg{
		Withdraw: &contract.WithdrawMsg{
			Amount: amount,
			Denom:  denom,
		},
	})
}

func runAddBid(c *cli.Context) error {
	return execute(c, true, contract.ExecuteMsg{
		AddBid: &contract.AddBidMsg{
			TokenID: c.String("token-id"),
		},
	})
}

func runAddAsk(c *cli.Context) error {
	amount, denom, err := amountAndDenom(c)
	if nil != err {
		return err
	}
	return execute(c, false, contract.ExecuteMsg{
		AddAsk: &contract.AddAskMsg{
			TokenID: c.String("token-id"),
			Amount:  amount,
			Denom:   denom,
		},
	})
}

func runRemoveOffer(c *cli.Context) error {
	return execute(c, false, contract.ExecuteMsg{
		RemoveOffer: &contract.RemoveOfferMsg{
			TokenID: c.String("token-id"),
		},
	})
}

func runUpdateConfig(c *cli.Context) error {
	msg := &contract.UpdateConfigMsg{}
	if c.IsSet("owner") {
		owner := c.String("owner")
		msg.Owner = &owner
	}
	return execute(c, false, contract.ExecuteMsg{
		UpdateConfig: msg,
	})
}

func runDeposits(c *cli.Context) error {
	return query(c, contract.QueryMsg{
		Deposits: &contract.DepositsQuery{
			Address: c.String("address"),
		},
	})
}

func runAddressOffers(c *cli.Context) error {
	startAfter, limit := page(c)
	return query(c, contract.QueryMsg{
		AddressOffers: &contract.AddressOffersQuery{
			Address:    c.String("address"),
			Bid:        !c.Bool("ask"),
			StartAfter: startAfter,
			Limit:      limit,
		},
	})
}

func runTokenOffers(c *cli.Context) error {
	startAfter, limit := page(c)
	return query(c, contract.QueryMsg{
		TokenIDOffers: &contract.TokenIDOffersQuery{
			TokenID:    c.String("token-id"),
			Bid:        !c.Bool("ask"),
			StartAfter: startAfter,
			Limit:      limit,
		},
	})
}

func runConfig(c *cli.Context) error {
	return query(c, contract.QueryMsg{
		Config: &contract.ConfigQuery{},
	})
}

func execute(c *cli.Context, acceptFunds bool, msg contract.ExecuteMsg) error {

	m := c.App.Metadata["config"].(*metadata)

	info, err := messageInfo(c, acceptFunds)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "sender: %s\n", info.Sender)
		fmt.Fprintf(m.e, "funds: %v\n", info.Funds)
	}

	rsp, err := m.contract.Execute(info, msg)
	if nil != err {
		return err
	}
	return printResult(m, rsp)
}

func query(c *cli.Context, msg contract.QueryMsg) error {

	m := c.App.Metadata["config"].(*metadata)

	result, err := m.contract.Query(msg)
	if nil != err {
		return err
	}
	return printRawJson(m.w, result)
}

func printResult(m *metadata, rsp *response.Response) error {
	return printJson(m.w, executeResult{
		Response:  rsp,
		Transfers: m.queue.Drain(),
	})
}

func messageInfo(c *cli.Context, acceptFunds bool) (contract.MessageInfo, error) {
	info := contract.MessageInfo{
		Sender: c.String("sender"),
	}
	if "" == info.Sender {
		return info, fmt.Errorf("sender is required")
	}

	if !acceptFunds {
		return info, nil
	}

	funds, err := coin.ParseList(c.String("funds"))
	if nil != err {
		return info, err
	}
	info.Funds = funds
	return info, nil
}

func amountAndDenom(c *cli.Context) (coin.Uint128, string, error) {
	amount, err := coin.ParseUint128(c.String("amount"))
	if nil != err {
		return coin.Zero, "", fmt.Errorf("amount: %q error: %s", c.String("amount"), err)
	}
	return amount, c.String("denom"), nil
}

func page(c *cli.Context) (*string, *uint32) {
	var startAfter *string
	var limit *uint32
	if s := c.String("start-after"); "" != s {
		startAfter = &s
	}
	if n := c.Int("limit"); n > 0 {
		l := uint32(n)
		limit = &l
	}
	return startAfter, limit
}
