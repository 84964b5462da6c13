// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coin_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/offerledger/coin"
	"github.com/bitmark-inc/offerledger/fault"
)

func TestParse(t *testing.T) {
	c, err := coin.Parse("100000utest")
	assert.Nil(t, err, "parse")
	assert.Equal(t, coin.New(100000, "utest"), c, "wrong coin")
	assert.Equal(t, "100000utest", c.String(), "wrong string")

	c, err = coin.Parse(" 5ibc/27A6 ")
	assert.Nil(t, err, "parse ibc denom")
	assert.Equal(t, "ibc/27A6", c.Denom, "wrong denom")

	for _, bad := range []string{"", "utest", "100", "100 utest", "100u test", "100/x"} {
		_, err := coin.Parse(bad)
		assert.NotNil(t, err, "expected error for %q", bad)
	}
}

func TestParseList(t *testing.T) {
	coins, err := coin.ParseList("10uatom,5ustake")
	assert.Nil(t, err, "parse list")
	assert.Equal(t, []coin.Coin{coin.New(10, "uatom"), coin.New(5, "ustake")}, coins)

	coins, err = coin.ParseList("  ")
	assert.Nil(t, err, "empty list")
	assert.Equal(t, 0, len(coins), "empty list must be empty")

	_, err = coin.ParseList("10uatom,x")
	assert.Equal(t, fault.ErrInvalidCoin, err, "bad element")
}

func TestValidate(t *testing.T) {
	assert.Nil(t, coin.New(1, "utest").Validate())
	assert.Equal(t, fault.ErrZeroAmount, coin.New(0, "utest").Validate())
	assert.Equal(t, fault.ErrInvalidDenomination, coin.New(1, "").Validate())
	assert.Equal(t, fault.ErrInvalidDenomination, coin.New(1, "1utest").Validate())
}

func TestCoinJSON(t *testing.T) {
	b, err := json.Marshal(coin.New(100000, "utest"))
	assert.Nil(t, err, "marshal")
	assert.Equal(t, `{"denom":"utest","amount":"100000"}`, string(b))

	var c coin.Coin
	err = json.Unmarshal(b, &c)
	assert.Nil(t, err, "unmarshal")
	assert.Equal(t, coin.New(100000, "utest"), c)
}
