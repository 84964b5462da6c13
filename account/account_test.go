// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/offerledger/account"
	"github.com/bitmark-inc/offerledger/fault"
)

type accountTest struct {
	testnet       bool
	publicKey     []byte
	base58Account string
}

// valid accounts
var testAccount = []accountTest{
	{
		testnet:       false,
		publicKey:     decodeHex("60b3c6e20cfff7091a86488b1656b96ec0a2f69907e2c035175918f42c37d72e"),
		base58Account: "anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLCj",
	},
	{
		testnet:       true,
		publicKey:     decodeHex("731114267f15754a5fce4aaed8380b28aff25af7b378b011d92ef7b3f08910db"),
		base58Account: "eopaSeB7uiSVMdAmTrijq3W2MCWA5KHZrZvm5QLFGRVd3oWNe2",
	},
	{
		testnet:       true,
		publicKey:     decodeHex("cb6ff605f79deba3deb0c5122e40359a258481c151dffc176a2da5e8bc87cd2e"),
		base58Account: "fUjtNvmUJn7yJ7PVP7NT2FZbKDrudFxLVBHkwLJFgKWmGsPNVi",
	},
	{
		testnet:       true,
		publicKey:     decodeHex("0000000000000000000000000000000000000000000000000000000000000000"),
		base58Account: "dw9MQXcC5rJZb3QE1nz86PiQAheMP1dx9M3dr52tT8NNs14m33",
	},
	{
		testnet:       false,
		publicKey:     decodeHex("0000000000000000000000000000000000000000000000000000000000000000"),
		base58Account: "a3ezwdYVEVrHwszQrYzDTCAZwUD3yKtNsCq9YhEu97bPaGAKy1",
	},
}

type invalid struct {
	str string
	err error
}

// invalid accounts
var testInvalid = []invalid{
	{"3gLJjLSociTmf4kgL3ztUK;tgADFvg9yjXt1jFbEx9KgpEEAFn", fault.ErrCannotDecodeAccount}, // invalid base58 string
	{"", fault.ErrCannotDecodeAccount},                                                    // empty
	{"anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLDj", fault.ErrChecksumMismatch},    // checksum mismatch
	{"WjbRFkA9dhmMKnKTuufZ1sVD4E4H1NRnsmwjMKNHHRSCvDm5bXPV", fault.ErrInvalidKeyType},    // undefined key algorithm
	{"YqVxD4vazrrnxnLH2MzCHJedPPz1VKHnKbVfya39nF96ABAYes", fault.ErrNotPublicKey},        // private key
	{"3MvykBZzN", fault.ErrInvalidKeyType},                                                // reserved algorithm
}

func decodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if nil != err {
		panic(err)
	}
	return b
}

func TestEncode(t *testing.T) {
	for index, test := range testAccount {
		a, err := account.FromPublicKey(test.publicKey, test.testnet)
		if nil != err {
			t.Errorf("%d: from public key error: %s", index, err)
			continue
		}
		if test.base58Account != a.String() {
			t.Errorf("%d: base58: %s  expected: %s", index, a, test.base58Account)
		}
	}
}

func TestDecode(t *testing.T) {
	for index, test := range testAccount {
		a, err := account.FromBase58(test.base58Account)
		if nil != err {
			t.Errorf("%d: from base58 error: %s", index, err)
			continue
		}
		if account.ED25519 != a.Algorithm {
			t.Errorf("%d: algorithm: %d  expected: %d", index, a.Algorithm, account.ED25519)
		}
		if test.testnet != a.Test {
			t.Errorf("%d: testnet: %v  expected: %v", index, a.Test, test.testnet)
		}
		if !bytes.Equal(test.publicKey, a.PublicKey) {
			t.Errorf("%d: public key: %x  expected: %x", index, a.PublicKey, test.publicKey)
		}
	}
}

func TestDecodeInvalid(t *testing.T) {
	for index, test := range testInvalid {
		_, err := account.FromBase58(test.str)
		if test.err != err {
			t.Errorf("%d: error: %v  expected: %v", index, err, test.err)
		}
	}
}

func TestFromPublicKeyLength(t *testing.T) {
	_, err := account.FromPublicKey([]byte{1, 2, 3}, false)
	if fault.ErrInvalidKeyLength != err {
		t.Errorf("error: %v  expected: %v", err, fault.ErrInvalidKeyLength)
	}
}

func TestGeneratedKey(t *testing.T) {
	seed := bytes.Repeat([]byte{0x5a}, ed25519.SeedSize)
	privateKey := ed25519.NewKeyFromSeed(seed)
	publicKey := privateKey.Public().(ed25519.PublicKey)

	a, err := account.FromPublicKey(publicKey, true)
	if nil != err {
		t.Fatalf("from public key error: %s", err)
	}
	b, err := account.FromBase58(a.String())
	if nil != err {
		t.Fatalf("round trip error: %s", err)
	}
	if a.Address() != b.Address() {
		t.Errorf("round trip: %s  expected: %s", b.Address(), a.Address())
	}
}
