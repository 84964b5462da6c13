// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"math"

	"github.com/bitmark-inc/offerledger/fault"
	"github.com/bitmark-inc/logger"
)

const pairLengthBytes = 2

// PairKey - first ⧺ second where first carries a big endian uint16 length
//
// the length prefix means that a scan over PairPrefix(first) can never
// pick up keys whose first component merely starts with first
func PairKey(first string, second string) []byte {
	return append(PairPrefix(first), second...)
}

// PairPrefix - the key prefix shared by all pairs with this first component
func PairPrefix(first string) []byte {
	if len(first) > math.MaxUint16 {
		logger.Panicf("storage.PairPrefix: first component length: %d exceeds: %d", len(first), math.MaxUint16)
	}
	key := make([]byte, pairLengthBytes, pairLengthBytes+len(first))
	binary.BigEndian.PutUint16(key, uint16(len(first)))
	return append(key, first...)
}

// SplitPairKey - inverse of PairKey
func SplitPairKey(key []byte) (string, string, error) {
	if len(key) < pairLengthBytes {
		return "", "", fault.ErrInvalidKey
	}
	n := int(binary.BigEndian.Uint16(key[:pairLengthBytes]))
	if len(key) < pairLengthBytes+n {
		return "", "", fault.ErrInvalidKey
	}
	first := string(key[pairLengthBytes : pairLengthBytes+n])
	second := string(key[pairLengthBytes+n:])
	return first, second, nil
}
