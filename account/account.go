// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"encoding/binary"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/offerledger/fault"
)

// enumeration of supported key algorithms
const (
	Nothing = iota // reserved, never a valid account
	ED25519 = iota
	// end of list (one greater than last item)
	algorithmLimit = iota
)

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01
	testKeyCode   = 0x02

	algorithmShift = 4 // shift 4 bits to get algorithm
)

// Address - an account identifier that has passed validation
type Address string

// String - the identifier
func (a Address) String() string {
	return string(a)
}

// Account - decoded form of a Base58 account
type Account struct {
	Algorithm int
	Test      bool
	PublicKey []byte
}

// FromBase58 - decode and check a Base58 account
func FromBase58(s string) (*Account, error) {
	decoded, err := base58.Decode(s)
	if nil != err || 0 == len(decoded) {
		return nil, fault.ErrCannotDecodeAccount
	}

	keyVariant, variantLength := binary.Uvarint(decoded)
	if variantLength <= 0 || keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.ErrNotPublicKey
	}

	algorithm := keyVariant >> algorithmShift
	if Nothing == algorithm || algorithm >= algorithmLimit {
		return nil, fault.ErrInvalidKeyType
	}

	keyLength := len(decoded) - variantLength - checksumLength
	if keyLength <= 0 {
		return nil, fault.ErrInvalidKeyLength
	}

	checksumStart := len(decoded) - checksumLength
	checksum := sha3.Sum256(decoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[checksumStart:]) {
		return nil, fault.ErrChecksumMismatch
	}

	if ed25519.PublicKeySize != keyLength {
		return nil, fault.ErrInvalidKeyLength
	}

	publicKey := make([]byte, keyLength)
	copy(publicKey, decoded[variantLength:checksumStart])

	return &Account{
		Algorithm: int(algorithm),
		Test:      0 != keyVariant&testKeyCode,
		PublicKey: publicKey,
	}, nil
}

// Bytes - key variant ⧺ public key
func (account *Account) Bytes() []byte {
	keyVariant := uint64(account.Algorithm<<algorithmShift) | publicKeyCode
	if account.Test {
		keyVariant |= testKeyCode
	}
	buffer := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(buffer, keyVariant)
	return append(buffer[:n], account.PublicKey...)
}

// String - Base58 of bytes with checksum appended
func (account *Account) String() string {
	buffer := account.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// Address - the validated identifier form
func (account *Account) Address() Address {
	return Address(account.String())
}

// FromPublicKey - account for an ED25519 public key
func FromPublicKey(publicKey ed25519.PublicKey, test bool) (*Account, error) {
	if ed25519.PublicKeySize != len(publicKey) {
		return nil, fault.ErrInvalidKeyLength
	}
	key := make([]byte, len(publicKey))
	copy(key, publicKey)
	return &Account{
		Algorithm: ED25519,
		Test:      test,
		PublicKey: key,
	}, nil
}
