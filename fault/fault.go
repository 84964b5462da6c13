// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ArithmeticError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised     = ExistsError("already initialised")
	ErrCannotDecodeAccount    = InvalidError("cannot decode account")
	ErrChecksumMismatch       = InvalidError("checksum mismatch")
	ErrConfigNotFound         = NotFoundError("configuration not found")
	ErrCorruptRecord          = ProcessError("corrupt record")
	ErrCountOverflow          = ArithmeticError("deposit count overflow")
	ErrCountUnderflow         = ArithmeticError("deposit count underflow")
	ErrDepositNotFound        = NotFoundError("deposit not found")
	ErrExactlyOneCoin         = InvalidError("exactly one coin must be attached")
	ErrFundsNotAccepted       = InvalidError("operation does not accept funds")
	ErrIncompatibleDatabase   = ProcessError("incompatible database version")
	ErrInsufficientFunds      = ArithmeticError("insufficient funds")
	ErrInvalidAccount         = InvalidError("invalid account")
	ErrInvalidAmount          = InvalidError("invalid amount")
	ErrInvalidAsk             = InvalidError("invalid ask: offer already exists")
	ErrInvalidBid             = InvalidError("invalid bid: offer already exists")
	ErrInvalidChain           = InvalidError("invalid chain")
	ErrInvalidCoin            = InvalidError("invalid coin")
	ErrInvalidCount           = InvalidError("invalid count")
	ErrInvalidCursor          = InvalidError("invalid cursor")
	ErrInvalidDenomination    = InvalidError("invalid denomination")
	ErrInvalidKey             = InvalidError("invalid key")
	ErrInvalidKeyLength       = InvalidError("invalid key length")
	ErrInvalidKeyType         = InvalidError("invalid key type")
	ErrInvalidLoggerChannel   = InvalidError("invalid logger channel")
	ErrInvalidMessage         = InvalidError("message must contain exactly one command")
	ErrInvalidOwner           = InvalidError("invalid owner")
	ErrInvalidPoolPrefix      = InvalidError("invalid pool prefix")
	ErrInvalidTokenId         = InvalidError("invalid token id")
	ErrNotPublicKey           = InvalidError("not a public key")
	ErrOfferNotFound          = NotFoundError("offer not found")
	ErrOverflow               = ArithmeticError("amount overflow")
	ErrReadOnlyDatabase       = ProcessError("database is read only")
	ErrTransactionClosed      = ProcessError("transaction already closed")
	ErrTransactionInUse       = ProcessError("transaction already in use")
	ErrWrongNetworkForAccount = InvalidError("wrong network for account")
	ErrZeroAmount             = InvalidError("amount must be greater than zero")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ArithmeticError) Error() string { return string(e) }
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e ProcessError) Error() string    { return string(e) }

// determine the class of an error
func IsErrArithmetic(e error) bool { _, ok := e.(ArithmeticError); return ok }
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
