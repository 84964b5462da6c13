// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chain - names of the supported networks
package chain

// the names
const (
	Bitmark = "bitmark"
	Testing = "testing"
	Local   = "local"
)

// Valid - check that a chain name is known
func Valid(name string) bool {
	switch name {
	case Bitmark, Testing, Local:
		return true
	default:
		return false
	}
}

// IsTesting - true for every chain except the live one
func IsTesting(name string) bool {
	return Bitmark != name
}
