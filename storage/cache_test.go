// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheWriteThenRead(t *testing.T) {
	c := newCache()

	_, staged := c.Get("test")
	assert.False(t, staged, "key staged before write")

	c.Set(dbPut, "test", []byte("abcd"))
	value, staged := c.Get("test")
	assert.True(t, staged, "key not staged")
	assert.Equal(t, []byte("abcd"), value, "wrong value")
}

func TestCacheDelete(t *testing.T) {
	c := newCache()

	c.Set(dbPut, "test", []byte("abcd"))
	c.Set(dbDelete, "test", nil)

	value, staged := c.Get("test")
	assert.True(t, staged, "delete not staged")
	assert.Nil(t, value, "deleted value")
}

func TestCacheNilPutIsNotDelete(t *testing.T) {
	c := newCache()

	c.Set(dbPut, "test", nil)
	value, staged := c.Get("test")
	assert.True(t, staged, "put not staged")
	assert.NotNil(t, value, "empty put reads as delete")
}

func TestCacheClear(t *testing.T) {
	c := newCache()

	c.Set(dbPut, "test", []byte("abcd"))
	c.Clear()

	_, staged := c.Get("test")
	assert.False(t, staged, "key survived clear")
}
