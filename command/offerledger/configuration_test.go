// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/offerledger/bank"
)

func writeTestConfig(t *testing.T, text string) (string, string) {
	dir, err := ioutil.TempDir("", "offerledger")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	name := filepath.Join(dir, "offerledger.conf")
	if err := ioutil.WriteFile(name, []byte(text), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return dir, name
}

func TestGetConfigurationDefaults(t *testing.T) {
	dir, name := writeTestConfig(t, `return { data_directory = ".", chain = "local" }`)
	defer os.RemoveAll(dir)

	options, err := getConfiguration(name, nil)
	assert.Nil(t, err, "configuration error")

	assert.Equal(t, "local", options.Chain, "chain")
	assert.Equal(t, bank.DefaultQueueSize, options.TransferQueue, "queue size")
	assert.Equal(t, filepath.Join(dir, "data", "local.leveldb"), options.Database.Name, "database")
	assert.Equal(t, filepath.Join(dir, "log"), options.Logging.Directory, "log directory")
	assert.Equal(t, defaultLogFile, options.Logging.File, "log file")

	info, err := os.Stat(options.Database.Directory)
	assert.Nil(t, err, "database directory not created")
	assert.True(t, info.IsDir(), "database directory")
}

func TestGetConfigurationVariables(t *testing.T) {
	dir, name := writeTestConfig(t, `return { data_directory = ".", chain = network or "bitmark", transfer_queue = 5 }`)
	defer os.RemoveAll(dir)

	options, err := getConfiguration(name, map[string]string{"network": "TESTING"})
	assert.Nil(t, err, "configuration error")
	assert.Equal(t, "testing", options.Chain, "chain is lower cased")
	assert.Equal(t, 5, options.TransferQueue, "queue size")
	assert.Equal(t, filepath.Join(dir, "data", "testing.leveldb"), options.Database.Name, "database")
}

func TestGetConfigurationErrors(t *testing.T) {
	tests := []string{
		`return { data_directory = ".", chain = "nowhere" }`,
		`return { chain = "local" }`,
		`return { data_directory = ".", chain = "local", transfer_queue = 0 }`,
		`return { data_directory = ".", chain = "local", database = { name = "sub/x.leveldb" } }`,
	}

	for i, text := range tests {
		dir, name := writeTestConfig(t, text)
		_, err := getConfiguration(name, nil)
		assert.NotNil(t, err, "%d: expected error", i)
		os.RemoveAll(dir)
	}
}
