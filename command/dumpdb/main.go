// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/offerledger/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "list", HasArg: getoptions.NO_ARGUMENT, Short: 'l'},
		{Long: "ascii", HasArg: getoptions.NO_ARGUMENT, Short: 'a'},
		{Long: "file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'f'},
		{Long: "count", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || 1 != len(options["file"]) {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--ascii] [--count=N] --file=FILE [--list | tag [first-component]]", program)
	}

	ascii := len(options["ascii"]) > 0
	verbose := len(options["verbose"]) > 0

	count := 10
	if len(options["count"]) > 0 {
		count, err = strconv.Atoi(options["count"][0])
		if nil != err {
			exitwithstatus.Message("%s: convert count error: %s", program, err)
		}
		if count < 1 {
			exitwithstatus.Message("%s: invalid count: %d", program, count)
		}
	}

	logging := logger.Configuration{
		Directory: ".",
		File:      "dumpdb.log",
		Size:      1048576,
		Count:     10,
		Console:   true,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	if err = logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	filename := options["file"][0]

	db, err := storage.Open(filename, storage.ReadOnly)
	if nil != err {
		exitwithstatus.Message("%s: storage setup failed with error: %s", program, err)
	}
	defer db.Close()

	if len(options["list"]) > 0 {
		fmt.Printf(" tags:\n")
		for _, p := range db.AllPools() {
			n, err := p.Count()
			if nil != err {
				exitwithstatus.Message("%s: count error: %s", program, err)
			}
			fmt.Printf("       %s → %-12s  %d records\n", p.Prefix(), p.Name(), n)
		}
		return
	}

	if 0 == len(arguments) {
		exitwithstatus.Message("%s: missing tag", program)
	}

	tag := arguments[0]
	if verbose {
		fmt.Printf("read tag: %s from file: %q\n", tag, filename)
	}

	p, ok := db.PoolByTag(tag)
	if !ok {
		exitwithstatus.Message("%s: no pool corresponding to: %q", program, tag)
	}

	cursor := p.NewFetchCursor()

	// all keys are pairs so restrict to a single first component
	if len(arguments) > 1 {
		cursor.Prefix(storage.PairPrefix(arguments[1]))
	}

	data, err := cursor.Fetch(count)
	if nil != err {
		exitwithstatus.Message("%s: error on Fetch: %s", program, err)
	}

	for i, e := range data {
		if ascii {
			first, second, err := storage.SplitPairKey(e.Key)
			if nil != err {
				fmt.Printf("%d: Key: %x\n", i, e.Key)
			} else {
				fmt.Printf("%d: Key: %q ⧺ %q\n", i, first, second)
			}
			fmt.Printf("%d: Val: %s\n", i, e.Value)
			continue
		}
		fmt.Printf("%d: Key: %s\n", i, hex.EncodeToString(e.Key))
		fmt.Printf("%d: Val: %s\n", i, hex.EncodeToString(e.Value))
	}
}
