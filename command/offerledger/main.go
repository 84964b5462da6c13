// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/offerledger/account"
	"github.com/bitmark-inc/offerledger/bank"
	"github.com/bitmark-inc/offerledger/contract"
	"github.com/bitmark-inc/offerledger/fault"
	"github.com/bitmark-inc/offerledger/storage"
)

type metadata struct {
	config   *Configuration
	db       *storage.Database
	contract *contract.Contract
	queue    *bank.Queue
	log      *logger.L
	verbose  bool
	e        io.Writer
	w        io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "offerledger"
	app.Usage = "account balances with bid and ask offers on tokens"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config-file, c",
			Value: "offerledger.conf",
			Usage: " configuration `FILE`",
		},
		cli.StringSliceFlag{
			Name:  "set, s",
			Usage: " set a configuration variable `NAME=VALUE`",
		},
	}

	senderFlag := cli.StringFlag{
		Name:  "sender, S",
		Value: "",
		Usage: "*calling account `ADDRESS`",
	}
	fundsFlag := cli.StringFlag{
		Name:  "funds, f",
		Value: "",
		Usage: " attached coins `AMOUNTDENOM[,...]` e.g. 100utest",
	}
	tokenFlag := cli.StringFlag{
		Name:  "token-id, t",
		Value: "",
		Usage: "*token `ID`",
	}
	amountFlag := cli.StringFlag{
		Name:  "amount, a",
		Value: "",
		Usage: "*amount `NUMBER`",
	}
	denomFlag := cli.StringFlag{
		Name:  "denom, d",
		Value: "",
		Usage: "*denomination `DENOM`",
	}
	pageFlags := []cli.Flag{
		cli.BoolFlag{
			Name:  "ask, A",
			Usage: " list asks instead of bids",
		},
		cli.StringFlag{
			Name:  "start-after, s",
			Value: "",
			Usage: " continue after this `KEY`",
		},
		cli.IntFlag{
			Name:  "limit, l",
			Value: 0,
			Usage: " maximum records to output `COUNT`",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:      "instantiate",
			Usage:     "initialise the configuration with the sender as owner",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{senderFlag},
			Action:    runInstantiate,
		},
		{
			Name:      "deposit",
			Usage:     "credit exactly one attached coin",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{senderFlag, fundsFlag},
			Action:    runDeposit,
		},
		{
			Name:      "withdraw",
			Usage:     "debit an amount and transfer it to the sender",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{senderFlag, amountFlag, denomFlag},
			Action:    runWithdraw,
		},
		{
			Name:      "add-bid",
			Usage:     "bid the attached coin for a token",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{senderFlag, tokenFlag, fundsFlag},
			Action:    runAddBid,
		},
		{
			Name:      "add-ask",
			Usage:     "ask a price for a token",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{senderFlag, tokenFlag, amountFlag, denomFlag},
			Action:    runAddAsk,
		},
		{
			Name:      "remove-offer",
			Usage:     "remove the sender's bid and ask on a token",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{senderFlag, tokenFlag},
			Action:    runRemoveOffer,
		},
		{
			Name:      "update-config",
			Usage:     "hand ownership to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				senderFlag,
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " new owner `ADDRESS`",
				},
			},
			Action: runUpdateConfig,
		},
		{
			Name:      "deposits",
			Usage:     "list the balances of an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "*account `ADDRESS`",
				},
			},
			Action: runDeposits,
		},
		{
			Name:      "address-offers",
			Usage:     "list the offers of an account",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "*account `ADDRESS`",
				},
			}, pageFlags...),
			Action: runAddressOffers,
		},
		{
			Name:      "token-offers",
			Usage:     "list the offers on a token",
			ArgsUsage: "\n   (* = required)",
			Flags:     append([]cli.Flag{tokenFlag}, pageFlags...),
			Action:    runTokenOffers,
		},
		{
			Name:      "config",
			Usage:     "show the configuration record",
			ArgsUsage: " ",
			Action:    runConfig,
		},
		{
			Name:      "version",
			Usage:     "display offerledger version",
			ArgsUsage: " ",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "" == command || "version" == command || "help" == command {
			return nil
		}

		variables := make(map[string]string)
		for _, v := range c.GlobalStringSlice("set") {
			s := strings.SplitN(v, "=", 2)
			if 2 != len(s) || "" == s[0] {
				return fmt.Errorf("variable: %q is not NAME=VALUE", v)
			}
			variables[s[0]] = s[1]
		}

		file := c.GlobalString("config-file")
		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		configuration, err := getConfiguration(file, variables)
		if nil != err {
			return err
		}

		err = logger.Initialise(configuration.Logging)
		if nil != err {
			return err
		}
		err = fault.Initialise()
		if nil != err {
			return err
		}

		log := logger.New("main")
		log.Infof("starting: %s  version: %s  chain: %s", app.Name, version, configuration.Chain)

		// chain name was checked when reading the configuration
		validator, err := account.NewValidator(configuration.Chain)
		fault.PanicIfError("account.NewValidator", err)

		db, err := storage.Open(configuration.Database.Name, storage.ReadWrite)
		if nil != err {
			log.Criticalf("storage open: %q  error: %s", configuration.Database.Name, err)
			return err
		}
		log.Debugf("database: %q", configuration.Database.Name)

		queue := bank.NewQueue(configuration.TransferQueue)

		c.App.Metadata["config"] = &metadata{
			config:   configuration,
			db:       db,
			contract: contract.New(db, validator, queue),
			queue:    queue,
			log:      log,
			verbose:  verbose,
			e:        e,
			w:        w,
		}

		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}

		committed, aborted := m.contract.Stats()
		m.log.Infof("committed: %d  aborted: %d  transfers: %d", committed, aborted, m.queue.Sent())

		err := m.db.Close()
		fault.Finalise()
		logger.Finalise()
		return err
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: terminated with error: %s", app.Name, err)
	}
}
