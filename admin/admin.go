// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package admin - the single owner configuration record
package admin

import (
	"encoding/json"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/offerledger/account"
	"github.com/bitmark-inc/offerledger/fault"
	"github.com/bitmark-inc/offerledger/response"
	"github.com/bitmark-inc/offerledger/storage"
)

var configKey = []byte("config")

// Config - the stored configuration
type Config struct {
	Owner account.Address `json:"owner"`
}

// Store - configuration held in one storage pool
type Store struct {
	log       *logger.L
	pool      storage.Handle
	validator account.Validator
}

// New - a store that validates new owners with validator
func New(pool storage.Handle, validator account.Validator) *Store {
	return &Store{
		log:       logger.New("admin"),
		pool:      pool,
		validator: validator,
	}
}

// Initialise - create the record, only once
func (s *Store) Initialise(trx storage.Transaction, owner account.Address) (*Config, error) {
	if trx.Has(s.pool, configKey) {
		return nil, fault.ErrAlreadyInitialised
	}

	config := &Config{Owner: owner}
	err := s.put(trx, config)
	if nil != err {
		return nil, err
	}

	s.log.Infof("initialised: owner: %s", owner)
	return config, nil
}

// Get - the record as seen by a transaction
func (s *Store) Get(trx storage.Transaction) (*Config, error) {
	return unpack(trx.Get(s.pool, configKey))
}

// Load - the committed record
func (s *Store) Load() (*Config, error) {
	return unpack(s.pool.Get(configKey))
}

// Update - owner gated change of owner
//
// a nil newOwner keeps the record as it is
func (s *Store) Update(trx storage.Transaction, caller account.Address, newOwner *string) (*response.Response, error) {
	config, err := s.Get(trx)
	if nil != err {
		return nil, err
	}

	if caller != config.Owner {
		return nil, fault.ErrInvalidOwner
	}

	if nil != newOwner {
		owner, err := s.validator.Validate(*newOwner)
		if nil != err {
			return nil, err
		}
		config.Owner = owner

		err = s.put(trx, config)
		if nil != err {
			return nil, err
		}
		s.log.Infof("owner: %s → %s", caller, owner)
	}

	return response.New("update_config").
		AddAttribute("owner", config.Owner.String()), nil
}

func (s *Store) put(trx storage.Transaction, config *Config) error {
	data, err := json.Marshal(config)
	if nil != err {
		return err
	}
	trx.Put(s.pool, configKey, data)
	return nil
}

func unpack(data []byte) (*Config, error) {
	if nil == data {
		return nil, fault.ErrConfigNotFound
	}
	var config Config
	err := json.Unmarshal(data, &config)
	if nil != err {
		return nil, fault.ErrCorruptRecord
	}
	return &config, nil
}
