// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package balance - settlement accounts
//
// Holds the balance credited to each participant: listing fees for
// the marketplace operator and sale proceeds for sellers.  Credits
// are applied inside the same storage transaction as the operation
// that earns them, so a rejected operation moves no funds.
package balance

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/openmarket/marketd/account"
	"github.com/openmarket/marketd/currency"
	"github.com/openmarket/marketd/fault"
	"github.com/openmarket/marketd/storage"
)

// globals
var globalData struct {
	sync.RWMutex
	log         *logger.L
	pool        *storage.PoolHandle
	initialised bool
}

// Initialise - connect the settlement ledger to its pool
func Initialise(pool *storage.PoolHandle) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("balance")
	globalData.log.Info("starting…")

	globalData.pool = pool
	globalData.initialised = true
	return nil
}

// Finalise - shut down the settlement ledger
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.pool = nil
	globalData.initialised = false
	return nil
}

// Credit - add an amount to a participant's balance
//
// part of the caller's transaction, nothing is final until that
// transaction commits
func Credit(trx storage.Transaction, address account.Address, amount currency.Amount) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	current := currency.Amount{}
	if buffer := trx.Get(globalData.pool, address.Bytes()); nil != buffer {
		unpacked, err := currency.UnpackAmount(buffer)
		if nil != err {
			return err
		}
		current = unpacked
	}

	updated, err := current.Add(amount)
	if nil != err {
		return err
	}

	trx.Put(globalData.pool, address.Bytes(), updated.Pack())
	return nil
}

// For - read a participant's committed balance
func For(address account.Address) (currency.Amount, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return currency.Amount{}, fault.NotInitialised
	}

	buffer := globalData.pool.Get(address.Bytes())
	if nil == buffer {
		return currency.Amount{}, nil
	}
	return currency.UnpackAmount(buffer)
}
