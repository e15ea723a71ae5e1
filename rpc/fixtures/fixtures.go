// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared helpers for the RPC handler tests
package fixtures

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/openmarket/marketd/account"
	"github.com/openmarket/marketd/balance"
	"github.com/openmarket/marketd/currency"
	"github.com/openmarket/marketd/market"
	"github.com/openmarket/marketd/registry"
	"github.com/openmarket/marketd/storage"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// well known test identities
var (
	Admin       = FillAddress(0x0a)
	Marketplace = FillAddress(0x0b)
	FeeWallet   = FillAddress(0x0c)
	Alice       = FillAddress(0x01)
	Bob         = FillAddress(0x02)

	ListingFee = currency.MustAmountFromUint64(10)
)

// FillAddress - an address with every byte set to fill
func FillAddress(fill byte) account.Address {
	buffer := make([]byte, account.AddressLength)
	for i := range buffer {
		buffer[i] = fill
	}
	address, _ := account.AddressFromBytes(buffer)
	return address
}

func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

// SetupLedger - logger plus the full storage / registry / market stack
func SetupLedger() error {
	SetupTestLogger()

	err := storage.Initialise(dir+"/test.leveldb", storage.ReadWrite)
	if nil != err {
		return err
	}

	err = registry.Initialise(registry.Handles{
		Items:     storage.Pool.Items,
		Approvals: storage.Pool.Approvals,
		Counters:  storage.Pool.Counters,
	})
	if nil != err {
		return err
	}

	err = balance.Initialise(storage.Pool.Balances)
	if nil != err {
		return err
	}

	return market.Initialise(Admin, Marketplace, market.Handles{
		Listings:      storage.Pool.Listings,
		ActiveListing: storage.Pool.ActiveListing,
		Counters:      storage.Pool.Counters,
		FeePolicy:     storage.Pool.FeePolicy,
	}, market.FeePolicy{
		ListingFee: ListingFee,
		Recipient:  FeeWallet,
	})
}

func TeardownLedger() {
	_ = market.Finalise()
	_ = balance.Finalise()
	_ = registry.Finalise()
	storage.Finalise()
	TeardownTestLogger()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
