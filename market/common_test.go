// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market_test

import (
	"encoding/binary"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/openmarket/marketd/account"
	"github.com/openmarket/marketd/balance"
	"github.com/openmarket/marketd/currency"
	"github.com/openmarket/marketd/market"
	"github.com/openmarket/marketd/registry"
	"github.com/openmarket/marketd/storage"
)

const testingDirName = "testing"

var (
	admin       = testAddress(0x0a)
	marketplace = testAddress(0x0b)
	feeWallet   = testAddress(0x0c)
	alice       = testAddress(0x01)
	bob         = testAddress(0x02)
	carol       = testAddress(0x03)

	listingFee = currency.MustAmountFromUint64(10)
)

func testAddress(fill byte) account.Address {
	buffer := make([]byte, account.AddressLength)
	for i := range buffer {
		buffer[i] = fill
	}
	address, _ := account.AddressFromBytes(buffer)
	return address
}

func setup(t *testing.T) storage.Transaction {
	_ = os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0o700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "market_test.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	err := storage.Initialise(testingDirName+"/test.leveldb", storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	err = registry.Initialise(registry.Handles{
		Items:     storage.Pool.Items,
		Approvals: storage.Pool.Approvals,
		Counters:  storage.Pool.Counters,
	})
	if nil != err {
		t.Fatalf("registry initialise error: %s", err)
	}

	err = balance.Initialise(storage.Pool.Balances)
	if nil != err {
		t.Fatalf("balance initialise error: %s", err)
	}

	err = market.Initialise(admin, marketplace, market.Handles{
		Listings:      storage.Pool.Listings,
		ActiveListing: storage.Pool.ActiveListing,
		Counters:      storage.Pool.Counters,
		FeePolicy:     storage.Pool.FeePolicy,
	}, market.FeePolicy{
		ListingFee: listingFee,
		Recipient:  feeWallet,
	})
	if nil != err {
		t.Fatalf("market initialise error: %s", err)
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	return trx
}

func teardown(t *testing.T) {
	_ = market.Finalise()
	_ = balance.Finalise()
	_ = registry.Finalise()
	storage.Finalise()
	logger.Finalise()
	_ = os.RemoveAll(testingDirName)
}

// mint an item and grant the marketplace operator approval, the way
// a seller prepares before listing
func mintApproved(t *testing.T, trx storage.Transaction, owner account.Address, pointer string) uint64 {
	trx.Begin()
	itemId, err := registry.Mint(trx, owner, pointer)
	if nil != err {
		trx.Abort()
		t.Fatalf("mint error: %s", err)
	}
	err = registry.SetOperatorApproval(trx, owner, marketplace, true)
	if nil != err {
		trx.Abort()
		t.Fatalf("approval error: %s", err)
	}
	_ = trx.Commit()
	return itemId
}

func mustList(t *testing.T, trx storage.Transaction, seller account.Address, itemId uint64, price currency.Amount) uint64 {
	trx.Begin()
	listingId, err := market.CreateListing(trx, seller, itemId, price, listingFee)
	if nil != err {
		trx.Abort()
		t.Fatalf("create listing error: %s", err)
	}
	_ = trx.Commit()
	return listingId
}

func uint64Key(n uint64) []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, n)
	return buffer
}

func balanceFor(t *testing.T, address account.Address) currency.Amount {
	amount, err := balance.For(address)
	if nil != err {
		t.Fatalf("balance error: %s", err)
	}
	return amount
}
