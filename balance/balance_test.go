// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package balance_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/openmarket/marketd/account"
	"github.com/openmarket/marketd/balance"
	"github.com/openmarket/marketd/currency"
	"github.com/openmarket/marketd/storage"
)

const testingDirName = "testing"

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
		File:      "balance_test.log",
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

	err = balance.Initialise(storage.Pool.Balances)
	if nil != err {
		t.Fatalf("balance initialise error: %s", err)
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	return trx
}

func teardown(t *testing.T) {
	_ = balance.Finalise()
	storage.Finalise()
	logger.Finalise()
	_ = os.RemoveAll(testingDirName)
}

func TestCreditAccumulates(t *testing.T) {
	trx := setup(t)
	defer teardown(t)

	seller := testAddress(0x01)

	trx.Begin()
	err := balance.Credit(trx, seller, currency.MustAmountFromUint64(1000))
	assert.Nil(t, err, "credit error")
	_ = trx.Commit()

	trx.Begin()
	err = balance.Credit(trx, seller, currency.MustAmountFromUint64(500))
	assert.Nil(t, err, "credit error")
	_ = trx.Commit()

	amount, err := balance.For(seller)
	assert.Nil(t, err, "balance error")
	assert.True(t, amount.Equal(currency.MustAmountFromUint64(1500)), "wrong balance")
}

func TestCreditAborted(t *testing.T) {
	trx := setup(t)
	defer teardown(t)

	seller := testAddress(0x02)

	trx.Begin()
	_ = balance.Credit(trx, seller, currency.MustAmountFromUint64(1000))
	trx.Abort()

	amount, err := balance.For(seller)
	assert.Nil(t, err, "balance error")
	assert.True(t, amount.IsZero(), "aborted credit reached the balance")
}

func TestCreditTwiceInOneTransaction(t *testing.T) {
	trx := setup(t)
	defer teardown(t)

	seller := testAddress(0x03)

	// both credits are pending in the same batch; the second must
	// see the first
	trx.Begin()
	_ = balance.Credit(trx, seller, currency.MustAmountFromUint64(10))
	_ = balance.Credit(trx, seller, currency.MustAmountFromUint64(5))
	_ = trx.Commit()

	amount, _ := balance.For(seller)
	assert.True(t, amount.Equal(currency.MustAmountFromUint64(15)), "wrong balance")
}

func TestBalanceUnknownAddress(t *testing.T) {
	_ = setup(t)
	defer teardown(t)

	amount, err := balance.For(testAddress(0x7f))
	assert.Nil(t, err, "balance error")
	assert.True(t, amount.IsZero(), "unknown address has a balance")
}
