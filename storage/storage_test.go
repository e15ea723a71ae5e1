// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openmarket/marketd/storage"
)

func uint64Key(n uint64) []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, n)
	return buffer
}

func TestTransactionCommit(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "transaction error")

	trx.Begin()
	trx.Put(storage.Pool.Items, uint64Key(1), []byte("item one"))
	err = trx.Commit()
	assert.Nil(t, err, "commit error")

	assert.Equal(t, []byte("item one"), storage.Pool.Items.Get(uint64Key(1)), "wrong data after commit")
	assert.True(t, storage.Pool.Items.Has(uint64Key(1)), "record missing after commit")
}

func TestTransactionAbort(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, _ := storage.NewDBTransaction()

	trx.Begin()
	trx.Put(storage.Pool.Items, uint64Key(2), []byte("item two"))
	trx.PutN(storage.Pool.Counters, []byte("item"), 2)
	trx.Abort()

	assert.Nil(t, storage.Pool.Items.Get(uint64Key(2)), "aborted write reached the database")
	_, found := storage.Pool.Counters.GetN([]byte("item"))
	assert.False(t, found, "aborted counter write reached the database")
}

func TestTransactionReadsOwnWrites(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, _ := storage.NewDBTransaction()

	trx.Begin()
	trx.Put(storage.Pool.Listings, uint64Key(7), []byte("pending"))

	// the transaction sees its pending write
	assert.Equal(t, []byte("pending"), trx.Get(storage.Pool.Listings, uint64Key(7)), "pending write invisible to transaction")
	assert.True(t, trx.Has(storage.Pool.Listings, uint64Key(7)), "pending write invisible to transaction")

	// a plain handle read only sees committed state
	assert.Nil(t, storage.Pool.Listings.Get(uint64Key(7)), "uncommitted write visible outside transaction")

	trx.Abort()
}

func TestTransactionDelete(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, _ := storage.NewDBTransaction()

	trx.Begin()
	trx.Put(storage.Pool.ActiveListing, uint64Key(3), uint64Key(9))
	_ = trx.Commit()

	trx.Begin()
	trx.Delete(storage.Pool.ActiveListing, uint64Key(3))
	assert.False(t, trx.Has(storage.Pool.ActiveListing, uint64Key(3)), "pending delete invisible to transaction")
	assert.True(t, storage.Pool.ActiveListing.Has(uint64Key(3)), "pending delete visible outside transaction")
	_ = trx.Commit()

	assert.False(t, storage.Pool.ActiveListing.Has(uint64Key(3)), "record still present after committed delete")
}

func TestCounters(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, _ := storage.NewDBTransaction()

	_, found := storage.Pool.Counters.GetN([]byte("listing"))
	assert.False(t, found, "unexpected counter record")

	trx.Begin()
	trx.PutN(storage.Pool.Counters, []byte("listing"), 1)
	_ = trx.Commit()

	n, found := storage.Pool.Counters.GetN([]byte("listing"))
	assert.True(t, found, "counter record missing")
	assert.Equal(t, uint64(1), n, "wrong counter value")
}

func TestLastElement(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, _ := storage.NewDBTransaction()

	_, found := storage.Pool.Listings.LastElement()
	assert.False(t, found, "unexpected element in empty pool")

	trx.Begin()
	trx.Put(storage.Pool.Listings, uint64Key(1), []byte("first"))
	trx.Put(storage.Pool.Listings, uint64Key(2), []byte("second"))
	_ = trx.Commit()

	element, found := storage.Pool.Listings.LastElement()
	assert.True(t, found, "no last element")
	assert.Equal(t, uint64Key(2), element.Key, "wrong last key")
	assert.Equal(t, []byte("second"), element.Value, "wrong last value")
}
