// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openmarket/marketd/storage"
)

func storeListings(t *testing.T, count int) {
	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "transaction error")

	trx.Begin()
	for i := 1; i <= count; i += 1 {
		trx.Put(storage.Pool.Listings, uint64Key(uint64(i)), []byte{byte(i)})
	}
	err = trx.Commit()
	assert.Nil(t, err, "commit error")
}

func TestCursorFetchOrdered(t *testing.T) {
	setup(t)
	defer teardown(t)

	storeListings(t, 5)

	cursor := storage.Pool.Listings.NewFetchCursor()
	elements, err := cursor.Fetch(10)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, 5, len(elements), "wrong element count")

	// ascending key order
	for i, element := range elements {
		assert.Equal(t, uint64Key(uint64(i+1)), element.Key, "wrong key order")
	}
}

func TestCursorFetchContinues(t *testing.T) {
	setup(t)
	defer teardown(t)

	storeListings(t, 5)

	cursor := storage.Pool.Listings.NewFetchCursor()

	first, err := cursor.Fetch(2)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, 2, len(first), "wrong element count")
	assert.Equal(t, uint64Key(2), first[1].Key, "wrong key")

	second, err := cursor.Fetch(2)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, 2, len(second), "wrong element count")
	assert.Equal(t, uint64Key(3), second[0].Key, "cursor did not advance")
}

func TestCursorFetchDrains(t *testing.T) {
	setup(t)
	defer teardown(t)

	storeListings(t, 5)

	// single-element pages must visit every record exactly once
	cursor := storage.Pool.Listings.NewFetchCursor()
	for i := 1; i <= 5; i += 1 {
		elements, err := cursor.Fetch(1)
		assert.Nil(t, err, "fetch error")
		assert.Equal(t, 1, len(elements), "wrong element count")
		assert.Equal(t, uint64Key(uint64(i)), elements[0].Key, "skipped a key")
	}

	elements, err := cursor.Fetch(1)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, 0, len(elements), "cursor not exhausted")
}

func TestCursorFetchInvalidCount(t *testing.T) {
	setup(t)
	defer teardown(t)

	cursor := storage.Pool.Listings.NewFetchCursor()
	_, err := cursor.Fetch(0)
	assert.NotNil(t, err, "accepted zero count")
}

func TestCursorMap(t *testing.T) {
	setup(t)
	defer teardown(t)

	storeListings(t, 3)

	visited := 0
	err := storage.Pool.Listings.NewFetchCursor().Map(func(key []byte, value []byte) error {
		visited += 1
		return nil
	})
	assert.Nil(t, err, "map error")
	assert.Equal(t, 3, visited, "wrong visit count")
}
