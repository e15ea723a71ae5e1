// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openmarket/marketd/currency"
	"github.com/openmarket/marketd/fault"
	"github.com/openmarket/marketd/market"
	"github.com/openmarket/marketd/registry"
	"github.com/openmarket/marketd/storage"
)

// mint → list → purchase, the complete happy path
func TestSellAndBuy(t *testing.T) {
	trx := setup(t)
	defer teardown(t)

	price := currency.MustAmountFromUint64(1000)

	itemId := mintApproved(t, trx, alice, "ipfs://a")
	assert.Equal(t, uint64(1), itemId, "wrong item id")

	listingId := mustList(t, trx, alice, itemId, price)
	assert.Equal(t, uint64(1), listingId, "wrong listing id")

	// the listing fee went to the fee recipient
	assert.True(t, balanceFor(t, feeWallet).Equal(listingFee), "fee not settled")

	listing, err := market.Get(listingId)
	assert.Nil(t, err, "get error")
	assert.False(t, listing.Sold, "new listing already sold")
	assert.Equal(t, alice, listing.Seller, "wrong seller")
	assert.True(t, listing.Owner.IsZero(), "owner set before sale")

	trx.Begin()
	err = market.Purchase(trx, bob, listingId, price)
	assert.Nil(t, err, "purchase error")
	_ = trx.Commit()

	// ownership moved to the buyer
	item, _ := registry.Get(itemId)
	assert.Equal(t, bob, item.Owner, "ownership did not move")

	// seller received exactly the price, no additional fee
	assert.True(t, balanceFor(t, alice).Equal(price), "price not settled to seller")
	assert.True(t, balanceFor(t, feeWallet).Equal(listingFee), "fee recipient balance changed at sale")

	listing, _ = market.Get(listingId)
	assert.True(t, listing.Sold, "sold flag not set")
	assert.Equal(t, bob, listing.Owner, "listing owner is not the buyer")
}

func TestInitialiseBrokenActiveIndex(t *testing.T) {
	trx := setup(t)
	defer teardown(t)

	price := currency.MustAmountFromUint64(1000)
	itemId := mintApproved(t, trx, alice, "ipfs://a")
	listingId := mustList(t, trx, alice, itemId, price)

	// orphan the index entry by removing its listing record
	trx.Begin()
	trx.Delete(storage.Pool.Listings, uint64Key(listingId))
	err := trx.Commit()
	assert.Nil(t, err, "commit error")

	_ = market.Finalise()
	err = market.Initialise(admin, marketplace, market.Handles{
		Listings:      storage.Pool.Listings,
		ActiveListing: storage.Pool.ActiveListing,
		Counters:      storage.Pool.Counters,
		FeePolicy:     storage.Pool.FeePolicy,
	}, market.FeePolicy{
		ListingFee: listingFee,
		Recipient:  feeWallet,
	})
	assert.Equal(t, fault.ListingNotFound, err, "wrong error")
}

func TestCreateListingCounterRecovery(t *testing.T) {
	trx := setup(t)
	defer teardown(t)

	price := currency.MustAmountFromUint64(1000)

	first := mintApproved(t, trx, alice, "ipfs://a")
	second := mintApproved(t, trx, alice, "ipfs://b")
	mustList(t, trx, alice, first, price)

	// simulate a lost counter record
	trx.Begin()
	trx.Delete(storage.Pool.Counters, []byte("listing"))
	err := trx.Commit()
	assert.Nil(t, err, "commit error")

	// id assignment recovers from the highest stored listing
	listingId := mustList(t, trx, alice, second, price)
	assert.Equal(t, uint64(2), listingId, "id was reused")
}

func TestCreateListingZeroPrice(t *testing.T) {
	trx := setup(t)
	defer teardown(t)

	itemId := mintApproved(t, trx, alice, "ipfs://a")

	trx.Begin()
	_, err := market.CreateListing(trx, alice, itemId, currency.Amount{}, listingFee)
	trx.Abort()
	assert.Equal(t, fault.InvalidPrice, err, "wrong error")
}

func TestCreateListingNotOwner(t *testing.T) {
	trx := setup(t)
	defer teardown(t)

	itemId := mintApproved(t, trx, alice, "ipfs://a")

	trx.Begin()
	_, err := market.CreateListing(trx, bob, itemId, currency.MustAmountFromUint64(500), listingFee)
	trx.Abort()
	assert.Equal(t, fault.NotOwner, err, "wrong error")
}

func TestCreateListingMissingItem(t *testing.T) {
	trx := setup(t)
	defer teardown(t)

	trx.Begin()
	_, err := market.CreateListing(trx, alice, 42, currency.MustAmountFromUint64(500), listingFee)
	trx.Abort()
	assert.Equal(t, fault.ItemNotFound, err, "wrong error")
}

func TestCreateListingFeeMismatch(t *testing.T) {
	trx := setup(t)
	defer teardown(t)

	itemId := mintApproved(t, trx, alice, "ipfs://a")
	price := currency.MustAmountFromUint64(500)

	// underpayment
	trx.Begin()
	_, err := market.CreateListing(trx, alice, itemId, price, currency.MustAmountFromUint64(9))
	trx.Abort()
	assert.Equal(t, fault.FeeMismatch, err, "wrong error for underpayment")

	// overpayment is also rejected
	trx.Begin()
	_, err = market.CreateListing(trx, alice, itemId, price, currency.MustAmountFromUint64(11))
	trx.Abort()
	assert.Equal(t, fault.FeeMismatch, err, "wrong error for overpayment")

	// no fee was collected by the rejected attempts
	assert.True(t, balanceFor(t, feeWallet).IsZero(), "rejected listing moved funds")
}

// a second active listing for the same item is rejected
func TestCreateListingAlreadyListed(t *testing.T) {
	trx := setup(t)
	defer teardown(t)

	itemId := mintApproved(t, trx, alice, "ipfs://a")
	mustList(t, trx, alice, itemId, currency.MustAmountFromUint64(1000))

	trx.Begin()
	_, err := market.CreateListing(trx, alice, itemId, currency.MustAmountFromUint64(500), listingFee)
	trx.Abort()
	assert.Equal(t, fault.AlreadyListed, err, "wrong error")

	// after the item sells, the buyer can list it again
	trx.Begin()
	err = market.Purchase(trx, bob, 1, currency.MustAmountFromUint64(1000))
	assert.Nil(t, err, "purchase error")
	_ = trx.Commit()

	trx.Begin()
	_ = registry.SetOperatorApproval(trx, bob, marketplace, true)
	_ = trx.Commit()

	listingId := mustList(t, trx, bob, itemId, currency.MustAmountFromUint64(2000))
	assert.Equal(t, uint64(2), listingId, "wrong listing id")
}

func TestPurchasePriceMismatch(t *testing.T) {
	trx := setup(t)
	defer teardown(t)

	price := currency.MustAmountFromUint64(1000)
	itemId := mintApproved(t, trx, alice, "ipfs://a")
	listingId := mustList(t, trx, alice, itemId, price)

	trx.Begin()
	err := market.Purchase(trx, bob, listingId, currency.MustAmountFromUint64(999))
	trx.Abort()
	assert.Equal(t, fault.PriceMismatch, err, "wrong error")

	// nothing changed
	item, _ := registry.Get(itemId)
	assert.Equal(t, alice, item.Owner, "ownership changed on rejected purchase")
	assert.True(t, balanceFor(t, alice).IsZero(), "funds moved on rejected purchase")
	listing, _ := market.Get(listingId)
	assert.False(t, listing.Sold, "sold flag set on rejected purchase")
}

func TestPurchaseMissingListing(t *testing.T) {
	trx := setup(t)
	defer teardown(t)

	trx.Begin()
	err := market.Purchase(trx, bob, 42, currency.MustAmountFromUint64(1000))
	trx.Abort()
	assert.Equal(t, fault.ListingNotFound, err, "wrong error")
}

func TestPurchaseAlreadySold(t *testing.T) {
	trx := setup(t)
	defer teardown(t)

	price := currency.MustAmountFromUint64(1000)
	itemId := mintApproved(t, trx, alice, "ipfs://a")
	listingId := mustList(t, trx, alice, itemId, price)

	trx.Begin()
	_ = market.Purchase(trx, bob, listingId, price)
	_ = trx.Commit()

	trx.Begin()
	err := market.Purchase(trx, carol, listingId, price)
	trx.Abort()
	assert.Equal(t, fault.AlreadySold, err, "wrong error")

	// the first buyer keeps the item
	item, _ := registry.Get(itemId)
	assert.Equal(t, bob, item.Owner, "ownership changed on rejected purchase")
}

// purchase aborts completely when the delegated transfer fails
func TestPurchaseTransferFailed(t *testing.T) {
	trx := setup(t)
	defer teardown(t)

	price := currency.MustAmountFromUint64(1000)
	itemId := mintApproved(t, trx, alice, "ipfs://a")
	listingId := mustList(t, trx, alice, itemId, price)

	// seller revokes the marketplace approval after listing
	trx.Begin()
	_ = registry.SetOperatorApproval(trx, alice, marketplace, false)
	_ = trx.Commit()

	trx.Begin()
	err := market.Purchase(trx, bob, listingId, price)
	trx.Abort()
	assert.Equal(t, fault.TransferFailed, err, "wrong error")

	// all-or-nothing: no ownership change, no funds, no flag
	item, _ := registry.Get(itemId)
	assert.Equal(t, alice, item.Owner, "ownership changed on aborted purchase")
	assert.True(t, balanceFor(t, alice).IsZero(), "funds moved on aborted purchase")
	listing, _ := market.Get(listingId)
	assert.False(t, listing.Sold, "sold flag set on aborted purchase")
	assert.True(t, listing.Owner.IsZero(), "listing owner set on aborted purchase")
}

func TestGetListingPrice(t *testing.T) {
	_ = setup(t)
	defer teardown(t)

	fee, err := market.GetListingPrice()
	assert.Nil(t, err, "get listing price error")
	assert.True(t, fee.Equal(listingFee), "wrong listing fee")
}

func TestSetFeePolicy(t *testing.T) {
	trx := setup(t)
	defer teardown(t)

	updated := market.FeePolicy{
		ListingFee: currency.MustAmountFromUint64(25),
		Recipient:  feeWallet,
	}

	// only the administrator may change the policy
	trx.Begin()
	err := market.SetFeePolicy(trx, alice, updated)
	trx.Abort()
	assert.Equal(t, fault.NotAdmin, err, "wrong error")

	trx.Begin()
	err = market.SetFeePolicy(trx, admin, updated)
	assert.Nil(t, err, "set fee policy error")
	_ = trx.Commit()

	fee, _ := market.GetListingPrice()
	assert.True(t, fee.Equal(updated.ListingFee), "fee policy not updated")

	// listings now require the new fee
	itemId := mintApproved(t, trx, alice, "ipfs://a")
	trx.Begin()
	_, err = market.CreateListing(trx, alice, itemId, currency.MustAmountFromUint64(100), listingFee)
	trx.Abort()
	assert.Equal(t, fault.FeeMismatch, err, "old fee accepted")
}

func TestSetFeePolicyZeroRecipient(t *testing.T) {
	trx := setup(t)
	defer teardown(t)

	trx.Begin()
	err := market.SetFeePolicy(trx, admin, market.FeePolicy{
		ListingFee: currency.MustAmountFromUint64(25),
	})
	trx.Abort()
	assert.Equal(t, fault.InvalidRecipient, err, "wrong error")
}
