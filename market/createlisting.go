// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"encoding/binary"

	"github.com/openmarket/marketd/account"
	"github.com/openmarket/marketd/balance"
	"github.com/openmarket/marketd/currency"
	"github.com/openmarket/marketd/fault"
	"github.com/openmarket/marketd/registry"
	"github.com/openmarket/marketd/storage"
)

// CreateListing - offer an item for sale at a fixed price
//
// The caller must own the item and attach exactly the listing fee,
// which is settled to the fee recipient immediately.  The item is not
// moved: ownership only changes when the listing is purchased.
func CreateListing(trx storage.Transaction, caller account.Address, itemId uint64, price currency.Amount, payment currency.Amount) (uint64, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return 0, fault.NotInitialised
	}
	if price.IsZero() {
		return 0, fault.InvalidPrice
	}

	item, err := registry.Get(itemId)
	if nil != err {
		return 0, err
	}
	if item.Owner != caller {
		return 0, fault.NotOwner
	}

	if trx.Has(globalData.pools.ActiveListing, itemKey(itemId)) {
		return 0, fault.AlreadyListed
	}

	policyBuffer := trx.Get(globalData.pools.FeePolicy, feePolicyKey)
	if nil == policyBuffer {
		return 0, fault.NotInitialised
	}
	policy, err := unpackFeePolicy(policyBuffer)
	if nil != err {
		return 0, err
	}
	if !payment.Equal(policy.ListingFee) {
		return 0, fault.FeeMismatch
	}

	lastId, ok := trx.GetN(globalData.pools.Counters, nextListingCounter)
	if !ok {
		// counter record missing, recover from the highest stored
		// listing so ids are never reused
		if element, found := globalData.pools.Listings.LastElement(); found {
			lastId = binary.BigEndian.Uint64(element.Key)
		}
	}
	listingId := lastId + 1

	trx.PutN(globalData.pools.Counters, nextListingCounter, listingId)
	trx.Put(globalData.pools.Listings, listingKey(listingId), packListing(Listing{
		ListingId: listingId,
		ItemId:    itemId,
		Seller:    caller,
		Owner:     account.Address{}, // unset until sold
		Price:     price,
		Sold:      false,
	}))
	trx.Put(globalData.pools.ActiveListing, itemKey(itemId), listingKey(listingId))

	if err := balance.Credit(trx, policy.Recipient, payment); nil != err {
		return 0, err
	}

	globalData.log.Infof("listing %d: item %d by %s at %s", listingId, itemId, caller, price)
	return listingId, nil
}
