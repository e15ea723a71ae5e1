// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"github.com/openmarket/marketd/account"
	"github.com/openmarket/marketd/balance"
	"github.com/openmarket/marketd/currency"
	"github.com/openmarket/marketd/fault"
	"github.com/openmarket/marketd/registry"
	"github.com/openmarket/marketd/storage"
)

// Purchase - buy a listed item
//
// Attached payment must equal the listing price exactly.  Ownership
// transfer, seller settlement and the sold flag are all writes on the
// caller's transaction: if anything fails the whole transaction is
// abandoned and nothing moves.
func Purchase(trx storage.Transaction, caller account.Address, listingId uint64, payment currency.Amount) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	buffer := trx.Get(globalData.pools.Listings, listingKey(listingId))
	if nil == buffer {
		return fault.ListingNotFound
	}
	listing, err := unpackListing(listingId, buffer)
	if nil != err {
		return err
	}
	if listing.Sold {
		return fault.AlreadySold
	}

	if !payment.Equal(listing.Price) {
		return fault.PriceMismatch
	}

	// delegated transfer under the marketplace's operator approval;
	// fails if the seller no longer owns the item or revoked approval
	err = registry.Transfer(trx, globalData.marketplace, listing.ItemId, listing.Seller, caller)
	if nil != err {
		globalData.log.Warnf("purchase %d: transfer rejected: %s", listingId, err)
		return fault.TransferFailed
	}

	if err := balance.Credit(trx, listing.Seller, payment); nil != err {
		return err
	}

	listing.Owner = caller
	listing.Sold = true
	trx.Put(globalData.pools.Listings, listingKey(listingId), packListing(listing))
	trx.Delete(globalData.pools.ActiveListing, itemKey(listing.ItemId))

	globalData.log.Infof("purchase %d: item %d  %s → %s at %s",
		listingId, listing.ItemId, listing.Seller, caller, payment)
	return nil
}
