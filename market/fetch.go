// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"encoding/binary"

	"github.com/openmarket/marketd/account"
	"github.com/openmarket/marketd/fault"
)

// scan the listing pool from a starting id, keeping records the
// filter accepts, until count records are collected or the pool ends
//
// records come back in ascending listingId order because the pool
// keys are big endian ids
func scanListings(start uint64, count int, keep func(Listing) bool) ([]Listing, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil, fault.NotInitialised
	}
	if count <= 0 {
		return nil, fault.InvalidCount
	}

	records := make([]Listing, 0, count)

	cursor := globalData.pools.Listings.NewFetchCursor().Seek(listingKey(start))

scanning:
	for {
		elements, err := cursor.Fetch(count)
		if nil != err {
			return nil, err
		}
		if 0 == len(elements) {
			break scanning
		}
		for _, element := range elements {
			if 8 != len(element.Key) {
				return nil, fault.WrongRecordLength
			}
			listing, err := unpackListing(binary.BigEndian.Uint64(element.Key), element.Value)
			if nil != err {
				return nil, err
			}
			if keep(listing) {
				records = append(records, listing)
				if len(records) >= count {
					break scanning
				}
			}
		}
	}
	return records, nil
}

// FetchAvailable - all unsold listings
func FetchAvailable(start uint64, count int) ([]Listing, error) {
	return scanListings(start, count, func(listing Listing) bool {
		return !listing.Sold
	})
}

// FetchOwned - listings bought by an address
//
// open listings keep the zero owner placeholder until sale, so this
// covers sold-to items only; the seller's unsold items are still in
// FetchCreated
func FetchOwned(owner account.Address, start uint64, count int) ([]Listing, error) {
	if owner.IsZero() {
		return nil, fault.InvalidAddress
	}
	return scanListings(start, count, func(listing Listing) bool {
		return listing.Owner == owner
	})
}

// FetchCreated - listings created by a seller, sold or not
func FetchCreated(seller account.Address, start uint64, count int) ([]Listing, error) {
	return scanListings(start, count, func(listing Listing) bool {
		return listing.Seller == seller
	})
}
